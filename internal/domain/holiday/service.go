package holiday

import "context"

type HolidayService interface {
	// ListHolidays returns the holidays intersecting the inclusive date range
	// [from, to], both formatted YYYY-MM-DD.
	ListHolidays(ctx context.Context, from, to string) ([]HolidayResponse, error)

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
}

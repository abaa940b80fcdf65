package holiday

import (
	"context"
	"time"
)

// HolidayRepository is the holiday calendar contract: it supplies holiday
// date ranges overlapping a period. The core engine never writes holidays.
type HolidayRepository interface {
	ListByRange(ctx context.Context, from, to time.Time, companyID string) ([]Holiday, error)
	Create(ctx context.Context, h Holiday) (Holiday, error)
}

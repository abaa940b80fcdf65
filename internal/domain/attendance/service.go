package attendance

import "context"

type AttendanceService interface {
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Seed generates synthetic attendance for one employee's month, replacing
	// whatever that month already held.
	Seed(ctx context.Context, req SeedRequest) (SeedResponse, error)
}

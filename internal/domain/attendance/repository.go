package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Methods
// take a companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// ListByPeriod returns the records whose check_in falls inside [from, to).
	// Membership follows check-in alone, matching how the shift date is
	// derived. The bounds are absolute instants; the caller derives them from
	// local period dates.
	ListByPeriod(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Attendance, error)

	// List retrieves attendance records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// ReplaceRange atomically deletes the employee's records whose check_in
	// falls inside [from, to) and inserts the replacements. Returns how many
	// rows were deleted.
	ReplaceRange(ctx context.Context, employeeID string, from, to time.Time, companyID string, records []Attendance) (int, error)
}

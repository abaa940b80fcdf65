package attendance

import "time"

// Attendance is one raw clock-in/clock-out record. CheckIn and CheckOut are
// stored as absolute instants; conversion to the employee's local time zone
// happens once, at the entry to the hour-decomposition engine.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

package employee

import "time"

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	EmployeeCode string
	// Timezone is the IANA identifier used to interpret the employee's
	// attendance instants as local wall-clock time for all shift math.
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract carries the salary-allowance fields attached to an employee.
// These are plain stored values copied onto the payslip; no wage computation
// happens here.
type Contract struct {
	ID                   string
	EmployeeID           string
	CompanyID            string
	TransportAllowance   decimal.Decimal
	LanguageAllowance    decimal.Decimal
	EnvironmentAllowance decimal.Decimal
	InsuranceBaseWage    decimal.Decimal
	PersonalTaxThreshold decimal.Decimal
	ExamPassed           bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Aggregate is the pay-period rollup of category hours for one employee.
// It is built fresh on every computation; recomputing on identical inputs
// yields an identical value.
type Aggregate struct {
	StandardHours           float64 `json:"standard_hours"`
	WorkedHours             float64 `json:"worked_hours"`
	OTWeekday               float64 `json:"ot_weekday"`
	OTWeekend               float64 `json:"ot_weekend"`
	OTHoliday               float64 `json:"ot_holiday"`
	NightRegular            float64 `json:"night_regular"`
	NightDeep               float64 `json:"night_deep"`
	NightOT                 float64 `json:"night_ot"`
	NightFullDays           int     `json:"night_full_days"`
	AttendanceRate          float64 `json:"attendance_rate"`
	RemainingPaidLeaveHours float64 `json:"remaining_paid_leave_hours"`
}

// IssueKind classifies a per-interval data problem found during aggregation.
type IssueKind string

const (
	IssueMalformedInterval    IssueKind = "malformed_interval"
	IssueInconsistentShiftDay IssueKind = "inconsistent_shift_day"
	IssueBoundsViolation      IssueKind = "bounds_violation"
)

// Issue flags one attendance interval for correction. Malformed and
// inconsistent-shift-day intervals are excluded from the totals; bounds
// violations are warnings and the interval still counts.
type Issue struct {
	AttendanceID string    `json:"attendance_id"`
	Kind         IssueKind `json:"kind"`
	Message      string    `json:"message"`
}

// Payslip is the persisted computation result for one employee and period,
// plus the contract allowance fields copied through for the payroll run.
type Payslip struct {
	ID         string
	EmployeeID string
	CompanyID  string
	DateFrom   time.Time
	DateTo     time.Time

	Aggregate

	TransportAllowance   decimal.Decimal
	LanguageAllowance    decimal.Decimal
	EnvironmentAllowance decimal.Decimal
	ExamPassed           bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

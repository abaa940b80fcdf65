package payslip

import (
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputeRequest struct {
	EmployeeID string `json:"employee_id"`
	DateFrom   string `json:"date_from"` // YYYY-MM-DD, inclusive
	DateTo     string `json:"date_to"`   // YYYY-MM-DD, inclusive
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	errs = append(errs, validatePeriod(r.DateFrom, r.DateTo)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComputeAllRequest struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

func (r *ComputeAllRequest) Validate() error {
	errs := validatePeriod(r.DateFrom, r.DateTo)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(from, to string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, okFrom := validator.IsValidDate(from)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be YYYY-MM-DD",
		})
	}
	end, okTo := validator.IsValidDate(to)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be YYYY-MM-DD",
		})
	}
	if okFrom && okTo && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must not be before date_from",
		})
	}
	return errs
}

type PayslipFilter struct {
	EmployeeID string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

func (f *PayslipFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type PayslipResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	DateFrom     string  `json:"date_from"`
	DateTo       string  `json:"date_to"`

	Aggregate

	TransportAllowance   decimal.Decimal `json:"transport_allowance"`
	LanguageAllowance    decimal.Decimal `json:"language_allowance"`
	EnvironmentAllowance decimal.Decimal `json:"environment_allowance"`
	ExamPassed           bool            `json:"exam_passed"`
}

// ComputeResponse carries the persisted payslip together with the
// per-interval issues found during aggregation (partial-failure semantics:
// flagged intervals are reported, the rest of the period still computes).
type ComputeResponse struct {
	Payslip PayslipResponse `json:"payslip"`
	Issues  []Issue         `json:"issues"`
}

type ComputeAllResponse struct {
	Results []ComputeResponse `json:"results"`
}

type ListPayslipResponse struct {
	Payslips   []PayslipResponse `json:"payslips"`
	TotalItems int64             `json:"total_items"`
}

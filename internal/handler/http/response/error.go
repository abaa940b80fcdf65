package response

import (
	"errors"
	"net/http"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/contract"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/holiday"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrInvalidDateRange):
		BadRequest(w, "Invalid holiday date range", nil)

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	ErrInvalidPeriod   = errors.New("invalid pay period: dates must be YYYY-MM-DD and date_to must not be before date_from")
)

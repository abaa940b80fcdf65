package payslip

import "context"

type PayslipService interface {
	// Compute runs the full decomposition pipeline for one employee and
	// period, persists the result and returns it with any flagged intervals.
	Compute(ctx context.Context, req ComputeRequest) (ComputeResponse, error)

	// ComputeAll computes payslips for every employee of the caller's
	// company over the same period.
	ComputeAll(ctx context.Context, req ComputeAllRequest) (ComputeAllResponse, error)

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)

	// RecomputeCurrentPeriod refreshes the current calendar month for every
	// employee across companies. Called from the scheduled job.
	RecomputeCurrentPeriod(ctx context.Context) error
}

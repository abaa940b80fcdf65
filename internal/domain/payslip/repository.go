package payslip

import "context"

// PayslipRepository persists computed pay-period results. Upsert fully
// overwrites the previous row for the same employee and period so retried
// computations stay idempotent.
type PayslipRepository interface {
	Upsert(ctx context.Context, p Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string, companyID string) (Payslip, error)
	List(ctx context.Context, filter PayslipFilter, companyID string) ([]Payslip, int64, error)
}

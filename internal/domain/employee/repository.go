package employee

import "context"

// EmployeeRepository defines data access for employee records. Methods take a
// companyID parameter to prevent cross-company data access.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// ListAll returns every employee across companies. Used by the scheduled
	// payslip recomputation job, which runs outside any request scope.
	ListAll(ctx context.Context) ([]Employee, error)
}

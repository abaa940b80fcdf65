package contract

import "context"

type ContractRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (Contract, error)
}

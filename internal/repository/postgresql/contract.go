package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/contract"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/database"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

// GetByEmployeeID implements contract.ContractRepository.
func (r *contractRepository) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id,
		       transport_allowance, language_allowance, environment_allowance,
		       insurance_base_wage, personal_tax_threshold, exam_passed,
		       created_at, updated_at
		FROM contracts
		WHERE employee_id = $1 AND company_id = $2
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&c.ID, &c.EmployeeID, &c.CompanyID,
		&c.TransportAllowance, &c.LanguageAllowance, &c.EnvironmentAllowance,
		&c.InsuranceBaseWage, &c.PersonalTaxThreshold, &c.ExamPassed,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract by employee id: %w", err)
	}

	return c, nil
}

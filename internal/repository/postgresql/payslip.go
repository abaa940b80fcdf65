package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.company_id, p.date_from, p.date_to,
	p.standard_hours, p.worked_hours,
	p.ot_weekday, p.ot_weekend, p.ot_holiday,
	p.night_regular, p.night_deep, p.night_ot, p.night_full_days,
	p.attendance_rate, p.remaining_paid_leave_hours,
	p.transport_allowance, p.language_allowance, p.environment_allowance, p.exam_passed,
	p.created_at, p.updated_at
`

func scanPayslip(row pgx.Row, withName bool) (payslip.Payslip, error) {
	var p payslip.Payslip
	dest := []any{
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.DateFrom, &p.DateTo,
		&p.StandardHours, &p.WorkedHours,
		&p.OTWeekday, &p.OTWeekend, &p.OTHoliday,
		&p.NightRegular, &p.NightDeep, &p.NightOT, &p.NightFullDays,
		&p.AttendanceRate, &p.RemainingPaidLeaveHours,
		&p.TransportAllowance, &p.LanguageAllowance, &p.EnvironmentAllowance, &p.ExamPassed,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if withName {
		dest = append(dest, &p.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return payslip.Payslip{}, err
	}
	return p, nil
}

// Upsert implements payslip.PayslipRepository. The row for the same employee
// and period is fully overwritten, keeping recomputation idempotent.
func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payslips (
			id, employee_id, company_id, date_from, date_to,
			standard_hours, worked_hours,
			ot_weekday, ot_weekend, ot_holiday,
			night_regular, night_deep, night_ot, night_full_days,
			attendance_rate, remaining_paid_leave_hours,
			transport_allowance, language_allowance, environment_allowance, exam_passed
		)
		VALUES (
			$1, $2, $3, $4, $5,
			$6, $7,
			$8, $9, $10,
			$11, $12, $13, $14,
			$15, $16,
			$17, $18, $19, $20
		)
		ON CONFLICT (employee_id, date_from, date_to) DO UPDATE SET
			standard_hours = EXCLUDED.standard_hours,
			worked_hours = EXCLUDED.worked_hours,
			ot_weekday = EXCLUDED.ot_weekday,
			ot_weekend = EXCLUDED.ot_weekend,
			ot_holiday = EXCLUDED.ot_holiday,
			night_regular = EXCLUDED.night_regular,
			night_deep = EXCLUDED.night_deep,
			night_ot = EXCLUDED.night_ot,
			night_full_days = EXCLUDED.night_full_days,
			attendance_rate = EXCLUDED.attendance_rate,
			remaining_paid_leave_hours = EXCLUDED.remaining_paid_leave_hours,
			transport_allowance = EXCLUDED.transport_allowance,
			language_allowance = EXCLUDED.language_allowance,
			environment_allowance = EXCLUDED.environment_allowance,
			exam_passed = EXCLUDED.exam_passed,
			updated_at = NOW()
		RETURNING
			id, employee_id, company_id, date_from, date_to,
			standard_hours, worked_hours,
			ot_weekday, ot_weekend, ot_holiday,
			night_regular, night_deep, night_ot, night_full_days,
			attendance_rate, remaining_paid_leave_hours,
			transport_allowance, language_allowance, environment_allowance, exam_passed,
			created_at, updated_at
	`

	row := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.CompanyID, p.DateFrom, p.DateTo,
		p.StandardHours, p.WorkedHours,
		p.OTWeekday, p.OTWeekend, p.OTHoliday,
		p.NightRegular, p.NightDeep, p.NightOT, p.NightFullDays,
		p.AttendanceRate, p.RemainingPaidLeaveHours,
		p.TransportAllowance, p.LanguageAllowance, p.EnvironmentAllowance, p.ExamPassed,
	)

	saved, err := scanPayslip(row, false)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return saved, nil
}

// GetByID implements payslip.PayslipRepository.
func (r *payslipRepository) GetByID(ctx context.Context, id string, companyID string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.company_id = $2
	`, payslipColumns)

	p, err := scanPayslip(q.QueryRow(ctx, query, id, companyID), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip by id: %w", err)
	}

	return p, nil
}

// List implements payslip.PayslipRepository.
func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter, companyID string) ([]payslip.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.company_id = $1"}
	args := []any{companyID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("p.date_from >= $%d", len(args)))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("p.date_to <= $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM payslips p WHERE %s`, where)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.date_from DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, payslipColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payslips: %w", err)
	}

	return payslips, total, nil
}

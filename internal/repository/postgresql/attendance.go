package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ListByPeriod implements attendance.AttendanceRepository. Records belong to
// the period when their check_in falls inside [from, to); the shift date is
// always derived from check-in.
func (r *attendanceRepository) ListByPeriod(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, check_in, check_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND company_id = $2
		  AND check_in >= $3
		  AND check_in < $4
		ORDER BY check_in
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by period: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CompanyID, &att.CheckIn, &att.CheckOut,
			&att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"a.company_id = $1"}
	args := []any{companyID}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.check_in >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.check_in < $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a WHERE %s`, where)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	listQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.company_id, a.check_in, a.check_out,
		       a.created_at, a.updated_at, e.full_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.check_in DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.CompanyID, &att.CheckIn, &att.CheckOut,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// ReplaceRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ReplaceRange(ctx context.Context, employeeID string, from, to time.Time, companyID string, records []attendance.Attendance) (int, error) {
	deleted := 0

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			DELETE FROM attendances
			WHERE employee_id = $1
			  AND company_id = $2
			  AND check_in >= $3
			  AND check_in < $4
		`, employeeID, companyID, from, to)
		if err != nil {
			return fmt.Errorf("failed to delete attendances: %w", err)
		}
		deleted = int(tag.RowsAffected())

		batch := &pgx.Batch{}
		for _, att := range records {
			id := att.ID
			if id == "" {
				id = uuid.New().String()
			}
			batch.Queue(`
				INSERT INTO attendances (id, employee_id, company_id, check_in, check_out)
				VALUES ($1, $2, $3, $4, $5)
			`, id, att.EmployeeID, att.CompanyID, att.CheckIn, att.CheckOut)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range records {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert attendance: %w", err)
			}
		}

		return results.Close()
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

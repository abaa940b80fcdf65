package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/holiday"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByRange implements holiday.HolidayRepository. It returns every holiday
// whose date range intersects the inclusive period [from, to].
func (r *holidayRepository) ListByRange(ctx context.Context, from, to time.Time, companyID string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_date, end_date, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.CompanyID, &h.Name, &h.StartDate, &h.EndDate,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.New().String()
	}

	query := `
		INSERT INTO holidays (id, company_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, name, start_date, end_date, created_at, updated_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, h.ID, h.CompanyID, h.Name, h.StartDate, h.EndDate).Scan(
		&created.ID, &created.CompanyID, &created.Name, &created.StartDate, &created.EndDate,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return created, nil
}

package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/metrics"
)

// Seeded months follow one fixed pattern: Sundays off, days 6 through 20 on
// the day shift, every other day on the night shift.
const (
	seedDayShiftFirst = 6
	seedDayShiftLast  = 20
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	defaultTimezone string
	metrics         metrics.Collector
	logger          *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	defaultTimezone string,
	collector metrics.Collector,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		defaultTimezone:      defaultTimezone,
		metrics:              collector,
		logger:               logger,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	filter.Normalize()

	records, total, err := s.AttendanceRepository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.AttendanceResponse{
			ID:           att.ID,
			EmployeeID:   att.EmployeeID,
			EmployeeName: att.EmployeeName,
			CheckIn:      att.CheckIn.UTC().Format(time.RFC3339),
			CheckOut:     att.CheckOut.UTC().Format(time.RFC3339),
		})
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		TotalItems:  total,
	}, nil
}

// Seed implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Seed(ctx context.Context, req attendance.SeedRequest) (attendance.SeedResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SeedResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.SeedResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.SeedResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return attendance.SeedResponse{}, err
	}

	loc, err := time.LoadLocation(emp.Timezone)
	if err != nil {
		loc, err = time.LoadLocation(s.defaultTimezone)
		if err != nil {
			loc = time.UTC
		}
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	records := buildSeedRecords(emp.ID, companyID, req.Year, time.Month(req.Month), loc)

	deleted, err := s.AttendanceRepository.ReplaceRange(ctx, emp.ID, monthStart, monthEnd, companyID, records)
	if err != nil {
		return attendance.SeedResponse{}, err
	}

	s.metrics.RecordAttendancesSeeded(len(records))
	s.logger.Info("attendance month seeded",
		"employee_id", emp.ID,
		"year", req.Year,
		"month", req.Month,
		"deleted", deleted,
		"created", len(records),
	)

	return attendance.SeedResponse{
		EmployeeID: emp.ID,
		Year:       req.Year,
		Month:      req.Month,
		Deleted:    deleted,
		Created:    len(records),
	}, nil
}

// buildSeedRecords produces one synthetic punch per working day of the month.
// Day-shift punches run 07:00 to 19:00; night-shift punches run 19:00 to
// 07:00 the next morning.
func buildSeedRecords(employeeID, companyID string, year int, month time.Month, loc *time.Location) []attendance.Attendance {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var records []attendance.Attendance
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}

		var checkIn, checkOut time.Time
		if d.Day() >= seedDayShiftFirst && d.Day() <= seedDayShiftLast {
			checkIn = time.Date(d.Year(), d.Month(), d.Day(), 7, 0, 0, 0, loc)
			checkOut = time.Date(d.Year(), d.Month(), d.Day(), 19, 0, 0, 0, loc)
		} else {
			checkIn = time.Date(d.Year(), d.Month(), d.Day(), 19, 0, 0, 0, loc)
			checkOut = checkIn.Add(12 * time.Hour)
		}

		records = append(records, attendance.Attendance{
			EmployeeID: employeeID,
			CompanyID:  companyID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
	}
	return records
}

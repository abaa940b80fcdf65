package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/contract"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/holiday"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/shift"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/metrics"
)

// computeConcurrency bounds how many employees ComputeAll processes at once.
const computeConcurrency = 8

type PayslipServiceImpl struct {
	payslip.PayslipRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
	contract.ContractRepository

	calculator      *PeriodCalculator
	schedule        shift.Schedule
	stepMinutes     int
	leaveBankHours  float64
	defaultTimezone string
	metrics         metrics.Collector
	logger          *slog.Logger
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	contractRepo contract.ContractRepository,
	schedule shift.Schedule,
	stepMinutes int,
	leaveBankHours float64,
	defaultTimezone string,
	collector metrics.Collector,
	logger *slog.Logger,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		PayslipRepository:    payslipRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		ContractRepository:   contractRepo,
		calculator:           NewPeriodCalculator(),
		schedule:             schedule,
		stepMinutes:          stepMinutes,
		leaveBankHours:       leaveBankHours,
		defaultTimezone:      defaultTimezone,
		metrics:              collector,
		logger:               logger,
	}
}

// Compute implements payslip.PayslipService.
func (s *PayslipServiceImpl) Compute(ctx context.Context, req payslip.ComputeRequest) (payslip.ComputeResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.ComputeResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payslip.ComputeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payslip.ComputeResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return s.computeForEmployee(ctx, req.EmployeeID, companyID, req.DateFrom, req.DateTo)
}

// ComputeAll implements payslip.PayslipService.
func (s *PayslipServiceImpl) ComputeAll(ctx context.Context, req payslip.ComputeAllRequest) (payslip.ComputeAllResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.ComputeAllResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payslip.ComputeAllResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payslip.ComputeAllResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employees, err := s.EmployeeRepository.ListByCompanyID(ctx, companyID)
	if err != nil {
		return payslip.ComputeAllResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var (
		mu      sync.Mutex
		results []payslip.ComputeResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(computeConcurrency)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			res, err := s.computeForEmployee(gctx, emp.ID, companyID, req.DateFrom, req.DateTo)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payslip.ComputeAllResponse{}, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Payslip.EmployeeID < results[j].Payslip.EmployeeID
	})

	return payslip.ComputeAllResponse{Results: results}, nil
}

// GetPayslip implements payslip.PayslipService.
func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payslip.PayslipResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	p, err := s.PayslipRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapPayslipToResponse(p), nil
}

// ListPayslips implements payslip.PayslipService.
func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) (payslip.ListPayslipResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payslip.ListPayslipResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payslip.ListPayslipResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	filter.Normalize()

	payslips, total, err := s.PayslipRepository.List(ctx, filter, companyID)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, mapPayslipToResponse(p))
	}

	return payslip.ListPayslipResponse{
		Payslips:   responses,
		TotalItems: total,
	}, nil
}

// RecomputeCurrentPeriod implements payslip.PayslipService. Failures for
// individual employees are logged and skipped so one bad record cannot stall
// the whole scheduled run.
func (s *PayslipServiceImpl) RecomputeCurrentPeriod(ctx context.Context) error {
	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(computeConcurrency)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			loc := s.locationFor(emp)
			now := time.Now().In(loc)
			monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
			monthEnd := monthStart.AddDate(0, 1, -1)

			_, err := s.computeForEmployee(gctx, emp.ID, emp.CompanyID,
				monthStart.Format(dateLayout), monthEnd.Format(dateLayout))
			if err != nil {
				s.logger.Error("scheduled payslip recomputation failed",
					"employee_id", emp.ID,
					"company_id", emp.CompanyID,
					"error", err,
				)
			}
			return nil
		})
	}

	return g.Wait()
}

// computeForEmployee runs the full pipeline for one employee: load inputs,
// aggregate in the employee's local time zone, copy contract allowances and
// persist the result.
func (s *PayslipServiceImpl) computeForEmployee(ctx context.Context, employeeID, companyID, dateFrom, dateTo string) (payslip.ComputeResponse, error) {
	started := time.Now()

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payslip.ComputeResponse{}, err
	}

	loc := s.locationFor(emp)

	from, err := time.ParseInLocation(dateLayout, dateFrom, loc)
	if err != nil {
		return payslip.ComputeResponse{}, payslip.ErrInvalidPeriod
	}
	to, err := time.ParseInLocation(dateLayout, dateTo, loc)
	if err != nil {
		return payslip.ComputeResponse{}, payslip.ErrInvalidPeriod
	}
	if to.Before(from) {
		return payslip.ComputeResponse{}, payslip.ErrInvalidPeriod
	}

	// Period bounds as instants: from local midnight up to but excluding the
	// midnight after the last day.
	periodEnd := to.AddDate(0, 0, 1)

	intervals, err := s.AttendanceRepository.ListByPeriod(ctx, employeeID, from, periodEnd, companyID)
	if err != nil {
		s.metrics.RecordComputeFailure()
		return payslip.ComputeResponse{}, err
	}

	holidays, err := s.HolidayRepository.ListByRange(ctx, from, to, companyID)
	if err != nil {
		s.metrics.RecordComputeFailure()
		return payslip.ComputeResponse{}, err
	}

	holidayDates := make(map[string]struct{})
	for _, h := range holidays {
		// Re-anchor holiday dates to the employee's zone before clipping so
		// the comparison never mixes offsets.
		local := holiday.Holiday{
			StartDate: localDate(h.StartDate, loc),
			EndDate:   localDate(h.EndDate, loc),
		}
		for _, d := range local.DatesWithin(from, to) {
			holidayDates[d.Format(dateLayout)] = struct{}{}
		}
	}

	agg, issues, err := s.calculator.Compute(PeriodInput{
		DateFrom:       from,
		DateTo:         to,
		Location:       loc,
		Schedule:       s.schedule,
		StepMinutes:    s.stepMinutes,
		LeaveBankHours: s.leaveBankHours,
		Intervals:      intervals,
		HolidayDates:   holidayDates,
	})
	if err != nil {
		s.metrics.RecordComputeFailure()
		return payslip.ComputeResponse{}, err
	}

	for _, issue := range issues {
		s.metrics.RecordIntervalFlagged(string(issue.Kind))
	}

	p := payslip.Payslip{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		DateFrom:   from,
		DateTo:     to,
		Aggregate:  agg,
	}

	c, err := s.ContractRepository.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil && !errors.Is(err, contract.ErrContractNotFound) {
		s.metrics.RecordComputeFailure()
		return payslip.ComputeResponse{}, err
	}
	if err == nil {
		p.TransportAllowance = c.TransportAllowance
		p.LanguageAllowance = c.LanguageAllowance
		p.EnvironmentAllowance = c.EnvironmentAllowance
		p.ExamPassed = c.ExamPassed
	}

	saved, err := s.PayslipRepository.Upsert(ctx, p)
	if err != nil {
		s.metrics.RecordComputeFailure()
		return payslip.ComputeResponse{}, err
	}
	saved.EmployeeName = &emp.FullName

	s.metrics.RecordPayslipComputed(time.Since(started))
	s.logger.Info("payslip computed",
		"employee_id", employeeID,
		"date_from", dateFrom,
		"date_to", dateTo,
		"attendance_rate", agg.AttendanceRate,
		"flagged_intervals", len(issues),
	)

	if issues == nil {
		issues = []payslip.Issue{}
	}

	return payslip.ComputeResponse{
		Payslip: mapPayslipToResponse(saved),
		Issues:  issues,
	}, nil
}

func (s *PayslipServiceImpl) locationFor(emp employee.Employee) *time.Location {
	loc, err := time.LoadLocation(emp.Timezone)
	if err == nil {
		return loc
	}
	loc, err = time.LoadLocation(s.defaultTimezone)
	if err == nil {
		return loc
	}
	return time.UTC
}

func localDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func mapPayslipToResponse(p payslip.Payslip) payslip.PayslipResponse {
	return payslip.PayslipResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		EmployeeName:         p.EmployeeName,
		DateFrom:             p.DateFrom.Format(dateLayout),
		DateTo:               p.DateTo.Format(dateLayout),
		Aggregate:            p.Aggregate,
		TransportAllowance:   p.TransportAllowance,
		LanguageAllowance:    p.LanguageAllowance,
		EnvironmentAllowance: p.EnvironmentAllowance,
		ExamPassed:           p.ExamPassed,
	}
}

package payslip

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/contract"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/holiday"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/shift"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/metrics"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) ListByPeriod(_ context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID != employeeID || r.CompanyID != companyID {
			continue
		}
		if r.CheckIn.Before(from) || !r.CheckIn.Before(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter, _ string) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ReplaceRange(_ context.Context, _ string, _, _ time.Time, _ string, _ []attendance.Attendance) (int, error) {
	return 0, nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByRange(_ context.Context, from, to time.Time, companyID string) ([]holiday.Holiday, error) {
	// The real query compares DATE columns, so only calendar dates matter.
	fromDate := from.Format("2006-01-02")
	toDate := to.Format("2006-01-02")

	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.CompanyID != companyID {
			continue
		}
		if h.StartDate.Format("2006-01-02") <= toDate && h.EndDate.Format("2006-01-02") >= fromDate {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

type fakeContractRepo struct {
	contracts map[string]contract.Contract
}

func (f *fakeContractRepo) GetByEmployeeID(_ context.Context, employeeID string, _ string) (contract.Contract, error) {
	c, ok := f.contracts[employeeID]
	if !ok {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	return c, nil
}

type fakePayslipRepo struct {
	upserts []payslip.Payslip
}

func (f *fakePayslipRepo) Upsert(_ context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	if p.ID == "" {
		p.ID = "payslip-1"
	}
	// Same employee and period overwrites the previous row.
	for i, existing := range f.upserts {
		if existing.EmployeeID == p.EmployeeID && existing.DateFrom.Equal(p.DateFrom) && existing.DateTo.Equal(p.DateTo) {
			p.ID = existing.ID
			f.upserts[i] = p
			return p, nil
		}
	}
	f.upserts = append(f.upserts, p)
	return p, nil
}

func (f *fakePayslipRepo) GetByID(_ context.Context, id string, _ string) (payslip.Payslip, error) {
	for _, p := range f.upserts {
		if p.ID == id {
			return p, nil
		}
	}
	return payslip.Payslip{}, payslip.ErrPayslipNotFound
}

func (f *fakePayslipRepo) List(_ context.Context, _ payslip.PayslipFilter, _ string) ([]payslip.Payslip, int64, error) {
	return f.upserts, int64(len(f.upserts)), nil
}

func newTestService(atts []attendance.Attendance, hols []holiday.Holiday, contracts map[string]contract.Contract) (*PayslipServiceImpl, *fakePayslipRepo) {
	payslipRepo := &fakePayslipRepo{}
	svc := &PayslipServiceImpl{
		PayslipRepository:    payslipRepo,
		AttendanceRepository: &fakeAttendanceRepo{records: atts},
		EmployeeRepository: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", CompanyID: "comp-1", FullName: "Tran Thi Mai", Timezone: "Asia/Ho_Chi_Minh"},
			"emp-2": {ID: "emp-2", CompanyID: "comp-1", FullName: "Le Van Hung", Timezone: "not-a-zone"},
		}},
		HolidayRepository:  &fakeHolidayRepo{holidays: hols},
		ContractRepository: &fakeContractRepo{contracts: contracts},
		calculator:         NewPeriodCalculator(),
		schedule:           shift.DefaultSchedule(),
		stepMinutes:        30,
		leaveBankHours:     8,
		defaultTimezone:    "Asia/Ho_Chi_Minh",
		metrics:            metrics.Noop{},
		logger:             slog.Default(),
	}
	return svc, payslipRepo
}

func TestComputeForEmployee_PersistsAggregateAndAllowances(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	atts := []attendance.Attendance{
		{
			ID:         "att-1",
			EmployeeID: "emp-1",
			CompanyID:  "comp-1",
			CheckIn:    time.Date(2025, 4, 1, 7, 0, 0, 0, loc),
			CheckOut:   time.Date(2025, 4, 1, 19, 0, 0, 0, loc),
		},
	}
	contracts := map[string]contract.Contract{
		"emp-1": {
			EmployeeID:         "emp-1",
			TransportAllowance: decimal.NewFromInt(500000),
			LanguageAllowance:  decimal.NewFromInt(300000),
			ExamPassed:         true,
		},
	}

	svc, repo := newTestService(atts, nil, contracts)

	res, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.Empty(t, res.Issues)
	assert.Equal(t, 208.0, res.Payslip.StandardHours)
	assert.Equal(t, 8.0, res.Payslip.WorkedHours)
	assert.Equal(t, 3.0, res.Payslip.OTWeekday)
	assert.True(t, res.Payslip.TransportAllowance.Equal(decimal.NewFromInt(500000)))
	assert.True(t, res.Payslip.ExamPassed)
	require.NotNil(t, res.Payslip.EmployeeName)
	assert.Equal(t, "Tran Thi Mai", *res.Payslip.EmployeeName)

	require.Len(t, repo.upserts, 1)
}

func TestComputeForEmployee_MissingContractLeavesAllowancesZero(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	res, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.True(t, res.Payslip.TransportAllowance.IsZero())
	assert.False(t, res.Payslip.ExamPassed)
}

func TestComputeForEmployee_RecomputeOverwrites(t *testing.T) {
	svc, repo := newTestService(nil, nil, nil)

	first, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)
	second, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.Equal(t, first.Payslip, second.Payslip)
	require.Len(t, repo.upserts, 1)
}

func TestComputeForEmployee_HolidayCreditsWorkedHours(t *testing.T) {
	hols := []holiday.Holiday{
		{
			CompanyID: "comp-1",
			Name:      "Reunification Day",
			StartDate: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	svc, _ := newTestService(nil, hols, nil)

	res, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.Equal(t, 8.0, res.Payslip.WorkedHours)
}

func TestComputeForEmployee_InvalidTimezoneFallsBack(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	res, err := svc.computeForEmployee(context.Background(), "emp-2", "comp-1", "2025-04-01", "2025-04-30")
	require.NoError(t, err)

	assert.Equal(t, 208.0, res.Payslip.StandardHours)
}

func TestComputeForEmployee_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	_, err := svc.computeForEmployee(context.Background(), "emp-404", "comp-1", "2025-04-01", "2025-04-30")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestComputeForEmployee_InvalidPeriod(t *testing.T) {
	svc, _ := newTestService(nil, nil, nil)

	_, err := svc.computeForEmployee(context.Background(), "emp-1", "comp-1", "2025-04-30", "2025-04-01")
	assert.ErrorIs(t, err, payslip.ErrInvalidPeriod)
}

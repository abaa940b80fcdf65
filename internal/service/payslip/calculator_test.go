package payslip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/shift"
)

var testZone = time.FixedZone("ICT", 7*60*60)

// April 2025: 30 days with Sundays on the 6th, 13th, 20th and 27th, so 26
// working days and 208 standard hours.
func aprilInput(intervals []attendance.Attendance, holidays ...string) PeriodInput {
	holidaySet := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		holidaySet[h] = struct{}{}
	}
	return PeriodInput{
		DateFrom:       time.Date(2025, 4, 1, 0, 0, 0, 0, testZone),
		DateTo:         time.Date(2025, 4, 30, 0, 0, 0, 0, testZone),
		Location:       testZone,
		Schedule:       shift.DefaultSchedule(),
		StepMinutes:    30,
		LeaveBankHours: 8,
		Intervals:      intervals,
		HolidayDates:   holidaySet,
	}
}

func punch(day, inHour, inMin, outDayOffset, outHour, outMin int) attendance.Attendance {
	return attendance.Attendance{
		ID:       "att-apr-" + time.Date(2025, 4, day, 0, 0, 0, 0, testZone).Format("02"),
		CheckIn:  time.Date(2025, 4, day, inHour, inMin, 0, 0, testZone),
		CheckOut: time.Date(2025, 4, day+outDayOffset, outHour, outMin, 0, 0, testZone),
	}
}

func TestPeriodCalculator_StandardHoursExcludeSundays(t *testing.T) {
	calc := NewPeriodCalculator()

	agg, issues, err := calc.Compute(aprilInput(nil))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 208.0, agg.StandardHours)
	// No punches: the whole leave bank tops up the deficit.
	assert.Equal(t, 0.0, agg.RemainingPaidLeaveHours)
	assert.InDelta(t, 8.0/208.0*100, agg.AttendanceRate, 0.01)
}

func TestPeriodCalculator_DayShiftOnWorkingDay(t *testing.T) {
	calc := NewPeriodCalculator()

	// Tuesday April 1st, full day shift 07:00 to 19:00.
	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(1, 7, 0, 0, 19, 0),
	}))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 8.0, agg.WorkedHours)
	assert.Equal(t, 3.0, agg.OTWeekday)
	assert.Equal(t, 0.0, agg.OTWeekend)
	assert.Equal(t, 0.0, agg.OTHoliday)
}

func TestPeriodCalculator_NightShiftOnWorkingDay(t *testing.T) {
	calc := NewPeriodCalculator()

	// Night shift starting Tuesday April 1st at 19:00, out 07:00 next day.
	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(1, 19, 0, 1, 7, 0),
	}))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 0.0, agg.WorkedHours)
	assert.Equal(t, 3.0, agg.NightRegular)
	assert.Equal(t, 5.0, agg.NightDeep)
	assert.Equal(t, 4.0, agg.NightOT)
	assert.Equal(t, 1, agg.NightFullDays)
}

func TestPeriodCalculator_DayShiftOnSundayGoesToWeekendOvertime(t *testing.T) {
	calc := NewPeriodCalculator()

	// April 6th is a Sunday.
	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(6, 7, 0, 0, 19, 0),
	}))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 0.0, agg.WorkedHours)
	assert.Equal(t, 0.0, agg.OTWeekday)
	assert.Equal(t, 11.0, agg.OTWeekend)
}

func TestPeriodCalculator_DayShiftOnHolidayGoesToHolidayOvertime(t *testing.T) {
	calc := NewPeriodCalculator()

	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(30, 7, 0, 0, 19, 0),
	}, "2025-04-30"))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 11.0, agg.OTHoliday)
	assert.Equal(t, 0.0, agg.OTWeekend)
	// The holiday itself counts as a fully worked standard day.
	assert.Equal(t, 8.0, agg.WorkedHours)
}

func TestPeriodCalculator_HolidayBeatsSunday(t *testing.T) {
	calc := NewPeriodCalculator()

	// April 6th is both a Sunday and a declared holiday.
	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(6, 7, 0, 0, 19, 0),
	}, "2025-04-06"))
	require.NoError(t, err)

	assert.Empty(t, issues)
	assert.Equal(t, 11.0, agg.OTHoliday)
	assert.Equal(t, 0.0, agg.OTWeekend)
}

func TestPeriodCalculator_NightShiftOnHolidayIsFlaggedAndExcluded(t *testing.T) {
	calc := NewPeriodCalculator()

	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(30, 19, 0, 1, 7, 0),
	}, "2025-04-30"))
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, payslip.IssueInconsistentShiftDay, issues[0].Kind)
	assert.Contains(t, issues[0].Message, shift.ErrInconsistentShiftDay.Error())
	assert.Equal(t, 0.0, agg.NightRegular)
	assert.Equal(t, 0.0, agg.OTHoliday)
	assert.Equal(t, 0, agg.NightFullDays)
}

func TestPeriodCalculator_NightShiftOnSundayIsFlaggedAndExcluded(t *testing.T) {
	calc := NewPeriodCalculator()

	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(6, 19, 0, 1, 7, 0),
	}))
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, payslip.IssueInconsistentShiftDay, issues[0].Kind)
	assert.Equal(t, 0.0, agg.OTWeekend)
}

func TestPeriodCalculator_MalformedIntervalIsSkipped(t *testing.T) {
	calc := NewPeriodCalculator()

	bad := attendance.Attendance{
		ID:       "att-bad",
		CheckIn:  time.Date(2025, 4, 2, 19, 0, 0, 0, testZone),
		CheckOut: time.Date(2025, 4, 2, 7, 0, 0, 0, testZone),
	}
	good := punch(1, 7, 0, 0, 19, 0)

	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{bad, good}))
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, payslip.IssueMalformedInterval, issues[0].Kind)
	assert.Contains(t, issues[0].Message, shift.ErrMalformedInterval.Error())
	assert.Equal(t, "att-bad", issues[0].AttendanceID)
	assert.Equal(t, 8.0, agg.WorkedHours)
	assert.Equal(t, 3.0, agg.OTWeekday)
}

func TestPeriodCalculator_BoundsViolationIsWarningOnly(t *testing.T) {
	calc := NewPeriodCalculator()

	// Check-in hours before the day window opens.
	agg, issues, err := calc.Compute(aprilInput([]attendance.Attendance{
		punch(1, 4, 0, 0, 19, 0),
	}))
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, payslip.IssueBoundsViolation, issues[0].Kind)
	// The interval still counts toward the totals.
	assert.Equal(t, 8.0, agg.WorkedHours)
	assert.Equal(t, 3.0, agg.OTWeekday)
}

func TestPeriodCalculator_FullMonthReachesFullAttendance(t *testing.T) {
	calc := NewPeriodCalculator()

	var intervals []attendance.Attendance
	for day := 1; day <= 30; day++ {
		d := time.Date(2025, 4, day, 0, 0, 0, 0, testZone)
		if d.Weekday() == time.Sunday {
			continue
		}
		if day >= 6 && day <= 20 {
			intervals = append(intervals, punch(day, 7, 0, 0, 19, 0))
		} else {
			intervals = append(intervals, punch(day, 19, 0, 1, 7, 0))
		}
	}

	agg, issues, err := calc.Compute(aprilInput(intervals))
	require.NoError(t, err)
	assert.Empty(t, issues)

	// 12 day shifts and 14 night shifts over 26 working days.
	assert.Equal(t, 208.0, agg.StandardHours)
	assert.Equal(t, 96.0, agg.WorkedHours)
	assert.Equal(t, 36.0, agg.OTWeekday)
	assert.Equal(t, 42.0, agg.NightRegular)
	assert.Equal(t, 70.0, agg.NightDeep)
	assert.Equal(t, 56.0, agg.NightOT)
	assert.Equal(t, 14, agg.NightFullDays)
	assert.Equal(t, 100.0, agg.AttendanceRate)
	assert.Equal(t, 8.0, agg.RemainingPaidLeaveHours)
}

func TestPeriodCalculator_AttendanceRateIsCapped(t *testing.T) {
	calc := NewPeriodCalculator()

	// A one-day period with both a day and a night shift far exceeds the
	// 8 standard hours.
	in := aprilInput([]attendance.Attendance{
		punch(1, 7, 0, 0, 19, 0),
		punch(2, 19, 0, 1, 7, 0),
	})
	in.DateFrom = time.Date(2025, 4, 1, 0, 0, 0, 0, testZone)
	in.DateTo = time.Date(2025, 4, 2, 0, 0, 0, 0, testZone)

	agg, _, err := calc.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, 16.0, agg.StandardHours)
	assert.Equal(t, 100.0, agg.AttendanceRate)
}

func TestPeriodCalculator_Deterministic(t *testing.T) {
	calc := NewPeriodCalculator()

	in := aprilInput([]attendance.Attendance{
		punch(1, 7, 10, 0, 18, 50),
		punch(2, 19, 15, 1, 6, 45),
	}, "2025-04-30")

	first, firstIssues, err := calc.Compute(in)
	require.NoError(t, err)
	second, secondIssues, err := calc.Compute(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstIssues, secondIssues)
}

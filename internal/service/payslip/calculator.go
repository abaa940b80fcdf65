package payslip

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/shift"
)

const hoursPerWorkday = 8.0

const dateLayout = "2006-01-02"

// PeriodInput carries everything the calculator needs for one employee and
// one pay period. DateFrom and DateTo are inclusive local midnights in
// Location, and HolidayDates holds the local holiday dates inside the period
// keyed by their "2006-01-02" form.
type PeriodInput struct {
	DateFrom       time.Time
	DateTo         time.Time
	Location       *time.Location
	Schedule       shift.Schedule
	StepMinutes    int
	LeaveBankHours float64
	Intervals      []attendance.Attendance
	HolidayDates   map[string]struct{}
}

// PeriodCalculator turns a period's attendance intervals into a payslip
// aggregate. It is pure: no clock, no storage, no goroutines, so the same
// input always yields the same aggregate.
type PeriodCalculator struct{}

func NewPeriodCalculator() *PeriodCalculator {
	return &PeriodCalculator{}
}

// Compute classifies, decomposes and sums every interval in the input. The
// returned issues describe intervals that were skipped or only partially
// trusted; they never abort the aggregation. An error is returned only for
// conditions that indicate a programming defect, such as a shift type the
// splitter does not recognize.
func (c *PeriodCalculator) Compute(in PeriodInput) (payslip.Aggregate, []payslip.Issue, error) {
	var agg payslip.Aggregate
	var issues []payslip.Issue

	for d := in.DateFrom; !d.After(in.DateTo); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			agg.StandardHours += hoursPerWorkday
		}
	}

	for _, att := range in.Intervals {
		checkIn := att.CheckIn.In(in.Location)
		checkOut := att.CheckOut.In(in.Location)

		if !checkOut.After(checkIn) {
			issues = append(issues, payslip.Issue{
				AttendanceID: att.ID,
				Kind:         payslip.IssueMalformedInterval,
				Message: fmt.Errorf("%w: check-out %s, check-in %s",
					shift.ErrMalformedInterval, checkOut.Format(time.RFC3339), checkIn.Format(time.RFC3339)).Error(),
			})
			continue
		}

		shiftType := in.Schedule.Classify(checkIn, checkOut)

		if err := in.Schedule.ValidateBounds(shiftType, checkIn, checkOut); err != nil {
			// Out-of-bounds intervals are still counted; the issue is a
			// warning so payroll staff can audit the raw punches.
			issues = append(issues, payslip.Issue{
				AttendanceID: att.ID,
				Kind:         payslip.IssueBoundsViolation,
				Message:      err.Error(),
			})
		}

		breakdown, err := in.Schedule.Split(shiftType, checkIn, checkOut, in.StepMinutes)
		if err != nil {
			if errors.Is(err, shift.ErrUnknownShiftType) {
				return payslip.Aggregate{}, nil, err
			}
			issues = append(issues, payslip.Issue{
				AttendanceID: att.ID,
				Kind:         payslip.IssueMalformedInterval,
				Message:      err.Error(),
			})
			continue
		}

		shiftDate := shift.DateOf(checkIn)
		_, isHoliday := in.HolidayDates[shiftDate.Format(dateLayout)]
		isSunday := shiftDate.Weekday() == time.Sunday

		switch {
		case isHoliday, isSunday:
			if shiftType == shift.TypeNight {
				issues = append(issues, payslip.Issue{
					AttendanceID: att.ID,
					Kind:         payslip.IssueInconsistentShiftDay,
					Message: fmt.Errorf("%w: shift date %s",
						shift.ErrInconsistentShiftDay, shiftDate.Format(dateLayout)).Error(),
				})
				continue
			}
			if isHoliday {
				agg.OTHoliday += breakdown.TotalHours()
			} else {
				agg.OTWeekend += breakdown.TotalHours()
			}
		default:
			agg.WorkedHours += breakdown.WorkedHours
			agg.OTWeekday += breakdown.OTWeekday
			agg.NightRegular += breakdown.NightRegular
			agg.NightDeep += breakdown.NightDeep
			agg.NightOT += breakdown.NightOT
			if shiftType == shift.TypeNight && breakdown.NightFull {
				agg.NightFullDays++
			}
		}
	}

	// Holidays inside the period count as fully worked standard days even
	// without a punch.
	agg.WorkedHours += hoursPerWorkday * float64(len(in.HolidayDates))

	total := agg.WorkedHours + agg.NightRegular + agg.NightDeep
	remaining := in.LeaveBankHours
	if deficit := agg.StandardHours - total; deficit > 0 {
		used := math.Min(in.LeaveBankHours, deficit)
		total += used
		remaining -= used
	}
	agg.RemainingPaidLeaveHours = remaining

	if agg.StandardHours > 0 {
		agg.AttendanceRate = math.Min(100, total/agg.StandardHours*100)
	}

	agg.StandardHours = round2(agg.StandardHours)
	agg.WorkedHours = round2(agg.WorkedHours)
	agg.OTWeekday = round2(agg.OTWeekday)
	agg.OTWeekend = round2(agg.OTWeekend)
	agg.OTHoliday = round2(agg.OTHoliday)
	agg.NightRegular = round2(agg.NightRegular)
	agg.NightDeep = round2(agg.NightDeep)
	agg.NightOT = round2(agg.NightOT)
	agg.AttendanceRate = round2(agg.AttendanceRate)
	agg.RemainingPaidLeaveHours = round2(agg.RemainingPaidLeaveHours)

	return agg, issues, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package shift

import (
	"fmt"
	"time"
)

// boundsTolerance is how far outside the shift window a clock event may fall
// before it is flagged for manual review.
const boundsTolerance = time.Hour

// window resolves the single-day shift window for an interval. Night windows
// anchor to the check-in date even though they end the next day.
func (s Schedule) window(typ Type, checkIn time.Time) (Window, error) {
	switch typ {
	case TypeDay:
		return s.DayWindow(DateOf(checkIn)), nil
	case TypeNight:
		return s.NightWindow(DateOf(checkIn)), nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownShiftType, typ)
	}
}

// Normalize clamps and rounds an attendance interval to its shift window
// using a step-size policy:
//
//   - a check-in at or before the window start snaps to the window start,
//     otherwise it rounds up to the next step boundary measured from the
//     window start;
//   - a check-out at or after the window end snaps to the window end,
//     otherwise it rounds down to the previous step boundary, also measured
//     from the window start.
//
// Both roundings anchor on the window start so repeated normalization is a
// no-op. The result may be degenerate (start after end); downstream splitting
// then yields zero hours.
func (s Schedule) Normalize(typ Type, checkIn, checkOut time.Time, stepMinutes int) (start, end time.Time, err error) {
	w, err := s.window(typ, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	step := time.Duration(stepMinutes) * time.Minute

	start = w.Start
	if checkIn.After(w.Start) {
		start = w.Start.Add(ceilStep(checkIn.Sub(w.Start), step))
	}

	end = w.End
	if checkOut.Before(w.End) {
		end = w.Start.Add(floorStep(checkOut.Sub(w.Start), step))
	}

	return start, end, nil
}

// ValidateBounds reports whether the raw clock events fall within the
// tolerated range around the shift window: no earlier than one hour before
// the window start, no later than one hour after the window end. The day
// window end anchors to the check-out date, the night window always anchors
// to the check-in date.
func (s Schedule) ValidateBounds(typ Type, checkIn, checkOut time.Time) error {
	var officialStart, officialEnd time.Time
	switch typ {
	case TypeDay:
		officialStart = s.DayStart.On(checkIn)
		officialEnd = s.DayEnd.On(checkOut)
	case TypeNight:
		officialStart = s.NightStart.On(checkIn)
		officialEnd = s.NightEnd.On(DateOf(checkIn).AddDate(0, 0, 1))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShiftType, typ)
	}

	if checkIn.Before(officialStart.Add(-boundsTolerance)) {
		return fmt.Errorf("%w: check-in %s earlier than %s",
			ErrBoundsViolation, checkIn.Format(time.RFC3339), officialStart.Add(-boundsTolerance).Format(time.RFC3339))
	}
	if checkOut.After(officialEnd.Add(boundsTolerance)) {
		return fmt.Errorf("%w: check-out %s later than %s",
			ErrBoundsViolation, checkOut.Format(time.RFC3339), officialEnd.Add(boundsTolerance).Format(time.RFC3339))
	}
	return nil
}

// ceilStep rounds d up to the next multiple of step.
func ceilStep(d, step time.Duration) time.Duration {
	if d <= 0 {
		return -(-d / step * step)
	}
	return (d + step - 1) / step * step
}

// floorStep rounds d down to the previous multiple of step. Negative
// durations round away from zero so the result stays a true floor.
func floorStep(d, step time.Duration) time.Duration {
	if d >= 0 {
		return d / step * step
	}
	return -((-d + step - 1) / step * step)
}

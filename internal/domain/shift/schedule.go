package shift

import "time"

// Clock is a wall-clock time of day, time-zone agnostic until anchored to a
// calendar date with On.
type Clock struct {
	Hour   int
	Minute int
}

// On anchors the clock to the calendar date of d, in d's location.
func (c Clock) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour, c.Minute, 0, 0, d.Location())
}

// Schedule holds the shift boundary times for the two-shift pattern. All
// interval math in this package is parameterized on it so alternative shift
// plans only need a different Schedule value.
type Schedule struct {
	DayStart       Clock // day shift begins
	DayStandardEnd Clock // standard day hours end, overtime begins
	DayEnd         Clock // day shift ends
	LunchStart     Clock // unpaid lunch begins
	LunchEnd       Clock // unpaid lunch ends

	NightStart     Clock // night shift begins
	NightDeepStart Clock // deep-night band begins
	NightDeepEnd   Clock // deep-night band ends, on the following day
	NightEnd       Clock // night shift ends, on the following day
}

// DefaultSchedule returns the standard two-shift plan: day 07:00-19:00 with
// standard hours until 16:00 and lunch 12:00-13:00, night 19:00-07:00(+1)
// with the deep band 22:00-03:00(+1).
func DefaultSchedule() Schedule {
	return Schedule{
		DayStart:       Clock{7, 0},
		DayStandardEnd: Clock{16, 0},
		DayEnd:         Clock{19, 0},
		LunchStart:     Clock{12, 0},
		LunchEnd:       Clock{13, 0},
		NightStart:     Clock{19, 0},
		NightDeepStart: Clock{22, 0},
		NightDeepEnd:   Clock{3, 0},
		NightEnd:       Clock{7, 0},
	}
}

// Window is one shift occurrence anchored to a specific date. For night
// shifts End falls on the following calendar date.
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow builds the day-shift window for the calendar date of d.
func (s Schedule) DayWindow(d time.Time) Window {
	return Window{Start: s.DayStart.On(d), End: s.DayEnd.On(d)}
}

// NightWindow builds the night-shift window anchored to the calendar date of
// d, ending on the following date.
func (s Schedule) NightWindow(d time.Time) Window {
	return Window{Start: s.NightStart.On(d), End: s.NightEnd.On(d.AddDate(0, 0, 1))}
}

// DateOf truncates t to midnight of its calendar date, preserving location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package shift

import (
	"math"
	"time"
)

// Breakdown is the decomposition of one attendance interval into paid-hour
// categories. Day-shift intervals fill WorkedHours and OTWeekday, night-shift
// intervals fill the Night fields; the others stay zero.
type Breakdown struct {
	WorkedHours  float64 `json:"worked_hours"`
	OTWeekday    float64 `json:"ot_weekday"`
	NightRegular float64 `json:"night_regular"`
	NightDeep    float64 `json:"night_deep"`
	NightOT      float64 `json:"night_ot"`

	// NightFull is set when the raw, un-normalized interval exceeds 8 hours.
	NightFull bool `json:"night_full"`
}

// TotalHours sums every hour category of the breakdown.
func (b Breakdown) TotalHours() float64 {
	return b.WorkedHours + b.OTWeekday + b.NightRegular + b.NightDeep + b.NightOT
}

// Split normalizes an attendance interval and decomposes it into category
// hours against the shift's fixed sub-bands:
//
//	day:   standard hours minus the lunch overlap, then weekday overtime
//	night: regular, deep-night and night-overtime bands
//
// Hour values are rounded to 2 decimals at assignment, not earlier, so
// rounding error does not compound across sub-bands. Degenerate or
// non-overlapping intervals yield an all-zero breakdown.
func (s Schedule) Split(typ Type, checkIn, checkOut time.Time, stepMinutes int) (Breakdown, error) {
	start, end, err := s.Normalize(typ, checkIn, checkOut, stepMinutes)
	if err != nil {
		return Breakdown{}, err
	}

	anchor := DateOf(checkIn)
	var b Breakdown

	switch typ {
	case TypeDay:
		standard := OverlapHours(start, end, s.DayStart.On(anchor), s.DayStandardEnd.On(anchor))
		lunch := OverlapHours(start, end, s.LunchStart.On(anchor), s.LunchEnd.On(anchor))
		b.WorkedHours = round2(math.Max(0, standard-lunch))
		b.OTWeekday = round2(OverlapHours(start, end, s.DayStandardEnd.On(anchor), s.DayEnd.On(anchor)))
	case TypeNight:
		next := anchor.AddDate(0, 0, 1)
		b.NightRegular = round2(OverlapHours(start, end, s.NightStart.On(anchor), s.NightDeepStart.On(anchor)))
		b.NightDeep = round2(OverlapHours(start, end, s.NightDeepStart.On(anchor), s.NightDeepEnd.On(next)))
		b.NightOT = round2(OverlapHours(start, end, s.NightDeepEnd.On(next), s.NightEnd.On(next)))
		b.NightFull = checkOut.Sub(checkIn).Hours() > 8
	}

	return b, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

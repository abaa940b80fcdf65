package shift

import "time"

// Classify decides whether an attendance interval is a day-shift or a
// night-shift instance. It walks every calendar date the interval touches,
// accumulates the interval's overlap with that date's day and night windows,
// and picks the side with more covered hours. Ties resolve to day shift.
func (s Schedule) Classify(checkIn, checkOut time.Time) Type {
	var dayHours, nightHours float64

	last := DateOf(checkOut)
	for d := DateOf(checkIn); !d.After(last); d = d.AddDate(0, 0, 1) {
		dw := s.DayWindow(d)
		nw := s.NightWindow(d)
		dayHours += OverlapHours(checkIn, checkOut, dw.Start, dw.End)
		nightHours += OverlapHours(checkIn, checkOut, nw.Start, nw.End)
	}

	if dayHours >= nightHours {
		return TypeDay
	}
	return TypeNight
}

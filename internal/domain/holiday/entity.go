package holiday

import "time"

// Holiday is an inclusive range of public-holiday calendar dates.
type Holiday struct {
	ID        string
	CompanyID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DatesWithin expands the range to individual dates clipped to the inclusive
// period [from, to]. All four values are local calendar dates (midnight).
func (h Holiday) DatesWithin(from, to time.Time) []time.Time {
	start := h.StartDate
	if start.Before(from) {
		start = from
	}
	end := h.EndDate
	if end.After(to) {
		end = to
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

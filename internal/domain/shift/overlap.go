package shift

import "time"

// OverlapHours returns the intersected duration of [aStart, aEnd] and
// [bStart, bEnd] in hours. Adjacent or disjoint ranges yield exactly 0.
// Symmetric in range order, never negative.
func OverlapHours(aStart, aEnd, bStart, bEnd time.Time) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}

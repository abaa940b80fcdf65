package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeedRecords_April2025(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	records := buildSeedRecords("emp-1", "comp-1", 2025, time.April, loc)

	// 30 days minus the Sundays on the 6th, 13th, 20th and 27th.
	require.Len(t, records, 26)

	dayShifts := 0
	for _, r := range records {
		assert.Equal(t, "emp-1", r.EmployeeID)
		assert.Equal(t, "comp-1", r.CompanyID)
		assert.NotEqual(t, time.Sunday, r.CheckIn.Weekday())
		assert.True(t, r.CheckOut.After(r.CheckIn))

		day := r.CheckIn.Day()
		if day >= seedDayShiftFirst && day <= seedDayShiftLast {
			dayShifts++
			assert.Equal(t, 7, r.CheckIn.Hour())
			assert.Equal(t, 19, r.CheckOut.Hour())
			assert.Equal(t, day, r.CheckOut.Day())
		} else {
			assert.Equal(t, 19, r.CheckIn.Hour())
			assert.Equal(t, 7, r.CheckOut.Hour())
			assert.Equal(t, 12*time.Hour, r.CheckOut.Sub(r.CheckIn))
		}
	}

	// Days 6 through 20 hold 15 calendar days, three of them Sundays.
	assert.Equal(t, 12, dayShifts)
}

func TestBuildSeedRecords_FebruaryLeapYear(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	records := buildSeedRecords("emp-1", "comp-1", 2024, time.February, loc)

	// February 2024 has 29 days with Sundays on the 4th, 11th, 18th and 25th.
	require.Len(t, records, 25)
	last := records[len(records)-1]
	assert.Equal(t, 29, last.CheckIn.Day())
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGroupByWeek(t *testing.T) {
	days := []time.Time{
		day(2025, time.March, 10), // Monday, week 11
		day(2025, time.March, 11), // Tuesday, week 11
		day(2025, time.March, 17), // Monday, week 12
		day(2025, time.March, 24), // Monday, week 13
	}

	groups := GroupByWeek(days)

	require.Len(t, groups, 3)

	assert.Equal(t, 2025, groups[0].Year)
	assert.Equal(t, 11, groups[0].Week)
	assert.Equal(t, []string{"Mon 10th March", "Tue 11th March"}, groups[0].Days)

	assert.Equal(t, 12, groups[1].Week)
	assert.Equal(t, []string{"Mon 17th March"}, groups[1].Days)

	assert.Equal(t, 13, groups[2].Week)
	assert.Equal(t, []string{"Mon 24th March"}, groups[2].Days)
}

func TestGroupByWeek_YearBoundary(t *testing.T) {
	days := []time.Time{
		day(2025, time.December, 31), // ISO week 1 of 2026
		day(2025, time.December, 22), // week 52 of 2025
	}

	groups := GroupByWeek(days)

	require.Len(t, groups, 2)
	assert.Equal(t, 2025, groups[0].Year)
	assert.Equal(t, 52, groups[0].Week)
	assert.Equal(t, 2026, groups[1].Year)
	assert.Equal(t, 1, groups[1].Week)
}

func TestGroupByWeek_Empty(t *testing.T) {
	assert.Empty(t, GroupByWeek(nil))
}

func TestFormatPrettyDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{name: "1st", date: day(2025, time.June, 1), expected: "Sun 1st June"},
		{name: "2nd", date: day(2025, time.June, 2), expected: "Mon 2nd June"},
		{name: "3rd", date: day(2025, time.June, 3), expected: "Tue 3rd June"},
		{name: "4th", date: day(2025, time.June, 4), expected: "Wed 4th June"},
		{name: "11th is not 11st", date: day(2025, time.June, 11), expected: "Wed 11th June"},
		{name: "12th is not 12nd", date: day(2025, time.June, 12), expected: "Thu 12th June"},
		{name: "13th is not 13rd", date: day(2025, time.June, 13), expected: "Fri 13th June"},
		{name: "21st", date: day(2025, time.June, 21), expected: "Sat 21st June"},
		{name: "22nd", date: day(2025, time.June, 22), expected: "Sun 22nd June"},
		{name: "23rd", date: day(2025, time.June, 23), expected: "Mon 23rd June"},
		{name: "31st", date: day(2025, time.March, 31), expected: "Mon 31st March"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrettyDate(tt.date))
		})
	}
}

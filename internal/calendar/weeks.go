package calendar

import (
	"fmt"
	"sort"
	"time"

	"ticket-optimiser/internal/model"
)

// GroupByWeek buckets travel days into ISO-week groups, ordered by year and
// week number. Days within a group are rendered with FormatPrettyDate.
func GroupByWeek(days []time.Time) []model.WeekGroup {
	type key struct {
		year int
		week int
	}

	grouped := make(map[key][]time.Time)
	for _, d := range days {
		y, w := d.ISOWeek()
		grouped[key{y, w}] = append(grouped[key{y, w}], d)
	}

	keys := make([]key, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].week < keys[j].week
	})

	groups := make([]model.WeekGroup, 0, len(keys))
	for _, k := range keys {
		weekDays := grouped[k]
		sort.Slice(weekDays, func(i, j int) bool { return weekDays[i].Before(weekDays[j]) })

		pretty := make([]string, 0, len(weekDays))
		for _, d := range weekDays {
			pretty = append(pretty, FormatPrettyDate(d))
		}

		groups = append(groups, model.WeekGroup{
			Year: k.year,
			Week: k.week,
			Days: pretty,
		})
	}

	return groups
}

// FormatPrettyDate renders a day as e.g. "Mon 10th March".
func FormatPrettyDate(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%s %d%s %s", t.Format("Mon"), day, ordinalSuffix(day), t.Format("January"))
}

// ordinalSuffix returns the English suffix for a day of month.
// 11th-13th are special-cased before the last-digit rules apply.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

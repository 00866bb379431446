package achievements

import (
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// HasConsecutiveDays reports whether the given dates contain a run of
// at least count consecutive calendar days. Dates are reduced to their
// calendar day, so duplicates within one day collapse.
//
// Each distinct day is tried as a streak start and the walk proceeds
// day-by-day through a membership set. Quadratic in the worst case, but
// activity histories are thousands of days at most.
func HasConsecutiveDays(dates []time.Time, count int) bool {
	if count <= 0 {
		return true
	}

	daySet := make(map[string]bool, len(dates))
	var days []time.Time
	for _, d := range dates {
		key := d.Format(dayKeyLayout)
		if daySet[key] {
			continue
		}
		daySet[key] = true
		days = append(days, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC))
	}

	// Cheap pre-filter: a streak of count needs count distinct days.
	if len(days) < count {
		return false
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, start := range days {
		streak := 1
		next := start.AddDate(0, 0, 1)
		for daySet[next.Format(dayKeyLayout)] {
			streak++
			if streak >= count {
				return true
			}
			next = next.AddDate(0, 0, 1)
		}
		if streak >= count {
			return true
		}
	}
	return false
}

package timeline

import (
	"sort"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// DaySlot is a slot annotated with its owning section, as used by the
// per-day display views.
type DaySlot struct {
	quote.Slot
	SectionID    string `json:"sectionId"`
	SectionTitle string `json:"sectionTitle"`
}

// GroupByDay buckets every slot of every section by day index and
// sorts each bucket by start time, tie-broken by creation time. Days
// without slots do not appear in the result.
func GroupByDay(sections []quote.Section) map[int][]DaySlot {
	days := make(map[int][]DaySlot)
	for _, s := range sections {
		for _, sl := range s.Slots {
			days[sl.Day] = append(days[sl.Day], DaySlot{
				Slot:         sl,
				SectionID:    s.ID,
				SectionTitle: s.Title,
			})
		}
	}
	for d, slots := range days {
		sort.SliceStable(slots, func(i, j int) bool {
			if slots[i].Start != slots[j].Start {
				return slots[i].Start < slots[j].Start
			}
			return slots[i].CreatedAt < slots[j].CreatedAt
		})
		days[d] = slots
	}
	return days
}

// Days returns the grouped day indexes in ascending order.
func Days(grouped map[int][]DaySlot) []int {
	out := make([]int, 0, len(grouped))
	for d := range grouped {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// DeriveArrival returns the displayed crew arrival time for a day: the
// explicit override verbatim when present, otherwise the first slot's
// start minus the setup offset. A subtraction that would cross
// midnight backward clamps to 00:00; the axis origin is clamped, it
// does not represent a previous-day time.
func DeriveArrival(day int, slots []DaySlot, settings map[int]quote.DaySettings) string {
	if ds, ok := settings[day]; ok && ds.ArrivalTime != "" {
		return ds.ArrivalTime
	}
	if len(slots) == 0 {
		return FormatClock(workDayStartHour*60 - setupOffsetMinutes)
	}
	m := ParseClock(slots[0].Start) - setupOffsetMinutes
	if m < 0 {
		m = 0
	}
	return FormatClock(m)
}

// LastActivityEnd returns the latest start+duration over the day's
// slots, minute-exact.
func LastActivityEnd(slots []DaySlot) string {
	var latest int
	for _, sl := range slots {
		if end := ParseClock(sl.Start) + durationMinutes(sl.Duration); end > latest {
			latest = end
		}
	}
	return FormatClock(latest)
}

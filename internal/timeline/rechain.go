package timeline

import (
	"sort"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// RechainDay recomputes the start time of every non-manual slot on the
// given day so the day's slots sit back-to-back in (start, createdAt)
// order, anchored after the day's base start. It returns a new section
// list; the input is never mutated.
//
// The base start is the explicit arrival time plus the setup offset
// when the day has one, otherwise 08:00.
//
// Manual slots are never moved, but they still advance the running end
// time for whatever follows them. A manual slot placed out of
// chronological order can therefore push later non-manual slots past
// its own nominal end; that matches the editor's historical behavior
// and is kept as-is pending a product decision.
func RechainDay(day int, sections []quote.Section, settings map[int]quote.DaySettings) []quote.Section {
	out := make([]quote.Section, len(sections))
	copy(out, sections)

	type slotRef struct {
		start     string
		createdAt int64
		section   int
		index     int
	}
	var refs []slotRef
	for si, s := range out {
		for li, sl := range s.Slots {
			if sl.Day == day {
				refs = append(refs, slotRef{sl.Start, sl.CreatedAt, si, li})
			}
		}
	}
	if len(refs) == 0 {
		return out
	}

	// Lexical comparison is exact for fixed-width HH:MM strings.
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].start != refs[j].start {
			return refs[i].start < refs[j].start
		}
		return refs[i].createdAt < refs[j].createdAt
	})

	base := workDayStartHour * 60
	if ds, ok := settings[day]; ok && ds.ArrivalTime != "" {
		base = ParseClock(ds.ArrivalTime) + setupOffsetMinutes
	}

	// Copy each touched section's slot slice once so the caller's
	// structures stay untouched.
	copied := make(map[int]bool, len(refs))
	slotAt := func(r slotRef) *quote.Slot {
		if !copied[r.section] {
			out[r.section].Slots = append([]quote.Slot(nil), out[r.section].Slots...)
			copied[r.section] = true
		}
		return &out[r.section].Slots[r.index]
	}

	next := base
	for i, r := range refs {
		sl := slotAt(r)
		if !sl.Manual {
			if i == 0 {
				sl.Start = FormatClock(base)
			} else {
				sl.Start = FormatClock(next)
			}
		}
		// The chain walk stays within the display window, so no
		// cross-midnight handling here.
		next = ParseClock(sl.Start) + durationMinutes(sl.Duration)
	}

	return out
}

package timeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// Editor mutations. Every operation takes the current section list and
// day settings, returns new values, and re-chains the affected day so
// stored start times always honor the contiguous-chain invariant for
// non-manual slots. Unknown section or slot ids are no-ops returning
// the input unchanged.

// UpdateDayArrival sets (or overwrites) a day's explicit arrival time
// and re-chains the day against the new base start.
func UpdateDayArrival(day int, arrival string, sections []quote.Section, settings map[int]quote.DaySettings) ([]quote.Section, map[int]quote.DaySettings) {
	out := make(map[int]quote.DaySettings, len(settings)+1)
	for k, v := range settings {
		out[k] = v
	}
	ds := out[day]
	ds.ArrivalTime = arrival
	out[day] = ds
	return RechainDay(day, sections, out), out
}

// AddSlotToDay appends a one-hour non-manual slot to the given section,
// starting where the day's latest activity ends (08:00 on an empty
// day), then re-chains the day.
func AddSlotToDay(day int, sectionID string, sections []quote.Section, settings map[int]quote.DaySettings) []quote.Section {
	idx := quote.FindSection(sections, sectionID)
	if idx < 0 {
		return sections
	}

	latestEnd := workDayStartHour * 60
	for _, s := range sections {
		for _, sl := range s.Slots {
			if sl.Day == day {
				if end := ParseClock(sl.Start) + durationMinutes(sl.Duration); end > latestEnd {
					latestEnd = end
				}
			}
		}
	}

	out := cloneSectionSlots(sections, idx)
	out[idx].Slots = append(out[idx].Slots, quote.Slot{
		ID:        uuid.NewString(),
		Day:       day,
		Start:     FormatClock(latestEnd),
		Duration:  1,
		CreatedAt: time.Now().UnixMilli(),
	})
	return RechainDay(day, out, settings)
}

// UpdateSlotStart sets a slot's start time. An explicit start edit pins
// the slot: it becomes manual and rechaining will no longer move it.
func UpdateSlotStart(sectionID, slotID, start string, sections []quote.Section, settings map[int]quote.DaySettings) []quote.Section {
	si, li := findSlot(sections, sectionID, slotID)
	if si < 0 {
		return sections
	}
	out := cloneSectionSlots(sections, si)
	out[si].Slots[li].Start = start
	out[si].Slots[li].Manual = true
	return RechainDay(out[si].Slots[li].Day, out, settings)
}

// UpdateSlotDuration sets a slot's duration in hours and re-chains the
// slot's day so followers shift accordingly.
func UpdateSlotDuration(sectionID, slotID string, hours float64, sections []quote.Section, settings map[int]quote.DaySettings) []quote.Section {
	si, li := findSlot(sections, sectionID, slotID)
	if si < 0 {
		return sections
	}
	out := cloneSectionSlots(sections, si)
	out[si].Slots[li].Duration = hours
	return RechainDay(out[si].Slots[li].Day, out, settings)
}

// RemoveSlot deletes a slot and re-chains the day it was on.
func RemoveSlot(sectionID, slotID string, sections []quote.Section, settings map[int]quote.DaySettings) []quote.Section {
	si, li := findSlot(sections, sectionID, slotID)
	if si < 0 {
		return sections
	}
	day := sections[si].Slots[li].Day
	out := make([]quote.Section, len(sections))
	copy(out, sections)
	kept := make([]quote.Slot, 0, len(out[si].Slots)-1)
	for _, sl := range out[si].Slots {
		if sl.ID != slotID {
			kept = append(kept, sl)
		}
	}
	out[si].Slots = kept
	return RechainDay(day, out, settings)
}

func findSlot(sections []quote.Section, sectionID, slotID string) (section, slot int) {
	si := quote.FindSection(sections, sectionID)
	if si < 0 {
		return -1, -1
	}
	for li, sl := range sections[si].Slots {
		if sl.ID == slotID {
			return si, li
		}
	}
	return -1, -1
}

// cloneSectionSlots copies the section list and the slot slice of the
// one section about to change, so callers keep their input intact.
func cloneSectionSlots(sections []quote.Section, idx int) []quote.Section {
	out := make([]quote.Section, len(sections))
	copy(out, sections)
	out[idx].Slots = append([]quote.Slot(nil), out[idx].Slots...)
	return out
}

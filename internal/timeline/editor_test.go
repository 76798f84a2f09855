package timeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

func TestUpdateDayArrival_RechainsDay(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1", quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 1, CreatedAt: 1}),
	}

	gotSections, gotSettings := UpdateDayArrival(1, "07:30", sections, nil)
	if gotSettings[1].ArrivalTime != "07:30" {
		t.Errorf("arrival = %q, want 07:30", gotSettings[1].ArrivalTime)
	}
	if start := gotSections[0].Slots[0].Start; start != "07:45" {
		t.Errorf("first slot start = %q, want 07:45", start)
	}
	if sections[0].Slots[0].Start != "08:00" {
		t.Error("input sections mutated")
	}
}

func TestUpdateDayArrival_PreservesOtherDays(t *testing.T) {
	settings := map[int]quote.DaySettings{2: {ArrivalTime: "06:00"}}
	_, got := UpdateDayArrival(1, "07:30", nil, settings)
	if got[2].ArrivalTime != "06:00" {
		t.Errorf("day 2 arrival = %q, want 06:00", got[2].ArrivalTime)
	}
	if settings[1].ArrivalTime != "" {
		t.Error("input settings mutated")
	}
}

func TestAddSlotToDay_StartsAtLatestEnd(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1", quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 2.5, CreatedAt: 1}),
	}

	got := AddSlotToDay(1, "s1", sections, nil)
	if len(got[0].Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(got[0].Slots))
	}
	added := got[0].Slots[1]
	if added.Start != "10:30" {
		t.Errorf("new slot start = %q, want 10:30", added.Start)
	}
	if added.Duration != 1 {
		t.Errorf("new slot duration = %v, want 1", added.Duration)
	}
	if added.Manual {
		t.Error("new slot must not be manual")
	}
	if added.ID == "" || added.CreatedAt == 0 {
		t.Errorf("new slot missing identity: %+v", added)
	}
}

func TestAddSlotToDay_EmptyDayStartsAtEight(t *testing.T) {
	sections := []quote.Section{sectionWithSlots("s1")}
	got := AddSlotToDay(3, "s1", sections, nil)
	if start := got[0].Slots[0].Start; start != "08:00" {
		t.Errorf("new slot start = %q, want 08:00", start)
	}
}

func TestAddSlotToDay_UnknownSectionIsNoOp(t *testing.T) {
	sections := []quote.Section{sectionWithSlots("s1")}
	got := AddSlotToDay(1, "missing", sections, nil)
	if diff := cmp.Diff(sections, got); diff != "" {
		t.Errorf("sections changed on unknown section (-in +out):\n%s", diff)
	}
}

func TestUpdateSlotStart_PinsSlot(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1",
			quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 2, CreatedAt: 1},
			quote.Slot{ID: "b", Day: 1, Start: "10:00", Duration: 1, CreatedAt: 2},
		),
	}

	got := UpdateSlotStart("s1", "b", "13:00", sections, nil)
	var pinned quote.Slot
	for _, sl := range got[0].Slots {
		if sl.ID == "b" {
			pinned = sl
		}
	}
	if !pinned.Manual {
		t.Error("editing start must set the manual flag")
	}
	if pinned.Start != "13:00" {
		t.Errorf("pinned start = %q, want 13:00", pinned.Start)
	}
}

func TestUpdateSlotDuration_ShiftsFollowers(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1",
			quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 1, CreatedAt: 1},
			quote.Slot{ID: "b", Day: 1, Start: "09:00", Duration: 1, CreatedAt: 2},
		),
	}

	got := startsOnDay(t, UpdateSlotDuration("s1", "a", 2.5, sections, nil), 1)
	want := map[string]string{"a": "08:00", "b": "10:30"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("starts mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateSlot_UnknownIDsAreNoOps(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1", quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 1, CreatedAt: 1}),
	}

	if got := UpdateSlotStart("s1", "missing", "09:00", sections, nil); !cmp.Equal(sections, got) {
		t.Error("unknown slot id changed sections")
	}
	if got := UpdateSlotDuration("missing", "a", 2, sections, nil); !cmp.Equal(sections, got) {
		t.Error("unknown section id changed sections")
	}
	if got := RemoveSlot("s1", "missing", sections, nil); !cmp.Equal(sections, got) {
		t.Error("unknown slot id removed something")
	}
}

func TestRemoveSlot_RechainsRemaining(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1",
			quote.Slot{ID: "a", Day: 1, Start: "08:00", Duration: 2, CreatedAt: 1},
			quote.Slot{ID: "b", Day: 1, Start: "10:00", Duration: 1, CreatedAt: 2},
			quote.Slot{ID: "c", Day: 1, Start: "11:00", Duration: 1, CreatedAt: 3},
		),
	}

	got := RemoveSlot("s1", "b", sections, nil)
	if len(got[0].Slots) != 2 {
		t.Fatalf("expected 2 slots after removal, got %d", len(got[0].Slots))
	}
	starts := startsOnDay(t, got, 1)
	want := map[string]string{"a": "08:00", "c": "10:00"}
	if diff := cmp.Diff(want, starts); diff != "" {
		t.Errorf("starts mismatch (-want +got):\n%s", diff)
	}
	if len(sections[0].Slots) != 3 {
		t.Error("input sections mutated")
	}
}

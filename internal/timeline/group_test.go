package timeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

func TestGroupByDay_BucketsAndSorts(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1",
			quote.Slot{ID: "late", Day: 1, Start: "14:00", Duration: 1, CreatedAt: 1},
			quote.Slot{ID: "other", Day: 2, Start: "08:00", Duration: 1, CreatedAt: 2},
		),
		sectionWithSlots("s2",
			quote.Slot{ID: "early", Day: 1, Start: "08:00", Duration: 1, CreatedAt: 3},
		),
	}

	days := GroupByDay(sections)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	var order []string
	for _, sl := range days[1] {
		order = append(order, sl.ID)
	}
	if diff := cmp.Diff([]string{"early", "late"}, order); diff != "" {
		t.Errorf("day 1 order mismatch (-want +got):\n%s", diff)
	}
	if days[1][0].SectionTitle != "Posa s2" {
		t.Errorf("section title not carried: %q", days[1][0].SectionTitle)
	}
}

func TestGroupByDay_SameStartSortedByCreation(t *testing.T) {
	sections := []quote.Section{
		sectionWithSlots("s1",
			quote.Slot{ID: "b", Day: 1, Start: "10:00", Duration: 1, CreatedAt: 2},
			quote.Slot{ID: "a", Day: 1, Start: "10:00", Duration: 1, CreatedAt: 1},
		),
	}
	days := GroupByDay(sections)
	if days[1][0].ID != "a" || days[1][1].ID != "b" {
		t.Errorf("tie-break order wrong: %s, %s", days[1][0].ID, days[1][1].ID)
	}
}

func TestGroupByDay_EmptyDayOmitted(t *testing.T) {
	days := GroupByDay([]quote.Section{{ID: "s1", Title: "Vuota"}})
	if len(days) != 0 {
		t.Errorf("expected no days, got %d", len(days))
	}
}

func TestDays_SortedAscending(t *testing.T) {
	grouped := map[int][]DaySlot{3: nil, 1: nil, 2: nil}
	if diff := cmp.Diff([]int{1, 2, 3}, Days(grouped)); diff != "" {
		t.Errorf("day order mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveArrival_FromFirstSlot(t *testing.T) {
	slots := []DaySlot{{Slot: quote.Slot{Start: "09:00", Duration: 1}}}
	if got := DeriveArrival(1, slots, nil); got != "08:45" {
		t.Errorf("DeriveArrival = %q, want 08:45", got)
	}
}

func TestDeriveArrival_ExplicitOverrideVerbatim(t *testing.T) {
	slots := []DaySlot{{Slot: quote.Slot{Start: "09:00", Duration: 1}}}
	settings := map[int]quote.DaySettings{1: {ArrivalTime: "07:10"}}
	if got := DeriveArrival(1, slots, settings); got != "07:10" {
		t.Errorf("DeriveArrival = %q, want 07:10", got)
	}
}

func TestDeriveArrival_OverrideForOtherDayIgnored(t *testing.T) {
	slots := []DaySlot{{Slot: quote.Slot{Start: "09:00", Duration: 1}}}
	settings := map[int]quote.DaySettings{2: {ArrivalTime: "07:10"}}
	if got := DeriveArrival(1, slots, settings); got != "08:45" {
		t.Errorf("DeriveArrival = %q, want 08:45", got)
	}
}

func TestDeriveArrival_ClampsAtMidnight(t *testing.T) {
	slots := []DaySlot{{Slot: quote.Slot{Start: "00:10", Duration: 1}}}
	if got := DeriveArrival(1, slots, nil); got != "00:00" {
		t.Errorf("DeriveArrival = %q, want clamped 00:00", got)
	}
}

func TestLastActivityEnd_TakesMaximum(t *testing.T) {
	slots := []DaySlot{
		{Slot: quote.Slot{Start: "08:00", Duration: 6}},
		{Slot: quote.Slot{Start: "09:00", Duration: 1}},
	}
	if got := LastActivityEnd(slots); got != "14:00" {
		t.Errorf("LastActivityEnd = %q, want 14:00", got)
	}
}

func TestLastActivityEnd_FractionalDurations(t *testing.T) {
	slots := []DaySlot{
		{Slot: quote.Slot{Start: "10:00", Duration: 0.25}},
		{Slot: quote.Slot{Start: "10:15", Duration: 0.5}},
	}
	if got := LastActivityEnd(slots); got != "10:45" {
		t.Errorf("LastActivityEnd = %q, want 10:45", got)
	}
}

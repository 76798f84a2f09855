package timeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// leftMarginPx is the fixed lead-in before the first axis hour.
const leftMarginPx = 20

// minAxisHours is the minimum span of the rendered axis.
const minAxisHours = 8

// Marker is a labeled vertical pin on the timeline.
type Marker struct {
	Time string  `json:"time"`
	X    float64 `json:"x"`
}

// SlotBox is the rendered chip for one slot. End and EndDay follow the
// work-day window: a slot that does not fit before 19:00 spills onto
// the next day.
type SlotBox struct {
	SlotID        string  `json:"slotId"`
	SectionID     string  `json:"sectionId"`
	SectionTitle  string  `json:"sectionTitle"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	EndDay        int     `json:"endDay"`
	DurationLabel string  `json:"durationLabel"`
	Manual        bool    `json:"isManual"`
	X             float64 `json:"x"`
	Width         float64 `json:"width"`
}

// DayProjection maps one day's sorted, chained slots into a horizontal
// coordinate space, plus the arrival / first-start / last-end markers
// and the setup gap between arrival and first work.
type DayProjection struct {
	Day             int       `json:"day"`
	WindowStartHour int       `json:"windowStartHour"`
	WindowEndHour   int       `json:"windowEndHour"`
	AxisHours       []string  `json:"axisHours"`
	Width           float64   `json:"width"`
	Arrival         Marker    `json:"arrival"`
	FirstStart      Marker    `json:"firstStart"`
	LastEnd         Marker    `json:"lastEnd"`
	SetupX          float64   `json:"setupX"`
	SetupWidth      float64   `json:"setupWidth"`
	Slots           []SlotBox `json:"slots"`
}

// PositionOf maps a clock string to a horizontal pixel offset relative
// to the day's window start hour. An empty time sits at the origin.
func PositionOf(clock string, windowStartHour int, hourWidth float64) float64 {
	if clock == "" {
		return 0
	}
	m := ParseClock(clock)
	return (float64(m)/60-float64(windowStartHour))*hourWidth + leftMarginPx
}

// ProjectDay computes the renderable view of one day. The slots must
// already be sorted by GroupByDay. The window starts one hour before
// arrival (clamped at hour 0) for visual lead-in and spans at least
// eight hours, or through the last activity's end hour plus one.
func ProjectDay(day int, slots []DaySlot, settings map[int]quote.DaySettings, hourWidth float64) DayProjection {
	arrival := DeriveArrival(day, slots, settings)
	windowStart := ParseClock(arrival)/60 - 1
	if windowStart < 0 {
		windowStart = 0
	}

	lastEnd := LastActivityEnd(slots)
	windowEnd := windowStart + minAxisHours
	if h := ParseClock(lastEnd)/60 + 1; h > windowEnd {
		windowEnd = h
	}

	p := DayProjection{
		Day:             day,
		WindowStartHour: windowStart,
		WindowEndHour:   windowEnd,
		Width:           float64(windowEnd-windowStart)*hourWidth + leftMarginPx,
		Arrival:         Marker{Time: arrival, X: PositionOf(arrival, windowStart, hourWidth)},
		LastEnd:         Marker{Time: lastEnd, X: PositionOf(lastEnd, windowStart, hourWidth)},
	}

	for h := windowStart; h <= windowEnd; h++ {
		p.AxisHours = append(p.AxisHours, FormatClock(h*60))
	}

	if len(slots) > 0 {
		first := slots[0].Start
		p.FirstStart = Marker{Time: first, X: PositionOf(first, windowStart, hourWidth)}
		p.SetupX = p.Arrival.X
		p.SetupWidth = p.FirstStart.X - p.Arrival.X
	}

	for _, sl := range slots {
		endDay, end := EndOfWork(day, sl.Start, sl.Duration)
		p.Slots = append(p.Slots, SlotBox{
			SlotID:        sl.ID,
			SectionID:     sl.SectionID,
			SectionTitle:  sl.SectionTitle,
			Start:         sl.Start,
			End:           end,
			EndDay:        endDay,
			DurationLabel: FormatDurationLabel(sl.Duration),
			Manual:        sl.Manual,
			X:             PositionOf(sl.Start, windowStart, hourWidth),
			Width:         sl.Duration * hourWidth,
		})
	}

	return p
}

// ScheduleTotals is the footer summary under the rendered timeline:
// billed work hours plus one setup block per scheduled day.
type ScheduleTotals struct {
	WorkHours  float64 `json:"workHours"`
	SetupHours float64 `json:"setupHours"`
	TotalHours float64 `json:"totalHours"`
}

// TotalsOf sums slot durations across all days and adds the fixed
// 15-minute setup per day.
func TotalsOf(grouped map[int][]DaySlot) ScheduleTotals {
	var work float64
	for _, slots := range grouped {
		for _, sl := range slots {
			work += sl.Duration
		}
	}
	setup := float64(len(grouped)) * float64(setupOffsetMinutes) / 60
	return ScheduleTotals{WorkHours: work, SetupHours: setup, TotalHours: work + setup}
}

// FormatDurationLabel renders an hour duration the way the timeline
// chips show it: "15m", "30m", "2h", "1,5h" (comma decimal).
func FormatDurationLabel(hours float64) string {
	switch hours {
	case 0.25:
		return "15m"
	case 0.5:
		return "30m"
	}
	if hours == math.Trunc(hours) {
		return strconv.FormatFloat(hours, 'f', 0, 64) + "h"
	}
	s := strconv.FormatFloat(hours, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1) + "h"
}

package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/timeline"
)

// Timeline mutations. Every endpoint loads the quote, applies one
// editor operation (which re-chains the affected day), persists the
// document and returns the full updated sections and day settings —
// never a partial patch. Unknown section or slot ids round-trip the
// document unchanged.

func dayParam(r *http.Request) (int, bool) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}

// scheduleState is the mutation response body.
type scheduleState struct {
	Sections    []quote.Section           `json:"sections"`
	DaySettings map[int]quote.DaySettings `json:"daySettings"`
}

func (s *Server) saveAndReply(w http.ResponseWriter, r *http.Request, q *quote.Quote) {
	q.Summary = quote.Totals(q.Sections)
	q.UpdatedAt = time.Now()
	if err := s.store.Put(r.Context(), q); err != nil {
		jsonError(w, "failed to save quote: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, scheduleState{Sections: q.Sections, DaySettings: q.DaySettings})
}

func (s *Server) handleUpdateArrival(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		jsonError(w, "day must be a positive integer", http.StatusBadRequest)
		return
	}
	var body struct {
		ArrivalTime string `json:"arrivalTime"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}

	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	q.Sections, q.DaySettings = timeline.UpdateDayArrival(day, body.ArrivalTime, q.Sections, q.DaySettings)
	s.saveAndReply(w, r, q)
}

func (s *Server) handleAddSlot(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(r)
	if !ok {
		jsonError(w, "day must be a positive integer", http.StatusBadRequest)
		return
	}
	var body struct {
		SectionID string `json:"sectionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.SectionID == "" {
		jsonError(w, "sectionId is required", http.StatusBadRequest)
		return
	}

	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	q.Sections = timeline.AddSlotToDay(day, body.SectionID, q.Sections, q.DaySettings)
	s.saveAndReply(w, r, q)
}

func (s *Server) handleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	slotID := chi.URLParam(r, "slotID")

	var body struct {
		Start    *string  `json:"start"`
		Duration *float64 `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if body.Start == nil && body.Duration == nil {
		jsonError(w, "nothing to update: provide start or duration", http.StatusBadRequest)
		return
	}
	if body.Duration != nil && *body.Duration <= 0 {
		jsonError(w, "duration must be positive", http.StatusBadRequest)
		return
	}

	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	if body.Start != nil {
		q.Sections = timeline.UpdateSlotStart(sectionID, slotID, *body.Start, q.Sections, q.DaySettings)
	}
	if body.Duration != nil {
		q.Sections = timeline.UpdateSlotDuration(sectionID, slotID, *body.Duration, q.Sections, q.DaySettings)
	}
	s.saveAndReply(w, r, q)
}

func (s *Server) handleRemoveSlot(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	slotID := chi.URLParam(r, "slotID")

	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	q.Sections = timeline.RemoveSlot(sectionID, slotID, q.Sections, q.DaySettings)
	s.saveAndReply(w, r, q)
}

// handleSchedule returns the renderable projection of the quote's
// schedule: one entry per day with pixel coordinates for chips, pins
// and the hour axis.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	hourWidth := s.cfg.DefaultHourWidth
	if v := r.URL.Query().Get("hourWidth"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			hourWidth = f
		}
	}

	grouped := timeline.GroupByDay(q.Sections)
	writeJSON(w, http.StatusOK, map[string]any{
		"days":   projectSchedule(q, hourWidth),
		"totals": timeline.TotalsOf(grouped),
	})
}

func projectSchedule(q *quote.Quote, hourWidth float64) []timeline.DayProjection {
	grouped := timeline.GroupByDay(q.Sections)
	projections := make([]timeline.DayProjection, 0, len(grouped))
	for _, day := range timeline.Days(grouped) {
		projections = append(projections, timeline.ProjectDay(day, grouped[day], q.DaySettings, hourWidth))
	}
	return projections
}

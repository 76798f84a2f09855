package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// quoteListing is the compact row the dashboard shows per quote.
type quoteListing struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"projectName"`
	ClientName  string  `json:"clientName"`
	Date        string  `json:"date"`
	StatusText  string  `json:"statusText"`
	StatusColor string  `json:"statusColor"`
	Total       float64 `json:"total"`
	ShareURL    string  `json:"shareUrl"`
}

func (s *Server) shareURL(id string) string {
	return fmt.Sprintf("%s/q/%s", s.cfg.ShareBaseURL, id)
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.store.List(r.Context())
	if err != nil {
		jsonError(w, "failed to list quotes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	listings := make([]quoteListing, 0, len(quotes))
	for _, q := range quotes {
		listings = append(listings, quoteListing{
			ID:          q.ID,
			ProjectName: q.ProjectName,
			ClientName:  q.ClientName,
			Date:        q.Date,
			StatusText:  q.StatusText,
			StatusColor: quote.NormalizeStatusColor(q.StatusColor),
			Total:       q.Summary.Total,
			ShareURL:    s.shareURL(q.ID),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"quotes": listings})
}

func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProjectName string `json:"projectName"`
		ClientName  string `json:"clientName"`
	}
	// An empty body is fine: everything is seeded by defaults.
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	q := quote.New()
	q.ProjectName = body.ProjectName
	q.ClientName = body.ClientName

	if err := s.store.Put(r.Context(), q); err != nil {
		jsonError(w, "failed to create quote: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("quote created", "quote_id", q.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"quote":    q,
		"shareUrl": s.shareURL(q.ID),
	})
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// handleSaveQuote replaces the whole document, the way the editor's
// save button works. Totals and the status color are normalized server
// side so a stale client cannot persist a wrong summary.
func (s *Server) handleSaveQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quoteID")

	var q quote.Quote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		jsonError(w, "invalid quote body: "+err.Error(), http.StatusBadRequest)
		return
	}

	q.ID = quoteID
	q.StatusColor = quote.NormalizeStatusColor(q.StatusColor)
	q.Summary = quote.Totals(q.Sections)
	q.UpdatedAt = time.Now()
	if q.DaySettings == nil {
		q.DaySettings = map[int]quote.DaySettings{}
	}

	if err := s.store.Put(r.Context(), &q); err != nil {
		jsonError(w, "failed to save quote: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "quoteID")
	if err := s.store.Delete(r.Context(), quoteID); err != nil {
		jsonError(w, "failed to delete quote: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("quote deleted", "quote_id", quoteID)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": quoteID})
}

// loadQuote fetches the quote from the path parameter, writing the
// appropriate error response when it cannot.
func (s *Server) loadQuote(w http.ResponseWriter, r *http.Request) (*quote.Quote, bool) {
	quoteID := chi.URLParam(r, "quoteID")
	q, err := s.store.Get(r.Context(), quoteID)
	if err != nil {
		jsonError(w, "failed to load quote: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if q == nil {
		jsonError(w, "quote not found", http.StatusNotFound)
		return nil, false
	}
	return q, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

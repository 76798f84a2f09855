package api

import (
	"fmt"
	"net/http"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/export"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

// shareSection mirrors a section for the public view, with the
// Markdown description rendered to HTML.
type shareSection struct {
	quote.Section
	DescriptionHTML string `json:"descriptionHtml"`
}

// handleShareView serves the read-only quote a client opens from the
// shareable link. The quote id is the only secret involved.
func (s *Server) handleShareView(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	sections := make([]shareSection, 0, len(q.Sections))
	for _, sec := range q.Sections {
		sections = append(sections, shareSection{
			Section:         sec,
			DescriptionHTML: export.RenderMarkdown(sec.Description),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":          q.ID,
		"projectName": q.ProjectName,
		"clientName":  q.ClientName,
		"date":        q.Date,
		"statusText":  q.StatusText,
		"statusColor": quote.NormalizeStatusColor(q.StatusColor),
		"company":     q.Company,
		"sections":    sections,
		"teamMembers": q.TeamMembers,
		"paymentPlan": q.PaymentPlan,
		"summary":     quote.Totals(q.Sections),
		"notesHtml":   export.RenderMarkdown(q.Notes),
		"schedule":    projectSchedule(q, s.cfg.DefaultHourWidth),
	})
}

// handleExportDocx streams the quote as a Word document.
func (s *Server) handleExportDocx(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "preventivo-"+q.ID+".docx"))
	if err := export.WriteDocx(w, q); err != nil {
		// Headers are already out; all we can do is log.
		s.log.Error("docx export failed", "quote_id", q.ID, "error", err)
	}
}

package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fumiama/go-docx"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/timeline"
)

const (
	docxTitleSize   = "36"
	docxHeadingSize = "28"
	docxMutedColor  = "666666"
)

// WriteDocx renders the quote as a Word document: header, priced
// sections, the per-day schedule, the payment plan and the notes.
func WriteDocx(w io.Writer, q *quote.Quote) error {
	doc := buildDocx(q)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func buildDocx(q *quote.Quote) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Preventivo — " + q.ProjectName).Size(docxTitleSize)
	doc.AddParagraph().AddText(q.ClientName + " · " + q.Date).Color(docxMutedColor)
	if q.Company.Name != "" {
		doc.AddParagraph().AddText(q.Company.Name + " — " + q.Company.Address).Color(docxMutedColor)
		if q.Company.VATID != "" {
			doc.AddParagraph().AddText("P.IVA " + q.Company.VATID).Color(docxMutedColor)
		}
	}

	for _, s := range q.Sections {
		doc.AddParagraph().AddText(s.Title).Size(docxHeadingSize)
		if s.Description != "" {
			doc.AddParagraph().AddText(PlainText(s.Description))
		}
		for _, it := range s.Items {
			doc.AddParagraph().AddText(fmt.Sprintf("%s — %s %s × %s = %s",
				it.Description, trimFloat(it.Quantity), it.Unit, Euro(it.Price), Euro(it.Price*it.Quantity)))
		}
	}

	summary := quote.Totals(q.Sections)
	doc.AddParagraph().AddText("Totale: " + Euro(summary.Total)).Size(docxHeadingSize)

	writeSchedule(doc, q)
	writePaymentPlan(doc, q, summary.Total)

	if q.Notes != "" {
		doc.AddParagraph().AddText("Note").Size(docxHeadingSize)
		doc.AddParagraph().AddText(PlainText(q.Notes))
	}

	return doc
}

func writeSchedule(doc *docx.Docx, q *quote.Quote) {
	grouped := timeline.GroupByDay(q.Sections)
	days := timeline.Days(grouped)
	if len(days) == 0 {
		return
	}

	doc.AddParagraph().AddText("Cronoprogramma").Size(docxHeadingSize)
	for _, day := range days {
		slots := grouped[day]
		arrival := timeline.DeriveArrival(day, slots, q.DaySettings)
		doc.AddParagraph().AddText(fmt.Sprintf("Giorno %d — arrivo %s", day, arrival))
		for _, sl := range slots {
			doc.AddParagraph().AddText(fmt.Sprintf("  %s  %s (%s)",
				sl.Start, sl.SectionTitle, timeline.FormatDurationLabel(sl.Duration)))
		}
		doc.AddParagraph().AddText("  Fine lavori: " + timeline.LastActivityEnd(slots)).Color(docxMutedColor)
	}
}

func writePaymentPlan(doc *docx.Docx, q *quote.Quote, total float64) {
	if len(q.PaymentPlan) == 0 {
		return
	}
	doc.AddParagraph().AddText("Piano pagamenti").Size(docxHeadingSize)
	for _, inst := range q.PaymentPlan {
		line := fmt.Sprintf("%s — %s%% (%s)", inst.Label, trimFloat(inst.Percent), Euro(total*inst.Percent/100))
		if inst.Note != "" {
			line += " · " + inst.Note
		}
		doc.AddParagraph().AddText(line)
	}
}

// Euro formats an amount the way the quote UI shows it.
func Euro(v float64) string {
	return fmt.Sprintf("€ %.2f", v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

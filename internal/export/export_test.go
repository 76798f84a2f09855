package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

func TestRenderMarkdown_BasicFormatting(t *testing.T) {
	got := RenderMarkdown("Validità **30 giorni**.")
	if !strings.Contains(got, "<strong>30 giorni</strong>") {
		t.Errorf("expected bold markup, got %q", got)
	}
}

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	if got := RenderMarkdown("   "); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags("<p>Prima riga</p><ul><li>uno</li><li>due</li></ul>")
	want := "Prima riga\nuno\ndue"
	if got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestStripTags_PlainTextPassesThrough(t *testing.T) {
	if got := StripTags("solo testo"); got != "solo testo" {
		t.Errorf("StripTags = %q, want unchanged text", got)
	}
}

func TestPlainText_FlattensMarkdown(t *testing.T) {
	got := PlainText("# Titolo\n\nCorpo con *enfasi*.")
	if strings.Contains(got, "<") || strings.Contains(got, "#") || strings.Contains(got, "*") {
		t.Errorf("markup leaked into plain text: %q", got)
	}
	if !strings.Contains(got, "Titolo") || !strings.Contains(got, "Corpo con enfasi.") {
		t.Errorf("content lost: %q", got)
	}
}

func TestEuro(t *testing.T) {
	if got := Euro(1234.5); got != "€ 1234.50" {
		t.Errorf("Euro = %q", got)
	}
}

func TestWriteDocx_ProducesDocument(t *testing.T) {
	q := quote.New()
	q.ProjectName = "Ristrutturazione Milano"
	q.ClientName = "Mario Rossi"
	q.Notes = "Validità **30 giorni**."
	q.Sections = []quote.Section{
		{
			ID:    "s1",
			Title: "Posa parquet",
			Items: []quote.LineItem{
				{Description: "Parquet rovere", Quantity: 50, Unit: "mq", Price: 85},
			},
			Slots: []quote.Slot{
				{ID: "sl1", Day: 1, Start: "08:00", Duration: 2, CreatedAt: 1},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteDocx(&buf, q); err != nil {
		t.Fatalf("WriteDocx failed: %v", err)
	}
	// DOCX is a zip container; check the magic bytes rather than
	// unpacking the archive.
	if buf.Len() < 4 || buf.Bytes()[0] != 'P' || buf.Bytes()[1] != 'K' {
		t.Errorf("output does not look like a docx archive (%d bytes)", buf.Len())
	}
}

package quote

import (
	"time"

	"github.com/google/uuid"
)

// statusColors is the palette the editor offers for the status pill.
var statusColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"yellow": true,
	"gray":   true,
	"purple": true,
	"red":    true,
}

// NormalizeStatusColor maps unknown colors to the default pill color.
func NormalizeStatusColor(color string) string {
	if statusColors[color] {
		return color
	}
	return "blue"
}

// DefaultTeam returns the crew presented on a freshly created quote.
func DefaultTeam() []TeamMember {
	return []TeamMember{
		{
			ID:    "default-1",
			Name:  "Andrea",
			Role:  "Capo Parquettista",
			Quirk: "Ha lavorato 9 anni in Germania del Nord in edilizia e posa pavimenti.",
		},
		{
			ID:    "default-2",
			Name:  "Thomas",
			Role:  "Commerciale",
			Quirk: "Il suo parquet preferito è la spina francese colore rovere naturale.",
		},
	}
}

// DefaultPaymentPlan is the standard acconto / avanzamento / saldo split.
func DefaultPaymentPlan() []Installment {
	return []Installment{
		{Label: "Acconto alla conferma", Percent: 30},
		{Label: "Stato avanzamento lavori", Percent: 60},
		{Label: "Saldo a fine lavori", Percent: 10},
	}
}

// New returns an empty quote seeded with defaults. The id doubles as
// the shareable-link token, so it must be unguessable.
func New() *Quote {
	return &Quote{
		ID:          uuid.NewString(),
		Date:        time.Now().Format("2006-01-02"),
		StatusText:  "In corso",
		StatusColor: "blue",
		Sections:    []Section{},
		TeamMembers: DefaultTeam(),
		DaySettings: map[int]DaySettings{},
		PaymentPlan: DefaultPaymentPlan(),
		UpdatedAt:   time.Now(),
	}
}

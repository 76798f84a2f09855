package quote

import "time"

// Slot is one day-anchored occurrence of a section's work. Start is a
// 24-hour "HH:MM" wall-clock string; Duration is in hours (fractions
// allowed). A manual slot keeps its start across rechaining.
type Slot struct {
	ID        string  `json:"id" firestore:"id"`
	Day       int     `json:"day" firestore:"day"`
	Start     string  `json:"start" firestore:"start"`
	Duration  float64 `json:"duration" firestore:"duration"`
	Manual    bool    `json:"isManual" firestore:"isManual"`
	CreatedAt int64   `json:"createdAt" firestore:"createdAt"`
}

// LineItem is a priced row inside a section.
type LineItem struct {
	Description string  `json:"description" firestore:"description"`
	Quantity    float64 `json:"quantity" firestore:"quantity"`
	Unit        string  `json:"unit" firestore:"unit"`
	Price       float64 `json:"price" firestore:"price"`
}

// Photo is a before/after image attached to a section. URL may be a
// plain link or a data URL produced by the client.
type Photo struct {
	Type    string `json:"type" firestore:"type"`
	URL     string `json:"url" firestore:"url"`
	Caption string `json:"caption" firestore:"caption"`
}

// Section is one billable phase of work. It owns its line items and
// schedule slots; slot order inside the slice carries no meaning, the
// display order is always recomputed from Start.
type Section struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description" firestore:"description"`
	Photos      []Photo    `json:"photos" firestore:"photos"`
	Items       []LineItem `json:"items" firestore:"items"`
	Slots       []Slot     `json:"slots" firestore:"slots"`
}

// DaySettings holds per-day overrides. An empty ArrivalTime means the
// arrival is derived from the day's first slot.
type DaySettings struct {
	ArrivalTime string `json:"arrivalTime,omitempty" firestore:"arrivalTime,omitempty"`
}

// TeamMember is shown on the quote's team presentation block.
type TeamMember struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Role     string `json:"role" firestore:"role"`
	PhotoURL string `json:"photoUrl" firestore:"photoUrl"`
	Quirk    string `json:"quirk" firestore:"quirk"`
}

// Installment is one row of the payment plan.
type Installment struct {
	Label   string  `json:"label" firestore:"label"`
	Percent float64 `json:"percent" firestore:"percent"`
	Note    string  `json:"note,omitempty" firestore:"note,omitempty"`
}

// Company is the issuing business shown on the quote header.
type Company struct {
	Name    string `json:"name" firestore:"name"`
	Address string `json:"address" firestore:"address"`
	VATID   string `json:"vatId" firestore:"vatId"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone" firestore:"phone"`
}

// Summary carries the computed totals. The business is under the
// forfettario regime, so the total coincides with the subtotal.
type Summary struct {
	Subtotal float64 `json:"subtotal" firestore:"subtotal"`
	Total    float64 `json:"total" firestore:"total"`
}

// Quote is the full document persisted per preventivo. It exclusively
// owns its sections; DaySettings applies across sections sharing the
// same day index and is therefore a sibling map, not owned by any
// section. Day keys are integers everywhere in memory; the store
// normalizes them to strings at the persistence boundary.
type Quote struct {
	ID          string              `json:"id" firestore:"id"`
	ProjectName string              `json:"projectName" firestore:"projectName"`
	ClientName  string              `json:"clientName" firestore:"clientName"`
	Date        string              `json:"date" firestore:"date"`
	StatusText  string              `json:"statusText" firestore:"statusText"`
	StatusColor string              `json:"statusColor" firestore:"statusColor"`
	Notes       string              `json:"notes" firestore:"notes"`
	Company     Company             `json:"company" firestore:"company"`
	Sections    []Section           `json:"sections" firestore:"sections"`
	TeamMembers []TeamMember        `json:"teamMembers" firestore:"teamMembers"`
	DaySettings map[int]DaySettings `json:"daySettings" firestore:"-"`
	PaymentPlan []Installment       `json:"paymentPlan" firestore:"paymentPlan"`
	Summary     Summary             `json:"summary" firestore:"summary"`
	UpdatedAt   time.Time           `json:"updatedAt" firestore:"updatedAt"`
}

// Totals recomputes the quote summary from its line items.
func Totals(sections []Section) Summary {
	var subtotal float64
	for _, s := range sections {
		for _, it := range s.Items {
			subtotal += it.Price * it.Quantity
		}
	}
	return Summary{Subtotal: subtotal, Total: subtotal}
}

// FindSection returns the index of the section with the given id, or -1.
func FindSection(sections []Section, id string) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

package models

import "time"

// Frequency classifies how often a recurring expense repeats.
type Frequency string

const (
	Weekly    Frequency = "weekly"
	Biweekly  Frequency = "biweekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// RecurringPattern is an inferred repeating expense series. Patterns are
// computed fresh on every analysis; persisting one as a standing bill is the
// caller's decision, typically gated on Confidence.
type RecurringPattern struct {
	// Description is taken from the most recent occurrence.
	Description string `json:"description"`

	// Amount is the most recent occurrence's amount.
	Amount float64 `json:"amount"`

	// Category is the most recent occurrence's category, or DefaultCategory.
	Category string `json:"category"`

	// Frequency is the inferred repeat interval.
	Frequency Frequency `json:"frequency"`

	// NextDueDate is the latest occurrence advanced by one period.
	NextDueDate time.Time `json:"nextDueDate"`

	// Confidence is a 0-100 regularity score: 100 for perfectly even
	// intervals, approaching 0 as the intervals scatter.
	Confidence int `json:"confidence"`

	// Occurrences is how many expenses the series contains (always >= 2).
	Occurrences int `json:"occurrences"`
}

// RecurringBill is the caller-side view of a pattern persisted as a standing
// bill. Storage of bills lives outside this module; the type exists so the
// detector's match policy can compare fresh patterns against stored bills,
// and so reminder dispatch can re-derive the next due date.
type RecurringBill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// GroupID is the group the bill belongs to.
	GroupID string `json:"groupId"`

	// Name is the cleaned display name (see recurring.BillName).
	Name string `json:"name"`

	// Description is the raw description the bill was created from.
	Description string `json:"description"`

	// Amount is the expected amount per occurrence.
	Amount float64 `json:"amount"`

	// Category is the bill's expense category.
	Category string `json:"category"`

	// Frequency is how often the bill recurs.
	Frequency Frequency `json:"frequency"`

	// NextDueDate is when the bill next falls due. After a reminder is
	// dispatched it advances by one period (see recurring.NextDueDate).
	NextDueDate time.Time `json:"nextDueDate"`
}

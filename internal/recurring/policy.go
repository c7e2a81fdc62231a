package recurring

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/ejifeanyi/obito/internal/models"
)

// MinPersistConfidence is the confidence a detected pattern needs before it
// is worth tracking as a bill. Anything below stays a suggestion.
const MinPersistConfidence = 70

// Qualifies reports whether a pattern is confident enough to track.
func Qualifies(p models.RecurringPattern) bool {
	return p.Confidence >= MinPersistConfidence
}

// SplitByConfidence partitions patterns into those worth tracking as bills
// and those only worth suggesting, preserving order. Both slices are non-nil
// so callers can hand them straight to JSON encoding.
func SplitByConfidence(patterns []models.RecurringPattern) (eligible, suggestions []models.RecurringPattern) {
	eligible = make([]models.RecurringPattern, 0, len(patterns))
	suggestions = make([]models.RecurringPattern, 0)
	for _, p := range patterns {
		if Qualifies(p) {
			eligible = append(eligible, p)
		} else {
			suggestions = append(suggestions, p)
		}
	}
	return eligible, suggestions
}

// Matches reports whether a detected pattern describes the same charge as an
// already-tracked bill, so repeated detection runs do not duplicate bills.
// The category must match exactly, the amount must fall within 10% of the
// bill's, and one description must contain the other ignoring case.
func Matches(p models.RecurringPattern, bill models.RecurringBill) bool {
	if p.Category != bill.Category {
		return false
	}
	if math.Abs(p.Amount-bill.Amount) > bill.Amount*0.10 {
		return false
	}
	pd := strings.ToLower(p.Description)
	bd := strings.ToLower(bill.Description)
	return strings.Contains(pd, bd) || strings.Contains(bd, pd)
}

// NewBill promotes a detected pattern into a tracked bill for the group,
// deriving the display name from the pattern's description.
func NewBill(groupID string, p models.RecurringPattern) *models.RecurringBill {
	return &models.RecurringBill{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		Name:        BillName(p.Description),
		Description: p.Description,
		Amount:      p.Amount,
		Category:    p.Category,
		Frequency:   p.Frequency,
		NextDueDate: p.NextDueDate,
	}
}

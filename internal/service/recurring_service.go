package service

import (
	"log/slog"
	"time"

	"github.com/ejifeanyi/obito/internal/metrics"
	"github.com/ejifeanyi/obito/internal/models"
	"github.com/ejifeanyi/obito/internal/recurring"
)

// BillReport is the detection result handed to API consumers: every pattern
// found, plus the same patterns split by tracking eligibility.
type BillReport struct {
	GroupID     string                    `json:"groupId"`
	Patterns    []models.RecurringPattern `json:"patterns"`
	Eligible    []models.RecurringPattern `json:"eligible"`
	Suggestions []models.RecurringPattern `json:"suggestions"`
}

// RecurringService orchestrates recurring-expense detection.
type RecurringService struct{}

// NewRecurringService creates a new RecurringService.
func NewRecurringService() *RecurringService {
	return &RecurringService{}
}

// DetectBills finds recurring charges in the group's expenses. Slices in the
// report are never nil, so it JSON-encodes with empty arrays rather than
// nulls.
func (s *RecurringService) DetectBills(groupID string, expenses []models.Expense) *BillReport {
	start := time.Now()

	patterns := recurring.Detect(expenses)
	if patterns == nil {
		patterns = []models.RecurringPattern{}
	}
	eligible, suggestions := recurring.SplitByConfidence(patterns)

	duration := time.Since(start)
	metrics.ObserveDetection(duration, len(expenses), len(patterns))
	slog.Info("Recurring detection completed",
		"group_id", groupID,
		"expenses", len(expenses),
		"patterns", len(patterns),
		"eligible", len(eligible),
		"duration_ms", duration.Milliseconds(),
	)

	return &BillReport{
		GroupID:     groupID,
		Patterns:    patterns,
		Eligible:    eligible,
		Suggestions: suggestions,
	}
}

// UntrackedBills promotes eligible patterns into new bills for the group,
// skipping patterns an already-tracked bill covers.
func (s *RecurringService) UntrackedBills(groupID string, patterns []models.RecurringPattern, tracked []models.RecurringBill) []*models.RecurringBill {
	bills := make([]*models.RecurringBill, 0)
	for _, p := range patterns {
		if !recurring.Qualifies(p) {
			continue
		}
		covered := false
		for _, b := range tracked {
			if recurring.Matches(p, b) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		bills = append(bills, recurring.NewBill(groupID, p))
	}

	if len(bills) > 0 {
		slog.Info("New recurring bills identified",
			"group_id", groupID,
			"count", len(bills),
		)
	}
	return bills
}

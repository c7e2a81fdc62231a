package service

import (
	"log/slog"
	"time"

	"github.com/ejifeanyi/obito/internal/balance"
	"github.com/ejifeanyi/obito/internal/metrics"
	"github.com/ejifeanyi/obito/internal/models"
)

// Summary is the balance overview handed to API consumers: every member's
// position plus the transfers that settle the group.
type Summary struct {
	Balances    []models.Balance    `json:"balances"`
	Settlements []models.Settlement `json:"settlements"`
}

// BalanceService orchestrates balance computation for request handlers.
type BalanceService struct{}

// NewBalanceService creates a new BalanceService.
func NewBalanceService() *BalanceService {
	return &BalanceService{}
}

// GroupSummary computes the group's balances, ranked most-owed first, and
// the settlement plan that clears them. Slices in the summary are never nil,
// so it JSON-encodes with empty arrays rather than nulls.
func (s *BalanceService) GroupSummary(group models.Group, expenses []models.Expense) *Summary {
	start := time.Now()

	ranked := balance.Rank(group.Members, balance.Compute(group.Members, expenses))
	settlements := balance.Settle(ranked)
	if settlements == nil {
		settlements = []models.Settlement{}
	}

	duration := time.Since(start)
	metrics.ObserveBalanceRun(duration, len(group.Members), len(expenses), len(settlements))
	slog.Info("Balance summary computed",
		"group_id", group.ID,
		"members", len(group.Members),
		"expenses", len(expenses),
		"transfers", len(settlements),
		"duration_ms", duration.Milliseconds(),
	)

	return &Summary{Balances: ranked, Settlements: settlements}
}

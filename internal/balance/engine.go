// Package balance computes member balances for a group's expense history and
// generates the transfers that settle them.
package balance

import (
	"math"
	"sort"

	"github.com/ejifeanyi/obito/internal/models"
)

// Compute aggregates every member's position across the given expenses.
//
// Algorithm:
//   - For each expense: the payer's Paid grows by the full amount, and each
//     share grows its member's Owed by the share amount.
//   - Expenses whose payer is not in the member set, and shares whose member
//     is not, are skipped silently; they cannot occur under validated input.
//   - Net = Paid - Owed, rounded to two decimals at the end only so rounding
//     never compounds during accumulation.
//
// The result maps member ID to balance and covers every member, including
// those with no expense activity.
func Compute(members []models.Member, expenses []models.Expense) map[string]*models.Balance {
	balances := make(map[string]*models.Balance, len(members))
	for _, m := range members {
		balances[m.ID] = &models.Balance{MemberID: m.ID}
	}

	for _, exp := range expenses {
		if b, ok := balances[exp.PayerID]; ok {
			b.Paid += exp.Amount
		}
		for _, share := range exp.Shares {
			if b, ok := balances[share.MemberID]; ok {
				b.Owed += share.Amount
			}
		}
	}

	for _, b := range balances {
		b.Net = round2(b.Paid - b.Owed)
	}
	return balances
}

// Rank flattens computed balances into a slice sorted by net descending, so
// the most-owed member comes first. Ties keep the member-list order, which
// keeps the output reproducible for identical inputs.
func Rank(members []models.Member, balances map[string]*models.Balance) []models.Balance {
	ranked := make([]models.Balance, 0, len(balances))
	for _, m := range members {
		if b, ok := balances[m.ID]; ok {
			ranked = append(ranked, *b)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Net > ranked[j].Net
	})
	return ranked
}

// round2 rounds to two decimal places. Halves round up (toward positive
// infinity), so -0.005 becomes 0.00 rather than -0.01.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

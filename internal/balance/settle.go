package balance

import (
	"math"
	"sort"

	"github.com/ejifeanyi/obito/internal/models"
)

// settledThreshold is the residual below which a balance counts as settled.
// Two-decimal arithmetic leaves float noise smaller than a cent; comparing
// against zero directly would spin on it.
const settledThreshold = 0.01

// Settle generates the transfers that bring every balance to (near) zero.
//
// Algorithm:
//  1. Split balances into debtors (net < -0.01) and creditors (net > 0.01);
//     anyone inside the threshold is already settled.
//  2. Sort debtors ascending by net (largest debt first) and creditors
//     descending (largest credit first). Equal nets keep input order.
//  3. Walk both lists with two cursors, transferring min(debt, credit)
//     each step, and advance whichever side is exhausted (both, when the
//     amounts match exactly).
//
// Each emitted settlement amount is rounded to two decimals; the running
// balances are adjusted with the unrounded amount so the pairing logic is
// not disturbed by rounding. Transfers of a cent or less are suppressed.
//
// The input slice is not modified. If total debt and total credit differ
// (unbalanced input), the surplus side simply retains a residual.
func Settle(balances []models.Balance) []models.Settlement {
	var debtors, creditors []models.Balance
	for _, b := range balances {
		switch {
		case b.Net < -settledThreshold:
			debtors = append(debtors, b)
		case b.Net > settledThreshold:
			creditors = append(creditors, b)
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Net < debtors[j].Net
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Net > creditors[j].Net
	})

	var settlements []models.Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := math.Min(-debtor.Net, creditor.Net)
		if amount > settledThreshold {
			settlements = append(settlements, models.Settlement{
				From:   debtor.MemberID,
				To:     creditor.MemberID,
				Amount: round2(amount),
			})
		}

		debtor.Net += amount
		creditor.Net -= amount

		if math.Abs(debtor.Net) < settledThreshold {
			i++
		}
		if math.Abs(creditor.Net) < settledThreshold {
			j++
		}
	}
	return settlements
}

// Apply replays settlements against a set of balances and returns the
// resulting nets. Paying a debt raises the payer's net; receiving lowers
// the recipient's. Balances referenced by no settlement pass through
// unchanged, and settlements naming unknown members are ignored.
func Apply(balances []models.Balance, settlements []models.Settlement) []models.Balance {
	result := make([]models.Balance, len(balances))
	copy(result, balances)

	index := make(map[string]*models.Balance, len(result))
	for i := range result {
		index[result[i].MemberID] = &result[i]
	}

	for _, s := range settlements {
		if from, ok := index[s.From]; ok {
			from.Net = round2(from.Net + s.Amount)
		}
		if to, ok := index[s.To]; ok {
			to.Net = round2(to.Net - s.Amount)
		}
	}
	return result
}

package models

// Balance is a member's net position within a group.
type Balance struct {
	// MemberID identifies the member this balance belongs to.
	MemberID string `json:"memberId"`

	// Paid is the sum of expense amounts this member fronted.
	Paid float64 `json:"paid"`

	// Owed is the sum of this member's share amounts across all expenses.
	Owed float64 `json:"owed"`

	// Net is Paid minus Owed, rounded to two decimals. Positive means the
	// group owes this member; negative means the member owes the group.
	Net float64 `json:"net"`
}

// Settlement is a directed debt-clearing transfer: From owes To the amount.
// Applying a settlement credits From's balance and debits To's, so a valid
// settlement list drives every balance in the group to (near) zero.
type Settlement struct {
	// From is the member paying (debtor settling up).
	From string `json:"from"`

	// To is the member receiving (creditor being paid).
	To string `json:"to"`

	// Amount is the transfer amount, rounded to two decimals.
	Amount float64 `json:"amount"`
}

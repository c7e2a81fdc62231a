package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "Uncategorized"

// AmountTolerance is the absolute drift, in currency units, below which two
// amounts count as equal. Currency arithmetic runs on float64, so sums drift
// by fractions of a cent; anything inside this tolerance is noise.
const AmountTolerance = 0.01

// ErrInvalidInput marks malformed expense or share data. It is returned
// (wrapped) by the validation layer so callers can reject bad records before
// they reach the engines.
var ErrInvalidInput = errors.New("invalid input")

// Share is a single member's monetary portion of a group expense.
type Share struct {
	// MemberID identifies the member who owes this portion.
	MemberID string `json:"memberId"`

	// Amount is this member's portion, a positive currency magnitude.
	Amount float64 `json:"amount"`
}

// Validate checks that the share names a member and carries a positive amount.
func (s Share) Validate() error {
	if s.MemberID == "" {
		return fmt.Errorf("%w: share has no member id", ErrInvalidInput)
	}
	if s.Amount <= 0 {
		return fmt.Errorf("%w: share amount %.2f must be positive", ErrInvalidInput, s.Amount)
	}
	return nil
}

// Expense is one shared expense: a payer fronted the full amount, and each
// share records what a member owes toward it.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"groupId"`

	// PayerID is the member who fronted the money.
	PayerID string `json:"payerId"`

	// Amount is the full expense amount, a positive currency magnitude.
	Amount float64 `json:"amount"`

	// Description is free text ("Netflix Monthly Subscription", "Groceries").
	Description string `json:"description"`

	// Category is an optional label; empty means DefaultCategory.
	Category string `json:"category"`

	// CreatedAt is when the expense was recorded.
	CreatedAt time.Time `json:"createdAt"`

	// Shares is the ordered split of Amount across members. Share amounts
	// must sum to Amount within AmountTolerance.
	Shares []Share `json:"shares"`
}

// Validate checks the expense invariants the engines depend on: a payer, a
// positive amount, and shares that sum to the amount within AmountTolerance.
// The engines themselves never re-validate; run this where records are built.
func (e *Expense) Validate() error {
	if e.PayerID == "" {
		return fmt.Errorf("%w: expense has no payer id", ErrInvalidInput)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: expense amount %.2f must be positive", ErrInvalidInput, e.Amount)
	}
	if len(e.Shares) == 0 {
		return fmt.Errorf("%w: expense has no shares", ErrInvalidInput)
	}
	var sum float64
	for _, s := range e.Shares {
		if err := s.Validate(); err != nil {
			return err
		}
		sum += s.Amount
	}
	if math.Abs(sum-e.Amount) > AmountTolerance {
		return fmt.Errorf("%w: shares sum to %.2f, expense amount is %.2f", ErrInvalidInput, sum, e.Amount)
	}
	return nil
}

// NewExpense validates and builds an expense, assigning a generated ID and
// creation timestamp and defaulting an empty category to DefaultCategory.
func NewExpense(groupID, payerID string, amount float64, description, category string, shares []Share) (*Expense, error) {
	if category == "" {
		category = DefaultCategory
	}
	e := &Expense{
		ID:          uuid.NewString(),
		GroupID:     groupID,
		PayerID:     payerID,
		Amount:      amount,
		Description: description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
		Shares:      shares,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

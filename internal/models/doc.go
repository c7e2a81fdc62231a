// Package models defines the domain records the obito engines operate on.
//
// # Input records
//
//   - Member / Group: the people sharing expenses. The engines treat member
//     identity as opaque; only the ID matters for aggregation.
//   - Expense / Share: one fronted expense and each member's portion of it.
//
// # Derived results
//
//   - Balance: a member's paid/owed/net position, computed per group.
//   - Settlement: a directed transfer that clears debt between two members.
//   - RecurringPattern: an inferred repeating expense series with a
//     predicted frequency, next due date, and 0-100 confidence score.
//   - RecurringBill: the caller-side view of a pattern that was persisted as
//     a standing bill.
//
// # Validation contract
//
// The engines assume well-formed input and do not re-validate it. The layer
// constructing Expense and Share records owns validation: call Validate (or
// build records through NewExpense) before handing them to the engines.
// Violations surface as errors wrapping ErrInvalidInput.
package models

package project

import "time"

// Project carries the serial counters the ledger derives human-readable
// numbering from. Counters only ever move forward.
type Project struct {
	ID             string
	Name           string
	IncomeCounter  int64
	InvoiceCounter int64
	ExpenseCounter int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CounterDeltas - how far to advance each serial counter.
type CounterDeltas struct {
	Income  int64
	Invoice int64
	Expense int64
}

package expense

import (
	"context"

	"github.com/shopspring/decimal"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	// RecordPayment moves amount_paid forward, sets the new status and bumps
	// the payment counter in one statement.
	RecordPayment(ctx context.Context, id string, amount decimal.Decimal, status Status) error
	ListByProject(ctx context.Context, projectID string) ([]Expense, error)
}

type ExpensePaymentRepository interface {
	Insert(ctx context.Context, p ExpensePayment) (ExpensePayment, error)
	GetByID(ctx context.Context, id string) (ExpensePayment, error)
	ListByExpense(ctx context.Context, expenseID string) ([]ExpensePayment, error)
}

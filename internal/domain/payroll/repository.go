package payroll

import (
	"context"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (Payroll, error)
	// Accept transitions pending -> accepted and records who and when.
	// Returns ErrPayrollAlreadyAccepted when the row is not pending.
	Accept(ctx context.Context, id, approvedBy string, approvedAt time.Time) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
}

type EmployeeAccountRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (EmployeeAccount, error)
	// Deduct subtracts amount from the cash or bank balance field depending on
	// the account type the payment method resolves to.
	Deduct(ctx context.Context, id string, accType account.Type, amount decimal.Decimal) error
}

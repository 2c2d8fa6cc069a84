package percentage

import (
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

// FeeAccrual - the active commission rate for a (project, currency, account
// type) plus its running totals. The rate is read-only here; only the accrued
// totals move, and only through the ledger operations.
type FeeAccrual struct {
	ID               string
	ProjectID        string
	Currency         string
	AccountType      account.Type
	Percentage       decimal.Decimal
	PeriodPercentage decimal.Decimal
	TotalPercentage  decimal.Decimal
	PeriodStartedAt  time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// FeeLog - append-only audit row for one fee event. Deleting a refund removes
// its log rows; no other operation deletes log rows.
type FeeLog struct {
	ID        string
	ProjectID string
	AccrualID string
	ExpenseID *string
	PaymentID *string
	RefundID  *string
	Amount    decimal.Decimal
	Rate      decimal.Decimal
	CreatedAt time.Time
}

package refund

import (
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/fees"
	"github.com/shopspring/decimal"
)

// Refund - money returned to a project. Expense-shaped, but the company fee
// runs the other way: recording a refund subtracts the fee from the accrual,
// so deleting one adds it back.
type Refund struct {
	ID            string
	ProjectID     string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod account.PaymentMethod
	Reason        *string
	CreatedBy     string
	CreatedAt     time.Time
}

// Deltas bundles every aggregate adjustment a refund makes. The creation and
// deletion paths are the same bundle with opposite signs, always derived from
// one another, never written twice.
type Deltas struct {
	Account        account.Delta
	ProjectBalance account.BalanceDelta
	AccruedFee     decimal.Decimal
}

// Neg returns the exact algebraic inverse.
func (d Deltas) Neg() Deltas {
	return Deltas{
		Account:        d.Account.Neg(),
		ProjectBalance: d.ProjectBalance.Neg(),
		AccruedFee:     d.AccruedFee.Neg(),
	}
}

// CreationDeltas - recording a refund of amount at ratePercent. The account
// and project balance gain amount plus fee; the fee comes OUT of the accrued
// percentage and out of the expense totals the original spend put in.
func CreationDeltas(amount, ratePercent decimal.Decimal) Deltas {
	fee, total := fees.Charge(amount, ratePercent)
	return Deltas{
		Account: account.Delta{
			Balance:         total,
			Refund:          total,
			TotalPercentage: fee.Neg(),
			TotalExpense:    amount.Neg(),
		},
		ProjectBalance: account.BalanceDelta{
			Balance:         total,
			Refund:          total,
			TotalPercentage: fee.Neg(),
			TotalExpense:    amount.Neg(),
		},
		AccruedFee: fee.Neg(),
	}
}

// DeletionDeltas - exact negation of CreationDeltas.
func DeletionDeltas(amount, ratePercent decimal.Decimal) Deltas {
	return CreationDeltas(amount, ratePercent).Neg()
}

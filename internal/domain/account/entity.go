package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerKind identifies who an account belongs to.
type OwnerKind string

const (
	OwnerProject    OwnerKind = "project"
	OwnerEmployee   OwnerKind = "employee"
	OwnerContractor OwnerKind = "contractor"
	OwnerCompany    OwnerKind = "company"
)

// Type distinguishes cash drawers from bank accounts.
type Type string

const (
	TypeCash Type = "cash"
	TypeBank Type = "bank"
)

// PaymentMethod is how money physically moves. Cheques clear through a bank
// account, everything else through the cash drawer.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodBank   PaymentMethod = "bank"
	MethodCheque PaymentMethod = "cheque"
)

// TypeForMethod resolves which account type a payment method settles against.
func TypeForMethod(method PaymentMethod) Type {
	switch method {
	case MethodBank, MethodCheque:
		return TypeBank
	default:
		return TypeCash
	}
}

// Account - per-owner ledger aggregate. Balance always equals inflows minus
// outflows recorded through the ledger operations; nothing else writes it.
type Account struct {
	ID                string
	OwnerID           string
	OwnerKind         OwnerKind
	Currency          string
	Type              Type
	Balance           decimal.Decimal
	TotalTransactions decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalPercentage   decimal.Decimal
	Refund            decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProjectBalance - per (project, currency) snapshot mirroring the project's
// accounts. Both move together in every ledger operation.
type ProjectBalance struct {
	ID                string
	ProjectID         string
	Currency          string
	Balance           decimal.Decimal
	Held              decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalPercentage   decimal.Decimal
	TotalTransactions decimal.Decimal
	Refund            decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Delta is a signed adjustment applied atomically to an Account row. Zero
// fields are no-ops. Forward and reverse ledger paths are expressed as a
// delta and its negation so they cannot drift apart.
type Delta struct {
	Balance           decimal.Decimal
	TotalTransactions decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalPercentage   decimal.Decimal
	Refund            decimal.Decimal
}

// Neg returns the exact algebraic inverse of the delta.
func (d Delta) Neg() Delta {
	return Delta{
		Balance:           d.Balance.Neg(),
		TotalTransactions: d.TotalTransactions.Neg(),
		TotalExpense:      d.TotalExpense.Neg(),
		TotalPercentage:   d.TotalPercentage.Neg(),
		Refund:            d.Refund.Neg(),
	}
}

// BalanceDelta is a signed adjustment applied atomically to a ProjectBalance row.
type BalanceDelta struct {
	Balance           decimal.Decimal
	Held              decimal.Decimal
	TotalExpense      decimal.Decimal
	TotalPercentage   decimal.Decimal
	TotalTransactions decimal.Decimal
	Refund            decimal.Decimal
}

// Neg returns the exact algebraic inverse of the delta.
func (d BalanceDelta) Neg() BalanceDelta {
	return BalanceDelta{
		Balance:           d.Balance.Neg(),
		Held:              d.Held.Neg(),
		TotalExpense:      d.TotalExpense.Neg(),
		TotalPercentage:   d.TotalPercentage.Neg(),
		TotalTransactions: d.TotalTransactions.Neg(),
		Refund:            d.Refund.Neg(),
	}
}

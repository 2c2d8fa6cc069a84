package expense

import (
	"fmt"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/fees"
	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending       Status = "pending"
	StatusPartiallyPaid Status = "partially_paid"
	StatusPaid          Status = "paid"
)

// Expense - a project obligation paid down by one or more payments. Creating
// an expense reserves its total into the project's held funds; payments
// release held funds as they spend them.
type Expense struct {
	ID             string
	ProjectID      string
	SerialNumber   int64
	Description    string
	TotalAmount    decimal.Decimal
	AmountPaid     decimal.Decimal
	Discounting    decimal.Decimal
	Status         Status
	PaymentCounter int64
	Currency       string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ExpensePayment - immutable once created. Serial numbers come from the
// expense and project counters, never from user input.
type ExpensePayment struct {
	ID            string
	ExpenseID     *string
	ProjectID     string
	AccountID     string
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	TotalCost     decimal.Decimal
	Currency      string
	PaymentMethod account.PaymentMethod
	SerialNumber  string
	InvoiceNo     int64
	CreatedBy     string
	CreatedAt     time.Time
}

// PaymentSerial composes the human-readable payment number from the expense
// serial and its running payment counter.
func PaymentSerial(expenseSerial, paymentCounter int64) string {
	return fmt.Sprintf("%d.%d", expenseSerial, paymentCounter)
}

// NextStatus is the expense status after paying amount on top of alreadyPaid.
func NextStatus(totalAmount, alreadyPaid, amount decimal.Decimal) Status {
	if alreadyPaid.Add(amount).Cmp(totalAmount) >= 0 {
		return StatusPaid
	}
	return StatusPartiallyPaid
}

// PaymentDeltas - aggregate adjustments for paying amount against an expense
// at the given fee rate. The account loses amount plus fee; the project
// balance additionally releases the amount from held funds.
func PaymentDeltas(amount, ratePercent decimal.Decimal) (fee decimal.Decimal, ad account.Delta, bd account.BalanceDelta) {
	fee, total := fees.Charge(amount, ratePercent)
	ad = account.Delta{Balance: total.Neg()}
	bd = account.BalanceDelta{
		Balance: total.Neg(),
		Held:    amount.Neg(),
	}
	return fee, ad, bd
}

// HoldDeltas - reservation applied to the project balance when an expense is
// created, released payment by payment.
func HoldDeltas(totalAmount decimal.Decimal) account.BalanceDelta {
	return account.BalanceDelta{Held: totalAmount}
}

package payroll

import (
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Payroll - a salary payment awaiting acceptance. Accepting it deducts the
// salary from the employee's account; payroll money never participates in the
// company percentage.
type Payroll struct {
	ID            string
	EmployeeID    string
	TotalSalary   decimal.Decimal
	PaymentMethod account.PaymentMethod
	Status        Status
	ApprovedBy    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployeeAccount keeps the cash and bank balances side by side; the payment
// method on the payroll row picks which one the salary comes out of.
type EmployeeAccount struct {
	ID          string
	EmployeeID  string
	CashBalance decimal.Decimal
	BankBalance decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

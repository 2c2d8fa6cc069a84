package contract

import (
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Contract links a contractor to a project. Only the fields the payment
// approval path needs live here; contract management itself is upstream.
type Contract struct {
	ID           string
	ProjectID    string
	ContractorID string
	Title        string
	CreatedAt    time.Time
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
)

// ContractPayment - a contractor payment awaiting approval. Approval creates
// the backing expense payment and applies the full fee/balance propagation.
// The expense link is optional; standalone payments skip expense bookkeeping.
type ContractPayment struct {
	ID            string
	ContractID    string
	ExpenseID     *string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod account.PaymentMethod
	Status        PaymentStatus
	ApprovedBy    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
}

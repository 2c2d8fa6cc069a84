package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id string) (Contract, error)
}

type ContractPaymentRepository interface {
	GetByID(ctx context.Context, id string) (ContractPayment, error)
	// Approve transitions pending -> approved and records who and when.
	// Returns ErrPaymentAlreadyApproved when the row is not pending.
	Approve(ctx context.Context, id, approvedBy string, approvedAt time.Time) error
	ListByContract(ctx context.Context, contractID string) ([]ContractPayment, error)
}

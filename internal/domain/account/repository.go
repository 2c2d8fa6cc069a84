package account

import "context"

// AccountRepository reads and adjusts owner accounts. Adjustments are single
// atomic statements so callers inside a transaction never race their own reads.
type AccountRepository interface {
	GetByOwner(ctx context.Context, ownerID string, kind OwnerKind, currency string, accType Type) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	ApplyDelta(ctx context.Context, id string, d Delta) error
}

// ProjectBalanceRepository reads and adjusts the per-project balance snapshots.
type ProjectBalanceRepository interface {
	GetByProject(ctx context.Context, projectID, currency string) (ProjectBalance, error)
	ApplyDelta(ctx context.Context, id string, d BalanceDelta) error
}

package refund

import "context"

type RefundRepository interface {
	Insert(ctx context.Context, r Refund) (Refund, error)
	GetByID(ctx context.Context, id string) (Refund, error)
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]Refund, error)
}

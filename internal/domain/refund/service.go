package refund

import "context"

type RefundService interface {
	Create(ctx context.Context, req CreateRefundRequest) (RefundResponse, error)
	Delete(ctx context.Context, projectID, refundID string) error
	ListByProject(ctx context.Context, projectID string) ([]RefundResponse, error)
}

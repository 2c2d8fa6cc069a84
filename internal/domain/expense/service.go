package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	Get(ctx context.Context, id string) (ExpenseResponse, error)
	ProcessPayment(ctx context.Context, req PayExpenseRequest) (PaymentResponse, error)
	ListByProject(ctx context.Context, projectID string) ([]ExpenseResponse, error)
}

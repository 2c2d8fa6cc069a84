package income

import "context"

type IncomeService interface {
	Add(ctx context.Context, req CreateIncomeRequest) (IncomeResponse, error)
	Delete(ctx context.Context, projectID, incomeID string) error
	ListByProject(ctx context.Context, projectID string) ([]IncomeResponse, error)
}

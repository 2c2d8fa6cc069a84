package income

import "context"

type IncomeRepository interface {
	Insert(ctx context.Context, in Income) (Income, error)
	GetByID(ctx context.Context, id string) (Income, error)
	Delete(ctx context.Context, id string) error
	ListByProject(ctx context.Context, projectID string) ([]Income, error)
}

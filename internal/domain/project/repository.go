package project

import "context"

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (Project, error)
	AdvanceCounters(ctx context.Context, id string, d CounterDeltas) error
}

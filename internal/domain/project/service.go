package project

import "context"

type ProjectService interface {
	GetBalance(ctx context.Context, projectID, currency string) (BalanceResponse, error)
	ListFeeLogs(ctx context.Context, projectID string) ([]FeeLogResponse, error)
}

package project

import (
	"context"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	balanceRepo account.ProjectBalanceRepository
	feeLogRepo  percentage.FeeLogRepository
}

func NewProjectService(
	balanceRepo account.ProjectBalanceRepository,
	feeLogRepo percentage.FeeLogRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		balanceRepo: balanceRepo,
		feeLogRepo:  feeLogRepo,
	}
}

func (s *ProjectServiceImpl) GetBalance(ctx context.Context, projectID, currency string) (project.BalanceResponse, error) {
	b, err := s.balanceRepo.GetByProject(ctx, projectID, currency)
	if err != nil {
		return project.BalanceResponse{}, err
	}
	return project.ToBalanceResponse(b), nil
}

func (s *ProjectServiceImpl) ListFeeLogs(ctx context.Context, projectID string) ([]project.FeeLogResponse, error) {
	logs, err := s.feeLogRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]project.FeeLogResponse, 0, len(logs))
	for _, l := range logs {
		result = append(result, project.ToFeeLogResponse(l))
	}
	return result, nil
}

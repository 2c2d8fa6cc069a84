package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/income"
	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type IncomeServiceImpl struct {
	db          *database.DB
	incomeRepo  income.IncomeRepository
	projectRepo project.ProjectRepository
	accountRepo account.AccountRepository
	balanceRepo account.ProjectBalanceRepository
}

func NewIncomeService(
	db *database.DB,
	incomeRepo income.IncomeRepository,
	projectRepo project.ProjectRepository,
	accountRepo account.AccountRepository,
	balanceRepo account.ProjectBalanceRepository,
) income.IncomeService {
	return &IncomeServiceImpl{
		db:          db,
		incomeRepo:  incomeRepo,
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
	}
}

// Add records a project income and moves the amount into the matching account
// and project balance. The whole step sequence runs in one transaction so the
// aggregates can never be observed ahead of or behind the income row.
func (s *IncomeServiceImpl) Add(ctx context.Context, req income.CreateIncomeRequest) (income.IncomeResponse, error) {
	if err := req.Validate(); err != nil {
		return income.IncomeResponse{}, err
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return income.IncomeResponse{}, err
	}

	method := account.PaymentMethod(req.PaymentMethod)
	accType := account.TypeForMethod(method)

	var created income.Income
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		proj, err := s.projectRepo.GetByID(txCtx, req.ProjectID)
		if err != nil {
			// A missing project is a caller mistake here, not a missing ledger row.
			if errors.Is(err, project.ErrProjectNotFound) {
				return validator.ValidationErrors{{Field: "project_id", Message: "project not found"}}
			}
			return fmt.Errorf("failed to get project for income: %w", err)
		}

		created, err = s.incomeRepo.Insert(txCtx, income.Income{
			ProjectID:     proj.ID,
			SerialNumber:  proj.IncomeCounter,
			Amount:        req.Amount,
			Currency:      req.Currency,
			PaymentMethod: method,
			Fund:          req.Fund,
			Notes:         req.Notes,
			CreatedBy:     userID,
		})
		if err != nil {
			return err
		}

		if err := s.projectRepo.AdvanceCounters(txCtx, proj.ID, project.CounterDeltas{Income: 1, Invoice: 1}); err != nil {
			return err
		}

		acc, err := s.accountRepo.GetByOwner(txCtx, proj.ID, account.OwnerProject, req.Currency, accType)
		if err != nil {
			return fmt.Errorf("failed to get project account: %w", err)
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, proj.ID, req.Currency)
		if err != nil {
			return fmt.Errorf("failed to get project balance: %w", err)
		}

		ad, bd := income.AdditionDeltas(req.Amount)
		if err := s.accountRepo.ApplyDelta(txCtx, acc.ID, ad); err != nil {
			return err
		}
		return s.balanceRepo.ApplyDelta(txCtx, bal.ID, bd)
	})
	if err != nil {
		return income.IncomeResponse{}, err
	}

	return income.ToResponse(created), nil
}

// Delete is the exact algebraic inverse of Add for every touched aggregate.
func (s *IncomeServiceImpl) Delete(ctx context.Context, projectID, incomeID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		in, err := s.incomeRepo.GetByID(txCtx, incomeID)
		if err != nil {
			return err
		}
		if in.ProjectID != projectID {
			return income.ErrProjectMismatch
		}

		accType := account.TypeForMethod(in.PaymentMethod)
		acc, err := s.accountRepo.GetByOwner(txCtx, in.ProjectID, account.OwnerProject, in.Currency, accType)
		if err != nil {
			return fmt.Errorf("failed to get project account: %w", err)
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, in.ProjectID, in.Currency)
		if err != nil {
			return fmt.Errorf("failed to get project balance: %w", err)
		}

		if err := s.incomeRepo.Delete(txCtx, in.ID); err != nil {
			return err
		}

		ad, bd := income.DeletionDeltas(in.Amount)
		if err := s.accountRepo.ApplyDelta(txCtx, acc.ID, ad); err != nil {
			return err
		}
		return s.balanceRepo.ApplyDelta(txCtx, bal.ID, bd)
	})
}

func (s *IncomeServiceImpl) ListByProject(ctx context.Context, projectID string) ([]income.IncomeResponse, error) {
	incomes, err := s.incomeRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]income.IncomeResponse, 0, len(incomes))
	for _, in := range incomes {
		result = append(result, income.ToResponse(in))
	}
	return result, nil
}

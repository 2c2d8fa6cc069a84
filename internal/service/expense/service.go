package expense

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/fees"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ExpenseServiceImpl struct {
	db          *database.DB
	expenseRepo expense.ExpenseRepository
	paymentRepo expense.ExpensePaymentRepository
	projectRepo project.ProjectRepository
	accountRepo account.AccountRepository
	balanceRepo account.ProjectBalanceRepository
	accrualRepo percentage.FeeAccrualRepository
	feeLogRepo  percentage.FeeLogRepository
}

func NewExpenseService(
	db *database.DB,
	expenseRepo expense.ExpenseRepository,
	paymentRepo expense.ExpensePaymentRepository,
	projectRepo project.ProjectRepository,
	accountRepo account.AccountRepository,
	balanceRepo account.ProjectBalanceRepository,
	accrualRepo percentage.FeeAccrualRepository,
	feeLogRepo percentage.FeeLogRepository,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:          db,
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		accrualRepo: accrualRepo,
		feeLogRepo:  feeLogRepo,
	}
}

// Create registers a project obligation and reserves its total amount into the
// project's held funds. Payments release the reservation as they spend it.
func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	var created expense.Expense
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		proj, err := s.projectRepo.GetByID(txCtx, req.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to get project for expense: %w", err)
		}

		created, err = s.expenseRepo.Insert(txCtx, expense.Expense{
			ProjectID:    proj.ID,
			SerialNumber: proj.ExpenseCounter,
			Description:  req.Description,
			TotalAmount:  req.TotalAmount,
			Discounting:  req.Discounting,
			Status:       expense.StatusPending,
			Currency:     req.Currency,
			CreatedBy:    userID,
		})
		if err != nil {
			return err
		}

		if err := s.projectRepo.AdvanceCounters(txCtx, proj.ID, project.CounterDeltas{Expense: 1}); err != nil {
			return err
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, proj.ID, req.Currency)
		if err != nil {
			return fmt.Errorf("failed to get project balance: %w", err)
		}

		return s.balanceRepo.ApplyDelta(txCtx, bal.ID, expense.HoldDeltas(req.TotalAmount))
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return expense.ToExpenseResponse(created), nil
}

func (s *ExpenseServiceImpl) Get(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return expense.ToExpenseResponse(e), nil
}

// ProcessPayment pays amount against an expense: charges the project account
// amount plus the company fee, releases the amount from held funds, accrues
// the fee, writes its audit log and advances the expense and project serials.
// One transaction covers all nine steps.
func (s *ExpenseServiceImpl) ProcessPayment(ctx context.Context, req expense.PayExpenseRequest) (expense.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.PaymentResponse{}, err
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return expense.PaymentResponse{}, err
	}

	method := account.PaymentMethod(req.PaymentMethod)
	accType := account.TypeForMethod(method)

	var created expense.ExpensePayment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exp, err := s.expenseRepo.GetByID(txCtx, req.ExpenseID)
		if err != nil {
			return err
		}
		if exp.ProjectID != req.ProjectID {
			return expense.ErrProjectMismatch
		}

		proj, err := s.projectRepo.GetByID(txCtx, req.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to get project for payment: %w", err)
		}

		acc, err := s.accountRepo.GetByOwner(txCtx, proj.ID, account.OwnerProject, req.Currency, accType)
		if err != nil {
			return fmt.Errorf("failed to get project account: %w", err)
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, proj.ID, req.Currency)
		if err != nil {
			return fmt.Errorf("failed to get project balance: %w", err)
		}

		accrual, err := s.accrualRepo.GetActiveRate(txCtx, proj.ID, req.Currency, accType)
		if err != nil {
			return err
		}

		fee, total := fees.Charge(req.Amount, accrual.Percentage)

		expenseID := exp.ID
		created, err = s.paymentRepo.Insert(txCtx, expense.ExpensePayment{
			ExpenseID:     &expenseID,
			ProjectID:     proj.ID,
			AccountID:     acc.ID,
			Amount:        req.Amount,
			Fee:           fee,
			TotalCost:     total,
			Currency:      req.Currency,
			PaymentMethod: method,
			SerialNumber:  expense.PaymentSerial(exp.SerialNumber, exp.PaymentCounter),
			InvoiceNo:     proj.InvoiceCounter,
			CreatedBy:     userID,
		})
		if err != nil {
			return err
		}

		_, ad, bd := expense.PaymentDeltas(req.Amount, accrual.Percentage)
		if err := s.accountRepo.ApplyDelta(txCtx, acc.ID, ad); err != nil {
			return err
		}
		if err := s.balanceRepo.ApplyDelta(txCtx, bal.ID, bd); err != nil {
			return err
		}

		if err := s.accrualRepo.Accrue(txCtx, accrual.ID, fee); err != nil {
			return err
		}

		paymentID := created.ID
		if _, err := s.feeLogRepo.Insert(txCtx, percentage.FeeLog{
			ProjectID: proj.ID,
			AccrualID: accrual.ID,
			ExpenseID: &expenseID,
			PaymentID: &paymentID,
			Amount:    fee,
			Rate:      accrual.Percentage,
		}); err != nil {
			return err
		}

		status := expense.NextStatus(exp.TotalAmount, exp.AmountPaid, req.Amount)
		if err := s.expenseRepo.RecordPayment(txCtx, exp.ID, req.Amount, status); err != nil {
			return err
		}

		return s.projectRepo.AdvanceCounters(txCtx, proj.ID, project.CounterDeltas{Invoice: 1})
	})
	if err != nil {
		return expense.PaymentResponse{}, err
	}

	return expense.ToPaymentResponse(created), nil
}

func (s *ExpenseServiceImpl) ListByProject(ctx context.Context, projectID string) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, expense.ToExpenseResponse(e))
	}
	return result, nil
}

package contract

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/contract"
	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/fees"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ContractServiceImpl struct {
	db           *database.DB
	contractRepo contract.ContractRepository
	paymentRepo  contract.ContractPaymentRepository
	expenseRepo  expense.ExpenseRepository
	expPayRepo   expense.ExpensePaymentRepository
	projectRepo  project.ProjectRepository
	accountRepo  account.AccountRepository
	balanceRepo  account.ProjectBalanceRepository
	accrualRepo  percentage.FeeAccrualRepository
	feeLogRepo   percentage.FeeLogRepository
}

func NewContractService(
	db *database.DB,
	contractRepo contract.ContractRepository,
	paymentRepo contract.ContractPaymentRepository,
	expenseRepo expense.ExpenseRepository,
	expPayRepo expense.ExpensePaymentRepository,
	projectRepo project.ProjectRepository,
	accountRepo account.AccountRepository,
	balanceRepo account.ProjectBalanceRepository,
	accrualRepo percentage.FeeAccrualRepository,
	feeLogRepo percentage.FeeLogRepository,
) contract.ContractService {
	return &ContractServiceImpl{
		db:           db,
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		expenseRepo:  expenseRepo,
		expPayRepo:   expPayRepo,
		projectRepo:  projectRepo,
		accountRepo:  accountRepo,
		balanceRepo:  balanceRepo,
		accrualRepo:  accrualRepo,
		feeLogRepo:   feeLogRepo,
	}
}

// AcceptPayment approves a pending contractor payment and applies the full
// expense-payment propagation: account and project balance charged amount plus
// fee, fee accrued and logged, serials advanced. A payment without a linked
// expense skips the expense-specific bookkeeping — serials then come from the
// project invoice counter alone.
func (s *ContractServiceImpl) AcceptPayment(ctx context.Context, req contract.AcceptPaymentRequest, approvedBy string) (contract.ContractPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractPaymentResponse{}, err
	}

	method := account.PaymentMethod(req.PaymentMethod)
	accType := account.TypeForMethod(method)

	var resp contract.ContractPaymentResponse
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		cp, err := s.paymentRepo.GetByID(txCtx, req.PaymentID)
		if err != nil {
			return err
		}
		if cp.Status != contract.PaymentPending {
			return contract.ErrPaymentAlreadyApproved
		}

		ctr, err := s.contractRepo.GetByID(txCtx, cp.ContractID)
		if err != nil {
			return err
		}

		proj, err := s.projectRepo.GetByID(txCtx, ctr.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to get project for contract payment: %w", err)
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

		fee, total := fees.Charge(cp.Amount, accrual.Percentage)
		if acc.Balance.LessThan(total) {
			return account.ErrInsufficientBalance
		}

		if err := s.paymentRepo.Approve(txCtx, cp.ID, approvedBy, time.Now()); err != nil {
			return err
		}

		// Resolve serial numbering: from the linked expense when there is one,
		// from the project invoice counter when there is not.
		serial := strconv.FormatInt(proj.InvoiceCounter, 10)
		var exp expense.Expense
		if cp.ExpenseID != nil {
			exp, err = s.expenseRepo.GetByID(txCtx, *cp.ExpenseID)
			if err != nil {
				return err
			}
			serial = expense.PaymentSerial(exp.SerialNumber, exp.PaymentCounter)
		}

		created, err := s.expPayRepo.Insert(txCtx, expense.ExpensePayment{
			ExpenseID:     cp.ExpenseID,
			ProjectID:     proj.ID,
			AccountID:     acc.ID,
			Amount:        cp.Amount,
			Fee:           fee,
			TotalCost:     total,
			Currency:      req.Currency,
			PaymentMethod: method,
			SerialNumber:  serial,
			InvoiceNo:     proj.InvoiceCounter,
			CreatedBy:     approvedBy,
		})
		if err != nil {
			return err
		}

		_, ad, bd := expense.PaymentDeltas(cp.Amount, accrual.Percentage)
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
			ExpenseID: cp.ExpenseID,
			PaymentID: &paymentID,
			Amount:    fee,
			Rate:      accrual.Percentage,
		}); err != nil {
			return err
		}

		if cp.ExpenseID != nil {
			status := expense.NextStatus(exp.TotalAmount, exp.AmountPaid, cp.Amount)
			if err := s.expenseRepo.RecordPayment(txCtx, exp.ID, cp.Amount, status); err != nil {
				return err
			}
		}

		if err := s.projectRepo.AdvanceCounters(txCtx, proj.ID, project.CounterDeltas{Invoice: 1}); err != nil {
			return err
		}

		resp = contract.ContractPaymentResponse{
			ID:            cp.ID,
			ContractID:    cp.ContractID,
			ExpenseID:     cp.ExpenseID,
			Amount:        cp.Amount,
			Fee:           fee,
			TotalCost:     total,
			Currency:      req.Currency,
			PaymentMethod: req.PaymentMethod,
			Status:        string(contract.PaymentApproved),
			ApprovedBy:    &approvedBy,
		}
		return nil
	})
	if err != nil {
		return contract.ContractPaymentResponse{}, err
	}

	return resp, nil
}

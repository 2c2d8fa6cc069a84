package refund

import (
	"context"
	"errors"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/domain/refund"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RefundServiceImpl struct {
	db          *database.DB
	refundRepo  refund.RefundRepository
	accountRepo account.AccountRepository
	balanceRepo account.ProjectBalanceRepository
	accrualRepo percentage.FeeAccrualRepository
	feeLogRepo  percentage.FeeLogRepository
}

func NewRefundService(
	db *database.DB,
	refundRepo refund.RefundRepository,
	accountRepo account.AccountRepository,
	balanceRepo account.ProjectBalanceRepository,
	accrualRepo percentage.FeeAccrualRepository,
	feeLogRepo percentage.FeeLogRepository,
) refund.RefundService {
	return &RefundServiceImpl{
		db:          db,
		refundRepo:  refundRepo,
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		accrualRepo: accrualRepo,
		feeLogRepo:  feeLogRepo,
	}
}

// Create records a refund: money coming back to the project. The fee runs
// opposite to an expense payment, so the accrued percentage goes DOWN here
// and comes back up if the refund is later deleted.
func (s *RefundServiceImpl) Create(ctx context.Context, req refund.CreateRefundRequest) (refund.RefundResponse, error) {
	if err := req.Validate(); err != nil {
		return refund.RefundResponse{}, err
	}

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return refund.RefundResponse{}, err
	}

	method := account.PaymentMethod(req.PaymentMethod)
	accType := account.TypeForMethod(method)

	var created refund.Refund
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		acc, err := s.accountRepo.GetByOwner(txCtx, req.ProjectID, account.OwnerProject, req.Currency, accType)
		if err != nil {
			return fmt.Errorf("failed to get project account: %w", err)
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, req.ProjectID, req.Currency)
		if err != nil {
			return fmt.Errorf("failed to get project balance: %w", err)
		}

		accrual, err := s.accrualRepo.GetActiveRate(txCtx, req.ProjectID, req.Currency, accType)
		if err != nil {
			return err
		}

		created, err = s.refundRepo.Insert(txCtx, refund.Refund{
			ProjectID:     req.ProjectID,
			Amount:        req.Amount,
			Currency:      req.Currency,
			PaymentMethod: method,
			Reason:        req.Reason,
			CreatedBy:     userID,
		})
		if err != nil {
			return err
		}

		d := refund.CreationDeltas(req.Amount, accrual.Percentage)

		if err := s.accrualRepo.Accrue(txCtx, accrual.ID, d.AccruedFee); err != nil {
			return err
		}

		refundID := created.ID
		if _, err := s.feeLogRepo.Insert(txCtx, percentage.FeeLog{
			ProjectID: req.ProjectID,
			AccrualID: accrual.ID,
			RefundID:  &refundID,
			Amount:    d.AccruedFee,
			Rate:      accrual.Percentage,
		}); err != nil {
			return err
		}

		if err := s.accountRepo.ApplyDelta(txCtx, acc.ID, d.Account); err != nil {
			return err
		}
		return s.balanceRepo.ApplyDelta(txCtx, bal.ID, d.ProjectBalance)
	})
	if err != nil {
		return refund.RefundResponse{}, err
	}

	return refund.ToResponse(created), nil
}

// Delete reverses a recorded refund. Every aggregate adjustment is the exact
// negation of what Create applied, including re-adding the fee the refund had
// taken out of the accrued percentage.
func (s *RefundServiceImpl) Delete(ctx context.Context, projectID, refundID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rf, err := s.refundRepo.GetByID(txCtx, refundID)
		if err != nil {
			return err
		}
		if rf.ProjectID != projectID {
			return refund.ErrProjectMismatch
		}

		accType := account.TypeForMethod(rf.PaymentMethod)

		// The refund exists, so its counterpart rows must too. A gap here is
		// an inconsistent ledger, not a routine missing row.
		acc, err := s.accountRepo.GetByOwner(txCtx, rf.ProjectID, account.OwnerProject, rf.Currency, accType)
		if err != nil {
			if errors.Is(err, account.ErrAccountNotFound) {
				return fmt.Errorf("%w: account", refund.ErrLedgerIncomplete)
			}
			return err
		}

		bal, err := s.balanceRepo.GetByProject(txCtx, rf.ProjectID, rf.Currency)
		if err != nil {
			if errors.Is(err, account.ErrProjectBalanceNotFound) {
				return fmt.Errorf("%w: project balance", refund.ErrLedgerIncomplete)
			}
			return err
		}

		accrual, err := s.accrualRepo.GetActiveRate(txCtx, rf.ProjectID, rf.Currency, accType)
		if err != nil {
			if errors.Is(err, percentage.ErrNoActiveFeeRate) {
				return fmt.Errorf("%w: fee rate", refund.ErrLedgerIncomplete)
			}
			return err
		}

		if err := s.refundRepo.Delete(txCtx, rf.ID); err != nil {
			return err
		}

		d := refund.DeletionDeltas(rf.Amount, accrual.Percentage)

		if err := s.accrualRepo.Accrue(txCtx, accrual.ID, d.AccruedFee); err != nil {
			return err
		}

		if err := s.feeLogRepo.DeleteByRefund(txCtx, rf.ID); err != nil {
			return err
		}

		if err := s.accountRepo.ApplyDelta(txCtx, acc.ID, d.Account); err != nil {
			return err
		}
		return s.balanceRepo.ApplyDelta(txCtx, bal.ID, d.ProjectBalance)
	})
}

func (s *RefundServiceImpl) ListByProject(ctx context.Context, projectID string) ([]refund.RefundResponse, error) {
	refunds, err := s.refundRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := make([]refund.RefundResponse, 0, len(refunds))
	for _, rf := range refunds {
		result = append(result, refund.ToResponse(rf))
	}
	return result, nil
}

package percentage

import (
	"context"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

type FeeAccrualRepository interface {
	// GetActiveRate returns the single active accrual row for the key, or
	// ErrNoActiveFeeRate / ErrAmbiguousRate.
	GetActiveRate(ctx context.Context, projectID, currency string, accType account.Type) (FeeAccrual, error)
	// Accrue adds fee to both running totals. Negative fee reverses an accrual.
	Accrue(ctx context.Context, id string, fee decimal.Decimal) error
	// StartNewPeriods zeroes period totals for rows whose period started before
	// the cutoff, stamping the new period start.
	StartNewPeriods(ctx context.Context, cutoff time.Time) (int64, error)
}

type FeeLogRepository interface {
	Insert(ctx context.Context, log FeeLog) (FeeLog, error)
	DeleteByRefund(ctx context.Context, refundID string) error
	ListByProject(ctx context.Context, projectID string) ([]FeeLog, error)
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type feeAccrualRepository struct {
	db *database.DB
}

func NewFeeAccrualRepository(db *database.DB) percentage.FeeAccrualRepository {
	return &feeAccrualRepository{db: db}
}

func (r *feeAccrualRepository) GetActiveRate(ctx context.Context, projectID, currency string, accType account.Type) (percentage.FeeAccrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, currency, account_type,
			   percentage, period_percentage, total_percentage, period_started_at,
			   created_at, updated_at
		FROM project_percentage
		WHERE project_id = $1 AND currency = $2 AND account_type = $3
	`

	rows, err := q.Query(ctx, query, projectID, currency, accType)
	if err != nil {
		return percentage.FeeAccrual{}, fmt.Errorf("failed to get fee rate: %w", err)
	}
	defer rows.Close()

	var accruals []percentage.FeeAccrual
	for rows.Next() {
		var a percentage.FeeAccrual
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.Currency, &a.AccountType,
			&a.Percentage, &a.PeriodPercentage, &a.TotalPercentage, &a.PeriodStartedAt,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return percentage.FeeAccrual{}, fmt.Errorf("failed to scan fee rate: %w", err)
		}
		accruals = append(accruals, a)
	}

	switch len(accruals) {
	case 0:
		return percentage.FeeAccrual{}, percentage.ErrNoActiveFeeRate
	case 1:
		return accruals[0], nil
	default:
		// Duplicate active rows would make the fee arbitrary; refuse.
		return percentage.FeeAccrual{}, percentage.ErrAmbiguousRate
	}
}

func (r *feeAccrualRepository) Accrue(ctx context.Context, id string, fee decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_percentage
		SET period_percentage = period_percentage + $2,
			total_percentage = total_percentage + $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, fee).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return percentage.ErrNoActiveFeeRate
		}
		return fmt.Errorf("failed to accrue fee: %w", err)
	}

	return nil
}

func (r *feeAccrualRepository) StartNewPeriods(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_percentage
		SET period_percentage = 0,
			period_started_at = NOW(),
			updated_at = NOW()
		WHERE period_started_at < $1
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to start new fee periods: %w", err)
	}

	return tag.RowsAffected(), nil
}

type feeLogRepository struct {
	db *database.DB
}

func NewFeeLogRepository(db *database.DB) percentage.FeeLogRepository {
	return &feeLogRepository{db: db}
}

func (r *feeLogRepository) Insert(ctx context.Context, log percentage.FeeLog) (percentage.FeeLog, error) {
	q := GetQuerier(ctx, r.db)

	if log.ID == "" {
		log.ID = uuid.NewString()
	}

	query := `
		INSERT INTO project_percentage_logs (id, project_id, accrual_id, expense_id, payment_id, refund_id, amount, rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, project_id, accrual_id, expense_id, payment_id, refund_id, amount, rate, created_at
	`

	var l percentage.FeeLog
	err := q.QueryRow(ctx, query,
		log.ID, log.ProjectID, log.AccrualID, log.ExpenseID, log.PaymentID, log.RefundID, log.Amount, log.Rate,
	).Scan(
		&l.ID, &l.ProjectID, &l.AccrualID, &l.ExpenseID, &l.PaymentID, &l.RefundID, &l.Amount, &l.Rate, &l.CreatedAt,
	)
	if err != nil {
		return percentage.FeeLog{}, fmt.Errorf("failed to insert fee log: %w", err)
	}

	return l, nil
}

func (r *feeLogRepository) DeleteByRefund(ctx context.Context, refundID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM project_percentage_logs WHERE refund_id = $1`, refundID)
	if err != nil {
		return fmt.Errorf("failed to delete fee logs for refund: %w", err)
	}

	return nil
}

func (r *feeLogRepository) ListByProject(ctx context.Context, projectID string) ([]percentage.FeeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, accrual_id, expense_id, payment_id, refund_id, amount, rate, created_at
		FROM project_percentage_logs
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee logs: %w", err)
	}
	defer rows.Close()

	var logs []percentage.FeeLog
	for rows.Next() {
		var l percentage.FeeLog
		if err := rows.Scan(
			&l.ID, &l.ProjectID, &l.AccrualID, &l.ExpenseID, &l.PaymentID, &l.RefundID, &l.Amount, &l.Rate, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fee log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, nil
}

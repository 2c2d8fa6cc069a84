package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectBalanceRepository struct {
	db *database.DB
}

func NewProjectBalanceRepository(db *database.DB) account.ProjectBalanceRepository {
	return &projectBalanceRepository{db: db}
}

func (r *projectBalanceRepository) GetByProject(ctx context.Context, projectID, currency string) (account.ProjectBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, currency,
			   balance, held, total_expense, total_percentage, total_transactions, refund,
			   created_at, updated_at
		FROM project_balances
		WHERE project_id = $1 AND currency = $2
	`

	var b account.ProjectBalance
	err := q.QueryRow(ctx, query, projectID, currency).Scan(
		&b.ID, &b.ProjectID, &b.Currency,
		&b.Balance, &b.Held, &b.TotalExpense, &b.TotalPercentage, &b.TotalTransactions, &b.Refund,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ProjectBalance{}, account.ErrProjectBalanceNotFound
		}
		return account.ProjectBalance{}, fmt.Errorf("failed to get project balance: %w", err)
	}

	return b, nil
}

func (r *projectBalanceRepository) ApplyDelta(ctx context.Context, id string, d account.BalanceDelta) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_balances
		SET balance = balance + $2,
			held = held + $3,
			total_expense = total_expense + $4,
			total_percentage = total_percentage + $5,
			total_transactions = total_transactions + $6,
			refund = refund + $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id,
		d.Balance, d.Held, d.TotalExpense, d.TotalPercentage, d.TotalTransactions, d.Refund,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrProjectBalanceNotFound
		}
		return fmt.Errorf("failed to adjust project balance: %w", err)
	}

	return nil
}

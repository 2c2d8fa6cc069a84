package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) GetByOwner(ctx context.Context, ownerID string, kind account.OwnerKind, currency string, accType account.Type) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, owner_kind, currency, type,
			   balance, total_transactions, total_expense, total_percentage, refund,
			   created_at, updated_at
		FROM accounts
		WHERE owner_id = $1 AND owner_kind = $2 AND currency = $3 AND type = $4
	`

	var a account.Account
	err := q.QueryRow(ctx, query, ownerID, kind, currency, accType).Scan(
		&a.ID, &a.OwnerID, &a.OwnerKind, &a.Currency, &a.Type,
		&a.Balance, &a.TotalTransactions, &a.TotalExpense, &a.TotalPercentage, &a.Refund,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, owner_kind, currency, type,
			   balance, total_transactions, total_expense, total_percentage, refund,
			   created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var a account.Account
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OwnerID, &a.OwnerKind, &a.Currency, &a.Type,
		&a.Balance, &a.TotalTransactions, &a.TotalExpense, &a.TotalPercentage, &a.Refund,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.Account{}, account.ErrAccountNotFound
		}
		return account.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	return a, nil
}

// ApplyDelta adjusts all aggregate fields in a single statement so the row
// can never be observed half-adjusted, even by the same transaction.
func (r *accountRepository) ApplyDelta(ctx context.Context, id string, d account.Delta) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET balance = balance + $2,
			total_transactions = total_transactions + $3,
			total_expense = total_expense + $4,
			total_percentage = total_percentage + $5,
			refund = refund + $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id,
		d.Balance, d.TotalTransactions, d.TotalExpense, d.TotalPercentage, d.Refund,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return account.ErrAccountNotFound
		}
		return fmt.Errorf("failed to adjust account: %w", err)
	}

	return nil
}

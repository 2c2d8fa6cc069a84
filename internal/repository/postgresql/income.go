package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/income"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type incomeRepository struct {
	db *database.DB
}

func NewIncomeRepository(db *database.DB) income.IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Insert(ctx context.Context, in income.Income) (income.Income, error) {
	q := GetQuerier(ctx, r.db)

	if in.ID == "" {
		in.ID = uuid.NewString()
	}

	query := `
		INSERT INTO project_incomes (id, project_id, serial_number, amount, currency, payment_method, fund, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, project_id, serial_number, amount, currency, payment_method, fund, notes, created_by, created_at
	`

	var created income.Income
	err := q.QueryRow(ctx, query,
		in.ID, in.ProjectID, in.SerialNumber, in.Amount, in.Currency, in.PaymentMethod, in.Fund, in.Notes, in.CreatedBy,
	).Scan(
		&created.ID, &created.ProjectID, &created.SerialNumber, &created.Amount, &created.Currency,
		&created.PaymentMethod, &created.Fund, &created.Notes, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return income.Income{}, fmt.Errorf("failed to insert income: %w", err)
	}

	return created, nil
}

func (r *incomeRepository) GetByID(ctx context.Context, id string) (income.Income, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, serial_number, amount, currency, payment_method, fund, notes, created_by, created_at
		FROM project_incomes
		WHERE id = $1
	`

	var in income.Income
	err := q.QueryRow(ctx, query, id).Scan(
		&in.ID, &in.ProjectID, &in.SerialNumber, &in.Amount, &in.Currency,
		&in.PaymentMethod, &in.Fund, &in.Notes, &in.CreatedBy, &in.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return income.Income{}, income.ErrIncomeNotFound
		}
		return income.Income{}, fmt.Errorf("failed to get income: %w", err)
	}

	return in, nil
}

func (r *incomeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM project_incomes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return income.ErrIncomeNotFound
	}

	return nil
}

func (r *incomeRepository) ListByProject(ctx context.Context, projectID string) ([]income.Income, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, serial_number, amount, currency, payment_method, fund, notes, created_by, created_at
		FROM project_incomes
		WHERE project_id = $1
		ORDER BY serial_number DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer rows.Close()

	var incomes []income.Income
	for rows.Next() {
		var in income.Income
		if err := rows.Scan(
			&in.ID, &in.ProjectID, &in.SerialNumber, &in.Amount, &in.Currency,
			&in.PaymentMethod, &in.Fund, &in.Notes, &in.CreatedBy, &in.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, in)
	}

	return incomes, nil
}

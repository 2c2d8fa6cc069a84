package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO project_expenses (id, project_id, serial_number, description, total_amount,
			amount_paid, discounting, status, payment_counter, currency, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, project_id, serial_number, description, total_amount,
			amount_paid, discounting, status, payment_counter, currency, created_by, created_at, updated_at
	`

	var created expense.Expense
	err := q.QueryRow(ctx, query,
		e.ID, e.ProjectID, e.SerialNumber, e.Description, e.TotalAmount,
		e.AmountPaid, e.Discounting, e.Status, e.PaymentCounter, e.Currency, e.CreatedBy,
	).Scan(
		&created.ID, &created.ProjectID, &created.SerialNumber, &created.Description, &created.TotalAmount,
		&created.AmountPaid, &created.Discounting, &created.Status, &created.PaymentCounter,
		&created.Currency, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	return created, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, serial_number, description, total_amount,
			   amount_paid, discounting, status, payment_counter, currency, created_by, created_at, updated_at
		FROM project_expenses
		WHERE id = $1
	`

	var e expense.Expense
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProjectID, &e.SerialNumber, &e.Description, &e.TotalAmount,
		&e.AmountPaid, &e.Discounting, &e.Status, &e.PaymentCounter,
		&e.Currency, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) RecordPayment(ctx context.Context, id string, amount decimal.Decimal, status expense.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE project_expenses
		SET amount_paid = amount_paid + $2,
			status = $3,
			payment_counter = payment_counter + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, amount, status).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to record expense payment: %w", err)
	}

	return nil
}

func (r *expenseRepository) ListByProject(ctx context.Context, projectID string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, serial_number, description, total_amount,
			   amount_paid, discounting, status, payment_counter, currency, created_by, created_at, updated_at
		FROM project_expenses
		WHERE project_id = $1
		ORDER BY serial_number DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.SerialNumber, &e.Description, &e.TotalAmount,
			&e.AmountPaid, &e.Discounting, &e.Status, &e.PaymentCounter,
			&e.Currency, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

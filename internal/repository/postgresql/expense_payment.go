package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type expensePaymentRepository struct {
	db *database.DB
}

func NewExpensePaymentRepository(db *database.DB) expense.ExpensePaymentRepository {
	return &expensePaymentRepository{db: db}
}

func (r *expensePaymentRepository) Insert(ctx context.Context, p expense.ExpensePayment) (expense.ExpensePayment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO expense_payments (id, expense_id, project_id, account_id, amount, fee, total_cost,
			currency, payment_method, serial_number, invoice_no, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, expense_id, project_id, account_id, amount, fee, total_cost,
			currency, payment_method, serial_number, invoice_no, created_by, created_at
	`

	var created expense.ExpensePayment
	err := q.QueryRow(ctx, query,
		p.ID, p.ExpenseID, p.ProjectID, p.AccountID, p.Amount, p.Fee, p.TotalCost,
		p.Currency, p.PaymentMethod, p.SerialNumber, p.InvoiceNo, p.CreatedBy,
	).Scan(
		&created.ID, &created.ExpenseID, &created.ProjectID, &created.AccountID, &created.Amount,
		&created.Fee, &created.TotalCost, &created.Currency, &created.PaymentMethod,
		&created.SerialNumber, &created.InvoiceNo, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return expense.ExpensePayment{}, fmt.Errorf("failed to insert expense payment: %w", err)
	}

	return created, nil
}

func (r *expensePaymentRepository) GetByID(ctx context.Context, id string) (expense.ExpensePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, expense_id, project_id, account_id, amount, fee, total_cost,
			   currency, payment_method, serial_number, invoice_no, created_by, created_at
		FROM expense_payments
		WHERE id = $1
	`

	var p expense.ExpensePayment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ExpenseID, &p.ProjectID, &p.AccountID, &p.Amount,
		&p.Fee, &p.TotalCost, &p.Currency, &p.PaymentMethod,
		&p.SerialNumber, &p.InvoiceNo, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.ExpensePayment{}, expense.ErrExpensePaymentNotFound
		}
		return expense.ExpensePayment{}, fmt.Errorf("failed to get expense payment: %w", err)
	}

	return p, nil
}

func (r *expensePaymentRepository) ListByExpense(ctx context.Context, expenseID string) ([]expense.ExpensePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, expense_id, project_id, account_id, amount, fee, total_cost,
			   currency, payment_method, serial_number, invoice_no, created_by, created_at
		FROM expense_payments
		WHERE expense_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense payments: %w", err)
	}
	defer rows.Close()

	var payments []expense.ExpensePayment
	for rows.Next() {
		var p expense.ExpensePayment
		if err := rows.Scan(
			&p.ID, &p.ExpenseID, &p.ProjectID, &p.AccountID, &p.Amount,
			&p.Fee, &p.TotalCost, &p.Currency, &p.PaymentMethod,
			&p.SerialNumber, &p.InvoiceNo, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

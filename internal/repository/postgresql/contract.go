package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/contract"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, contractor_id, title, created_at
		FROM contracts
		WHERE id = $1
	`

	var c contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.ProjectID, &c.ContractorID, &c.Title, &c.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return c, nil
}

type contractPaymentRepository struct {
	db *database.DB
}

func NewContractPaymentRepository(db *database.DB) contract.ContractPaymentRepository {
	return &contractPaymentRepository{db: db}
}

func (r *contractPaymentRepository) GetByID(ctx context.Context, id string) (contract.ContractPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, expense_id, amount, currency, payment_method, status,
			   approved_by, approved_at, created_at
		FROM contract_payments
		WHERE id = $1
	`

	var p contract.ContractPayment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ContractID, &p.ExpenseID, &p.Amount, &p.Currency, &p.PaymentMethod, &p.Status,
		&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contract.ContractPayment{}, contract.ErrContractPaymentNotFound
		}
		return contract.ContractPayment{}, fmt.Errorf("failed to get contract payment: %w", err)
	}

	return p, nil
}

// Approve guards the status transition in the statement itself: a row that is
// no longer pending matches nothing, which distinguishes "already approved"
// from "missing".
func (r *contractPaymentRepository) Approve(ctx context.Context, id, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contract_payments
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, contract.PaymentApproved, approvedBy, approvedAt, contract.PaymentPending).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return contract.ErrPaymentAlreadyApproved
		}
		return fmt.Errorf("failed to approve contract payment: %w", err)
	}

	return nil
}

func (r *contractPaymentRepository) ListByContract(ctx context.Context, contractID string) ([]contract.ContractPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, contract_id, expense_id, amount, currency, payment_method, status,
			   approved_by, approved_at, created_at
		FROM contract_payments
		WHERE contract_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract payments: %w", err)
	}
	defer rows.Close()

	var payments []contract.ContractPayment
	for rows.Next() {
		var p contract.ContractPayment
		if err := rows.Scan(
			&p.ID, &p.ContractID, &p.ExpenseID, &p.Amount, &p.Currency, &p.PaymentMethod, &p.Status,
			&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}

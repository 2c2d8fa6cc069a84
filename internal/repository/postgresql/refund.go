package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/refund"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type refundRepository struct {
	db *database.DB
}

func NewRefundRepository(db *database.DB) refund.RefundRepository {
	return &refundRepository{db: db}
}

func (r *refundRepository) Insert(ctx context.Context, rf refund.Refund) (refund.Refund, error) {
	q := GetQuerier(ctx, r.db)

	if rf.ID == "" {
		rf.ID = uuid.NewString()
	}

	query := `
		INSERT INTO project_refund (id, project_id, amount, currency, payment_method, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, project_id, amount, currency, payment_method, reason, created_by, created_at
	`

	var created refund.Refund
	err := q.QueryRow(ctx, query,
		rf.ID, rf.ProjectID, rf.Amount, rf.Currency, rf.PaymentMethod, rf.Reason, rf.CreatedBy,
	).Scan(
		&created.ID, &created.ProjectID, &created.Amount, &created.Currency,
		&created.PaymentMethod, &created.Reason, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		return refund.Refund{}, fmt.Errorf("failed to insert refund: %w", err)
	}

	return created, nil
}

func (r *refundRepository) GetByID(ctx context.Context, id string) (refund.Refund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, amount, currency, payment_method, reason, created_by, created_at
		FROM project_refund
		WHERE id = $1
	`

	var rf refund.Refund
	err := q.QueryRow(ctx, query, id).Scan(
		&rf.ID, &rf.ProjectID, &rf.Amount, &rf.Currency,
		&rf.PaymentMethod, &rf.Reason, &rf.CreatedBy, &rf.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return refund.Refund{}, refund.ErrRefundNotFound
		}
		return refund.Refund{}, fmt.Errorf("failed to get refund: %w", err)
	}

	return rf, nil
}

func (r *refundRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM project_refund WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return refund.ErrRefundNotFound
	}

	return nil
}

func (r *refundRepository) ListByProject(ctx context.Context, projectID string) ([]refund.Refund, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, project_id, amount, currency, payment_method, reason, created_by, created_at
		FROM project_refund
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}
	defer rows.Close()

	var refunds []refund.Refund
	for rows.Next() {
		var rf refund.Refund
		if err := rows.Scan(
			&rf.ID, &rf.ProjectID, &rf.Amount, &rf.Currency,
			&rf.PaymentMethod, &rf.Reason, &rf.CreatedBy, &rf.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, rf)
	}

	return refunds, nil
}

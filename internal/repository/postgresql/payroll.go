package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, total_salary, payment_method, status,
			   approved_by, approved_at, created_at, updated_at
		FROM payroll
		WHERE id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.TotalSalary, &p.PaymentMethod, &p.Status,
		&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// Accept matches only pending rows, so re-accepting an accepted record reports
// the conflict instead of deducting twice.
func (r *payrollRepository) Accept(ctx context.Context, id, approvedBy string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, payroll.StatusAccepted, approvedBy, approvedAt, payroll.StatusPending).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return payroll.ErrPayrollAlreadyAccepted
		}
		return fmt.Errorf("failed to accept payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, total_salary, payment_method, status,
			   approved_by, approved_at, created_at, updated_at
		FROM payroll
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.TotalSalary, &p.PaymentMethod, &p.Status,
			&p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, nil
}

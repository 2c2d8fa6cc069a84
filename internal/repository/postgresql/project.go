package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, income_counter, invoice_counter, expense_counter, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.IncomeCounter, &p.InvoiceCounter, &p.ExpenseCounter, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (r *projectRepository) AdvanceCounters(ctx context.Context, id string, d project.CounterDeltas) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET income_counter = income_counter + $2,
			invoice_counter = invoice_counter + $3,
			expense_counter = expense_counter + $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, d.Income, d.Invoice, d.Expense).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to advance project counters: %w", err)
	}

	return nil
}

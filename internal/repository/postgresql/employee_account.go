package postgresql

import (
	"context"
	"fmt"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeAccountRepository struct {
	db *database.DB
}

func NewEmployeeAccountRepository(db *database.DB) payroll.EmployeeAccountRepository {
	return &employeeAccountRepository{db: db}
}

func (r *employeeAccountRepository) GetByEmployee(ctx context.Context, employeeID string) (payroll.EmployeeAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, cash_balance, bank_balance, created_at, updated_at
		FROM employee_account
		WHERE employee_id = $1
	`

	var a payroll.EmployeeAccount
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&a.ID, &a.EmployeeID, &a.CashBalance, &a.BankBalance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.EmployeeAccount{}, payroll.ErrEmployeeAccountNotFound
		}
		return payroll.EmployeeAccount{}, fmt.Errorf("failed to get employee account: %w", err)
	}

	return a, nil
}

func (r *employeeAccountRepository) Deduct(ctx context.Context, id string, accType account.Type, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	column := "cash_balance"
	if accType == account.TypeBank {
		column = "bank_balance"
	}

	query := fmt.Sprintf(`
		UPDATE employee_account
		SET %s = %s - $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, column, column)

	var updatedID string
	err := q.QueryRow(ctx, query, id, amount).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrEmployeeAccountNotFound
		}
		return fmt.Errorf("failed to deduct employee account: %w", err)
	}

	return nil
}

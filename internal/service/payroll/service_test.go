package payroll

import (
	"context"
	"os"
	"testing"

	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

// seedPayroll creates a pending payroll record and the employee account it
// settles against, holding 5000 in cash and 3000 in the bank.
func seedPayroll(t *testing.T, ctx context.Context, db *database.DB, method string) (payrollID, employeeAccountID string) {
	t.Helper()

	employeeID := "a4c2e6d0-2222-4000-8000-000000000042"

	err := db.QueryRow(ctx, `
		INSERT INTO payroll (id, employee_id, total_salary, payment_method, status, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 1200, $2, 'pending', NOW(), NOW())
		RETURNING id
	`, employeeID, method).Scan(&payrollID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO employee_account (id, employee_id, cash_balance, bank_balance, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 5000, 3000, NOW(), NOW())
		RETURNING id
	`, employeeID).Scan(&employeeAccountID)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx := context.Background()
		db.Exec(cleanupCtx, `DELETE FROM payroll WHERE employee_id = $1`, employeeID)
		db.Exec(cleanupCtx, `DELETE FROM employee_account WHERE employee_id = $1`, employeeID)
	})

	return payrollID, employeeAccountID
}

func newService(db *database.DB) payroll.PayrollService {
	return NewPayrollService(
		db,
		postgresql.NewPayrollRepository(db),
		postgresql.NewEmployeeAccountRepository(db),
	)
}

func TestPayrollAcceptDeductsCash(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	payrollID, employeeAccountID := seedPayroll(t, ctx, db, "cash")

	svc := newService(db)

	accepted, err := svc.Accept(ctx, payrollID, "6a1d3f48-1111-4000-8000-000000000001")
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusAccepted), accepted.Status)
	require.NotNil(t, accepted.ApprovedBy)

	var cash, bank decimal.Decimal
	err = db.QueryRow(ctx,
		`SELECT cash_balance, bank_balance FROM employee_account WHERE id = $1`, employeeAccountID,
	).Scan(&cash, &bank)
	require.NoError(t, err)
	assert.True(t, cash.Equal(decimal.NewFromInt(3800)), "cash = %s", cash)
	assert.True(t, bank.Equal(decimal.NewFromInt(3000)))
}

func TestPayrollAcceptChequeDeductsBank(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	payrollID, employeeAccountID := seedPayroll(t, ctx, db, "cheque")

	svc := newService(db)

	_, err := svc.Accept(ctx, payrollID, "6a1d3f48-1111-4000-8000-000000000001")
	require.NoError(t, err)

	var cash, bank decimal.Decimal
	err = db.QueryRow(ctx,
		`SELECT cash_balance, bank_balance FROM employee_account WHERE id = $1`, employeeAccountID,
	).Scan(&cash, &bank)
	require.NoError(t, err)
	assert.True(t, cash.Equal(decimal.NewFromInt(5000)))
	assert.True(t, bank.Equal(decimal.NewFromInt(1800)), "bank = %s", bank)
}

func TestPayrollAcceptTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	payrollID, employeeAccountID := seedPayroll(t, ctx, db, "cash")

	svc := newService(db)

	_, err := svc.Accept(ctx, payrollID, "6a1d3f48-1111-4000-8000-000000000001")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, payrollID, "6a1d3f48-1111-4000-8000-000000000001")
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyAccepted)

	// The double accept must not deduct twice.
	var cash decimal.Decimal
	err = db.QueryRow(ctx, `SELECT cash_balance FROM employee_account WHERE id = $1`, employeeAccountID).Scan(&cash)
	require.NoError(t, err)
	assert.True(t, cash.Equal(decimal.NewFromInt(3800)), "cash = %s", cash)
}

func TestPayrollAcceptUnknownRecord(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	svc := newService(db)

	_, err := svc.Accept(ctx, "b8f9a1e2-0000-4000-8000-000000000000", "6a1d3f48-1111-4000-8000-000000000001")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

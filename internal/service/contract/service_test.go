package contract

import (
	"context"
	"os"
	"testing"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/contract"
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

// seedContract creates a project ledger with the given bank balance, a
// contract on it and one pending payment of 200 LYD by cheque.
func seedContract(t *testing.T, ctx context.Context, db *database.DB, bankBalance int64) (projectID, accountID, paymentID string) {
	t.Helper()

	err := db.QueryRow(ctx, `
		INSERT INTO projects (id, name, income_counter, invoice_counter, expense_counter, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Misrata Port Expansion', 1, 5, 1, NOW(), NOW())
		RETURNING id
	`).Scan(&projectID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO accounts (id, owner_id, owner_kind, currency, type,
			balance, total_transactions, total_expense, total_percentage, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'project', 'LYD', 'bank', $2, 0, 0, 0, 0, NOW(), NOW())
		RETURNING id
	`, projectID, bankBalance).Scan(&accountID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO project_balances (id, project_id, currency,
			balance, held, total_expense, total_percentage, total_transactions, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'LYD', $2, 0, 0, 0, 0, 0, NOW(), NOW())
	`, projectID, bankBalance)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO project_percentage (id, project_id, currency, account_type,
			percentage, period_percentage, total_percentage, period_started_at, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'LYD', 'bank', 10, 0, 0, NOW(), NOW(), NOW())
	`, projectID)
	require.NoError(t, err)

	var contractID string
	err = db.QueryRow(ctx, `
		INSERT INTO contracts (id, project_id, contractor_id, title, created_at)
		VALUES (gen_random_uuid(), $1, 'c9e7b5a3-3333-4000-8000-000000000007', 'Quay wall works', NOW())
		RETURNING id
	`, projectID).Scan(&contractID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO contract_payments (id, contract_id, expense_id, amount, currency, payment_method, status, created_at)
		VALUES (gen_random_uuid(), $1, NULL, 200, 'LYD', 'cheque', 'pending', NOW())
		RETURNING id
	`, contractID).Scan(&paymentID)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx := context.Background()
		db.Exec(cleanupCtx, `DELETE FROM project_percentage_logs WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM expense_payments WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM contract_payments WHERE contract_id = $1`, contractID)
		db.Exec(cleanupCtx, `DELETE FROM contracts WHERE id = $1`, contractID)
		db.Exec(cleanupCtx, `DELETE FROM project_percentage WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM project_balances WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM accounts WHERE owner_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM projects WHERE id = $1`, projectID)
	})

	return projectID, accountID, paymentID
}

func newService(db *database.DB) contract.ContractService {
	return NewContractService(
		db,
		postgresql.NewContractRepository(db),
		postgresql.NewContractPaymentRepository(db),
		postgresql.NewExpenseRepository(db),
		postgresql.NewExpensePaymentRepository(db),
		postgresql.NewProjectRepository(db),
		postgresql.NewAccountRepository(db),
		postgresql.NewProjectBalanceRepository(db),
		postgresql.NewFeeAccrualRepository(db),
		postgresql.NewFeeLogRepository(db),
	)
}

func TestAcceptContractPayment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	projectID, accountID, paymentID := seedContract(t, ctx, db, 1000)

	svc := newService(db)

	// 200 at 10% -> fee 20, total 220.
	resp, err := svc.AcceptPayment(ctx, contract.AcceptPaymentRequest{
		PaymentID:     paymentID,
		PaymentMethod: "cheque",
		Currency:      "LYD",
	}, "6a1d3f48-1111-4000-8000-000000000001")
	require.NoError(t, err)
	assert.Equal(t, string(contract.PaymentApproved), resp.Status)
	assert.True(t, resp.Fee.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(220)))

	var balance decimal.Decimal
	err = db.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&balance)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(780)), "balance = %s", balance)

	// Serial comes from the project invoice counter when no expense is linked.
	var serial string
	var invoiceNo int64
	err = db.QueryRow(ctx,
		`SELECT serial_number, invoice_no FROM expense_payments WHERE project_id = $1`, projectID,
	).Scan(&serial, &invoiceNo)
	require.NoError(t, err)
	assert.Equal(t, "5", serial)
	assert.Equal(t, int64(5), invoiceNo)

	var invoiceCounter int64
	err = db.QueryRow(ctx, `SELECT invoice_counter FROM projects WHERE id = $1`, projectID).Scan(&invoiceCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(6), invoiceCounter)

	var accrued decimal.Decimal
	err = db.QueryRow(ctx,
		`SELECT total_percentage FROM project_percentage WHERE project_id = $1`, projectID,
	).Scan(&accrued)
	require.NoError(t, err)
	assert.True(t, accrued.Equal(decimal.NewFromInt(20)))
}

func TestAcceptContractPaymentInsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, accountID, paymentID := seedContract(t, ctx, db, 100)

	svc := newService(db)

	_, err := svc.AcceptPayment(ctx, contract.AcceptPaymentRequest{
		PaymentID:     paymentID,
		PaymentMethod: "cheque",
		Currency:      "LYD",
	}, "6a1d3f48-1111-4000-8000-000000000001")
	assert.ErrorIs(t, err, account.ErrInsufficientBalance)

	// Nothing moved and the payment stays pending.
	var balance decimal.Decimal
	err = db.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&balance)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))

	var status string
	err = db.QueryRow(ctx, `SELECT status FROM contract_payments WHERE id = $1`, paymentID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "pending", status)
}

func TestAcceptContractPaymentTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, _, paymentID := seedContract(t, ctx, db, 1000)

	svc := newService(db)

	req := contract.AcceptPaymentRequest{
		PaymentID:     paymentID,
		PaymentMethod: "cheque",
		Currency:      "LYD",
	}

	_, err := svc.AcceptPayment(ctx, req, "6a1d3f48-1111-4000-8000-000000000001")
	require.NoError(t, err)

	_, err = svc.AcceptPayment(ctx, req, "6a1d3f48-1111-4000-8000-000000000001")
	assert.ErrorIs(t, err, contract.ErrPaymentAlreadyApproved)
}

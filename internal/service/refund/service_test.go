package refund

import (
	"context"
	"os"
	"testing"

	"github.com/emaar-erp/erp-backend-go/internal/domain/refund"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
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

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "6a1d3f48-1111-4000-8000-000000000001",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type ledgerState struct {
	Balance         decimal.Decimal
	Refund          decimal.Decimal
	TotalExpense    decimal.Decimal
	TotalPercentage decimal.Decimal
	PeriodPct       decimal.Decimal
	TotalPct        decimal.Decimal
}

func readState(t *testing.T, ctx context.Context, db *database.DB, accountID, accrualID string) ledgerState {
	t.Helper()
	var s ledgerState
	err := db.QueryRow(ctx,
		`SELECT balance, refund, total_expense, total_percentage FROM accounts WHERE id = $1`, accountID,
	).Scan(&s.Balance, &s.Refund, &s.TotalExpense, &s.TotalPercentage)
	require.NoError(t, err)
	err = db.QueryRow(ctx,
		`SELECT period_percentage, total_percentage FROM project_percentage WHERE id = $1`, accrualID,
	).Scan(&s.PeriodPct, &s.TotalPct)
	require.NoError(t, err)
	return s
}

// seedLedger creates a project that has already spent money: its account shows
// expense totals and the accrual carries earned fees, so a refund has something
// to reverse.
func seedLedger(t *testing.T, ctx context.Context, db *database.DB) (projectID, accountID, accrualID string) {
	t.Helper()

	err := db.QueryRow(ctx, `
		INSERT INTO projects (id, name, income_counter, invoice_counter, expense_counter, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Sirte Coastal Road', 1, 1, 1, NOW(), NOW())
		RETURNING id
	`).Scan(&projectID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO accounts (id, owner_id, owner_kind, currency, type,
			balance, total_transactions, total_expense, total_percentage, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'project', 'LYD', 'cash', 890, 1000, 100, 10, 0, NOW(), NOW())
		RETURNING id
	`, projectID).Scan(&accountID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO project_balances (id, project_id, currency,
			balance, held, total_expense, total_percentage, total_transactions, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'LYD', 890, 0, 100, 10, 1000, 0, NOW(), NOW())
	`, projectID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO project_percentage (id, project_id, currency, account_type,
			percentage, period_percentage, total_percentage, period_started_at, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'LYD', 'cash', 10, 10, 10, NOW(), NOW(), NOW())
		RETURNING id
	`, projectID).Scan(&accrualID)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx := context.Background()
		db.Exec(cleanupCtx, `DELETE FROM project_percentage_logs WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM project_refund WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM project_percentage WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM project_balances WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM accounts WHERE owner_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM projects WHERE id = $1`, projectID)
	})

	return projectID, accountID, accrualID
}

func newService(db *database.DB) refund.RefundService {
	return NewRefundService(
		db,
		postgresql.NewRefundRepository(db),
		postgresql.NewAccountRepository(db),
		postgresql.NewProjectBalanceRepository(db),
		postgresql.NewFeeAccrualRepository(db),
		postgresql.NewFeeLogRepository(db),
	)
}

func TestRefundCreateAndDeleteRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)
	projectID, accountID, accrualID := seedLedger(t, ctx, db)

	svc := newService(db)
	before := readState(t, ctx, db, accountID, accrualID)

	// Refund 100 at 10%: account gains 110, the 10 fee comes back out of the
	// accrued percentage and 100 out of the expense totals.
	created, err := svc.Create(ctx, refund.CreateRefundRequest{
		ProjectID:     projectID,
		Amount:        decimal.NewFromInt(100),
		Currency:      "LYD",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	after := readState(t, ctx, db, accountID, accrualID)
	assert.True(t, after.Balance.Equal(before.Balance.Add(decimal.NewFromInt(110))), "balance = %s", after.Balance)
	assert.True(t, after.Refund.Equal(decimal.NewFromInt(110)))
	assert.True(t, after.TotalExpense.Equal(decimal.Zero))
	assert.True(t, after.TotalPercentage.Equal(decimal.Zero))
	assert.True(t, after.PeriodPct.Equal(decimal.Zero))
	assert.True(t, after.TotalPct.Equal(decimal.Zero))

	var logCount int
	err = db.QueryRow(ctx, `SELECT COUNT(*) FROM project_percentage_logs WHERE refund_id = $1`, created.ID).Scan(&logCount)
	require.NoError(t, err)
	assert.Equal(t, 1, logCount)

	// Deletion restores every aggregate to the pre-refund state exactly.
	err = svc.Delete(ctx, projectID, created.ID)
	require.NoError(t, err)

	restored := readState(t, ctx, db, accountID, accrualID)
	assert.True(t, restored.Balance.Equal(before.Balance))
	assert.True(t, restored.Refund.Equal(before.Refund))
	assert.True(t, restored.TotalExpense.Equal(before.TotalExpense))
	assert.True(t, restored.TotalPercentage.Equal(before.TotalPercentage))
	assert.True(t, restored.PeriodPct.Equal(before.PeriodPct))
	assert.True(t, restored.TotalPct.Equal(before.TotalPct))

	err = db.QueryRow(ctx, `SELECT COUNT(*) FROM project_percentage_logs WHERE refund_id = $1`, created.ID).Scan(&logCount)
	require.NoError(t, err)
	assert.Equal(t, 0, logCount)
}

func TestRefundDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)
	projectID, _, _ := seedLedger(t, ctx, db)

	svc := newService(db)

	err := svc.Delete(ctx, projectID, "b8f9a1e2-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, refund.ErrRefundNotFound)
}

func TestRefundDeleteWithMissingFeeRate(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)
	projectID, _, accrualID := seedLedger(t, ctx, db)

	svc := newService(db)

	created, err := svc.Create(ctx, refund.CreateRefundRequest{
		ProjectID:     projectID,
		Amount:        decimal.NewFromInt(50),
		Currency:      "LYD",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	_, err = db.Exec(ctx, `DELETE FROM project_percentage WHERE id = $1`, accrualID)
	require.NoError(t, err)

	err = svc.Delete(ctx, projectID, created.ID)
	assert.ErrorIs(t, err, refund.ErrLedgerIncomplete)
}

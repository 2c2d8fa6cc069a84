package income

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/emaar-erp/erp-backend-go/internal/domain/income"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
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

// seedLedger creates a project with its cash account and balance snapshot,
// both holding 1000 LYD.
func seedLedger(t *testing.T, ctx context.Context, db *database.DB) (projectID, accountID, balanceID string) {
	t.Helper()

	err := db.QueryRow(ctx, `
		INSERT INTO projects (id, name, income_counter, invoice_counter, expense_counter, created_at, updated_at)
		VALUES (gen_random_uuid(), 'Tripoli Towers', 1, 1, 1, NOW(), NOW())
		RETURNING id
	`).Scan(&projectID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO accounts (id, owner_id, owner_kind, currency, type,
			balance, total_transactions, total_expense, total_percentage, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'project', 'LYD', 'cash', 1000, 0, 0, 0, 0, NOW(), NOW())
		RETURNING id
	`, projectID).Scan(&accountID)
	require.NoError(t, err)

	err = db.QueryRow(ctx, `
		INSERT INTO project_balances (id, project_id, currency,
			balance, held, total_expense, total_percentage, total_transactions, refund, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, 'LYD', 1000, 0, 0, 0, 0, 0, NOW(), NOW())
		RETURNING id
	`, projectID).Scan(&balanceID)
	require.NoError(t, err)

	t.Cleanup(func() {
		cleanupCtx := context.Background()
		db.Exec(cleanupCtx, `DELETE FROM project_incomes WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM project_balances WHERE project_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM accounts WHERE owner_id = $1`, projectID)
		db.Exec(cleanupCtx, `DELETE FROM projects WHERE id = $1`, projectID)
	})

	return projectID, accountID, balanceID
}

func accountBalances(t *testing.T, ctx context.Context, db *database.DB, accountID string) (balance, totalTransactions decimal.Decimal) {
	t.Helper()
	err := db.QueryRow(ctx,
		`SELECT balance, total_transactions FROM accounts WHERE id = $1`, accountID,
	).Scan(&balance, &totalTransactions)
	require.NoError(t, err)
	return balance, totalTransactions
}

func TestIncomeServiceAddAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)
	projectID, accountID, balanceID := seedLedger(t, ctx, db)

	svc := NewIncomeService(
		db,
		postgresql.NewIncomeRepository(db),
		postgresql.NewProjectRepository(db),
		postgresql.NewAccountRepository(db),
		postgresql.NewProjectBalanceRepository(db),
	)

	created, err := svc.Add(ctx, income.CreateIncomeRequest{
		ProjectID:     projectID,
		Amount:        decimal.NewFromInt(500),
		Currency:      "LYD",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.SerialNumber)

	balance, totalTransactions := accountBalances(t, ctx, db, accountID)
	assert.True(t, balance.Equal(decimal.NewFromInt(1500)), "balance = %s", balance)
	assert.True(t, totalTransactions.Equal(decimal.NewFromInt(500)))

	var pbBalance decimal.Decimal
	err = db.QueryRow(ctx, `SELECT balance FROM project_balances WHERE id = $1`, balanceID).Scan(&pbBalance)
	require.NoError(t, err)
	assert.True(t, pbBalance.Equal(decimal.NewFromInt(1500)))

	var incomeCounter int64
	err = db.QueryRow(ctx, `SELECT income_counter FROM projects WHERE id = $1`, projectID).Scan(&incomeCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), incomeCounter)

	// Deleting the income must restore every aggregate exactly.
	err = svc.Delete(ctx, projectID, created.ID)
	require.NoError(t, err)

	balance, totalTransactions = accountBalances(t, ctx, db, accountID)
	assert.True(t, balance.Equal(decimal.NewFromInt(1000)), "balance = %s", balance)
	assert.True(t, totalTransactions.IsZero())

	err = db.QueryRow(ctx, `SELECT balance FROM project_balances WHERE id = $1`, balanceID).Scan(&pbBalance)
	require.NoError(t, err)
	assert.True(t, pbBalance.Equal(decimal.NewFromInt(1000)))
}

func TestIncomeServiceAddUnknownProject(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)

	svc := NewIncomeService(
		db,
		postgresql.NewIncomeRepository(db),
		postgresql.NewProjectRepository(db),
		postgresql.NewAccountRepository(db),
		postgresql.NewProjectBalanceRepository(db),
	)

	_, err := svc.Add(ctx, income.CreateIncomeRequest{
		ProjectID:     "b8f9a1e2-0000-4000-8000-000000000000",
		Amount:        decimal.NewFromInt(100),
		Currency:      "LYD",
		PaymentMethod: "cash",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "project_id", verrs[0].Field)
}

func TestIncomeServiceDeleteProjectMismatch(t *testing.T) {
	db := newTestDB(t)
	ctx := authedContext(t)
	projectID, _, _ := seedLedger(t, ctx, db)

	svc := NewIncomeService(
		db,
		postgresql.NewIncomeRepository(db),
		postgresql.NewProjectRepository(db),
		postgresql.NewAccountRepository(db),
		postgresql.NewProjectBalanceRepository(db),
	)

	created, err := svc.Add(ctx, income.CreateIncomeRequest{
		ProjectID:     projectID,
		Amount:        decimal.NewFromInt(100),
		Currency:      "LYD",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, "b8f9a1e2-0000-4000-8000-000000000000", created.ID)
	assert.ErrorIs(t, err, income.ErrProjectMismatch)
}

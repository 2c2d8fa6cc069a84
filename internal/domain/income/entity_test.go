package income

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdditionDeltas(t *testing.T) {
	amount := decimal.NewFromInt(500)

	ad, bd := AdditionDeltas(amount)

	assert.True(t, ad.Balance.Equal(amount))
	assert.True(t, ad.TotalTransactions.Equal(amount))
	assert.True(t, ad.TotalExpense.IsZero())
	assert.True(t, ad.TotalPercentage.IsZero())
	assert.True(t, ad.Refund.IsZero())

	assert.True(t, bd.Balance.Equal(amount))
	assert.True(t, bd.TotalTransactions.Equal(amount))
	assert.True(t, bd.Held.IsZero())
}

func TestDeletionDeltasIsExactInverse(t *testing.T) {
	amount := decimal.RequireFromString("123.45")

	ad, bd := AdditionDeltas(amount)
	dad, dbd := DeletionDeltas(amount)

	assert.True(t, ad.Balance.Add(dad.Balance).IsZero())
	assert.True(t, ad.TotalTransactions.Add(dad.TotalTransactions).IsZero())
	assert.True(t, bd.Balance.Add(dbd.Balance).IsZero())
	assert.True(t, bd.TotalTransactions.Add(dbd.TotalTransactions).IsZero())
}

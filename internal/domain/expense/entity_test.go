package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentSerial(t *testing.T) {
	assert.Equal(t, "7.3", PaymentSerial(7, 3))
	assert.Equal(t, "1.0", PaymentSerial(1, 0))
}

func TestNextStatus(t *testing.T) {
	total := decimal.NewFromInt(1000)

	t.Run("partial payment", func(t *testing.T) {
		got := NextStatus(total, decimal.Zero, decimal.NewFromInt(400))
		assert.Equal(t, StatusPartiallyPaid, got)
	})

	t.Run("payment completes the expense", func(t *testing.T) {
		got := NextStatus(total, decimal.NewFromInt(600), decimal.NewFromInt(400))
		assert.Equal(t, StatusPaid, got)
	})

	t.Run("overpayment still marks paid", func(t *testing.T) {
		got := NextStatus(total, decimal.NewFromInt(900), decimal.NewFromInt(200))
		assert.Equal(t, StatusPaid, got)
	})
}

func TestPaymentDeltas(t *testing.T) {
	// 100 at 10% -> fee 10, total cost 110
	amount := decimal.NewFromInt(100)
	rate := decimal.NewFromInt(10)

	fee, ad, bd := PaymentDeltas(amount, rate)

	assert.True(t, fee.Equal(decimal.NewFromInt(10)))
	assert.True(t, ad.Balance.Equal(decimal.NewFromInt(-110)))
	assert.True(t, ad.TotalTransactions.IsZero())
	assert.True(t, bd.Balance.Equal(decimal.NewFromInt(-110)))
	assert.True(t, bd.Held.Equal(decimal.NewFromInt(-100)))
}

func TestPaymentDeltasFractionalRate(t *testing.T) {
	fee, ad, _ := PaymentDeltas(decimal.NewFromInt(200), decimal.RequireFromString("2.5"))

	assert.True(t, fee.Equal(decimal.NewFromInt(5)))
	assert.True(t, ad.Balance.Equal(decimal.NewFromInt(-205)))
}

func TestHoldDeltas(t *testing.T) {
	bd := HoldDeltas(decimal.NewFromInt(750))

	assert.True(t, bd.Held.Equal(decimal.NewFromInt(750)))
	assert.True(t, bd.Balance.IsZero())
}

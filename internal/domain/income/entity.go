package income

import (
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Income - append-only project income row. Deletion is a full compensating
// reversal of the aggregates it touched, not a soft delete.
type Income struct {
	ID            string
	ProjectID     string
	SerialNumber  int64
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod account.PaymentMethod
	Fund          *string
	Notes         *string
	CreatedBy     string
	CreatedAt     time.Time
}

// AdditionDeltas - aggregate adjustments recording an income: amount flows
// into the account balance and transaction total, mirrored on the project
// balance snapshot.
func AdditionDeltas(amount decimal.Decimal) (account.Delta, account.BalanceDelta) {
	return account.Delta{
			Balance:           amount,
			TotalTransactions: amount,
		}, account.BalanceDelta{
			Balance:           amount,
			TotalTransactions: amount,
		}
}

// DeletionDeltas - exact negation of AdditionDeltas.
func DeletionDeltas(amount decimal.Decimal) (account.Delta, account.BalanceDelta) {
	ad, bd := AdditionDeltas(amount)
	return ad.Neg(), bd.Neg()
}

package fees

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Fee computes the company commission for a base amount at a percentage rate.
// Both the payment path and the refund reversal path use this exact function
// so that apply/reverse cycles cancel out decimal-exactly.
func Fee(amount, ratePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratePercent).Div(hundred)
}

// TotalCost is the amount the paying account is charged: base amount plus fee.
func TotalCost(amount, fee decimal.Decimal) decimal.Decimal {
	return amount.Add(fee)
}

// Charge is a convenience for the common fetch-rate-then-charge sequence.
func Charge(amount, ratePercent decimal.Decimal) (fee, total decimal.Decimal) {
	fee = Fee(amount, ratePercent)
	return fee, TotalCost(amount, fee)
}

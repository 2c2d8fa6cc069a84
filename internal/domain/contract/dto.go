package contract

import (
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AcceptPaymentRequest struct {
	PaymentID     string `json:"payment_id"`
	PaymentMethod string `json:"payment_method"`
	Currency      string `json:"currency"`
}

func (r *AcceptPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentID) {
		errs = append(errs, validator.ValidationError{Field: "payment_id", Message: "is required"})
	}
	if !validator.IsValidPaymentMethod(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be 'cash', 'bank' or 'cheque'"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a 3-letter currency code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractPaymentResponse struct {
	ID            string          `json:"id"`
	ContractID    string          `json:"contract_id"`
	ExpenseID     *string         `json:"expense_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
}

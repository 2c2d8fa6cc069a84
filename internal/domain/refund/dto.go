package refund

import (
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRefundRequest struct {
	ProjectID     string          `json:"project_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Reason        *string         `json:"reason,omitempty"`
}

func (r *CreateRefundRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a 3-letter currency code"})
	}
	if !validator.IsValidPaymentMethod(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be 'cash', 'bank' or 'cheque'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefundResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Reason        *string         `json:"reason,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

func ToResponse(r Refund) RefundResponse {
	return RefundResponse{
		ID:            r.ID,
		ProjectID:     r.ProjectID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: string(r.PaymentMethod),
		Reason:        r.Reason,
		CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

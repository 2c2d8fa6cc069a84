package income

import (
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateIncomeRequest struct {
	ProjectID     string          `json:"project_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"` // "cash", "bank" or "cheque"
	Fund          *string         `json:"fund,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

func (r *CreateIncomeRequest) Validate() error {
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

type IncomeResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	SerialNumber  int64           `json:"serial_number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Fund          *string         `json:"fund,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

func ToResponse(in Income) IncomeResponse {
	return IncomeResponse{
		ID:            in.ID,
		ProjectID:     in.ProjectID,
		SerialNumber:  in.SerialNumber,
		Amount:        in.Amount,
		Currency:      in.Currency,
		PaymentMethod: string(in.PaymentMethod),
		Fund:          in.Fund,
		Notes:         in.Notes,
		CreatedAt:     in.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

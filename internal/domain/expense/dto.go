package expense

import (
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	ProjectID   string          `json:"project_id"`
	Description string          `json:"description"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Discounting decimal.Decimal `json:"discounting"`
	Currency    string          `json:"currency"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}
	if !r.TotalAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be positive"})
	}
	if r.Discounting.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "discounting", Message: "must be non-negative"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be a 3-letter currency code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayExpenseRequest struct {
	ExpenseID     string          `json:"expense_id"`
	ProjectID     string          `json:"project_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
}

func (r *PayExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExpenseID) {
		errs = append(errs, validator.ValidationError{Field: "expense_id", Message: "is required"})
	}
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

type ExpenseResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	SerialNumber   int64           `json:"serial_number"`
	Description    string          `json:"description"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Discounting    decimal.Decimal `json:"discounting"`
	Status         string          `json:"status"`
	PaymentCounter int64           `json:"payment_counter"`
	Currency       string          `json:"currency"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	ExpenseID     *string         `json:"expense_id,omitempty"`
	ProjectID     string          `json:"project_id"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	SerialNumber  string          `json:"serial_number"`
	InvoiceNo     int64           `json:"invoice_no"`
}

func ToExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		SerialNumber:   e.SerialNumber,
		Description:    e.Description,
		TotalAmount:    e.TotalAmount,
		AmountPaid:     e.AmountPaid,
		Discounting:    e.Discounting,
		Status:         string(e.Status),
		PaymentCounter: e.PaymentCounter,
		Currency:       e.Currency,
	}
}

func ToPaymentResponse(p ExpensePayment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ExpenseID:     p.ExpenseID,
		ProjectID:     p.ProjectID,
		Amount:        p.Amount,
		Fee:           p.Fee,
		TotalCost:     p.TotalCost,
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		SerialNumber:  p.SerialNumber,
		InvoiceNo:     p.InvoiceNo,
	}
}

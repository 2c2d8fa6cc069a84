package project

import (
	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/shopspring/decimal"
)

type BalanceResponse struct {
	ProjectID         string          `json:"project_id"`
	Currency          string          `json:"currency"`
	Balance           decimal.Decimal `json:"balance"`
	Held              decimal.Decimal `json:"held"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	TotalPercentage   decimal.Decimal `json:"total_percentage"`
	TotalTransactions decimal.Decimal `json:"total_transactions"`
	Refund            decimal.Decimal `json:"refund"`
}

func ToBalanceResponse(b account.ProjectBalance) BalanceResponse {
	return BalanceResponse{
		ProjectID:         b.ProjectID,
		Currency:          b.Currency,
		Balance:           b.Balance,
		Held:              b.Held,
		TotalExpense:      b.TotalExpense,
		TotalPercentage:   b.TotalPercentage,
		TotalTransactions: b.TotalTransactions,
		Refund:            b.Refund,
	}
}

type FeeLogResponse struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"project_id"`
	ExpenseID *string         `json:"expense_id,omitempty"`
	PaymentID *string         `json:"payment_id,omitempty"`
	RefundID  *string         `json:"refund_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt string          `json:"created_at"`
}

func ToFeeLogResponse(l percentage.FeeLog) FeeLogResponse {
	return FeeLogResponse{
		ID:        l.ID,
		ProjectID: l.ProjectID,
		ExpenseID: l.ExpenseID,
		PaymentID: l.PaymentID,
		RefundID:  l.RefundID,
		Amount:    l.Amount,
		Rate:      l.Rate,
		CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

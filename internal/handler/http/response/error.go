package response

import (
	"errors"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/contract"
	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/domain/income"
	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/domain/refund"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingUser):
		Unauthorized(w, err.Error())

	// Missing ledger rows
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, account.ErrProjectBalanceNotFound):
		NotFound(w, "Project balance not found")
	case errors.Is(err, percentage.ErrNoActiveFeeRate):
		NotFound(w, "No active fee rate for project")
	case errors.Is(err, income.ErrIncomeNotFound):
		NotFound(w, "Income not found")
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrExpensePaymentNotFound):
		NotFound(w, "Expense payment not found")
	case errors.Is(err, refund.ErrRefundNotFound):
		NotFound(w, "Refund not found")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrContractPaymentNotFound):
		NotFound(w, "Contract payment not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrEmployeeAccountNotFound):
		NotFound(w, "Employee account not found")

	// Business-rule conflicts
	case errors.Is(err, account.ErrInsufficientBalance):
		Conflict(w, "Insufficient account balance")
	case errors.Is(err, percentage.ErrAmbiguousRate):
		Conflict(w, "More than one active fee rate for project")
	case errors.Is(err, income.ErrProjectMismatch):
		Conflict(w, "Income does not belong to project")
	case errors.Is(err, expense.ErrProjectMismatch):
		Conflict(w, "Expense does not belong to project")
	case errors.Is(err, refund.ErrProjectMismatch):
		Conflict(w, "Refund does not belong to project")
	case errors.Is(err, refund.ErrLedgerIncomplete):
		Conflict(w, err.Error())
	case errors.Is(err, contract.ErrPaymentAlreadyApproved):
		Conflict(w, "Contract payment already approved")
	case errors.Is(err, payroll.ErrPayrollAlreadyAccepted):
		Conflict(w, "Payroll record already accepted")
	case errors.Is(err, expense.ErrExpenseAlreadyPaid):
		Conflict(w, "Expense already fully paid")

	// Default: the store rejected something for reasons opaque to us
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

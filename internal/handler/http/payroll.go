package http

import (
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	AcceptPayment(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) AcceptPayment(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payrollID := chi.URLParam(r, "payrollID")
	if payrollID == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Accept(r.Context(), payrollID, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll payment accepted", result)
}

func (h *payrollHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/expense"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	CreateExpense(w http.ResponseWriter, r *http.Request)
	GetExpense(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
	PayExpense(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{expenseService: expenseService}
}

func (h *expenseHandlerImpl) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")

	result, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created", result)
}

func (h *expenseHandlerImpl) GetExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "expenseID")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	result, err := h.expenseService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *expenseHandlerImpl) ListExpenses(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	result, err := h.expenseService.ListByProject(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *expenseHandlerImpl) PayExpense(w http.ResponseWriter, r *http.Request) {
	var req expense.PayExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")
	req.ExpenseID = chi.URLParam(r, "expenseID")

	result, err := h.expenseService.ProcessPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense payment processed", result)
}

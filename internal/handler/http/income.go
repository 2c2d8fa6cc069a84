package http

import (
	"encoding/json"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/income"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type IncomeHandler interface {
	AddIncome(w http.ResponseWriter, r *http.Request)
	DeleteIncome(w http.ResponseWriter, r *http.Request)
	ListIncomes(w http.ResponseWriter, r *http.Request)
}

type incomeHandlerImpl struct {
	incomeService income.IncomeService
}

func NewIncomeHandler(incomeService income.IncomeService) IncomeHandler {
	return &incomeHandlerImpl{incomeService: incomeService}
}

func (h *incomeHandlerImpl) AddIncome(w http.ResponseWriter, r *http.Request) {
	var req income.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")

	result, err := h.incomeService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Income recorded", result)
}

func (h *incomeHandlerImpl) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	incomeID := chi.URLParam(r, "incomeID")
	if projectID == "" || incomeID == "" {
		response.BadRequest(w, "Project ID and income ID are required", nil)
		return
	}

	if err := h.incomeService.Delete(r.Context(), projectID, incomeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Income deleted", nil)
}

func (h *incomeHandlerImpl) ListIncomes(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	result, err := h.incomeService.ListByProject(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

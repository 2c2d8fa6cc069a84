package http

import (
	"encoding/json"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/refund"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RefundHandler interface {
	CreateRefund(w http.ResponseWriter, r *http.Request)
	DeleteRefund(w http.ResponseWriter, r *http.Request)
	ListRefunds(w http.ResponseWriter, r *http.Request)
}

type refundHandlerImpl struct {
	refundService refund.RefundService
}

func NewRefundHandler(refundService refund.RefundService) RefundHandler {
	return &refundHandlerImpl{refundService: refundService}
}

func (h *refundHandlerImpl) CreateRefund(w http.ResponseWriter, r *http.Request) {
	var req refund.CreateRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "projectID")

	result, err := h.refundService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Refund recorded", result)
}

func (h *refundHandlerImpl) DeleteRefund(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	refundID := chi.URLParam(r, "refundID")
	if projectID == "" || refundID == "" {
		response.BadRequest(w, "Project ID and refund ID are required", nil)
		return
	}

	if err := h.refundService.Delete(r.Context(), projectID, refundID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Refund deleted", nil)
}

func (h *refundHandlerImpl) ListRefunds(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	result, err := h.refundService.ListByProject(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/auth"
	"github.com/emaar-erp/erp-backend-go/internal/domain/contract"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ContractHandler interface {
	AcceptPayment(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &contractHandlerImpl{contractService: contractService}
}

func (h *contractHandlerImpl) AcceptPayment(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req contract.AcceptPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PaymentID = chi.URLParam(r, "paymentID")

	result, err := h.contractService.AcceptPayment(r.Context(), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract payment accepted", result)
}

package http

import (
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/domain/project"
	"github.com/emaar-erp/erp-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	ListFeeLogs(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

func (h *projectHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	currency := r.URL.Query().Get("currency")
	if projectID == "" || currency == "" {
		response.BadRequest(w, "Project ID and currency are required", nil)
		return
	}

	result, err := h.projectService.GetBalance(r.Context(), projectID, currency)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *projectHandlerImpl) ListFeeLogs(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	result, err := h.projectService.ListFeeLogs(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

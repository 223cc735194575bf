package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Agency-Synapse/workflows-project/internal/infra/http/middleware"
	"github.com/Agency-Synapse/workflows-project/internal/usecase"
)

type WorkflowsHandler struct {
	LoadUC *usecase.LoadWorkflowsUseCase
}

func NewWorkflowsHandler(uc *usecase.LoadWorkflowsUseCase) *WorkflowsHandler {
	return &WorkflowsHandler{LoadUC: uc}
}

type workflowsResponse struct {
	Success   bool                    `json:"success"`
	Lead      *usecase.GatedLead      `json:"lead,omitempty"`
	Workflows []usecase.GatedWorkflow `json:"workflows,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

// HandleList serves the gated library. The token travels as a query
// parameter, same as on the page route.
func (h *WorkflowsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	output, err := h.LoadUC.Execute(r.Context(), token)
	if err != nil {
		writeWorkflowsError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workflowsResponse{
		Success:   true,
		Lead:      &output.Lead,
		Workflows: output.Workflows,
	})
}

func (h *WorkflowsHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	filename := chi.URLParam(r, "filename")

	data, err := h.LoadUC.Download(r.Context(), token, filename)
	if err != nil {
		middleware.RecordWorkflowDownload("error")
		writeWorkflowsError(w, err)
		return
	}

	middleware.RecordWorkflowDownload("ok")

	contentType := "application/octet-stream"
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		contentType = "application/json"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeWorkflowsError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if usecase.IsDomainError(err) {
		domainErr = err.(*usecase.DomainError)
	}

	switch {
	case domainErr != nil && domainErr.Code == usecase.CodeInvalidToken:
		writeJSON(w, http.StatusUnauthorized, workflowsResponse{Success: false, Error: err.Error()})
	case domainErr != nil && domainErr.Code == usecase.CodeObjectNotFound:
		writeJSON(w, http.StatusNotFound, workflowsResponse{Success: false, Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, workflowsResponse{
			Success: false,
			Error:   "Erreur inconnue. Réessaie dans quelques secondes.",
		})
	}
}

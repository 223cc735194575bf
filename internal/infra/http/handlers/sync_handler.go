package handlers

import (
	"fmt"
	"net/http"

	"github.com/Agency-Synapse/workflows-project/internal/infra/http/middleware"
	"github.com/Agency-Synapse/workflows-project/internal/usecase"
)

type SyncHandler struct {
	SyncUC *usecase.SyncWorkflowsUseCase
	MetaUC *usecase.SyncMetadataUseCase
}

func NewSyncHandler(syncUC *usecase.SyncWorkflowsUseCase, metaUC *usecase.SyncMetadataUseCase) *SyncHandler {
	return &SyncHandler{SyncUC: syncUC, MetaUC: metaUC}
}

type syncResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Added     int                      `json:"added"`
	Skipped   int                      `json:"skipped"`
	Workflows []usecase.SyncedWorkflow `json:"workflows"`
	Error     string                   `json:"error,omitempty"`
}

// HandleSync triggers one bucket-to-table reconciliation run.
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	output, err := h.SyncUC.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	middleware.RecordWorkflowsSynced(output.Added)

	message := fmt.Sprintf("Synchronisation terminée : %d ajoutés, %d ignorés", output.Added, output.Skipped)
	if output.Added == 0 && output.Skipped == 0 {
		message = "Aucun fichier JSON/MD valide trouvé dans le bucket"
	}

	workflows := output.Workflows
	if workflows == nil {
		workflows = []usecase.SyncedWorkflow{}
	}

	writeJSON(w, http.StatusOK, syncResponse{
		Success:   true,
		Message:   message,
		Added:     output.Added,
		Skipped:   output.Skipped,
		Workflows: workflows,
	})
}

type syncMetaResponse struct {
	Success bool   `json:"success"`
	Updated int    `json:"updated"`
	Errors  int    `json:"errors"`
	Error   string `json:"error,omitempty"`
}

// HandleSyncMeta backfills missing names/descriptions on existing rows.
func (h *SyncHandler) HandleSyncMeta(w http.ResponseWriter, r *http.Request) {
	output, err := h.MetaUC.Execute(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, syncMetaResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, syncMetaResponse{
		Success: true,
		Updated: output.Updated,
		Errors:  output.Errors,
	})
}

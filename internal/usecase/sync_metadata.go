package usecase

import (
	"context"
	"log"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
)

type SyncMetadataOutput struct {
	Updated int
	Errors  int
}

// SyncMetadataUseCase backfills name/description on catalog rows where they
// are missing. Rows that already carry both fields are never touched.
type SyncMetadataUseCase struct {
	Repo entity.WorkflowRepositoryInterface
}

func NewSyncMetadataUseCase(repo entity.WorkflowRepositoryInterface) *SyncMetadataUseCase {
	return &SyncMetadataUseCase{Repo: repo}
}

func (uc *SyncMetadataUseCase) Execute(ctx context.Context) (*SyncMetadataOutput, error) {
	workflows, err := uc.Repo.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "loading workflows failed: " + err.Error(),
		}
	}

	out := &SyncMetadataOutput{}

	for _, wf := range workflows {
		if wf.Name != "" && wf.Description != "" {
			continue
		}

		meta := ResolveWorkflowMeta(wf.JSONFilename)

		name := wf.Name
		if name == "" {
			name = meta.Name
		}
		description := wf.Description
		if description == "" {
			description = meta.Description
		}

		if err := uc.Repo.UpdateMeta(ctx, wf.ID, name, description); err != nil {
			log.Printf("❌ meta sync failed for %s: %v", wf.JSONFilename, err)
			out.Errors++
			continue
		}
		out.Updated++
	}

	log.Printf("📊 Meta sync done: %d updated, %d errors", out.Updated, out.Errors)
	return out, nil
}

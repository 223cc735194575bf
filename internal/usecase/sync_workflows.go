package usecase

import (
	"context"
	"log"
	"regexp"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
	"github.com/Agency-Synapse/workflows-project/internal/infra/integration/supabase"
)

var screenshotExtPattern = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|webp)$`)

type SyncedWorkflow struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

type SyncWorkflowsOutput struct {
	Added     int
	Skipped   int
	Workflows []SyncedWorkflow
}

// SyncWorkflowsUseCase reconciles the workflows-json bucket against the
// workflows table: every valid object without a catalog row gets one, with
// metadata resolved from the filename and a stem-matched screenshot.
type SyncWorkflowsUseCase struct {
	Storage StorageGateway
	Repo    entity.WorkflowRepositoryInterface
}

func NewSyncWorkflowsUseCase(storage StorageGateway, repo entity.WorkflowRepositoryInterface) *SyncWorkflowsUseCase {
	return &SyncWorkflowsUseCase{Storage: storage, Repo: repo}
}

func (uc *SyncWorkflowsUseCase) Execute(ctx context.Context) (*SyncWorkflowsOutput, error) {
	log.Println("🔄 Workflow sync started")

	// 1. List the bucket, keep only real JSON/MD files.
	objects, err := uc.Storage.ListObjects(ctx, supabase.WorkflowsBucket)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeStorageError,
			Message: "bucket listing failed: " + err.Error(),
		}
	}

	var validFiles []supabase.ObjectInfo
	for _, obj := range objects {
		if obj.Name == "" || obj.Name == ".emptyFolderPlaceholder" {
			continue
		}
		if !workflowExtPattern.MatchString(obj.Name) {
			continue
		}
		validFiles = append(validFiles, obj)
	}

	if len(validFiles) == 0 {
		log.Printf("📭 No valid JSON/MD file in the bucket (%d raw entries)", len(objects))
		return &SyncWorkflowsOutput{}, nil
	}

	// 2. Existing catalog rows.
	existing, err := uc.Repo.ListFilenames(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "reading existing workflows failed: " + err.Error(),
		}
	}

	existingFilenames := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingFilenames[name] = true
	}

	// 3. Screenshots, indexed by filename stem. A listing failure here only
	// costs the thumbnails, not the sync.
	screenshotByStem := make(map[string]string)
	screenshots, err := uc.Storage.ListObjects(ctx, supabase.ScreenshotsBucket)
	if err != nil {
		log.Printf("⚠️ screenshot bucket listing failed, syncing without screenshots: %v", err)
	} else {
		for _, shot := range screenshots {
			stem := screenshotExtPattern.ReplaceAllString(shot.Name, "")
			screenshotByStem[stem] = shot.Name
		}
	}

	// 4. Stage the missing rows, in listing order.
	var (
		staged  []*entity.Workflow
		skipped int
	)

	for _, file := range validFiles {
		if existingFilenames[file.Name] {
			skipped++
			continue
		}

		meta := ResolveWorkflowMeta(file.Name)
		stem := workflowExtPattern.ReplaceAllString(file.Name, "")

		screenshot := screenshotByStem[stem]
		if screenshot == "" {
			log.Printf("⚠️ no screenshot for: %s", file.Name)
		}

		staged = append(staged, &entity.Workflow{
			JSONFilename:       file.Name,
			ScreenshotFilename: screenshot,
			Name:               meta.Name,
			Description:        meta.Description,
		})
	}

	// 5. One bulk insert; no partial commit. Re-running after a failure is
	// safe, the dedup read above keeps the operation idempotent.
	if len(staged) > 0 {
		if err := uc.Repo.BulkInsert(ctx, staged); err != nil {
			return nil, &TechnicalError{
				Code:    CodeDatabaseError,
				Message: "inserting workflows failed: " + err.Error(),
			}
		}
	}

	out := &SyncWorkflowsOutput{
		Added:   len(staged),
		Skipped: skipped,
	}
	for _, wf := range staged {
		out.Workflows = append(out.Workflows, SyncedWorkflow{Name: wf.Name, Filename: wf.JSONFilename})
	}

	log.Printf("✅ Workflow sync done: %d added, %d skipped", out.Added, out.Skipped)
	return out, nil
}

package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
	"github.com/Agency-Synapse/workflows-project/internal/infra/integration/supabase"
)

type GatedLead struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type GatedWorkflow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	JSONFilename  string `json:"json_filename"`
	DownloadURL   string `json:"download_url"`
	ScreenshotURL string `json:"screenshot_url,omitempty"`
}

type LoadWorkflowsOutput struct {
	Lead      GatedLead       `json:"lead"`
	Workflows []GatedWorkflow `json:"workflows"`
}

// LoadWorkflowsUseCase is the gated library view: the token resolves to a
// lead, the catalog comes back newest first with derived public URLs.
type LoadWorkflowsUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Workflows entity.WorkflowRepositoryInterface
	Storage   StorageGateway
}

func NewLoadWorkflowsUseCase(
	leads entity.LeadRepositoryInterface,
	workflows entity.WorkflowRepositoryInterface,
	storage StorageGateway,
) *LoadWorkflowsUseCase {
	return &LoadWorkflowsUseCase{Leads: leads, Workflows: workflows, Storage: storage}
}

func (uc *LoadWorkflowsUseCase) Execute(ctx context.Context, token string) (*LoadWorkflowsOutput, error) {
	lead, err := uc.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	workflows, err := uc.Workflows.ListAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "loading workflows failed: " + err.Error(),
		}
	}

	out := &LoadWorkflowsOutput{
		Lead: GatedLead{
			FirstName: lead.FirstName,
			LastName:  lead.LastName,
			Email:     lead.Email,
		},
	}

	for _, wf := range workflows {
		gated := GatedWorkflow{
			ID:           wf.ID,
			Name:         wf.Name,
			Description:  wf.Description,
			JSONFilename: wf.JSONFilename,
			DownloadURL:  uc.Storage.PublicURL(supabase.WorkflowsBucket, wf.JSONFilename),
		}
		if wf.ScreenshotFilename != "" {
			gated.ScreenshotURL = uc.Storage.PublicURL(supabase.ScreenshotsBucket, wf.ScreenshotFilename)
		}
		out.Workflows = append(out.Workflows, gated)
	}

	return out, nil
}

// Download streams one workflow file after re-checking the token. A missing
// object fails this entry only, the rest of the library is unaffected.
func (uc *LoadWorkflowsUseCase) Download(ctx context.Context, token, filename string) ([]byte, error) {
	if _, err := uc.resolveToken(ctx, token); err != nil {
		return nil, err
	}

	data, err := uc.Storage.Download(ctx, supabase.WorkflowsBucket, filename)
	if err != nil {
		if errors.Is(err, supabase.ErrObjectNotFound) {
			return nil, &DomainError{
				Code:    CodeObjectNotFound,
				Message: "Fichier introuvable : " + filename,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeStorageError,
			Message: "download failed: " + err.Error(),
		}
	}

	return data, nil
}

func (uc *LoadWorkflowsUseCase) resolveToken(ctx context.Context, token string) (*entity.Lead, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &DomainError{
			Code:    CodeInvalidToken,
			Message: "Token manquant. Revenez à la page d'accueil pour obtenir un accès.",
		}
	}

	lead, err := uc.Leads.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &DomainError{
				Code:    CodeInvalidToken,
				Message: "Token invalide ou expiré. Merci de repasser par le formulaire.",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "token lookup failed: " + err.Error(),
		}
	}

	return lead, nil
}

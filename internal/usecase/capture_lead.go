package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
	"github.com/Agency-Synapse/workflows-project/internal/infra/queue"
)

// EarlyAccessAnswer is the interesse_saas option that flags a hot lead.
const EarlyAccessAnswer = "Oui, carrément ! Préviens-moi en premier 🔥"

type CaptureLeadInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Statut        string `json:"statut"`
	Objectif      string `json:"objectif"`
	CAMensuel     string `json:"ca_mensuel"`
	InteresseSaaS string `json:"interesse_saas"`
}

type CaptureLeadOutput struct {
	Token    string `json:"token"`
	Existing bool   `json:"existing"`
}

type CaptureLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Producer QueueProducerInterface
}

func NewCaptureLeadUseCase(repo entity.LeadRepositoryInterface, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Repo: repo, Producer: producer}
}

// Execute validates the qualification form, persists the lead keyed by a
// fresh access token and returns the token. A visitor re-submitting with the
// same email gets the token of the existing record back (chosen duplicate
// policy, see DESIGN.md).
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: errMsg,
		}
	}

	lead := entity.NewLead(
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
		strings.ToLower(strings.TrimSpace(input.Email)),
		input.Statut,
		input.Objectif,
		input.CAMensuel,
		input.InteresseSaaS,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			existing, findErr := uc.Repo.FindByEmail(ctx, lead.Email)
			if findErr != nil {
				return nil, &TechnicalError{
					Code:    CodeDatabaseError,
					Message: "email already registered but token lookup failed: " + findErr.Error(),
				}
			}
			return &CaptureLeadOutput{Token: existing.AccessToken, Existing: true}, nil
		}

		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	if lead.InteresseSaaS == EarlyAccessAnswer {
		log.Printf("🔥 EARLY ACCESS LEAD: %s (%s, %s)", lead.Email, lead.Statut, lead.CAMensuel)
	}

	if uc.Producer != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:      lead.ID,
			FirstName:   lead.FirstName,
			Email:       lead.Email,
			AccessToken: lead.AccessToken,
		}
		if err := uc.Producer.PublishLeadCaptured(ctx, payload); err != nil {
			// The token is already persisted, the visitor gets access either
			// way; the follow-up email is best effort.
			log.Printf("⚠️ failed to publish lead-captured event: %v", err)
		}
	}

	return &CaptureLeadOutput{Token: lead.AccessToken}, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
)

func TestSyncMetadataBackfillsMissingFields(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockWorkflowRepository)
	mockRepo.On("ListAll", ctx).Return([]*entity.Workflow{
		{ID: "1", JSONFilename: "lead-gen.json", Name: "Lead Gen LinkedIn", Description: "déjà renseignée"},
		{ID: "2", JSONFilename: "pipeline.json"},
		{ID: "3", JSONFilename: "seo-digest.json", Name: "Nom custom"},
	}, nil)

	// Empty fields get the resolved value; a curated name is never overwritten
	mockRepo.On("UpdateMeta", ctx, "2", "Pipeline", "Workflow d'automatisation n8n prêt à l'emploi.").Return(nil)
	mockRepo.On("UpdateMeta", ctx, "3", "Nom custom", "Workflow d'optimisation SEO et génération de contenu automatique.").Return(nil)

	uc := NewSyncMetadataUseCase(mockRepo)
	output, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Updated)
	assert.Equal(t, 0, output.Errors)
	// Row 1 already complete, never touched
	mockRepo.AssertNotCalled(t, "UpdateMeta", ctx, "1", mock.Anything, mock.Anything)
}

func TestSyncMetadataCountsUpdateFailures(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockWorkflowRepository)
	mockRepo.On("ListAll", ctx).Return([]*entity.Workflow{
		{ID: "1", JSONFilename: "a.json"},
		{ID: "2", JSONFilename: "b.json"},
	}, nil)

	mockRepo.On("UpdateMeta", ctx, "1", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	mockRepo.On("UpdateMeta", ctx, "2", mock.Anything, mock.Anything).Return(nil)

	uc := NewSyncMetadataUseCase(mockRepo)
	output, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 1, output.Updated)
	assert.Equal(t, 1, output.Errors)
}

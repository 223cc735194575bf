package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
	"github.com/Agency-Synapse/workflows-project/internal/usecase"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) FindByToken(ctx context.Context, token string) (*entity.Lead, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func postLead(t *testing.T, handler *LeadHandler, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader(jsonBody))
	rec := httptest.NewRecorder()
	handler.HandleCapture(rec, req)
	return rec
}

func leadBody() map[string]string {
	return map[string]string{
		"first_name":     "Alex",
		"last_name":      "Martin",
		"email":          "alex@gmail.com",
		"statut":         "⚙️ J'utilise n8n régulièrement (agence/perso)",
		"objectif":       "Mes workflows bug tout le temps, je perds du temps",
		"ca_mensuel":     "1000€ - 5000€/mois",
		"interesse_saas": "Peut-être, ça dépend du prix",
	}
}

func TestHandleCaptureCreated(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewLeadHandler(usecase.NewCaptureLeadUseCase(repo, nil))
	rec := postLead(t, handler, leadBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CaptureLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestHandleCaptureValidationFailure(t *testing.T) {
	repo := new(mockLeadRepo)

	body := leadBody()
	body["email"] = "not-an-email"

	handler := NewLeadHandler(usecase.NewCaptureLeadUseCase(repo, nil))
	rec := postLead(t, handler, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp CaptureLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "email")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCaptureDuplicateEmailReturnsExistingToken(t *testing.T) {
	repo := new(mockLeadRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)
	repo.On("FindByEmail", mock.Anything, "alex@gmail.com").Return(&entity.Lead{
		Email:       "alex@gmail.com",
		AccessToken: "prior-token",
	}, nil)

	handler := NewLeadHandler(usecase.NewCaptureLeadUseCase(repo, nil))
	rec := postLead(t, handler, leadBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CaptureLeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "prior-token", resp.Token)
}

func TestHandleCaptureInvalidJSON(t *testing.T) {
	repo := new(mockLeadRepo)
	handler := NewLeadHandler(usecase.NewCaptureLeadUseCase(repo, nil))

	req := httptest.NewRequest("POST", "/api/leads", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.HandleCapture(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

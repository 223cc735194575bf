package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
	"github.com/Agency-Synapse/workflows-project/internal/infra/integration/supabase"
	"github.com/Agency-Synapse/workflows-project/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByToken(ctx context.Context, token string) (*entity.Lead, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockWorkflowRepository
type MockWorkflowRepository struct {
	mock.Mock
}

func (m *MockWorkflowRepository) ListFilenames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWorkflowRepository) ListAll(ctx context.Context) ([]*entity.Workflow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) BulkInsert(ctx context.Context, workflows []*entity.Workflow) error {
	args := m.Called(ctx, workflows)
	return args.Error(0)
}

func (m *MockWorkflowRepository) UpdateMeta(ctx context.Context, id, name, description string) error {
	args := m.Called(ctx, id, name, description)
	return args.Error(0)
}

// MockStorageGateway
type MockStorageGateway struct {
	mock.Mock
}

func (m *MockStorageGateway) ListObjects(ctx context.Context, bucket string) ([]supabase.ObjectInfo, error) {
	args := m.Called(ctx, bucket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]supabase.ObjectInfo), args.Error(1)
}

func (m *MockStorageGateway) PublicURL(bucket, filename string) string {
	args := m.Called(bucket, filename)
	return args.String(0)
}

func (m *MockStorageGateway) Download(ctx context.Context, bucket, filename string) ([]byte, error) {
	args := m.Called(ctx, bucket, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

package usecase

import (
	"context"

	"github.com/Agency-Synapse/workflows-project/internal/infra/integration/supabase"
	"github.com/Agency-Synapse/workflows-project/internal/infra/queue"
)

// StorageGateway is what the usecases need from Supabase Storage.
type StorageGateway interface {
	ListObjects(ctx context.Context, bucket string) ([]supabase.ObjectInfo, error)
	PublicURL(bucket, filename string) string
	Download(ctx context.Context, bucket, filename string) ([]byte, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

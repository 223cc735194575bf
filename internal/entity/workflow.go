package entity

import (
	"context"
	"time"
)

// Workflow is one downloadable file of the library: a JSON/MD object in the
// bucket plus its display metadata and optional screenshot.
type Workflow struct {
	ID                 string    `json:"id"`
	JSONFilename       string    `json:"json_filename"`
	ScreenshotFilename string    `json:"screenshot_filename,omitempty"` // empty = no screenshot
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type WorkflowRepositoryInterface interface {
	ListFilenames(ctx context.Context) ([]string, error)
	ListAll(ctx context.Context) ([]*Workflow, error)
	BulkInsert(ctx context.Context, workflows []*Workflow) error
	UpdateMeta(ctx context.Context, id, name, description string) error
}

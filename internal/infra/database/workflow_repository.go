package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
)

type WorkflowRepository struct {
	DB *sql.DB
}

func NewWorkflowRepository(db *sql.DB) *WorkflowRepository {
	return &WorkflowRepository{DB: db}
}

// ListFilenames returns every json_filename already present in the catalog.
// Single bulk read, the corpus is capped at the bucket page size anyway.
func (r *WorkflowRepository) ListFilenames(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT json_filename FROM workflows`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filenames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		filenames = append(filenames, name)
	}

	return filenames, rows.Err()
}

func (r *WorkflowRepository) ListAll(ctx context.Context) ([]*entity.Workflow, error) {
	query := `
		SELECT id, json_filename, screenshot_filename, name, description, updated_at
		FROM workflows
		ORDER BY updated_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []*entity.Workflow
	for rows.Next() {
		var wf entity.Workflow
		var screenshot, name, description sql.NullString

		err := rows.Scan(
			&wf.ID,
			&wf.JSONFilename,
			&screenshot,
			&name,
			&description,
			&wf.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		wf.ScreenshotFilename = screenshot.String
		wf.Name = name.String
		wf.Description = description.String
		workflows = append(workflows, &wf)
	}

	return workflows, rows.Err()
}

// BulkInsert writes all staged rows in a single statement. The unique
// constraint on json_filename is the authoritative dedup gate.
func (r *WorkflowRepository) BulkInsert(ctx context.Context, workflows []*entity.Workflow) error {
	if len(workflows) == 0 {
		return nil
	}

	var (
		placeholders []string
		args         []interface{}
	)

	for i, wf := range workflows {
		base := i * 4
		placeholders = append(placeholders, fmt.Sprintf("(gen_random_uuid(), $%d, $%d, $%d, $%d, NOW())",
			base+1, base+2, base+3, base+4))
		args = append(args,
			wf.JSONFilename,
			nullString(wf.ScreenshotFilename),
			wf.Name,
			wf.Description,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO workflows (id, json_filename, screenshot_filename, name, description, updated_at)
		VALUES %s
	`, strings.Join(placeholders, ", "))

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk insert workflows: %w", err)
	}

	return nil
}

func (r *WorkflowRepository) UpdateMeta(ctx context.Context, id, name, description string) error {
	query := `UPDATE workflows SET name = $1, description = $2, updated_at = NOW() WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, name, description, id)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

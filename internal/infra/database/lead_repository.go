package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/Agency-Synapse/workflows-project/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, statut, objectif, ca_mensuel, interesse_saas, access_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Statut,
		lead.Objectif,
		lead.CAMensuel,
		lead.InteresseSaaS,
		lead.AccessToken,
		lead.CreatedAt,
	)

	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			// 23505 = unique_violation (email column)
			if pgErr.Code == "23505" {
				return entity.ErrEmailAlreadyExists
			}
		}

		log.Printf("❌ lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByToken(ctx context.Context, token string) (*entity.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, statut, objectif, ca_mensuel, interesse_saas, access_token, created_at
		FROM leads
		WHERE access_token = $1
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, token))
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, statut, objectif, ca_mensuel, interesse_saas, access_token, created_at
		FROM leads
		WHERE email = $1
		ORDER BY created_at ASC
		LIMIT 1
	`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *LeadRepository) scanOne(row *sql.Row) (*entity.Lead, error) {
	var lead entity.Lead

	err := row.Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Statut,
		&lead.Objectif,
		&lead.CAMensuel,
		&lead.InteresseSaaS,
		&lead.AccessToken,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

// Lead is a visitor captured by the qualification form.
// AccessToken is the opaque bearer credential that opens the workflows page.
type Lead struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Statut        string    `json:"statut"`
	Objectif      string    `json:"objectif"`
	CAMensuel     string    `json:"ca_mensuel"`
	InteresseSaaS string    `json:"interesse_saas"`
	AccessToken   string    `json:"access_token"`
	CreatedAt     time.Time `json:"created_at"`
}

// Factory
func NewLead(firstName, lastName, email, statut, objectif, caMensuel, interesseSaaS string) *Lead {
	return &Lead{
		ID:            uuid.New().String(),
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		Statut:        statut,
		Objectif:      objectif,
		CAMensuel:     caMensuel,
		InteresseSaaS: interesseSaaS,
		AccessToken:   uuid.New().String(),
		CreatedAt:     time.Now(),
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByToken(ctx context.Context, token string) (*Lead, error)
	FindByEmail(ctx context.Context, email string) (*Lead, error)
}

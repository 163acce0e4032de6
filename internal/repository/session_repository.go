package repository

import (
	"context"

	"github.com/fadilmartias/lead-scorer/internal/model"
)

const DefaultSessionID = "default"

const (
	kindOffer   = "offer"
	kindLeads   = "leads"
	kindResults = "results"
)

// SessionRepository holds the current offer, lead batch and result batch of a
// session. Each slot is replaced wholesale; missing slots read back as nil/empty
// without an error.
type SessionRepository interface {
	GetOffer(ctx context.Context, sessionID string) (*model.Offer, error)
	SaveOffer(ctx context.Context, sessionID string, offer model.Offer) error
	GetLeads(ctx context.Context, sessionID string) ([]model.Lead, error)
	SaveLeads(ctx context.Context, sessionID string, leads []model.Lead) error
	GetResults(ctx context.Context, sessionID string) ([]model.Result, error)
	SaveResults(ctx context.Context, sessionID string, results []model.Result) error
	Close() error
}

package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/fadilmartias/lead-scorer/internal/model"
)

type memorySession struct {
	offer   *model.Offer
	leads   []model.Lead
	results []model.Result
}

// MemorySessionRepository keeps sessions in process memory. Reads return copies
// so callers always work on a consistent snapshot.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*memorySession
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]*memorySession)}
}

func (r *MemorySessionRepository) session(id string) *memorySession {
	s, ok := r.sessions[id]
	if !ok {
		s = &memorySession{}
		r.sessions[id] = s
	}
	return s
}

func (r *MemorySessionRepository) GetOffer(_ context.Context, sessionID string) (*model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.offer == nil {
		return nil, nil
	}
	return cloneOffer(*s.offer), nil
}

func (r *MemorySessionRepository) SaveOffer(_ context.Context, sessionID string, offer model.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).offer = cloneOffer(offer)
	return nil
}

func (r *MemorySessionRepository) GetLeads(_ context.Context, sessionID string) ([]model.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.leads == nil {
		return []model.Lead{}, nil
	}
	return slices.Clone(s.leads), nil
}

func (r *MemorySessionRepository) SaveLeads(_ context.Context, sessionID string, leads []model.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).leads = slices.Clone(leads)
	return nil
}

func (r *MemorySessionRepository) GetResults(_ context.Context, sessionID string) ([]model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.results == nil {
		return []model.Result{}, nil
	}
	return slices.Clone(s.results), nil
}

func (r *MemorySessionRepository) SaveResults(_ context.Context, sessionID string, results []model.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session(sessionID).results = slices.Clone(results)
	return nil
}

func (r *MemorySessionRepository) Close() error {
	return nil
}

func cloneOffer(o model.Offer) *model.Offer {
	return &model.Offer{
		Name:          o.Name,
		ValueProps:    slices.Clone(o.ValueProps),
		IdealUseCases: slices.Clone(o.IdealUseCases),
	}
}

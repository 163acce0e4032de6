package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/rotisserie/eris"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository persists session slots in the session_states table,
// one row per (session_id, kind).
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db}
}

func (r *GormSessionRepository) load(ctx context.Context, sessionID, kind string, dst any) (bool, error) {
	var state model.SessionState
	err := r.db.WithContext(ctx).First(&state, "session_id = ? AND kind = ?", sessionID, kind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "gorm: load %s", kind)
	}
	if err := json.Unmarshal(state.Payload, dst); err != nil {
		return false, eris.Wrapf(err, "gorm: decode %s", kind)
	}
	return true, nil
}

func (r *GormSessionRepository) store(ctx context.Context, sessionID, kind string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return eris.Wrapf(err, "gorm: encode %s", kind)
	}
	now := time.Now()
	state := model.SessionState{
		SessionID: sessionID,
		Kind:      kind,
		Payload:   datatypes.JSON(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		return eris.Wrapf(err, "gorm: save %s", kind)
	}
	return nil
}

func (r *GormSessionRepository) GetOffer(ctx context.Context, sessionID string) (*model.Offer, error) {
	var offer model.Offer
	found, err := r.load(ctx, sessionID, kindOffer, &offer)
	if err != nil || !found {
		return nil, err
	}
	return &offer, nil
}

func (r *GormSessionRepository) SaveOffer(ctx context.Context, sessionID string, offer model.Offer) error {
	return r.store(ctx, sessionID, kindOffer, offer)
}

func (r *GormSessionRepository) GetLeads(ctx context.Context, sessionID string) ([]model.Lead, error) {
	leads := []model.Lead{}
	if _, err := r.load(ctx, sessionID, kindLeads, &leads); err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []model.Lead{}
	}
	return leads, nil
}

func (r *GormSessionRepository) SaveLeads(ctx context.Context, sessionID string, leads []model.Lead) error {
	return r.store(ctx, sessionID, kindLeads, leads)
}

func (r *GormSessionRepository) GetResults(ctx context.Context, sessionID string) ([]model.Result, error) {
	results := []model.Result{}
	if _, err := r.load(ctx, sessionID, kindResults, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.Result{}
	}
	return results, nil
}

func (r *GormSessionRepository) SaveResults(ctx context.Context, sessionID string, results []model.Result) error {
	return r.store(ctx, sessionID, kindResults, results)
}

func (r *GormSessionRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

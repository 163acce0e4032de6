package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

const redisKeyPrefix = "leadscore"

// RedisSessionRepository stores each slot as a JSON string under
// leadscore:<session>:<kind>. A zero ttl keeps keys until overwritten.
type RedisSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionRepository(rdb *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func redisKey(sessionID, kind string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, sessionID, kind)
}

func (r *RedisSessionRepository) get(ctx context.Context, sessionID, kind string, dst any) (bool, error) {
	raw, err := r.rdb.Get(ctx, redisKey(sessionID, kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrapf(err, "redis: get %s", kind)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, eris.Wrapf(err, "redis: decode %s", kind)
	}
	return true, nil
}

func (r *RedisSessionRepository) set(ctx context.Context, sessionID, kind string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return eris.Wrapf(err, "redis: encode %s", kind)
	}
	if err := r.rdb.Set(ctx, redisKey(sessionID, kind), raw, r.ttl).Err(); err != nil {
		return eris.Wrapf(err, "redis: set %s", kind)
	}
	return nil
}

func (r *RedisSessionRepository) GetOffer(ctx context.Context, sessionID string) (*model.Offer, error) {
	var offer model.Offer
	found, err := r.get(ctx, sessionID, kindOffer, &offer)
	if err != nil || !found {
		return nil, err
	}
	return &offer, nil
}

func (r *RedisSessionRepository) SaveOffer(ctx context.Context, sessionID string, offer model.Offer) error {
	return r.set(ctx, sessionID, kindOffer, offer)
}

func (r *RedisSessionRepository) GetLeads(ctx context.Context, sessionID string) ([]model.Lead, error) {
	leads := []model.Lead{}
	if _, err := r.get(ctx, sessionID, kindLeads, &leads); err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []model.Lead{}
	}
	return leads, nil
}

func (r *RedisSessionRepository) SaveLeads(ctx context.Context, sessionID string, leads []model.Lead) error {
	return r.set(ctx, sessionID, kindLeads, leads)
}

func (r *RedisSessionRepository) GetResults(ctx context.Context, sessionID string) ([]model.Result, error) {
	results := []model.Result{}
	if _, err := r.get(ctx, sessionID, kindResults, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.Result{}
	}
	return results, nil
}

func (r *RedisSessionRepository) SaveResults(ctx context.Context, sessionID string, results []model.Result) error {
	return r.set(ctx, sessionID, kindResults, results)
}

func (r *RedisSessionRepository) Close() error {
	return r.rdb.Close()
}

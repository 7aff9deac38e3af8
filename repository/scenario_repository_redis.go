package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"acquisition-calc/domain"
)

const (
	defaultRedisPrefix = "dealcalc"
	maxUpdateAttempts  = 3
)

// ScenarioRepositoryRedis keeps each scenario as a JSON string and orders
// them through a sorted set scored by last modification time.
type ScenarioRepositoryRedis struct {
	client *redis.Client
	prefix string

	// afterRead runs between the read and the write of Update; tests use it
	// to interleave a concurrent change.
	afterRead func()
}

func NewScenarioRepositoryRedis(opt *redis.Options, prefix string) *ScenarioRepositoryRedis {
	return NewScenarioRepositoryRedisWithClient(redis.NewClient(opt), prefix)
}

func NewScenarioRepositoryRedisWithClient(client *redis.Client, prefix string) *ScenarioRepositoryRedis {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &ScenarioRepositoryRedis{client: client, prefix: prefix}
}

func (r *ScenarioRepositoryRedis) key(id string) string {
	return r.prefix + ":scenario:" + id
}

func (r *ScenarioRepositoryRedis) indexKey() string {
	return r.prefix + ":scenarios"
}

func (r *ScenarioRepositoryRedis) Create(
	ctx context.Context,
	scenario domain.BusinessScenario,
) (string, error) {
	now := time.Now().UTC()
	rec := domain.Scenario{
		ID:        uuid.NewString(),
		Scenario:  scenario,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.write(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (r *ScenarioRepositoryRedis) GetByID(ctx context.Context, id string) (domain.Scenario, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Scenario{}, ErrNotFound
	}
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to get scenario: %w", err)
	}

	var rec domain.Scenario
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Scenario{}, fmt.Errorf("failed to decode scenario %s: %w", id, err)
	}
	return rec, nil
}

func (r *ScenarioRepositoryRedis) List(ctx context.Context) ([]domain.ScenarioSummary, error) {
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(ids) == 0 {
		return []domain.ScenarioSummary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	out := make([]domain.ScenarioSummary, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a record; skip it.
			continue
		}
		var rec domain.Scenario
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode scenario %s: %w", ids[i], err)
		}
		out = append(out, rec.Summary())
	}
	return out, nil
}

// Update replaces a stored scenario. The read and the write run under WATCH
// on the record key, so a concurrent Delete either wins and the update
// reports ErrNotFound, or loses and sees the updated record.
func (r *ScenarioRepositoryRedis) Update(
	ctx context.Context,
	id string,
	scenario domain.BusinessScenario,
) error {
	key := r.key(id)
	txf := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get scenario: %w", err)
		}
		var rec domain.Scenario
		if err := json.Unmarshal(b, &rec); err != nil {
			return fmt.Errorf("failed to decode scenario %s: %w", id, err)
		}
		if r.afterRead != nil {
			r.afterRead()
		}

		rec.Scenario = scenario
		rec.UpdatedAt = time.Now().UTC()
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return r.queueWrite(ctx, pipe, rec)
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("failed to update scenario: %w", err)
		}
		return err
	}
	return fmt.Errorf("failed to update scenario %s: key kept changing", id)
}

func (r *ScenarioRepositoryRedis) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScenarioRepositoryRedis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *ScenarioRepositoryRedis) Close() error {
	return r.client.Close()
}

func (r *ScenarioRepositoryRedis) write(ctx context.Context, rec domain.Scenario) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return r.queueWrite(ctx, pipe, rec)
	})
	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

func (r *ScenarioRepositoryRedis) queueWrite(ctx context.Context, pipe redis.Pipeliner, rec domain.Scenario) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	pipe.Set(ctx, r.key(rec.ID), b, 0)
	pipe.ZAdd(ctx, r.indexKey(), redis.Z{
		Score:  float64(rec.UpdatedAt.UnixMicro()),
		Member: rec.ID,
	})
	return nil
}

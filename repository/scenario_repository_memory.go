package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"acquisition-calc/domain"
)

type memoryRecord struct {
	scenario domain.Scenario
	seq      uint64
}

// ScenarioRepositoryMemory is an in-memory implementation of ScenarioRepository.
type ScenarioRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]memoryRecord
	seq  uint64
	now  func() time.Time
}

// NewScenarioRepositoryMemory creates a new in-memory scenario repository.
func NewScenarioRepositoryMemory() *ScenarioRepositoryMemory {
	return &ScenarioRepositoryMemory{
		data: map[string]memoryRecord{},
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *ScenarioRepositoryMemory) Create(
	ctx context.Context,
	scenario domain.BusinessScenario,
) (string, error) {
	_ = ctx
	id := uuid.NewString()
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.data[id] = memoryRecord{
		scenario: domain.Scenario{ID: id, Scenario: scenario, CreatedAt: now, UpdatedAt: now},
		seq:      r.seq,
	}
	return id, nil
}

func (r *ScenarioRepositoryMemory) GetByID(ctx context.Context, id string) (domain.Scenario, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return domain.Scenario{}, ErrNotFound
	}
	return rec.scenario, nil
}

func (r *ScenarioRepositoryMemory) List(ctx context.Context) ([]domain.ScenarioSummary, error) {
	_ = ctx
	r.mu.RLock()
	records := make([]memoryRecord, 0, len(r.data))
	for _, rec := range r.data {
		records = append(records, rec)
	}
	r.mu.RUnlock()

	// seq increases on every write, so it orders ties in the clock too.
	sort.Slice(records, func(i, j int) bool {
		return records[i].seq > records[j].seq
	})

	out := make([]domain.ScenarioSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.scenario.Summary())
	}
	return out, nil
}

func (r *ScenarioRepositoryMemory) Update(
	ctx context.Context,
	id string,
	scenario domain.BusinessScenario,
) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	r.seq++
	rec.scenario.Scenario = scenario
	rec.scenario.UpdatedAt = r.now()
	rec.seq = r.seq
	r.data[id] = rec
	return nil
}

func (r *ScenarioRepositoryMemory) Delete(ctx context.Context, id string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *ScenarioRepositoryMemory) Ping(ctx context.Context) error {
	return nil
}

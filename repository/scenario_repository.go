package repository

import (
	"context"
	"errors"

	"acquisition-calc/domain"
)

// ErrNotFound is returned when no scenario has the requested ID.
var ErrNotFound = errors.New("scenario not found")

// ScenarioRepository persists named scenarios. Updates replace the whole
// record; the last write wins.
type ScenarioRepository interface {
	Create(ctx context.Context, scenario domain.BusinessScenario) (string, error)
	GetByID(ctx context.Context, id string) (domain.Scenario, error)
	// List returns summaries ordered by most recent modification first.
	List(ctx context.Context) ([]domain.ScenarioSummary, error)
	Update(ctx context.Context, id string, scenario domain.BusinessScenario) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

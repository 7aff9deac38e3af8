package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"acquisition-calc/domain"
	"acquisition-calc/repository"
)

// ScenarioService validates scenarios before they reach the store and
// recomputes valuations for stored ones.
type ScenarioService struct {
	repo   repository.ScenarioRepository
	logger *zap.Logger
}

func NewScenarioService(repo repository.ScenarioRepository, logger *zap.Logger) *ScenarioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioService{repo: repo, logger: logger}
}

func normalize(s domain.BusinessScenario) domain.BusinessScenario {
	s.BusinessName = strings.TrimSpace(s.BusinessName)
	return s
}

func (s *ScenarioService) Create(ctx context.Context, scenario domain.BusinessScenario) (string, error) {
	scenario = normalize(scenario)
	if err := ValidateScenario(scenario); err != nil {
		return "", err
	}
	id, err := s.repo.Create(ctx, scenario)
	if err != nil {
		return "", fmt.Errorf("create scenario: %w", err)
	}
	s.logger.Info("scenario created", zap.String("id", id), zap.String("business", scenario.BusinessName))
	return id, nil
}

func (s *ScenarioService) Get(ctx context.Context, id string) (domain.Scenario, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScenarioService) List(ctx context.Context) ([]domain.ScenarioSummary, error) {
	return s.repo.List(ctx)
}

func (s *ScenarioService) Update(ctx context.Context, id string, scenario domain.BusinessScenario) error {
	scenario = normalize(scenario)
	if err := ValidateScenario(scenario); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, scenario); err != nil {
		return err
	}
	s.logger.Info("scenario updated", zap.String("id", id))
	return nil
}

func (s *ScenarioService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("scenario deleted", zap.String("id", id))
	return nil
}

// Valuate loads a stored scenario and recomputes its result.
func (s *ScenarioService) Valuate(ctx context.Context, id string) (domain.Scenario, domain.ValuationResult, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Scenario{}, domain.ValuationResult{}, err
	}
	return rec, Valuate(rec.Scenario), nil
}

func (s *ScenarioService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

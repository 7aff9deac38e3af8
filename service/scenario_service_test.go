package service

import (
	"context"
	"errors"
	"testing"

	"acquisition-calc/domain"
	"acquisition-calc/repository"
)

type MockScenarioRepository struct {
	CreateCalled bool
	UpdateCalled bool
	ForceError   bool
	Saved        domain.BusinessScenario
	Stored       map[string]domain.Scenario
}

func (m *MockScenarioRepository) Create(ctx context.Context, s domain.BusinessScenario) (string, error) {
	m.CreateCalled = true
	if m.ForceError {
		return "", errors.New("save error")
	}
	m.Saved = s
	return "id-1", nil
}

func (m *MockScenarioRepository) GetByID(ctx context.Context, id string) (domain.Scenario, error) {
	rec, ok := m.Stored[id]
	if !ok {
		return domain.Scenario{}, repository.ErrNotFound
	}
	return rec, nil
}

func (m *MockScenarioRepository) List(ctx context.Context) ([]domain.ScenarioSummary, error) {
	return nil, nil
}

func (m *MockScenarioRepository) Update(ctx context.Context, id string, s domain.BusinessScenario) error {
	m.UpdateCalled = true
	if _, ok := m.Stored[id]; !ok {
		return repository.ErrNotFound
	}
	m.Saved = s
	return nil
}

func (m *MockScenarioRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Stored[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Stored, id)
	return nil
}

func (m *MockScenarioRepository) Ping(ctx context.Context) error {
	return nil
}

func TestScenarioService_CreateTrimsAndSaves(t *testing.T) {
	mockRepo := &MockScenarioRepository{}
	svc := NewScenarioService(mockRepo, nil)

	s := domain.DefaultScenario()
	s.BusinessName = "  Harbor Dry Cleaners  "
	id, err := svc.Create(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "id-1" {
		t.Errorf("id=%q", id)
	}
	if mockRepo.Saved.BusinessName != "Harbor Dry Cleaners" {
		t.Errorf("expected trimmed name, got %q", mockRepo.Saved.BusinessName)
	}
}

func TestScenarioService_CreateInvalidSkipsRepository(t *testing.T) {
	mockRepo := &MockScenarioRepository{}
	svc := NewScenarioService(mockRepo, nil)

	s := domain.DefaultScenario()
	s.Price = -5
	_, err := svc.Create(context.Background(), s)

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if mockRepo.CreateCalled {
		t.Errorf("repository Create should NOT be called")
	}
}

func TestScenarioService_CreateWrapsStoreError(t *testing.T) {
	svc := NewScenarioService(&MockScenarioRepository{ForceError: true}, nil)
	if _, err := svc.Create(context.Background(), domain.DefaultScenario()); err == nil {
		t.Fatal("expected error from repository")
	}
}

func TestScenarioService_UpdateMissing(t *testing.T) {
	svc := NewScenarioService(&MockScenarioRepository{Stored: map[string]domain.Scenario{}}, nil)
	err := svc.Update(context.Background(), "nope", domain.DefaultScenario())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
}

func TestScenarioService_ValuateRecomputes(t *testing.T) {
	stored := domain.DefaultScenario()
	stored.PctJuniorDebt = 5
	mockRepo := &MockScenarioRepository{Stored: map[string]domain.Scenario{
		"abc": {ID: "abc", Scenario: stored},
	}}
	svc := NewScenarioService(mockRepo, nil)

	rec, result, err := svc.Valuate(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != "abc" {
		t.Errorf("id=%q", rec.ID)
	}
	if result != Valuate(stored) {
		t.Error("stored valuation should match a fresh computation")
	}

	if _, _, err := svc.Valuate(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
}

func TestScenarioService_WithMemoryRepository(t *testing.T) {
	svc := NewScenarioService(repository.NewScenarioRepositoryMemory(), nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.DefaultScenario())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err=%v want ErrNotFound", err)
	}
}

package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"acquisition-calc/domain"
)

// runRepositoryContract exercises the behaviour every backend must share.
func runRepositoryContract(t *testing.T, repo ScenarioRepository) {
	t.Helper()
	ctx := context.Background()

	first := domain.DefaultScenario()
	first.BusinessName = "Corner Bakery"
	second := domain.DefaultScenario()
	second.BusinessName = "Lakeside Marina"
	second.Price = 2_400_000

	firstID, err := repo.Create(ctx, first)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	secondID, err := repo.Create(ctx, second)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if firstID == "" || firstID == secondID {
		t.Fatalf("expected distinct ids, got %q and %q", firstID, secondID)
	}

	got, err := repo.GetByID(ctx, firstID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Scenario != first {
		t.Errorf("stored scenario mismatch:\n got %+v\nwant %+v", got.Scenario, first)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != secondID || list[1].ID != firstID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	time.Sleep(2 * time.Millisecond)
	first.BusinessName = "Corner Bakery & Cafe"
	first.OptionalSalary = 0
	if err := repo.Update(ctx, firstID, first); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if list[0].ID != firstID || list[0].BusinessName != "Corner Bakery & Cafe" {
		t.Errorf("expected updated scenario first, got %+v", list)
	}

	if err := repo.Update(ctx, "missing", first); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: err=%v want ErrNotFound", err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err=%v want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, secondID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, secondID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err=%v want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, firstID); err != nil {
		t.Fatalf("delete first: %v", err)
	}
	list, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

func TestScenarioRepositoryMemory_Contract(t *testing.T) {
	runRepositoryContract(t, NewScenarioRepositoryMemory())
}

func TestScenarioRepositoryMemory_OrdersByModificationWithFrozenClock(t *testing.T) {
	repo := NewScenarioRepositoryMemory()
	frozen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return frozen }
	ctx := context.Background()

	a, _ := repo.Create(ctx, domain.DefaultScenario())
	b, _ := repo.Create(ctx, domain.DefaultScenario())
	if err := repo.Update(ctx, a, domain.DefaultScenario()); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID != a || list[1].ID != b {
		t.Fatalf("expected [%s %s], got %+v", a, b, list)
	}
}

func TestScenarioRepositoryRedis_Contract(t *testing.T) {
	addr := os.Getenv("DEAL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("DEAL_TEST_REDIS_ADDR not set")
	}
	repo := NewScenarioRepositoryRedis(&redis.Options{Addr: addr}, "dealcalc-test-"+time.Now().Format("150405.000000"))
	defer repo.Close()
	if err := repo.Ping(context.Background()); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	runRepositoryContract(t, repo)
}

func TestScenarioRepositoryRedis_UpdateLosesToConcurrentDelete(t *testing.T) {
	addr := os.Getenv("DEAL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("DEAL_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	repo := NewScenarioRepositoryRedis(&redis.Options{Addr: addr}, "dealcalc-test-"+time.Now().Format("150405.000000"))
	defer repo.Close()
	if err := repo.Ping(ctx); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	id, err := repo.Create(ctx, domain.DefaultScenario())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted := false
	repo.afterRead = func() {
		if deleted {
			return
		}
		deleted = true
		if err := repo.Delete(ctx, id); err != nil {
			t.Errorf("delete: %v", err)
		}
	}

	updated := domain.DefaultScenario()
	updated.BusinessName = "Resurrected"
	if err := repo.Update(ctx, id, updated); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted scenario came back: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty index, got %+v", list)
	}
}

func TestScenarioRepositoryGorm_Contract(t *testing.T) {
	dsn := os.Getenv("DEAL_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DEAL_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pg, err := OpenPostgres(ctx, PostgresOptions{DSN: dsn, MaxConns: 2})
	if err != nil {
		t.Skipf("postgres unreachable: %v", err)
	}
	defer pg.Close()
	if err := pg.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := pg.Gorm.Exec("DELETE FROM scenarios").Error; err != nil {
		t.Fatalf("reset table: %v", err)
	}
	runRepositoryContract(t, NewScenarioRepositoryGorm(pg.Gorm))
}

func TestOpenPostgres_RequiresDSN(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), PostgresOptions{}); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

package badge

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/infrastructure/cache"
	"eyedia/internal/infrastructure/persistence/sqlite/model"
	"eyedia/internal/infrastructure/persistence/sqlite/repository"
	"eyedia/internal/infrastructure/persistence/sqlite/uow"
)

// testFixture wires the service against a throwaway sqlite file with the
// real repositories, unit of work and cache.
type testFixture struct {
	svc *Service
	db  *gorm.DB
}

func setupService(t *testing.T) *testFixture {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "badges.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.BadgeDefinition{},
		&model.Badge{},
		&model.UserBadgeAward{},
		&model.BadgeKV{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	registry, err := domainbadge.NewDefaultRegistry()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}

	svc := NewService(
		repository.NewBadgeDefinitionRepository(db),
		repository.NewBadgeProgressRepository(db),
		repository.NewAwardRepository(db),
		repository.NewUserRepository(db),
		uow.NewUnitOfWork(db),
		registry,
		cache.NewSQLiteCache(db),
	)

	return &testFixture{svc: svc, db: db}
}

func (f *testFixture) freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	f.svc.now = func() time.Time { return at }
}

func (f *testFixture) seedUser(t *testing.T, id uint64, nickname string) {
	t.Helper()
	if _, err := f.svc.RegisterUser(context.Background(), id, nickname); err != nil {
		t.Fatalf("register user %d: %v", id, err)
	}
}

func (f *testFixture) seedDefinition(t *testing.T, def domainbadge.Definition) {
	t.Helper()
	if _, err := f.svc.SyncCatalog(context.Background(), []domainbadge.Definition{def}); err != nil {
		t.Fatalf("sync definition %s: %v", def.Code, err)
	}
}

func (f *testFixture) loadProgress(t *testing.T, userID uint64, code string) domainbadge.Progress {
	t.Helper()
	p, err := f.svc.progress.FindByUserAndCode(context.Background(), userID, code)
	if err != nil {
		t.Fatalf("load progress (%d, %s): %v", userID, code, err)
	}
	return p
}

func (f *testFixture) countAwards(t *testing.T, userID uint64, code string) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(&model.UserBadgeAward{}).
		Where("users_id = ? AND code = ?", userID, code).
		Count(&count).Error; err != nil {
		t.Fatalf("count awards: %v", err)
	}
	return count
}

func countDefinition(code string, goal int, params string) domainbadge.Definition {
	return domainbadge.Definition{
		Code:        code,
		Title:       code + " title",
		Description: code + " description",
		Category:    domainbadge.CategoryCollection,
		Enabled:     true,
		Evaluator:   domainbadge.AggregationCount,
		Event:       domainbadge.EventExhibitionCollected,
		GoalValue:   goal,
		ParamsJSON:  params,
	}
}

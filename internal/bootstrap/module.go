package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"eyedia/internal/bootstrap/config"
	"eyedia/internal/bootstrap/database"
	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	cacheinfra "eyedia/internal/infrastructure/cache"
	sqliterepo "eyedia/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "eyedia/internal/infrastructure/persistence/sqlite/uow"
	"eyedia/internal/ports"
	badgeusecase "eyedia/internal/usecase/badge"
)

// Module wires the badge engine graph. Registry construction runs here, so a
// duplicate evaluator registration fails application start instead of
// surfacing mid-event.
var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(domainbadge.NewDefaultRegistry),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewBadgeDefinitionRepository,
			fx.As(new(ports.BadgeDefinitionRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewBadgeProgressRepository,
			fx.As(new(ports.BadgeProgressRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewAwardRepository,
			fx.As(new(ports.AwardRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewUserRepository,
			fx.As(new(ports.UserDirectory)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(
		fx.Annotate(
			cacheinfra.NewSQLiteCache,
			fx.As(new(ports.Cache)),
		),
	),
	fx.Provide(badgeusecase.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	"eyedia/internal/infrastructure/persistence/sqlite/model"
	"eyedia/internal/ports"
)

type BadgeDefinitionRepository struct {
	db *gorm.DB
}

var _ ports.BadgeDefinitionRepository = (*BadgeDefinitionRepository)(nil)

func NewBadgeDefinitionRepository(db *gorm.DB) *BadgeDefinitionRepository {
	return &BadgeDefinitionRepository{db: db}
}

func (r *BadgeDefinitionRepository) ListEnabled(ctx context.Context) ([]badge.Definition, error) {
	return r.list(ctx, true)
}

func (r *BadgeDefinitionRepository) ListAll(ctx context.Context) ([]badge.Definition, error) {
	return r.list(ctx, false)
}

func (r *BadgeDefinitionRepository) list(ctx context.Context, enabledOnly bool) ([]badge.Definition, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.BadgeDefinition{})
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}

	var rows []model.BadgeDefinition
	if err := query.Order("sort_order asc, id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query badge definitions")
	}

	defs := make([]badge.Definition, 0, len(rows))
	for _, row := range rows {
		def, err := toDefinition(row)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (r *BadgeDefinitionRepository) Upsert(ctx context.Context, def badge.Definition) (badge.Definition, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return badge.Definition{}, err
	}

	row := fromDefinition(def)
	row.ID = 0
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "category", "enabled", "sort_order",
			"evaluator_type", "event_type", "goal_value", "params_json",
			"start_at", "end_at",
		}),
	}).Create(&row).Error; err != nil {
		return badge.Definition{}, errs.Wrap(err, "upsert badge definition")
	}

	var stored model.BadgeDefinition
	if err := db.Where("code = ?", def.Code).Take(&stored).Error; err != nil {
		return badge.Definition{}, errs.Wrap(err, "reload upserted definition")
	}
	return toDefinition(stored)
}

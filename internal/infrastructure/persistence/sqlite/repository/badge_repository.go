package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	"eyedia/internal/infrastructure/persistence/sqlite/model"
	"eyedia/internal/ports"
)

type BadgeProgressRepository struct {
	db *gorm.DB
}

var _ ports.BadgeProgressRepository = (*BadgeProgressRepository)(nil)

func NewBadgeProgressRepository(db *gorm.DB) *BadgeProgressRepository {
	return &BadgeProgressRepository{db: db}
}

func (r *BadgeProgressRepository) FindByUserAndCode(ctx context.Context, userID uint64, code string) (badge.Progress, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return badge.Progress{}, err
	}

	var row model.Badge
	if err := db.Where("users_id = ? AND code = ?", userID, code).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return badge.Progress{}, ports.ErrProgressNotFound
		}
		return badge.Progress{}, errs.Wrap(err, "query badge progress")
	}
	return toProgress(row)
}

func (r *BadgeProgressRepository) Save(ctx context.Context, p badge.Progress) (badge.Progress, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return badge.Progress{}, err
	}

	row := fromProgress(p)
	if err := db.Save(&row).Error; err != nil {
		return badge.Progress{}, errs.Wrap(err, "save badge progress")
	}
	return toProgress(row)
}

func (r *BadgeProgressRepository) ListByUser(ctx context.Context, userID uint64) ([]badge.Progress, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.Badge
	if err := db.Where("users_id = ?", userID).Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query badge progress by user")
	}

	items := make([]badge.Progress, 0, len(rows))
	for _, row := range rows {
		p, err := toProgress(row)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *BadgeProgressRepository) MarkAcknowledged(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return 0, err
	}

	result := db.Model(&model.Badge{}).
		Where("id IN ? AND is_new = ?", ids, true).
		Update("is_new", false)
	if result.Error != nil {
		return 0, errs.Wrap(result.Error, "mark badges acknowledged")
	}
	return result.RowsAffected, nil
}

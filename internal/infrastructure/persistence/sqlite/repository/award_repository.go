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

type AwardRepository struct {
	db *gorm.DB
}

var _ ports.AwardRepository = (*AwardRepository)(nil)

func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

func (r *AwardRepository) Exists(ctx context.Context, userID uint64, code string) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&model.UserBadgeAward{}).
		Where("users_id = ? AND code = ?", userID, code).
		Count(&count).Error; err != nil {
		return false, errs.Wrap(err, "count awards")
	}
	return count > 0, nil
}

// Create inserts the award row. The unique (users_id, code) index plus
// OnConflict DoNothing makes a concurrent duplicate a quiet no-op; the
// second return reports whether this call inserted the row.
func (r *AwardRepository) Create(ctx context.Context, award badge.Award) (bool, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return false, err
	}

	row := model.UserBadgeAward{
		UsersID:        award.UserID,
		Code:           award.Code,
		AchievedAt:     award.AchievedAt.UTC().Format(timeLayout),
		AchievedReason: award.AchievedReason,
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "insert award")
	}
	return result.RowsAffected > 0, nil
}

func (r *AwardRepository) ListByUser(ctx context.Context, userID uint64) ([]badge.Award, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return nil, err
	}

	var rows []model.UserBadgeAward
	if err := db.Where("users_id = ?", userID).Order("id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query awards by user")
	}

	items := make([]badge.Award, 0, len(rows))
	for _, row := range rows {
		award, err := toAward(row)
		if err != nil {
			return nil, err
		}
		items = append(items, award)
	}
	return items, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eyedia/internal/errs"
	"eyedia/internal/infrastructure/persistence/sqlite/model"
	"eyedia/internal/ports"
)

type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserDirectory = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (ports.User, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.User{}, err
	}

	var row model.User
	if err := db.Where("users_id = ?", userID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, ports.ErrUserNotFound
		}
		return ports.User{}, errs.Wrap(err, "query user")
	}

	return ports.User{ID: row.UsersID, Nickname: row.Nickname}, nil
}

func (r *UserRepository) Create(ctx context.Context, user ports.User) (ports.User, error) {
	db, err := dbFromContext(ctx, r.db)
	if err != nil {
		return ports.User{}, err
	}

	row := model.User{
		UsersID:   user.ID,
		Nickname:  user.Nickname,
		CreatedAt: time.Now().UTC().Format(timeLayout),
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.User{}, errs.Wrap(err, "insert user")
	}

	return ports.User{ID: row.UsersID, Nickname: row.Nickname}, nil
}

package ports

import (
	"context"
	"errors"

	"eyedia/internal/domain/badge"
)

var (
	ErrProgressNotFound = errors.New("badge progress not found")
	ErrUserNotFound     = errors.New("user not found")
)

// User is the minimal directory view the engine needs: existence plus a
// display handle. The full user domain lives elsewhere.
type User struct {
	ID       uint64
	Nickname string
}

type BadgeDefinitionRepository interface {
	// ListEnabled returns enabled definitions ordered by sort_order
	// ascending, the deterministic processing order for one event.
	ListEnabled(ctx context.Context) ([]badge.Definition, error)
	ListAll(ctx context.Context) ([]badge.Definition, error)
	// Upsert creates or updates a definition keyed by its stable code.
	Upsert(ctx context.Context, def badge.Definition) (badge.Definition, error)
}

type BadgeProgressRepository interface {
	// FindByUserAndCode returns ErrProgressNotFound when no row exists for
	// the pair; at most one ever does.
	FindByUserAndCode(ctx context.Context, userID uint64, code string) (badge.Progress, error)
	Save(ctx context.Context, p badge.Progress) (badge.Progress, error)
	ListByUser(ctx context.Context, userID uint64) ([]badge.Progress, error)
	// MarkAcknowledged clears the new-badge flag for the given ids where it
	// is still set, returning the number of rows touched.
	MarkAcknowledged(ctx context.Context, ids []uint64) (int64, error)
}

type AwardRepository interface {
	Exists(ctx context.Context, userID uint64, code string) (bool, error)
	// Create inserts the award unless one already exists for the (user,
	// code) pair; the second return is false on that conflict. This is the
	// at-most-once backstop for concurrent or retried delivery.
	Create(ctx context.Context, award badge.Award) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]badge.Award, error)
}

type UserDirectory interface {
	// GetByID returns ErrUserNotFound for unknown users; the engine treats
	// that as a hard referential error.
	GetByID(ctx context.Context, userID uint64) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

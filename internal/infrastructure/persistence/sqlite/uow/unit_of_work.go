package uow

import (
	"context"

	"gorm.io/gorm"

	"eyedia/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork on gorm transactions. Each WithTx
// call opens its own transaction, which gives the badge engine both the
// per-definition commit boundary and the independently committed
// acknowledgment write.
type UnitOfWork struct {
	db *gorm.DB
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ports.WithTxContext(ctx, tx))
	})
}

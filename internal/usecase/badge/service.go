package badge

import (
	"context"
	"fmt"
	"time"

	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/ports"
)

// Cache keys the engine maintains best-effort per user.
const (
	cacheKeyLastEvent      = "badge:last_event:"
	cacheKeyProcessedCount = "badge:processed:"
)

// Service hosts the badge usecases: event processing, summary queries,
// acknowledgment and catalog sync. All persistence goes through the ports.
type Service struct {
	definitions ports.BadgeDefinitionRepository
	progress    ports.BadgeProgressRepository
	awards      ports.AwardRepository
	users       ports.UserDirectory
	uow         ports.UnitOfWork
	registry    *domainbadge.Registry
	cache       ports.Cache

	// now is injectable for deterministic tests.
	now func() time.Time
}

func NewService(
	definitions ports.BadgeDefinitionRepository,
	progress ports.BadgeProgressRepository,
	awards ports.AwardRepository,
	users ports.UserDirectory,
	uow ports.UnitOfWork,
	registry *domainbadge.Registry,
	cache ports.Cache,
) *Service {
	return &Service{
		definitions: definitions,
		progress:    progress,
		awards:      awards,
		users:       users,
		uow:         uow,
		registry:    registry,
		cache:       cache,
		now:         time.Now,
	}
}

func (s *Service) setCacheBestEffort(ctx context.Context, key string, value string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, value, 0)
}

func (s *Service) getCacheBestEffort(ctx context.Context, key string) string {
	if s.cache == nil {
		return ""
	}
	value, found, err := s.cache.Get(ctx, key)
	if err != nil || !found {
		return ""
	}
	return value
}

func userCacheKey(prefix string, userID uint64) string {
	return fmt.Sprintf("%s%d", prefix, userID)
}

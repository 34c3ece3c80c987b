package badge

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/errs"
)

// Card is one badge rendered for display.
type Card struct {
	Code         string
	Title        string
	Description  string
	Status       domainbadge.ProgressStatus
	CurrentValue int
	GoalValue    int
	AchievedAt   *time.Time
	NewBadge     bool
}

// Summary is the read-side projection of a user's progress records.
type Summary struct {
	Total      int
	Acquired   int
	NextTarget *Card
	Badges     []Card

	// LastEventUID is best-effort bookkeeping from the cache, empty when
	// unknown.
	LastEventUID string
}

// GetSummary projects the user's progress rows into a summary view. A user
// with no rows gets the canonical empty summary, never an error. The status
// filter narrows the returned cards; acquired and nextTarget are computed
// over that view. As a side effect, every newly-achieved badge in the full
// unfiltered set is acknowledged through an independently committed write,
// so its new-badge flag is visible exactly once even under a narrow filter.
func (s *Service) GetSummary(ctx context.Context, userID uint64, statusFilter *domainbadge.ProgressStatus) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, errs.Wrap(err, "check context")
	}
	if userID == 0 {
		return Summary{}, errors.New("user id is required")
	}

	all, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return Summary{}, errs.Wrap(err, "list progress by user")
	}

	if len(all) == 0 {
		return Summary{Badges: []Card{}}, nil
	}

	cards := make([]Card, 0, len(all))
	for _, p := range all {
		if statusFilter != nil && p.Status != *statusFilter {
			continue
		}
		cards = append(cards, toCard(p))
	}

	acquired := 0
	var nextTarget *Card
	for i := range cards {
		switch cards[i].Status {
		case domainbadge.StatusAchieved:
			acquired++
		case domainbadge.StatusInProgress:
			if nextTarget == nil {
				nextTarget = &cards[i]
			}
		}
	}

	ackIDs := make([]uint64, 0, len(all))
	for _, p := range all {
		if p.NewBadge && p.Status == domainbadge.StatusAchieved {
			ackIDs = append(ackIDs, p.ID)
		}
	}
	if err := s.AcknowledgeNewBadges(ctx, ackIDs); err != nil {
		return Summary{}, errs.Wrap(err, "acknowledge new badges")
	}
	if len(ackIDs) > 0 {
		logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.badge.query")),
			"new badges acknowledged",
			slog.Uint64("user_id", userID),
			slog.Int("count", len(ackIDs)))
	}

	return Summary{
		Total:        len(cards),
		Acquired:     acquired,
		NextTarget:   nextTarget,
		Badges:       cards,
		LastEventUID: s.getCacheBestEffort(ctx, userCacheKey(cacheKeyLastEvent, userID)),
	}, nil
}

func toCard(p domainbadge.Progress) Card {
	return Card{
		Code:         p.Code,
		Title:        p.Title,
		Description:  p.Description,
		Status:       p.Status,
		CurrentValue: p.CurrentValue,
		GoalValue:    p.GoalValue,
		AchievedAt:   p.AchievedAt,
		NewBadge:     p.NewBadge,
	}
}

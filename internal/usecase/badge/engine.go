package badge

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	"eyedia/internal/ports"
)

// ProcessEvent runs one event through every matching enabled definition.
//
// The user must exist before any definition is touched: a referential error
// surfaces to the caller with nothing applied. After that, each definition's
// load-evaluate-reconcile-persist cycle runs in its own unit of work, so one
// definition's failure cannot corrupt another's commit. Configuration
// anomalies (malformed params, unregistered evaluator) skip the definition
// and keep going.
func (s *Service) ProcessEvent(ctx context.Context, event domainbadge.Event) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if event.Type == "" {
		return errors.New("event type is required")
	}
	if event.UserID == 0 {
		return errors.New("event user id is required")
	}

	event = event.Normalized(s.now())

	logCtx := logging.WithAttrs(ctx,
		slog.String("component", "usecase.badge.engine"),
		slog.String("event_uid", event.UID),
		slog.String("event_type", string(event.Type)),
		slog.Uint64("user_id", event.UserID),
	)

	if _, err := s.users.GetByID(ctx, event.UserID); err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return errs.Wrapf(err, "process event %s", event.UID)
		}
		return errs.Wrap(err, "look up event user")
	}

	defs, err := s.definitions.ListEnabled(ctx)
	if err != nil {
		return errs.Wrap(err, "list enabled definitions")
	}

	for _, def := range defs {
		if def.Event != event.Type {
			continue
		}
		if !def.InWindow(event.OccurredAt) {
			continue
		}

		evaluator, ok := s.registry.Resolve(def.Evaluator)
		if !ok {
			logging.Warn(logCtx, "no evaluator registered, skipping definition",
				slog.String("code", def.Code),
				slog.String("evaluator_type", string(def.Evaluator)))
			continue
		}

		if err := s.applyDefinition(ctx, def, evaluator, event); err != nil {
			return errs.Wrapf(err, "apply definition %s", def.Code)
		}
	}

	s.setCacheBestEffort(ctx, userCacheKey(cacheKeyLastEvent, event.UserID), event.UID)
	s.bumpProcessedCount(ctx, event.UserID)

	return nil
}

// applyDefinition is one logical unit of work: progress row load-or-create,
// evaluator mutation, status reconciliation and award issuance commit or
// roll back together.
func (s *Service) applyDefinition(
	ctx context.Context,
	def domainbadge.Definition,
	evaluator domainbadge.Evaluator,
	event domainbadge.Event,
) error {
	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		p, err := s.progress.FindByUserAndCode(txCtx, event.UserID, def.Code)
		if err != nil {
			if !errors.Is(err, ports.ErrProgressNotFound) {
				return errs.Wrap(err, "load progress")
			}
			p, err = s.progress.Save(txCtx, domainbadge.NewProgress(event.UserID, def))
			if err != nil {
				return errs.Wrap(err, "create progress")
			}
		}

		params := domainbadge.ParseParams(def.ParamsJSON)
		evaluator.Apply(&p, params, event)

		if err := s.reconcile(txCtx, &p); err != nil {
			return err
		}

		if _, err := s.progress.Save(txCtx, p); err != nil {
			return errs.Wrap(err, "save progress")
		}
		return nil
	})
}

// reconcile derives status from the counter and issues the award on the
// first threshold crossing. ACHIEVED is terminal: a later counter drop (for
// example a weekly reset) never downgrades it.
func (s *Service) reconcile(ctx context.Context, p *domainbadge.Progress) error {
	if p.CurrentValue >= p.GoalValue {
		if p.Status == domainbadge.StatusAchieved {
			return nil
		}
		p.Status = domainbadge.StatusAchieved
		p.NewBadge = true
		if p.AchievedAt == nil {
			achievedAt := s.now()
			p.AchievedAt = &achievedAt
		}
		return s.issueAward(ctx, p)
	}

	if p.Status == domainbadge.StatusAchieved {
		return nil
	}
	if p.CurrentValue > 0 {
		p.Status = domainbadge.StatusInProgress
	} else {
		p.Status = domainbadge.StatusLocked
	}
	return nil
}

func (s *Service) issueAward(ctx context.Context, p *domainbadge.Progress) error {
	exists, err := s.awards.Exists(ctx, p.UserID, p.Code)
	if err != nil {
		return errs.Wrap(err, "check award existence")
	}
	if exists {
		// Retried or concurrent delivery already awarded this pair.
		return nil
	}

	inserted, err := s.awards.Create(ctx, domainbadge.Award{
		UserID:         p.UserID,
		Code:           p.Code,
		AchievedAt:     s.now(),
		AchievedReason: "Goal reached: " + p.Code,
	})
	if err != nil {
		return errs.Wrap(err, "create award")
	}
	if inserted {
		logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.badge.engine")),
			"badge achieved",
			slog.Uint64("user_id", p.UserID),
			slog.String("code", p.Code))
	}
	return nil
}

func (s *Service) bumpProcessedCount(ctx context.Context, userID uint64) {
	key := userCacheKey(cacheKeyProcessedCount, userID)
	count, _ := strconv.ParseInt(s.getCacheBestEffort(ctx, key), 10, 64)
	s.setCacheBestEffort(ctx, key, strconv.FormatInt(count+1, 10))
}

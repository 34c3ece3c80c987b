package badge

import (
	"context"
	"errors"

	"eyedia/internal/errs"
)

// AcknowledgeNewBadges clears the new-badge flag for the given progress ids
// where it is still set. Empty input is a no-op. The update runs in its own
// unit of work so it commits durably even when triggered from inside the
// summary read path, and it completes before the caller returns.
func (s *Service) AcknowledgeNewBadges(ctx context.Context, ids []uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if len(ids) == 0 {
		return nil
	}

	return s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.progress.MarkAcknowledged(txCtx, ids); err != nil {
			return errs.Wrap(err, "mark badges acknowledged")
		}
		return nil
	})
}

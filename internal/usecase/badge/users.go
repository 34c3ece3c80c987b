package badge

import (
	"context"
	"errors"
	"strings"

	"eyedia/internal/errs"
	"eyedia/internal/ports"
)

// RegisterUser creates a directory entry so events referencing the user pass
// the engine's referential check. The full user domain lives outside this
// service; this exists for seeding and tooling.
func (s *Service) RegisterUser(ctx context.Context, id uint64, nickname string) (ports.User, error) {
	if ctx == nil {
		return ports.User{}, errors.New("context is required")
	}
	if id == 0 {
		return ports.User{}, errors.New("user id is required")
	}
	if strings.TrimSpace(nickname) == "" {
		return ports.User{}, errors.New("nickname is required")
	}

	user, err := s.users.Create(ctx, ports.User{ID: id, Nickname: strings.TrimSpace(nickname)})
	if err != nil {
		return ports.User{}, errs.Wrap(err, "create user")
	}
	return user, nil
}

package badge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"eyedia/internal/bootstrap/logging"
	domainbadge "eyedia/internal/domain/badge"
	"eyedia/internal/errs"
)

const catalogVersion = 1

type catalogDefinition struct {
	Code        string `toml:"code"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
	Enabled     *bool  `toml:"enabled"`
	SortOrder   int    `toml:"sort_order"`
	Evaluator   string `toml:"evaluator"`
	Event       string `toml:"event"`
	Goal        int    `toml:"goal"`
	Params      string `toml:"params"`
	StartAt     string `toml:"start_at"`
	EndAt       string `toml:"end_at"`
}

type catalog struct {
	Version     int                 `toml:"version"`
	Definitions []catalogDefinition `toml:"definition"`
}

// LoadCatalog reads and validates an admin-authored badge catalog file.
// Unlike runtime params parsing, catalog errors are loud: a broken catalog
// must not be half-imported.
func LoadCatalog(path string) ([]domainbadge.Definition, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("catalog file is required")
	}

	raw, err := os.ReadFile(trimmed)
	if err != nil {
		return nil, errs.Wrap(err, "read catalog file")
	}

	var c catalog
	if err := toml.Unmarshal(raw, &c); err != nil {
		return nil, errs.Wrap(err, "parse catalog file")
	}
	if c.Version != catalogVersion {
		return nil, fmt.Errorf("unsupported catalog version %d: expected version = %d", c.Version, catalogVersion)
	}
	if len(c.Definitions) == 0 {
		return nil, errors.New("catalog contains no definitions")
	}

	defs := make([]domainbadge.Definition, 0, len(c.Definitions))
	seen := make(map[string]struct{}, len(c.Definitions))
	for i, entry := range c.Definitions {
		def, err := toDefinition(entry)
		if err != nil {
			return nil, errs.Wrapf(err, "catalog definition %d", i)
		}
		if _, dup := seen[def.Code]; dup {
			return nil, fmt.Errorf("catalog definition %d: duplicate code %q", i, def.Code)
		}
		seen[def.Code] = struct{}{}
		defs = append(defs, def)
	}
	return defs, nil
}

func toDefinition(entry catalogDefinition) (domainbadge.Definition, error) {
	code := strings.TrimSpace(entry.Code)
	if code == "" {
		return domainbadge.Definition{}, errors.New("code is required")
	}
	if strings.TrimSpace(entry.Title) == "" {
		return domainbadge.Definition{}, errors.New("title is required")
	}
	if entry.Goal <= 0 {
		return domainbadge.Definition{}, fmt.Errorf("goal must be positive, got %d", entry.Goal)
	}

	category, err := domainbadge.ParseCategory(entry.Category)
	if err != nil {
		return domainbadge.Definition{}, err
	}
	evaluator, err := domainbadge.ParseAggregationType(entry.Evaluator)
	if err != nil {
		return domainbadge.Definition{}, err
	}
	eventType, err := domainbadge.ParseEventType(entry.Event)
	if err != nil {
		return domainbadge.Definition{}, err
	}

	startAt, err := parseOptionalTime(entry.StartAt)
	if err != nil {
		return domainbadge.Definition{}, errs.Wrap(err, "parse start_at")
	}
	endAt, err := parseOptionalTime(entry.EndAt)
	if err != nil {
		return domainbadge.Definition{}, errs.Wrap(err, "parse end_at")
	}

	enabled := true
	if entry.Enabled != nil {
		enabled = *entry.Enabled
	}

	return domainbadge.Definition{
		Code:        code,
		Title:       strings.TrimSpace(entry.Title),
		Description: strings.TrimSpace(entry.Description),
		Category:    category,
		Enabled:     enabled,
		SortOrder:   entry.SortOrder,
		Evaluator:   evaluator,
		Event:       eventType,
		GoalValue:   entry.Goal,
		ParamsJSON:  strings.TrimSpace(entry.Params),
		StartAt:     startAt,
		EndAt:       endAt,
	}, nil
}

func parseOptionalTime(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// SyncCatalog upserts the catalog's definitions into the repository, keyed
// by their stable codes, in one unit of work.
func (s *Service) SyncCatalog(ctx context.Context, defs []domainbadge.Definition) (int, error) {
	if ctx == nil {
		return 0, errors.New("context is required")
	}
	if len(defs) == 0 {
		return 0, errors.New("no definitions to sync")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "usecase.badge.catalog"))

	synced := 0
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		for _, def := range defs {
			if _, err := s.definitions.Upsert(txCtx, def); err != nil {
				return errs.Wrapf(err, "upsert definition %s", def.Code)
			}
			synced++
		}
		return nil
	}); err != nil {
		return 0, err
	}

	logging.Info(logCtx, "badge catalog synced", slog.Int("definitions", synced))
	return synced, nil
}

// ListDefinitions returns every definition, enabled or not, for admin
// inspection.
func (s *Service) ListDefinitions(ctx context.Context) ([]domainbadge.Definition, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	defs, err := s.definitions.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list definitions")
	}
	return defs, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"eyedia/internal/domain/badge"
	"eyedia/internal/errs"
	"eyedia/internal/infrastructure/persistence/sqlite/model"
	"eyedia/internal/ports"
)

// Stored text layouts: calendar dates and full timestamps.
const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339Nano
)

// dbFromContext prefers the transaction handle a unit of work put in
// context, falling back to the base connection.
func dbFromContext(ctx context.Context, base *gorm.DB) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return base.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func formatDate(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.Format(dateLayout)
	return &s
}

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	ts, err := time.ParseInLocation(dateLayout, *raw, time.UTC)
	if err != nil {
		return nil, errs.Wrapf(err, "parse stored date %q", *raw)
	}
	return &ts, nil
}

func formatTime(ts *time.Time) *string {
	if ts == nil {
		return nil
	}
	s := ts.UTC().Format(timeLayout)
	return &s
}

func parseTime(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(timeLayout, *raw)
	if err != nil {
		return nil, errs.Wrapf(err, "parse stored time %q", *raw)
	}
	return &ts, nil
}

func toDefinition(row model.BadgeDefinition) (badge.Definition, error) {
	startAt, err := parseTime(row.StartAt)
	if err != nil {
		return badge.Definition{}, err
	}
	endAt, err := parseTime(row.EndAt)
	if err != nil {
		return badge.Definition{}, err
	}

	return badge.Definition{
		ID:          row.ID,
		Code:        row.Code,
		Title:       row.Title,
		Description: row.Description,
		Category:    badge.Category(row.Category),
		Enabled:     row.Enabled,
		SortOrder:   row.SortOrder,
		Evaluator:   badge.AggregationType(row.EvaluatorType),
		Event:       badge.EventType(row.EventType),
		GoalValue:   row.GoalValue,
		ParamsJSON:  row.ParamsJSON,
		StartAt:     startAt,
		EndAt:       endAt,
	}, nil
}

func fromDefinition(def badge.Definition) model.BadgeDefinition {
	return model.BadgeDefinition{
		ID:            def.ID,
		Code:          def.Code,
		Title:         def.Title,
		Description:   def.Description,
		Category:      string(def.Category),
		Enabled:       def.Enabled,
		SortOrder:     def.SortOrder,
		EvaluatorType: string(def.Evaluator),
		EventType:     string(def.Event),
		GoalValue:     def.GoalValue,
		ParamsJSON:    def.ParamsJSON,
		StartAt:       formatTime(def.StartAt),
		EndAt:         formatTime(def.EndAt),
	}
}

func toProgress(row model.Badge) (badge.Progress, error) {
	lastProgressDate, err := parseDate(row.LastProgressDate)
	if err != nil {
		return badge.Progress{}, err
	}
	weekStart, err := parseDate(row.WeekStart)
	if err != nil {
		return badge.Progress{}, err
	}
	achievedAt, err := parseTime(row.AchievedAt)
	if err != nil {
		return badge.Progress{}, err
	}

	return badge.Progress{
		ID:           row.ID,
		UserID:       row.UsersID,
		Code:         row.Code,
		Title:        row.Title,
		Description:  row.Description,
		Status:       badge.ProgressStatus(row.Status),
		CurrentValue: row.CurrentValue,
		GoalValue:    row.GoalValue,

		LastProgressDate: lastProgressDate,
		WeekStart:        weekStart,
		LastDistinctKey:  row.LastDistinctKey,

		AchievedAt: achievedAt,
		NewBadge:   row.IsNew,
	}, nil
}

func fromProgress(p badge.Progress) model.Badge {
	return model.Badge{
		ID:           p.ID,
		UsersID:      p.UserID,
		Code:         p.Code,
		Title:        p.Title,
		Description:  p.Description,
		Status:       string(p.Status),
		CurrentValue: p.CurrentValue,
		GoalValue:    p.GoalValue,

		LastProgressDate: formatDate(p.LastProgressDate),
		WeekStart:        formatDate(p.WeekStart),
		LastDistinctKey:  p.LastDistinctKey,

		AchievedAt: formatTime(p.AchievedAt),
		IsNew:      p.NewBadge,
	}
}

func toAward(row model.UserBadgeAward) (badge.Award, error) {
	achievedAt, err := time.Parse(timeLayout, row.AchievedAt)
	if err != nil {
		return badge.Award{}, errs.Wrapf(err, "parse stored time %q", row.AchievedAt)
	}

	return badge.Award{
		ID:             row.ID,
		UserID:         row.UsersID,
		Code:           row.Code,
		AchievedAt:     achievedAt,
		AchievedReason: row.AchievedReason,
	}, nil
}

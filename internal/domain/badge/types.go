package badge

import (
	"fmt"
	"strings"
)

// ProgressStatus is the per-user badge state machine:
// LOCKED -> IN_PROGRESS -> ACHIEVED. ACHIEVED is terminal.
type ProgressStatus string

const (
	StatusLocked     ProgressStatus = "LOCKED"
	StatusInProgress ProgressStatus = "IN_PROGRESS"
	StatusAchieved   ProgressStatus = "ACHIEVED"
)

// AggregationType selects the evaluator strategy for a definition.
type AggregationType string

const (
	AggregationCount        AggregationType = "COUNT"
	AggregationStreak       AggregationType = "STREAK"
	AggregationWeekendCount AggregationType = "WEEKEND_COUNT"
)

// EventType is the domain event kind a definition reacts to.
type EventType string

const (
	EventExhibitionCollected EventType = "EXHIBITION_COLLECTED"
	EventArtViewed           EventType = "ART_VIEWED"
	EventVisitLogged         EventType = "VISIT_LOGGED"
)

// Category is a display-only classification tag on a definition.
type Category string

const (
	CategoryCollection Category = "COLLECTION"
	CategoryViewing    Category = "VIEWING"
	CategoryStreak     Category = "STREAK"
	CategoryWeekend    Category = "WEEKEND"
	CategoryEtc        Category = "ETC"
)

func ParseProgressStatus(raw string) (ProgressStatus, error) {
	switch normalizeEnumToken(raw) {
	case string(StatusLocked):
		return StatusLocked, nil
	case string(StatusInProgress):
		return StatusInProgress, nil
	case string(StatusAchieved):
		return StatusAchieved, nil
	}
	return "", fmt.Errorf("%w: progress status %q", ErrUnknownEnumValue, raw)
}

func ParseAggregationType(raw string) (AggregationType, error) {
	switch normalizeEnumToken(raw) {
	case string(AggregationCount):
		return AggregationCount, nil
	case string(AggregationStreak):
		return AggregationStreak, nil
	case string(AggregationWeekendCount):
		return AggregationWeekendCount, nil
	}
	return "", fmt.Errorf("%w: aggregation type %q", ErrUnknownEnumValue, raw)
}

func ParseEventType(raw string) (EventType, error) {
	switch normalizeEnumToken(raw) {
	case string(EventExhibitionCollected):
		return EventExhibitionCollected, nil
	case string(EventArtViewed):
		return EventArtViewed, nil
	case string(EventVisitLogged):
		return EventVisitLogged, nil
	}
	return "", fmt.Errorf("%w: event type %q", ErrUnknownEnumValue, raw)
}

func ParseCategory(raw string) (Category, error) {
	switch normalizeEnumToken(raw) {
	case string(CategoryCollection):
		return CategoryCollection, nil
	case string(CategoryViewing):
		return CategoryViewing, nil
	case string(CategoryStreak):
		return CategoryStreak, nil
	case string(CategoryWeekend):
		return CategoryWeekend, nil
	case string(CategoryEtc):
		return CategoryEtc, nil
	}
	return "", fmt.Errorf("%w: category %q", ErrUnknownEnumValue, raw)
}

func normalizeEnumToken(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_"))
}

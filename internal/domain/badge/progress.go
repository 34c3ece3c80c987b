package badge

import "time"

// Definition is an admin-authored badge template. It is immutable while
// events are being processed; the engine only reads it.
type Definition struct {
	ID          uint64
	Code        string
	Title       string
	Description string
	Category    Category
	Enabled     bool
	SortOrder   int
	Evaluator   AggregationType
	Event       EventType
	GoalValue   int
	ParamsJSON  string
	StartAt     *time.Time
	EndAt       *time.Time
}

// InWindow reports whether ts falls inside the definition's activity window.
// Boundary instants count as inside; unset bounds are open.
func (d Definition) InWindow(ts time.Time) bool {
	if d.StartAt != nil && ts.Before(*d.StartAt) {
		return false
	}
	if d.EndAt != nil && ts.After(*d.EndAt) {
		return false
	}
	return true
}

// Progress is the per-(user, code) mutable record. Evaluators mutate
// CurrentValue and the scratch fields; status, AchievedAt and NewBadge are
// reconciled exclusively by the engine.
type Progress struct {
	ID          uint64
	UserID      uint64
	Code        string
	Title       string
	Description string
	Status       ProgressStatus
	CurrentValue int
	GoalValue    int

	// Strategy-private scratch fields. Only one is meaningful per evaluator
	// type, but they coexist on the record for storage simplicity.
	LastProgressDate *time.Time
	WeekStart        *time.Time
	LastDistinctKey  string

	AchievedAt *time.Time
	NewBadge   bool
}

// NewProgress seeds a record for the first qualifying event of a
// (user, definition) pair.
func NewProgress(userID uint64, def Definition) Progress {
	return Progress{
		UserID:       userID,
		Code:         def.Code,
		Title:        def.Title,
		Description:  def.Description,
		Status:       StatusLocked,
		CurrentValue: 0,
		GoalValue:    def.GoalValue,
	}
}

// Award is the append-only fact that a user achieved a badge. At most one
// exists per (user, code).
type Award struct {
	ID             uint64
	UserID         uint64
	Code           string
	AchievedAt     time.Time
	AchievedReason string
}

// DateOf truncates a timestamp to its calendar date (midnight UTC).
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed calendar-day distance from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

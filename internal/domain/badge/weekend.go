package badge

import (
	"fmt"
	"time"
)

const (
	// paramWeekStart overrides the day the weekly window starts on.
	paramWeekStart = "weekStart"
	// paramDays overrides the set of qualifying days.
	paramDays = "days"
)

// WeekendCountEvaluator counts qualifying-day events within a rolling weekly
// window keyed by the WeekStart scratch field. When the window rolls over the
// counter resets, so the value is strictly per-week, never cumulative. The
// defaults count Saturday and Sunday with weeks starting Monday.
type WeekendCountEvaluator struct{}

func (WeekendCountEvaluator) Type() AggregationType { return AggregationWeekendCount }

func (WeekendCountEvaluator) Apply(p *Progress, params Params, event Event) {
	today := DateOf(event.OccurredAt)

	weekStartDow := time.Monday
	if raw := params.String(paramWeekStart); raw != "" {
		if dow, err := parseDayOfWeek(raw); err == nil {
			weekStartDow = dow
		}
	}

	shift := (7 + int(today.Weekday()) - int(weekStartDow)) % 7
	thisWeekStart := today.AddDate(0, 0, -shift)

	if p.WeekStart == nil || !p.WeekStart.Equal(thisWeekStart) {
		p.WeekStart = &thisWeekStart
		p.CurrentValue = 0
	}

	allowed := map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}
	if days := params.Strings(paramDays); len(days) > 0 {
		allowed = make(map[time.Weekday]bool, len(days))
		for _, raw := range days {
			if dow, err := parseDayOfWeek(raw); err == nil {
				allowed[dow] = true
			}
		}
	}

	if allowed[today.Weekday()] {
		p.CurrentValue++
	}
}

func parseDayOfWeek(raw string) (time.Weekday, error) {
	switch normalizeEnumToken(raw) {
	case "MONDAY":
		return time.Monday, nil
	case "TUESDAY":
		return time.Tuesday, nil
	case "WEDNESDAY":
		return time.Wednesday, nil
	case "THURSDAY":
		return time.Thursday, nil
	case "FRIDAY":
		return time.Friday, nil
	case "SATURDAY":
		return time.Saturday, nil
	case "SUNDAY":
		return time.Sunday, nil
	}
	return time.Sunday, fmt.Errorf("%w: day of week %q", ErrUnknownEnumValue, raw)
}

package badge

// paramUniquePerDay caps a daily streak at one increment per calendar day.
const paramUniquePerDay = "uniquePerDay"

// StreakEvaluator tracks consecutive-day activity against the
// LastProgressDate scratch field. Same-day events increment only when
// uniquePerDay is off, a one-day gap continues the streak, a longer gap
// restarts it at 1, and events dated before the stored progress are ignored
// so out-of-order delivery cannot corrupt a streak.
type StreakEvaluator struct{}

func (StreakEvaluator) Type() AggregationType { return AggregationStreak }

func (StreakEvaluator) Apply(p *Progress, params Params, event Event) {
	uniquePerDay := params.Bool(paramUniquePerDay)
	today := DateOf(event.OccurredAt)

	if p.LastProgressDate == nil {
		p.CurrentValue = 1
		p.LastProgressDate = &today
		return
	}

	switch gap := DaysBetween(*p.LastProgressDate, today); {
	case gap == 0:
		if uniquePerDay {
			return
		}
		p.CurrentValue++
	case gap == 1:
		p.CurrentValue++
		p.LastProgressDate = &today
	case gap > 1:
		p.CurrentValue = 1
		p.LastProgressDate = &today
	}
	// gap < 0: stale event, leave the streak untouched.
}

package badge

// paramDistinctBy names a payload key whose value de-duplicates consecutive
// events for the Count strategy.
const paramDistinctBy = "distinctBy"

// CountEvaluator increments the counter once per event. When the definition
// configures distinctBy, only events whose payload value differs from the
// last seen one count. The guard is a single last-seen key, not a full
// distinct set: a key reappearing after a different key counts again. That
// bounds the scratch state to one string regardless of history length.
type CountEvaluator struct{}

func (CountEvaluator) Type() AggregationType { return AggregationCount }

func (CountEvaluator) Apply(p *Progress, params Params, event Event) {
	distinctBy := params.String(paramDistinctBy)
	if distinctBy == "" {
		p.CurrentValue++
		return
	}

	key, ok := event.PayloadString(distinctBy)
	if !ok {
		// No de-duplication handle on this event; count it.
		p.CurrentValue++
		return
	}

	if p.LastDistinctKey != key {
		p.CurrentValue++
		p.LastDistinctKey = key
	}
}

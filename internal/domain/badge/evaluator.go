package badge

// Evaluator is one pluggable aggregation strategy. Apply mutates the
// progress record's counter and scratch fields only; it must never touch
// Status, AchievedAt or NewBadge. Threshold crossing is reconciled in one
// place by the engine so all strategies share the same transition rules.
type Evaluator interface {
	Type() AggregationType
	Apply(p *Progress, params Params, event Event)
}

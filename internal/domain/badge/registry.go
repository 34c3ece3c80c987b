package badge

import "fmt"

// Registry maps aggregation types to evaluators. It is immutable after
// construction.
type Registry struct {
	byType map[AggregationType]Evaluator
}

// NewRegistry builds a registry from the given evaluators. Two evaluators
// claiming the same aggregation type is a startup defect, not a runtime
// condition, so construction fails with ErrDuplicateEvaluator.
func NewRegistry(evaluators ...Evaluator) (*Registry, error) {
	byType := make(map[AggregationType]Evaluator, len(evaluators))
	for _, e := range evaluators {
		if e == nil {
			continue
		}
		if _, exists := byType[e.Type()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEvaluator, e.Type())
		}
		byType[e.Type()] = e
	}
	return &Registry{byType: byType}, nil
}

// NewDefaultRegistry wires the three built-in strategies.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(
		CountEvaluator{},
		StreakEvaluator{},
		WeekendCountEvaluator{},
	)
}

// Resolve returns the evaluator for the given type. The caller decides what
// a missing evaluator means; the engine skips the definition.
func (r *Registry) Resolve(t AggregationType) (Evaluator, bool) {
	e, ok := r.byType[t]
	return e, ok
}

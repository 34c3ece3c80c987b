package badge

import "errors"

var (
	// ErrDuplicateEvaluator means two evaluators claim the same aggregation
	// type. Dispatch would be ambiguous, so registry construction fails.
	ErrDuplicateEvaluator = errors.New("duplicate evaluator registration")

	ErrUnknownEnumValue = errors.New("unknown enum value")
)

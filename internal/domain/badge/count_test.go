package badge

import (
	"testing"
	"time"
)

func countEvent(payload map[string]any) Event {
	return Event{
		UID:        "evt-test",
		Type:       EventExhibitionCollected,
		UserID:     1,
		OccurredAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Payload:    payload,
	}
}

func TestCountIncrementsPerEvent(t *testing.T) {
	eval := CountEvaluator{}
	p := Progress{GoalValue: 10}

	for i := 0; i < 4; i++ {
		eval.Apply(&p, Params{}, countEvent(nil))
	}

	if p.CurrentValue != 4 {
		t.Fatalf("CurrentValue = %d, want 4", p.CurrentValue)
	}
}

func TestCountDistinctByCollapsesAdjacentDuplicates(t *testing.T) {
	eval := CountEvaluator{}
	p := Progress{GoalValue: 10}
	params := Params{"distinctBy": "exhibitionId"}

	// A, A, B, A: the middle duplicate collapses, the reappearing A counts.
	for _, id := range []string{"A", "A", "B", "A"} {
		eval.Apply(&p, params, countEvent(map[string]any{"exhibitionId": id}))
	}

	if p.CurrentValue != 3 {
		t.Fatalf("CurrentValue = %d, want 3", p.CurrentValue)
	}
	if p.LastDistinctKey != "A" {
		t.Fatalf("LastDistinctKey = %q, want %q", p.LastDistinctKey, "A")
	}
}

func TestCountDistinctByIsIdempotentForSameKey(t *testing.T) {
	eval := CountEvaluator{}
	p := Progress{GoalValue: 10}
	params := Params{"distinctBy": "exhibitionId"}
	event := countEvent(map[string]any{"exhibitionId": "exh-7"})

	eval.Apply(&p, params, event)
	after := p
	eval.Apply(&p, params, event)

	if p != after {
		t.Fatalf("progress changed on duplicate event: %+v vs %+v", p, after)
	}
}

func TestCountDistinctByMissingPayloadKeyStillCounts(t *testing.T) {
	eval := CountEvaluator{}
	p := Progress{GoalValue: 10}
	params := Params{"distinctBy": "exhibitionId"}

	eval.Apply(&p, params, countEvent(nil))
	eval.Apply(&p, params, countEvent(map[string]any{"other": "x"}))

	if p.CurrentValue != 2 {
		t.Fatalf("CurrentValue = %d, want 2", p.CurrentValue)
	}
	if p.LastDistinctKey != "" {
		t.Fatalf("LastDistinctKey = %q, want empty", p.LastDistinctKey)
	}
}

func TestCountDistinctByNumericPayloadValue(t *testing.T) {
	eval := CountEvaluator{}
	p := Progress{GoalValue: 10}
	params := Params{"distinctBy": "exhibitionId"}

	// json-decoded payloads carry numbers as float64.
	eval.Apply(&p, params, countEvent(map[string]any{"exhibitionId": float64(123)}))
	eval.Apply(&p, params, countEvent(map[string]any{"exhibitionId": float64(123)}))

	if p.CurrentValue != 1 {
		t.Fatalf("CurrentValue = %d, want 1", p.CurrentValue)
	}
	if p.LastDistinctKey != "123" {
		t.Fatalf("LastDistinctKey = %q, want %q", p.LastDistinctKey, "123")
	}
}

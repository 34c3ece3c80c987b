package badge

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a transient domain event fed to the engine. It is not persisted
// as its own entity.
type Event struct {
	UID        string
	Type       EventType
	UserID     uint64
	OccurredAt time.Time
	Payload    map[string]any
}

// Normalized returns a copy with OccurredAt defaulted to now and a generated
// uid when the caller supplied none. Generated uids follow the evt-<uuid>
// shape so they are distinguishable from caller-supplied ones.
func (e Event) Normalized(now time.Time) Event {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = now
	}
	if strings.TrimSpace(e.UID) == "" {
		e.UID = "evt-" + uuid.NewString()
	}
	return e
}

// PayloadString reads a payload value as its string form. The second return
// is false when the key is absent or the value is nil.
func (e Event) PayloadString(key string) (string, bool) {
	if e.Payload == nil {
		return "", false
	}
	v, ok := e.Payload[key]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

package badge

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizedFillsDefaults(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	got := Event{Type: EventArtViewed, UserID: 7}.Normalized(now)

	if !got.OccurredAt.Equal(now) {
		t.Fatalf("OccurredAt = %v, want %v", got.OccurredAt, now)
	}
	if !strings.HasPrefix(got.UID, "evt-") || len(got.UID) <= len("evt-") {
		t.Fatalf("UID = %q, want generated evt-<uuid>", got.UID)
	}
}

func TestNormalizedKeepsCallerValues(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	occurred := now.Add(-time.Hour)

	got := Event{UID: "client-41", Type: EventArtViewed, UserID: 7, OccurredAt: occurred}.Normalized(now)

	if got.UID != "client-41" {
		t.Fatalf("UID = %q, want client-41", got.UID)
	}
	if !got.OccurredAt.Equal(occurred) {
		t.Fatalf("OccurredAt = %v, want %v", got.OccurredAt, occurred)
	}
}

func TestNormalizedTreatsBlankUIDAsMissing(t *testing.T) {
	got := Event{UID: "   ", Type: EventArtViewed, UserID: 7}.Normalized(time.Now())
	if !strings.HasPrefix(got.UID, "evt-") {
		t.Fatalf("UID = %q, want generated evt-<uuid>", got.UID)
	}
}

func TestPayloadString(t *testing.T) {
	e := Event{Payload: map[string]any{"a": "x", "n": float64(4), "nil": nil}}

	if v, ok := e.PayloadString("a"); !ok || v != "x" {
		t.Fatalf("PayloadString(a) = %q, %v", v, ok)
	}
	if v, ok := e.PayloadString("n"); !ok || v != "4" {
		t.Fatalf("PayloadString(n) = %q, %v", v, ok)
	}
	if _, ok := e.PayloadString("nil"); ok {
		t.Fatal("PayloadString(nil value) = ok, want missing")
	}
	if _, ok := e.PayloadString("absent"); ok {
		t.Fatal("PayloadString(absent) = ok, want missing")
	}
	if _, ok := (Event{}).PayloadString("a"); ok {
		t.Fatal("PayloadString on nil payload = ok, want missing")
	}
}

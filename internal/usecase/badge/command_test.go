package badge

import (
	"context"
	"testing"
	"time"

	domainbadge "eyedia/internal/domain/badge"
)

func TestAcknowledgeNewBadgesEmptyIsNoOp(t *testing.T) {
	f := setupService(t)

	if err := f.svc.AcknowledgeNewBadges(context.Background(), nil); err != nil {
		t.Fatalf("AcknowledgeNewBadges(nil) error = %v", err)
	}
	if err := f.svc.AcknowledgeNewBadges(context.Background(), []uint64{}); err != nil {
		t.Fatalf("AcknowledgeNewBadges(empty) error = %v", err)
	}
	if err := f.svc.AcknowledgeNewBadges(nil, []uint64{1}); err == nil {
		t.Fatal("nil context: expected error")
	}
}

func TestAcknowledgeNewBadgesClearsOnlyListedIDs(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()
	f.seedUser(t, 1, "mina")
	f.seedDefinition(t, countDefinition("BADGE_A", 1, ""))
	f.seedDefinition(t, countDefinition("BADGE_B", 1, ""))

	if err := f.svc.ProcessEvent(ctx, domainbadge.Event{
		Type:       domainbadge.EventExhibitionCollected,
		UserID:     1,
		OccurredAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("ProcessEvent() error = %v", err)
	}

	a := f.loadProgress(t, 1, "BADGE_A")
	b := f.loadProgress(t, 1, "BADGE_B")
	if !a.NewBadge || !b.NewBadge {
		t.Fatalf("expected both new, got a=%v b=%v", a.NewBadge, b.NewBadge)
	}

	if err := f.svc.AcknowledgeNewBadges(ctx, []uint64{a.ID}); err != nil {
		t.Fatalf("AcknowledgeNewBadges() error = %v", err)
	}

	if f.loadProgress(t, 1, "BADGE_A").NewBadge {
		t.Fatal("BADGE_A still flagged new")
	}
	if !f.loadProgress(t, 1, "BADGE_B").NewBadge {
		t.Fatal("BADGE_B lost its new flag")
	}
}

package badge

import (
	"context"
	"testing"
	"time"

	domainbadge "eyedia/internal/domain/badge"
)

// seedSummaryFixture creates one achieved, one in-progress and one locked
// badge for user 1.
func seedSummaryFixture(t *testing.T, f *testFixture) {
	t.Helper()
	ctx := context.Background()
	f.seedUser(t, 1, "mina")

	achieved := countDefinition("FIRST_COLLECTION", 1, "")
	achieved.SortOrder = 1
	inProgress := countDefinition("COLLECTOR_10", 10, "")
	inProgress.SortOrder = 2
	locked := domainbadge.Definition{
		Code:      "STREAK_3D",
		Title:     "Streak",
		Category:  domainbadge.CategoryStreak,
		Enabled:   true,
		SortOrder: 3,
		Evaluator: domainbadge.AggregationStreak,
		Event:     domainbadge.EventVisitLogged,
		GoalValue: 3,
	}
	f.seedDefinition(t, achieved)
	f.seedDefinition(t, inProgress)
	f.seedDefinition(t, locked)

	// One collect event achieves FIRST_COLLECTION and starts COLLECTOR_10.
	if err := f.svc.ProcessEvent(ctx, domainbadge.Event{
		Type:       domainbadge.EventExhibitionCollected,
		UserID:     1,
		OccurredAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("ProcessEvent() error = %v", err)
	}
	// Seed the locked row without advancing it past zero.
	if _, err := f.svc.progress.Save(ctx, domainbadge.NewProgress(1, locked)); err != nil {
		t.Fatalf("seed locked progress: %v", err)
	}
}

func TestGetSummaryEmptyUser(t *testing.T) {
	f := setupService(t)
	f.seedUser(t, 1, "mina")

	summary, err := f.svc.GetSummary(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.Total != 0 || summary.Acquired != 0 || summary.NextTarget != nil {
		t.Fatalf("summary = %+v, want canonical empty", summary)
	}
	if summary.Badges == nil || len(summary.Badges) != 0 {
		t.Fatalf("Badges = %v, want empty non-nil slice", summary.Badges)
	}
}

func TestGetSummaryUnfiltered(t *testing.T) {
	f := setupService(t)
	seedSummaryFixture(t, f)

	summary, err := f.svc.GetSummary(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if summary.Total != 3 {
		t.Fatalf("Total = %d, want 3", summary.Total)
	}
	if summary.Acquired != 1 {
		t.Fatalf("Acquired = %d, want 1", summary.Acquired)
	}
	if summary.NextTarget == nil || summary.NextTarget.Code != "COLLECTOR_10" {
		t.Fatalf("NextTarget = %+v, want COLLECTOR_10", summary.NextTarget)
	}

	byCode := make(map[string]Card, len(summary.Badges))
	for _, card := range summary.Badges {
		byCode[card.Code] = card
	}
	if byCode["FIRST_COLLECTION"].Status != domainbadge.StatusAchieved {
		t.Fatalf("FIRST_COLLECTION status = %s", byCode["FIRST_COLLECTION"].Status)
	}
	if byCode["FIRST_COLLECTION"].AchievedAt == nil {
		t.Fatal("FIRST_COLLECTION has no AchievedAt")
	}
	if byCode["COLLECTOR_10"].Status != domainbadge.StatusInProgress {
		t.Fatalf("COLLECTOR_10 status = %s", byCode["COLLECTOR_10"].Status)
	}
	if byCode["STREAK_3D"].Status != domainbadge.StatusLocked {
		t.Fatalf("STREAK_3D status = %s", byCode["STREAK_3D"].Status)
	}
}

func TestGetSummaryStatusFilter(t *testing.T) {
	f := setupService(t)
	seedSummaryFixture(t, f)

	achieved := domainbadge.StatusAchieved
	summary, err := f.svc.GetSummary(context.Background(), 1, &achieved)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	if summary.Total != 1 || summary.Acquired != 1 {
		t.Fatalf("filtered summary = total %d acquired %d, want 1/1", summary.Total, summary.Acquired)
	}
	if len(summary.Badges) != 1 || summary.Badges[0].Code != "FIRST_COLLECTION" {
		t.Fatalf("Badges = %+v", summary.Badges)
	}
	// NextTarget is computed over the filtered view, which has no
	// in-progress card here.
	if summary.NextTarget != nil {
		t.Fatalf("NextTarget = %+v, want nil", summary.NextTarget)
	}
}

func TestGetSummaryAcknowledgesNewBadgesOnce(t *testing.T) {
	f := setupService(t)
	seedSummaryFixture(t, f)
	ctx := context.Background()

	first, err := f.svc.GetSummary(ctx, 1, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	var card *Card
	for i := range first.Badges {
		if first.Badges[i].Code == "FIRST_COLLECTION" {
			card = &first.Badges[i]
		}
	}
	if card == nil || !card.NewBadge {
		t.Fatalf("first read: NewBadge not visible, card = %+v", card)
	}

	second, err := f.svc.GetSummary(ctx, 1, nil)
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	for _, c := range second.Badges {
		if c.NewBadge {
			t.Fatalf("second read still flags %s as new", c.Code)
		}
	}
}

func TestGetSummaryFilteredReadStillAcknowledges(t *testing.T) {
	f := setupService(t)
	seedSummaryFixture(t, f)
	ctx := context.Background()

	// A read that filters the achieved badge out of view must still
	// acknowledge it.
	locked := domainbadge.StatusLocked
	if _, err := f.svc.GetSummary(ctx, 1, &locked); err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}

	p := f.loadProgress(t, 1, "FIRST_COLLECTION")
	if p.NewBadge {
		t.Fatal("NewBadge still set after filtered summary read")
	}
}

func TestGetSummaryValidation(t *testing.T) {
	f := setupService(t)

	if _, err := f.svc.GetSummary(context.Background(), 0, nil); err == nil {
		t.Fatal("zero user id: expected error")
	}
	if _, err := f.svc.GetSummary(nil, 1, nil); err == nil {
		t.Fatal("nil context: expected error")
	}
}

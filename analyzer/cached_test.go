package analyzer_test

import (
	"context"
	"testing"
	"time"

	"github.com/warp/fire-engine/analyzer"
	"github.com/warp/fire-engine/cache"
)

// countingClock advances one second per call so each fresh computation
// carries a distinguishable timestamp.
func countingClock() func() time.Time {
	base := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
}

func statusInput() analyzer.StatusInput {
	return analyzer.StatusInput{
		CurrentAssets: d(500_000),
		AnnualExpense: d(40_000),
	}
}

func TestCachedStatus_SecondCallServesSnapshot(t *testing.T) {
	// GIVEN: a memoized analyzer with a distinguishable clock
	// WHEN: asking twice for the same inputs
	// THEN: the second call returns the first snapshot, clock untouched

	ctx := context.Background()
	a := analyzer.New(analyzer.WithClock(countingClock()))
	cached := analyzer.NewCachedAnalyzer(a, cache.NewMemory(), 0)

	first, err := cached.Status(ctx, statusInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cached.Status(ctx, statusInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Errorf("expected the cached snapshot, got a recompute: %v vs %v",
			second.GeneratedAt, first.GeneratedAt)
	}
	if !second.FireTarget.Equal(first.FireTarget) || second.ProgressPct != first.ProgressPct {
		t.Error("snapshot must round-trip the computed fields")
	}
}

func TestCachedStatus_DifferentInputsMiss(t *testing.T) {
	ctx := context.Background()
	a := analyzer.New(analyzer.WithClock(countingClock()))
	cached := analyzer.NewCachedAnalyzer(a, cache.NewMemory(), 0)

	first, err := cached.Status(ctx, statusInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := statusInput()
	other.CurrentAssets = d(600_000)
	second, err := cached.Status(ctx, other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Error("different inputs must not share a snapshot")
	}
	if second.ProgressPct != 60 {
		t.Errorf("expected a fresh 60%% progress, got %v", second.ProgressPct)
	}
}

func TestCachedStatus_InvalidateForcesRecompute(t *testing.T) {
	ctx := context.Background()
	a := analyzer.New(analyzer.WithClock(countingClock()))
	cached := analyzer.NewCachedAnalyzer(a, cache.NewMemory(), 0)

	first, err := cached.Status(ctx, statusInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cached.Invalidate(ctx, statusInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := cached.Status(ctx, statusInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Error("invalidation must force a recompute")
	}
}

func TestCachedStatus_ValidationErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()
	cached := analyzer.NewCachedAnalyzer(analyzer.New(), store, 0)

	bad := analyzer.StatusInput{CurrentAssets: d(-1), TargetAssets: d(100)}
	if _, err := cached.Status(ctx, bad); err == nil {
		t.Fatal("expected a validation error")
	}
	// A second attempt fails the same way rather than serving a snapshot.
	if _, err := cached.Status(ctx, bad); err == nil {
		t.Fatal("errors must not be memoized")
	}
}

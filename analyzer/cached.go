/*
cached.go - Memoizing boundary wrapper

PURPOSE:
  Status computations are pure, so identical inputs always produce identical
  results. CachedAnalyzer exploits that at the boundary: it keys a snapshot
  of the Status result by a digest of the inputs and serves repeats from an
  injected cache.Store. The calculation objects themselves stay cache-free.

KEYING:
  The key is a SHA-256 digest over the canonical string forms of the inputs,
  so two decimal values that are numerically equal produce the same key.

SEE ALSO:
  - cache/: Store interface with memory and Redis implementations
  - analyzer.go: The pure computation being wrapped
*/
package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/warp/fire-engine/cache"
)

// CachedAnalyzer memoizes Status computations behind an injectable store.
type CachedAnalyzer struct {
	analyzer *Analyzer
	store    cache.Store
	ttl      time.Duration
}

// NewCachedAnalyzer wraps an analyzer with a snapshot cache. A non-positive
// ttl caches without expiry.
func NewCachedAnalyzer(a *Analyzer, store cache.Store, ttl time.Duration) *CachedAnalyzer {
	return &CachedAnalyzer{analyzer: a, store: store, ttl: ttl}
}

// Status returns the cached snapshot for the inputs when present, computing
// and storing it otherwise. Cache write failures do not fail the call; the
// freshly computed result is returned regardless.
func (c *CachedAnalyzer) Status(ctx context.Context, in StatusInput) (*Status, error) {
	key := statusKey(in)

	if raw, ok, err := c.store.Get(ctx, key); err == nil && ok {
		var cached Status
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return &cached, nil
		}
		// Corrupt snapshot: fall through and recompute.
	}

	status, err := c.analyzer.Status(in)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(status); jsonErr == nil {
		_ = c.store.Set(ctx, key, raw, c.ttl)
	}
	return status, nil
}

// Invalidate drops the snapshot for the given inputs.
func (c *CachedAnalyzer) Invalidate(ctx context.Context, in StatusInput) error {
	return c.store.Delete(ctx, statusKey(in))
}

func statusKey(in StatusInput) string {
	var b strings.Builder
	b.WriteString(in.CurrentAssets.String())
	b.WriteByte('|')
	b.WriteString(in.TargetAssets.String())
	b.WriteByte('|')
	b.WriteString(in.AnnualExpense.String())
	for _, v := range in.AssetHistory {
		b.WriteByte('|')
		b.WriteString(v.String())
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "fire:status:" + hex.EncodeToString(sum[:])
}

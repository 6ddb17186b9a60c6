package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/jlap11/gestabiz-authz/pkg/cache/memorycache"
)

func TestCollector_RecordCheck(t *testing.T) {
	c := NewCollector()

	c.RecordCheck(true)
	c.RecordCheck(true)
	c.RecordCheck(false)

	m := c.GetDecisionMetrics()
	if m.ChecksAllowed != 2 {
		t.Errorf("GetDecisionMetrics().ChecksAllowed = %v, want 2", m.ChecksAllowed)
	}
	if m.ChecksDenied != 1 {
		t.Errorf("GetDecisionMetrics().ChecksDenied = %v, want 1", m.ChecksDenied)
	}
}

func TestCollector_RecordOwnerBypass(t *testing.T) {
	c := NewCollector()

	c.RecordOwnerBypass()
	c.RecordOwnerBypass()

	if m := c.GetDecisionMetrics(); m.OwnerBypasses != 2 {
		t.Errorf("GetDecisionMetrics().OwnerBypasses = %v, want 2", m.OwnerBypasses)
	}
}

func TestCollector_RecordLegacyTranslation(t *testing.T) {
	c := NewCollector()

	c.RecordLegacyTranslation(true)
	c.RecordLegacyTranslation(false)
	c.RecordLegacyTranslation(false)

	m := c.GetDecisionMetrics()
	if m.LegacyTranslated != 1 {
		t.Errorf("GetDecisionMetrics().LegacyTranslated = %v, want 1", m.LegacyTranslated)
	}
	if m.LegacyUnknown != 2 {
		t.Errorf("GetDecisionMetrics().LegacyUnknown = %v, want 2", m.LegacyUnknown)
	}
}

func TestCollector_GetCacheMetrics_NoCache(t *testing.T) {
	c := NewCollector()

	m := c.GetCacheMetrics()
	if m == nil {
		t.Fatal("GetCacheMetrics() = nil, want zero-value metrics")
	}
	if m.Hits != 0 || m.Misses != 0 {
		t.Errorf("GetCacheMetrics() without cache = %+v, want zeros", m)
	}
}

func TestCollector_GetCacheMetrics(t *testing.T) {
	c := NewCollector()
	mc := memorycache.New(&memorycache.Config{
		MaxEntries:    10,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	c.SetCache(mc)

	ctx := context.Background()
	_ = mc.Set(ctx, "key", "value", time.Minute)
	_, _ = mc.Get(ctx, "key")
	_, _ = mc.Get(ctx, "missing")

	m := c.GetCacheMetrics()
	if m.Hits != 1 {
		t.Errorf("GetCacheMetrics().Hits = %v, want 1", m.Hits)
	}
	if m.Misses != 1 {
		t.Errorf("GetCacheMetrics().Misses = %v, want 1", m.Misses)
	}
	if m.KeysCurrent != 1 {
		t.Errorf("GetCacheMetrics().KeysCurrent = %v, want 1", m.KeysCurrent)
	}
	if m.HitRate != 0.5 {
		t.Errorf("GetCacheMetrics().HitRate = %v, want 0.5", m.HitRate)
	}
}

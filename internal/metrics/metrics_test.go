package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()
	mc := NewMemoryCollector()
	snap := mc.Snapshot()
	if snap.Sys == 0 {
		t.Error("expected non-zero Sys bytes")
	}
	if snap.TotalAlloc == 0 {
		t.Error("expected non-zero TotalAlloc")
	}
}

func TestAllocDelta(t *testing.T) {
	t.Parallel()
	before := MemorySnapshot{TotalAlloc: 1000}
	after := MemorySnapshot{TotalAlloc: 4000}
	if got := AllocDelta(before, after); got != 3000 {
		t.Errorf("AllocDelta = %d, want 3000", got)
	}
	// TotalAlloc is monotonic; a reversed pair indicates snapshots from
	// different processes and reports zero rather than underflowing.
	if got := AllocDelta(after, before); got != 0 {
		t.Errorf("AllocDelta reversed = %d, want 0", got)
	}
}

func TestAllocDelta_ObservesAllocations(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()
	buf := make([]float64, 1_000_000)
	_ = buf[len(buf)-1]
	after := mc.Snapshot()

	if AllocDelta(before, after) < 1_000_000*8/2 {
		t.Error("expected alloc delta to reflect a large allocation")
	}
}

func TestRegistry_WriteText(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.ObserveStrategy("vectorized", 5*time.Millisecond, 8_000_000)
	r.ObserveStrategy("append-loop", 80*time.Millisecond, 40_000_000)
	r.ObserveRun(1_000_000)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"logbench_strategy_duration_seconds",
		"logbench_strategy_alloc_bytes",
		"logbench_runs_total",
		"logbench_sample_count",
		`strategy="vectorized"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition output missing %q:\n%s", want, out)
		}
	}
}

package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"blackipher/internal/metrics"
)

func TestRecordOp_CountsAndSnapshot(t *testing.T) {
	m := metrics.New()
	started := time.Now()
	m.RecordOp(metrics.OpSeal, started)
	m.RecordOp(metrics.OpSeal, started)
	m.RecordOp(metrics.OpOpen, started)
	m.RecordOpError(metrics.OpOpen)
	m.RecordError(metrics.CategoryCrypto)

	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if got := snap.Operations[metrics.OpSeal]; got.Count != 2 || got.Errors != 0 {
		t.Fatalf("seal stats = %+v", got)
	}
	if got := snap.Operations[metrics.OpOpen]; got.Count != 1 || got.Errors != 1 {
		t.Fatalf("open stats = %+v", got)
	}
	if snap.Errors[metrics.CategoryCrypto] != 1 {
		t.Fatalf("crypto errors = %d", snap.Errors[metrics.CategoryCrypto])
	}
	if v, ok := snap.Errors[metrics.CategoryStorage]; !ok || v != 0 {
		t.Fatalf("storage category should be pre-registered at zero, got %d, %v", v, ok)
	}
}

func TestRegistry_ExposesCounters(t *testing.T) {
	m := metrics.New()
	m.RecordError(metrics.CategoryStorage)
	m.RecordError(metrics.CategoryStorage)

	n, err := testutil.GatherAndCount(m.Registry(), "blackipher_errors_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != 4 {
		t.Fatalf("want 4 error series, got %d", n)
	}
}

func TestNilMetrics_NoOp(t *testing.T) {
	var m *metrics.Metrics
	m.RecordOp(metrics.OpSave, time.Now())
	m.RecordOpError(metrics.OpSave)
	m.RecordError(metrics.CategoryInput)
	snap, err := m.Snapshot()
	if err != nil || len(snap.Operations) != 0 {
		t.Fatalf("nil snapshot = %+v, %v", snap, err)
	}
	if m.Registry() != nil {
		t.Fatal("nil metrics should have nil registry")
	}
}

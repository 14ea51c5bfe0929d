package timing

import (
	"errors"
	"testing"
	"time"
)

func TestMeasure_ReturnsValueAndDuration(t *testing.T) {
	t.Parallel()
	value, elapsed, err := Measure(func() ([]float64, error) {
		time.Sleep(time.Millisecond)
		return []float64{1, 2, 3}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(value) != 3 {
		t.Errorf("expected 3 elements, got %d", len(value))
	}
	if elapsed <= 0 {
		t.Errorf("expected positive elapsed duration, got %v", elapsed)
	}
}

func TestMeasure_PropagatesError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("strategy failed")
	value, elapsed, err := Measure(func() (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected error to propagate unchanged, got %v", err)
	}
	if value != 0 {
		t.Errorf("expected zero value on error, got %d", value)
	}
	if elapsed < 0 {
		t.Errorf("elapsed must be non-negative even on error, got %v", elapsed)
	}
}

func TestMeasure_EmptyWork(t *testing.T) {
	t.Parallel()
	out, elapsed, err := Measure(func() ([]float64, error) {
		return []float64{}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d elements", len(out))
	}
	if elapsed < 0 {
		t.Errorf("expected non-negative duration, got %v", elapsed)
	}
}

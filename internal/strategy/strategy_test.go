package strategy

import (
	"context"
	"math"
	"testing"
)

const tolerance = 1e-9

func allStrategies() []Strategy {
	return NewDefaultFactory().GetAll()
}

func TestStrategies_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		samples []float64
		want    []float64
	}{
		{"two known points", []float64{4.0, 100.0}, []float64{0.6020599913279624, 2.0}},
		{"log10 of one is zero", []float64{1.0}, []float64{0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, s := range allStrategies() {
				got, err := s.Apply(context.Background(), tt.samples, Log10)
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", s.Name(), err)
				}
				if len(got) != len(tt.want) {
					t.Fatalf("%s: got %d elements, want %d", s.Name(), len(got), len(tt.want))
				}
				for i := range tt.want {
					if math.Abs(got[i]-tt.want[i]) > tolerance {
						t.Errorf("%s: result[%d] = %v, want %v", s.Name(), i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestStrategies_EmptyInput(t *testing.T) {
	t.Parallel()
	for _, s := range allStrategies() {
		got, err := s.Apply(context.Background(), nil, Log10)
		if err != nil {
			t.Errorf("%s: unexpected error on empty input: %v", s.Name(), err)
		}
		if len(got) != 0 {
			t.Errorf("%s: expected empty result, got %d elements", s.Name(), len(got))
		}
	}
}

func TestStrategies_InputNotMutated(t *testing.T) {
	t.Parallel()
	samples := []float64{4.0, 10.0, 55.5, 100.0}
	original := make([]float64, len(samples))
	copy(original, samples)

	for _, s := range allStrategies() {
		if _, err := s.Apply(context.Background(), samples, Log10); err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		for i := range samples {
			if samples[i] != original[i] {
				t.Fatalf("%s mutated input at index %d", s.Name(), i)
			}
		}
	}
}

func TestStrategies_Idempotent(t *testing.T) {
	t.Parallel()
	samples := []float64{2.5, 7.7, 42.0, 99.99}
	for _, s := range allStrategies() {
		first, err := s.Apply(context.Background(), samples, Log10)
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		second, err := s.Apply(context.Background(), samples, Log10)
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("%s: repeated runs differ at index %d: %v != %v",
					s.Name(), i, first[i], second[i])
			}
		}
	}
}

func TestStrategies_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range allStrategies() {
		_, err := s.Apply(ctx, []float64{1, 2, 3}, Log10)
		if err != context.Canceled {
			t.Errorf("%s: expected context.Canceled, got %v", s.Name(), err)
		}
	}
}

func TestStrategies_SentinelOutputsOnDomainViolation(t *testing.T) {
	t.Parallel()
	samples := []float64{0.0, -5.0, 10.0}
	for _, s := range allStrategies() {
		got, err := s.Apply(context.Background(), samples, Log10)
		if err != nil {
			t.Fatalf("%s: strategies do not error on domain violations, got %v", s.Name(), err)
		}
		if !math.IsInf(got[0], -1) {
			t.Errorf("%s: log10(0) = %v, want -Inf", s.Name(), got[0])
		}
		if !math.IsNaN(got[1]) {
			t.Errorf("%s: log10(-5) = %v, want NaN", s.Name(), got[1])
		}
		if math.Abs(got[2]-1.0) > tolerance {
			t.Errorf("%s: log10(10) = %v, want 1.0", s.Name(), got[2])
		}
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	t.Run("List returns execution order", func(t *testing.T) {
		t.Parallel()
		want := []string{"append-loop", "prealloc-loop", "map-func", "vectorized"}
		got := factory.List()
		if len(got) != len(want) {
			t.Fatalf("List() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("Get by name", func(t *testing.T) {
		t.Parallel()
		s, err := factory.Get("vectorized")
		if err != nil {
			t.Fatalf("Get(vectorized) error: %v", err)
		}
		if s.Name() != "vectorized" {
			t.Errorf("Get(vectorized).Name() = %q", s.Name())
		}
	})

	t.Run("Get unknown name fails", func(t *testing.T) {
		t.Parallel()
		if _, err := factory.Get("bogus"); err == nil {
			t.Error("expected error for unknown strategy name")
		}
	})

	t.Run("GetAll matches List", func(t *testing.T) {
		t.Parallel()
		all := factory.GetAll()
		names := factory.List()
		if len(all) != len(names) {
			t.Fatalf("GetAll returned %d strategies, List %d names", len(all), len(names))
		}
		for i := range all {
			if all[i].Name() != names[i] {
				t.Errorf("GetAll()[%d].Name() = %q, want %q", i, all[i].Name(), names[i])
			}
		}
	})
}

func TestMap(t *testing.T) {
	t.Parallel()
	got := Map([]int{1, 2, 3}, func(v int) int { return v * v })
	want := []int{1, 4, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

package catalog

import (
	"testing"
	"time"
)

// maxLatency is the acceptable time for one evaluation including binding.
const maxLatency = 100 * time.Millisecond

func BenchmarkEvaluate_Scalar(b *testing.B) {
	c, err := New()
	if err != nil {
		b.Fatal(err)
	}
	in := NewInputs().
		SetScalar("supplied_electricity", 1000).
		SetScalar("sold_electricity", 950).
		SetScalar("grid_factor", 0.785)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Evaluate("power/transmission-loss", in)
	}
}

func BenchmarkEvaluate_Series(b *testing.B) {
	c, err := New()
	if err != nil {
		b.Fatal(err)
	}
	activity := make([]float64, 64)
	factor := make([]float64, 64)
	for i := range activity {
		activity[i] = float64(i)
		factor[i] = 0.5
	}
	in := NewInputs().
		SetSeries("fuel_activity", activity).
		SetSeries("fuel_factor", factor)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Evaluate("general/fuel-mix", in)
	}
}

func BenchmarkEvaluate_BindingFailure(b *testing.B) {
	c, err := New()
	if err != nil {
		b.Fatal(err)
	}
	in := NewInputs().SetScalar("unexpected", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Evaluate("mining/fuel-combustion", in)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := New(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestLatencyRequirement_Evaluate(t *testing.T) {
	c := newTestCatalog(t)
	in := NewInputs().
		SetSeries("electricity_activity", []float64{100, 200}).
		SetSeries("electricity_factor", []float64{0.5, 0.6}).
		SetSeries("heat_activity", []float64{10}).
		SetSeries("heat_factor", []float64{0.1})

	start := time.Now()
	_, err := c.Evaluate("aviation/enterprise", in)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if elapsed > maxLatency {
		t.Errorf("evaluation took %v, exceeds %v limit", elapsed, maxLatency)
	}
}

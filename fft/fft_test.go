package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestEnginesRegistered(t *testing.T) {
	for _, name := range []string{gonumName, godspName} {
		if _, err := FindEngine(name); err != nil {
			t.Fatalf("FindEngine(%q) error = %v", name, err)
		}
	}

	if _, err := FindEngine("kissfft"); err == nil {
		t.Fatal("FindEngine(kissfft) error = nil, want error")
	}

	if _, err := FindEngine(DefaultEngine()); err != nil {
		t.Fatalf("default engine %q not registered: %v", DefaultEngine(), err)
	}
}

func TestImpulseIsFlat(t *testing.T) {
	for _, name := range EngineNames() {
		t.Run(name, func(t *testing.T) {
			e, _ := FindEngine(name)

			plan, err := NewPlan(e, 8)
			if err != nil {
				t.Fatalf("NewPlan() error = %v", err)
			}
			defer plan.Release()

			src := make([]complex128, 8)
			src[0] = 1
			dst := make([]complex128, 8)

			if err := plan.Execute(dst, src); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			for i, v := range dst {
				if cmplx.Abs(v-1) > 1e-9 {
					t.Fatalf("dst[%d] = %v, want 1", i, v)
				}
			}
		})
	}
}

func TestConstantIsDC(t *testing.T) {
	for _, name := range EngineNames() {
		t.Run(name, func(t *testing.T) {
			e, _ := FindEngine(name)
			plan, _ := NewPlan(e, 6)

			src := []complex128{2, 2, 2, 2, 2, 2}
			dst := make([]complex128, 6)

			if err := plan.Execute(dst, src); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if cmplx.Abs(dst[0]-12) > 1e-9 {
				t.Fatalf("dst[0] = %v, want 12", dst[0])
			}

			for i := 1; i < len(dst); i++ {
				if cmplx.Abs(dst[i]) > 1e-9 {
					t.Fatalf("dst[%d] = %v, want 0", i, dst[i])
				}
			}
		})
	}
}

func TestEnginesAgree(t *testing.T) {
	reals := generateReals()[:1000]

	src := make([]complex128, len(reals))
	for i, v := range reals {
		src[i] = complex(v/1e4, 0)
	}

	results := map[string][]complex128{}

	for _, name := range EngineNames() {
		e, _ := FindEngine(name)
		plan, err := NewPlan(e, len(src))
		if err != nil {
			t.Fatalf("NewPlan(%s) error = %v", name, err)
		}

		dst := make([]complex128, len(src))
		if err := plan.Execute(dst, src); err != nil {
			t.Fatalf("Execute(%s) error = %v", name, err)
		}
		plan.Release()

		results[name] = dst
	}

	want := results[gonumName]
	for name, got := range results {
		for i := range want {
			if cmplx.Abs(got[i]-want[i]) > 1e-6*math.Max(1, cmplx.Abs(want[i])) {
				t.Fatalf("%s[%d] = %v, gonum = %v", name, i, got[i], want[i])
			}
		}
	}
}

func TestPlanSizeChecks(t *testing.T) {
	e, _ := FindEngine(gonumName)

	if _, err := NewPlan(e, 0); err == nil {
		t.Fatal("NewPlan(0) error = nil, want error")
	}

	plan, _ := NewPlan(e, 4)
	if plan.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", plan.Size())
	}

	err := plan.Execute(make([]complex128, 4), make([]complex128, 3))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Execute() error = %v, want ErrSizeMismatch", err)
	}

	plan.Release()
	if err := plan.Execute(make([]complex128, 4), make([]complex128, 4)); err == nil {
		t.Fatal("Execute() after Release error = nil, want error")
	}
}

func Benchmark(b *testing.B) {
	e, _ := FindEngine(DefaultEngine())
	b.Logf("Benchmarking %s.", e.Name())

	reals := generateReals()
	src := make([]complex128, len(reals))
	for i, v := range reals {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, len(src))

	plan, err := NewPlan(e, len(src))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		plan.Execute(dst, src)
	}
}

// Adapted from https://github.com/project-gemmi/benchmarking-fft/blob/master/1d-r.cpp

const numReals = 44100

func generateReals() []float64 {
	input := make([]float64, numReals)

	c := 3.1
	for i := range input {
		c += 0.3
		input[i] = 2*c - c*c
	}

	return input
}

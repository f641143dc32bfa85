package dsp

import (
	"math"
	"testing"
)

func TestSmootherAverage(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	mags := []float64{3, 0, 6, 0}
	sm.Average(mags)

	want := []float64{1.5, 3, 2, 3}
	for i := range want {
		if math.Abs(mags[i]-want[i]) > tolerance {
			t.Fatalf("Average()[%d] = %v, want %v", i, mags[i], want[i])
		}
	}

	single := []float64{7}
	sm.Average(single)
	if single[0] != 7 {
		t.Fatalf("Average() single bar = %v, want 7", single[0])
	}
}

func TestSmootherCalcMaxFirstFrame(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	if got := sm.RunningMax(); got != -1 {
		t.Fatalf("RunningMax() = %v, want -1", got)
	}

	if got := sm.CalcMax([]float64{1, 4, 2}); got != 4 {
		t.Fatalf("CalcMax() = %v, want 4", got)
	}

	if got := sm.RunningMax(); got != 4 {
		t.Fatalf("RunningMax() = %v, want 4", got)
	}

	// (1 - 0.2) * 4 + 0.2 * 9
	if got := sm.CalcMax([]float64{9}); math.Abs(got-5) > tolerance {
		t.Fatalf("CalcMax() = %v, want 5", got)
	}
}

func TestSmootherCalcMaxConverges(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	sm.CalcMax([]float64{10})

	series := []float64{0.5, 2, 1}
	prev := sm.RunningMax()

	for i := 0; i < 200; i++ {
		got := sm.CalcMax(series)
		if got < 2-tolerance {
			t.Fatalf("CalcMax() overshot below peak: %v", got)
		}
		if got > prev {
			t.Fatalf("CalcMax() moved away from peak: %v > %v", got, prev)
		}
		prev = got
	}

	if math.Abs(prev-2) > 1e-9 {
		t.Fatalf("CalcMax() converged to %v, want 2", prev)
	}
}

func TestSmootherCalcMaxNoOvershootFromBelow(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	sm.CalcMax([]float64{1})

	for i := 0; i < 100; i++ {
		if got := sm.CalcMax([]float64{3}); got > 3 {
			t.Fatalf("CalcMax() = %v, overshoots 3", got)
		}
	}
}

func TestSmootherResetRestoresSentinel(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())
	sm.CalcMax([]float64{5})
	sm.Reset()

	if got := sm.RunningMax(); got != -1 {
		t.Fatalf("RunningMax() after Reset = %v, want -1", got)
	}

	if got := sm.CalcMax([]float64{2}); got != 2 {
		t.Fatalf("CalcMax() after Reset = %v, want 2", got)
	}
}

func TestSmootherSmoothBounds(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	const rows = 10

	frames := [][]float64{
		{0, 100, 3, 0, 7},
		{50, 0, 0, 1, 900},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	}

	for _, frame := range frames {
		mags := append([]float64(nil), frame...)
		sm.Smooth(mags, rows)

		for i, v := range mags {
			if v < 0 || v > rows {
				t.Fatalf("Smooth()[%d] = %v, want within [0, %d]", i, v, rows)
			}
		}
	}
}

func TestSmootherDecayFloor(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	const rows = 20

	first := []float64{5, 5, 5}
	sm.Smooth(first, rows)

	prev := append([]float64(nil), first...)

	silent := []float64{0, 0, 0}
	sm.Smooth(silent, rows)

	for i := range silent {
		floor := prev[i] * 0.8
		if silent[i] < floor-tolerance {
			t.Fatalf("Smooth()[%d] = %v, want >= %v", i, silent[i], floor)
		}
		if math.Abs(silent[i]-floor) > tolerance {
			t.Fatalf("Smooth()[%d] = %v, want exactly %v on silence", i, silent[i], floor)
		}
	}
}

func TestSmootherAttackIsInstant(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	const rows = 8

	mags := []float64{4, 4, 4}
	sm.Smooth(mags, rows)

	for i, v := range mags {
		if math.Abs(v-rows) > tolerance {
			t.Fatalf("Smooth()[%d] = %v, want %d", i, v, rows)
		}
	}
}

func TestSmootherGrowingBarsStartAtZero(t *testing.T) {
	sm := NewSmoother(DefaultSmootherConfig())

	const rows = 10

	sm.Smooth([]float64{9, 9, 9, 9}, rows)
	sm.Smooth([]float64{0, 0}, rows)

	// Bars 2 and 3 were not drawn last frame, so only silence is left.
	sm.Reset()
	mags := []float64{0, 0, 0, 0}
	sm.Smooth(mags, rows)

	if mags[2] != 0 || mags[3] != 0 {
		t.Fatalf("Smooth() regrown bars = %v, want zeros at 2 and 3", mags)
	}
	if mags[0] == 0 {
		t.Fatalf("Smooth() bar 0 = 0, want decayed history")
	}
}

func TestNewSmootherDefaults(t *testing.T) {
	sm := NewSmoother(SmootherConfig{})

	if sm.cfg != DefaultSmootherConfig() {
		t.Fatalf("NewSmoother(zero) config = %+v, want defaults", sm.cfg)
	}
}

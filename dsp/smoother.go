package dsp

import "math"

// noMax marks a running max that has not seen a frame yet.
const noMax = -1.0

type SmootherConfig struct {
	Alpha    float64 // weight of the newest frame peak in the running max
	Decay    float64 // fraction of the previous bar height kept per frame
	Exponent float64 // curve applied to normalized bar heights
}

// DefaultSmootherConfig returns the tuning the visualizer ships with.
func DefaultSmootherConfig() SmootherConfig {
	return SmootherConfig{
		Alpha:    0.2,
		Decay:    0.8,
		Exponent: 1.0,
	}
}

// Smoother carries bar heights and the running peak from one frame to the
// next.
type Smoother struct {
	cfg SmootherConfig

	last       []float64 // bar heights from the previous frame
	scratch    []float64 // box filter output
	runningMax float64
}

func NewSmoother(cfg SmootherConfig) *Smoother {
	def := DefaultSmootherConfig()

	if cfg.Alpha <= 0.0 || cfg.Alpha > 1.0 {
		cfg.Alpha = def.Alpha
	}

	if cfg.Decay <= 0.0 || cfg.Decay >= 1.0 {
		cfg.Decay = def.Decay
	}

	if cfg.Exponent <= 0.0 {
		cfg.Exponent = def.Exponent
	}

	return &Smoother{
		cfg:        cfg,
		runningMax: noMax,
	}
}

// Reset forgets the running max. Bar history is kept so bars still fall
// smoothly after a reset.
func (sm *Smoother) Reset() {
	sm.runningMax = noMax
}

// RunningMax returns the current normalization peak, or -1 before the first
// frame after a reset.
func (sm *Smoother) RunningMax() float64 {
	return sm.runningMax
}

// Smooth runs the box filter, peak normalization and falloff over mags in
// place. Values come out within [0, rows].
func (sm *Smoother) Smooth(mags []float64, rows int) {
	sm.Average(mags)

	peak := sm.CalcMax(mags)

	sm.resize(len(mags))

	height := float64(rows)

	for idx, v := range mags {
		norm := 0.0
		if peak > 0.0 {
			norm = math.Min(v/peak, 1.0)
		}

		if math.IsNaN(norm) || norm < 0.0 {
			norm = 0.0
		}

		scaled := math.Pow(norm, sm.cfg.Exponent) * height
		decayed := sm.last[idx] * sm.cfg.Decay

		v = math.Min(math.Max(scaled, decayed), height)

		mags[idx] = v
		sm.last[idx] = v
	}
}

// Average replaces each bar with the mean of itself and its direct
// neighbours. Edge bars average over the neighbours they have.
func (sm *Smoother) Average(mags []float64) {
	count := len(mags)

	if cap(sm.scratch) < count {
		sm.scratch = make([]float64, count)
	}

	buf := sm.scratch[:count]

	for idx := range mags {
		sum := mags[idx]
		n := 1.0

		if idx > 0 {
			sum += mags[idx-1]
			n++
		}

		if idx+1 < count {
			sum += mags[idx+1]
			n++
		}

		buf[idx] = sum / n
	}

	copy(mags, buf)
}

// CalcMax folds the peak of mags into the running max and returns it.
func (sm *Smoother) CalcMax(mags []float64) float64 {
	peak := 0.0
	for _, v := range mags {
		if v > peak {
			peak = v
		}
	}

	if sm.runningMax < 0.0 {
		sm.runningMax = peak
		return peak
	}

	sm.runningMax = (1.0-sm.cfg.Alpha)*sm.runningMax + sm.cfg.Alpha*peak

	return sm.runningMax
}

// resize matches the bar history to count bars. Bars that were not drawn last
// frame start from zero.
func (sm *Smoother) resize(count int) {
	switch {
	case len(sm.last) > count:
		sm.last = sm.last[:count]

	case len(sm.last) < count:
		old := len(sm.last)

		if cap(sm.last) >= count {
			sm.last = sm.last[:count]
		} else {
			grown := make([]float64, count)
			copy(grown, sm.last)
			sm.last = grown
		}

		for idx := old; idx < count; idx++ {
			sm.last[idx] = 0.0
		}
	}
}

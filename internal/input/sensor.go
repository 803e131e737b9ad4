package input

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DefaultInterval is the sensor sampling period.
const DefaultInterval = 15 * time.Millisecond

// Source produces tilt readings on demand.
type Source interface {
	Next() Sample
}

// Sensor delivers samples to sink until ctx is cancelled.
type Sensor interface {
	Run(ctx context.Context, sink func(Sample)) error
}

// Poller reads a Source at a fixed interval.
type Poller struct {
	Source   Source
	Interval time.Duration
}

// Run implements Sensor. It returns ctx.Err() once cancelled.
func (p Poller) Run(ctx context.Context, sink func(Sample)) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s := p.Source.Next()
			s.At = now
			sink(s)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Wave is a deterministic sinusoidal tilt, like a player rocking the device.
type Wave struct {
	Amplitude float64
	Period    int // Samples per full swing
	n         int
}

// NewWave creates a wave source.
func NewWave(amplitude float64, period int) *Wave {
	if period < 2 {
		period = 2
	}
	return &Wave{Amplitude: amplitude, Period: period}
}

// Next implements Source.
func (w *Wave) Next() Sample {
	x := w.Amplitude * math.Sin(2*math.Pi*float64(w.n)/float64(w.Period))
	w.n++
	return Sample{X: x}
}

// RandomWalk is a seeded tilt that drifts by at most Step per sample
// and stays within [-Limit, Limit].
type RandomWalk struct {
	Step  float64
	Limit float64
	rng   *rand.Rand
	tilt  float64
}

// NewRandomWalk creates a random walk source.
func NewRandomWalk(seed int64, step, limit float64) *RandomWalk {
	return &RandomWalk{
		Step:  step,
		Limit: limit,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Next implements Source.
func (r *RandomWalk) Next() Sample {
	r.tilt += (r.rng.Float64()*2 - 1) * r.Step
	r.tilt = math.Max(-r.Limit, math.Min(r.Limit, r.tilt))
	return Sample{X: r.tilt}
}

// Sensor names accepted by NewSource.
const (
	SourceWave   = "wave"
	SourceRandom = "random"
	SourceNone   = "none"
)

// NewSource builds a named synthetic source. "none" returns nil.
func NewSource(name string, seed int64) (Source, error) {
	switch name {
	case SourceWave:
		return NewWave(4, 120), nil
	case SourceRandom:
		return NewRandomWalk(seed, 1.5, 6), nil
	case SourceNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown sensor %q (want %s, %s or %s)", name, SourceWave, SourceRandom, SourceNone)
	}
}

// Package input collects tilt samples from a sensor and hands them to the
// game loop at tick boundaries.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/tilt-arcade/internal/core"
)

// Sample is one horizontal tilt reading. Only X moves the ball.
type Sample struct {
	X  float64
	At time.Time
}

// TiltBuffer accumulates samples between ticks.
// Push may be called from a sensor goroutine while the game loop drains.
type TiltBuffer struct {
	mu          sync.Mutex
	sum         float64
	count       int
	sensitivity float64
	actions     map[core.Action]bool
}

// NewTiltBuffer creates a buffer that scales tilt by sensitivity.
// A non-positive sensitivity is treated as 1.
func NewTiltBuffer(sensitivity float64) *TiltBuffer {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return &TiltBuffer{
		sensitivity: sensitivity,
		actions:     make(map[core.Action]bool),
	}
}

// Push adds a sample.
func (b *TiltBuffer) Push(s Sample) {
	b.mu.Lock()
	b.sum += s.X
	b.count++
	b.mu.Unlock()
}

// Press queues an action for the next tick.
func (b *TiltBuffer) Press(a core.Action) {
	b.mu.Lock()
	b.actions[a] = true
	b.mu.Unlock()
}

// Pending returns the number of samples since the last drain.
func (b *TiltBuffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Drain returns the scaled tilt and actions collected since the last
// drain as an input frame, and empties the buffer.
func (b *TiltBuffer) Drain() core.InputFrame {
	b.mu.Lock()
	defer b.mu.Unlock()

	frame := core.NewInputFrame()
	frame.TiltX = b.sum * b.sensitivity
	for a, pressed := range b.actions {
		if pressed {
			frame.Set(a)
		}
	}
	// Clear inputs after use (they're "consumed" this tick)
	b.sum = 0
	b.count = 0
	clear(b.actions)
	return frame
}

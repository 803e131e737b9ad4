package config

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Validate reports every field that would break the simulation.
// The returned error joins one error per problem.
func (c TiltDodgeConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Physics.Gravity < 0 {
		add("physics.gravity must be >= 0, got %v", c.Physics.Gravity)
	}
	if c.Physics.Iterations < 1 {
		add("physics.iterations must be >= 1, got %d", c.Physics.Iterations)
	}
	if c.Ball.Radius <= 0 {
		add("ball.radius must be > 0, got %v", c.Ball.Radius)
	}
	if c.Ball.YOffset < 0 {
		add("ball.y_offset must be >= 0, got %v", c.Ball.YOffset)
	}
	if c.Floor.Height <= 0 {
		add("floor.height must be > 0, got %v", c.Floor.Height)
	}
	if c.Obstacles.Count < 0 {
		add("obstacles.count must be >= 0, got %d", c.Obstacles.Count)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		add("obstacles size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	}
	if c.Obstacles.MinAirFriction < 0 || c.Obstacles.MaxAirFriction >= 1 {
		add("obstacles air friction must lie in [0, 1), got [%v, %v]", c.Obstacles.MinAirFriction, c.Obstacles.MaxAirFriction)
	}
	if c.Obstacles.MinAirFriction > c.Obstacles.MaxAirFriction {
		add("obstacles.min_air_friction %v exceeds max_air_friction %v", c.Obstacles.MinAirFriction, c.Obstacles.MaxAirFriction)
	}
	if c.Obstacles.SpawnMargin < 0 {
		add("obstacles.spawn_margin must be >= 0, got %d", c.Obstacles.SpawnMargin)
	}
	if c.Obstacles.SpawnMinY > c.Obstacles.SpawnMaxY {
		add("obstacles.spawn_min_y %d exceeds spawn_max_y %d", c.Obstacles.SpawnMinY, c.Obstacles.SpawnMaxY)
	}
	if c.Input.SampleIntervalMS < 1 {
		add("input.sample_interval_ms must be >= 1, got %d", c.Input.SampleIntervalMS)
	}
	if c.Dispatch != DispatchBatch && c.Dispatch != DispatchFirst {
		add("dispatch must be %q or %q, got %q", DispatchBatch, DispatchFirst, c.Dispatch)
	}
	colors := []struct{ field, hex string }{
		{"ball.color", c.Ball.Color},
		{"floor.color", c.Floor.Color},
	}
	for _, col := range colors {
		if col.hex == "" {
			continue
		}
		if _, err := colorful.Hex(col.hex); err != nil {
			add("%s: %w", col.field, err)
		}
	}

	return errors.Join(errs...)
}

// Package config provides YAML-based game configuration loading,
// validation and live reloading for the arcade platform.
package config

// Collision dispatch modes.
const (
	// DispatchBatch classifies every collision event of a tick.
	DispatchBatch = "batch"
	// DispatchFirst only looks at the first event of a tick. Kept as a
	// selectable legacy mode.
	DispatchFirst = "first"
)

// TiltDodgeConfig contains all configuration for the Tilt Dodge game.
type TiltDodgeConfig struct {
	Physics   TiltPhysics   `yaml:"physics"`
	Ball      TiltBall      `yaml:"ball"`
	Floor     TiltFloor     `yaml:"floor"`
	Obstacles TiltObstacles `yaml:"obstacles"`
	Input     TiltInput     `yaml:"input"`
	Dispatch  string        `yaml:"dispatch"` // "batch" or "first"
}

// TiltPhysics defines world parameters for Tilt Dodge.
type TiltPhysics struct {
	Gravity    float64 `yaml:"gravity"`    // Downward acceleration in units/tick²
	Iterations int     `yaml:"iterations"` // Solver iterations per step
}

// TiltBall defines the player ball.
type TiltBall struct {
	Radius  float64 `yaml:"radius"`
	YOffset float64 `yaml:"y_offset"` // Distance of the ball centre above the bottom edge
	Color   string  `yaml:"color"`    // Hex colour, empty for the default
}

// TiltFloor defines the floor sensor.
type TiltFloor struct {
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// TiltObstacles defines the falling obstacles.
type TiltObstacles struct {
	Count          int     `yaml:"count"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinAirFriction float64 `yaml:"min_air_friction"`
	MaxAirFriction float64 `yaml:"max_air_friction"`
	SpawnMargin    int     `yaml:"spawn_margin"` // Spawn x range is [1, play width - margin]
	SpawnMinY      int     `yaml:"spawn_min_y"`
	SpawnMaxY      int     `yaml:"spawn_max_y"`
}

// TiltInput defines the tilt sensor sampling.
type TiltInput struct {
	SampleIntervalMS int     `yaml:"sample_interval_ms"`
	Sensitivity      float64 `yaml:"sensitivity"` // Multiplier applied to every sample
}

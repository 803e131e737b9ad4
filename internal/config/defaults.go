package config

import (
	_ "embed"
)

//go:embed defaults/tiltdodge.yaml
var defaultTiltDodgeYAML []byte

// DefaultTiltDodgeConfig returns the default Tilt Dodge configuration.
func DefaultTiltDodgeConfig() TiltDodgeConfig {
	return TiltDodgeConfig{
		Physics: TiltPhysics{
			Gravity:    0.5,
			Iterations: 10,
		},
		Ball: TiltBall{
			Radius:  20,
			YOffset: 30,
		},
		Floor: TiltFloor{
			Height: 10,
			Color:  "#414448",
		},
		Obstacles: TiltObstacles{
			Count:          6,
			Width:          20,
			Height:         70,
			MinAirFriction: 0.01,
			MaxAirFriction: 0.5,
			SpawnMargin:    30,
			SpawnMinY:      0,
			SpawnMaxY:      200,
		},
		Input: TiltInput{
			SampleIntervalMS: 15,
			Sensitivity:      1.0,
		},
		Dispatch: DispatchBatch,
	}
}

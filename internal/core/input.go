package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw events.
type Action int

const (
	ActionNone  Action = iota
	ActionReset        // Reset button - restart the session
	ActionPause        // Pause/unpause the simulation
	ActionQuit         // Exit the driver loop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// TiltX is the accumulated horizontal tilt delta since the last tick.
	TiltX float64

	// Delta is the elapsed time for this tick measured in ticks.
	// Zero means one tick.
	Delta float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// StepDelta returns the tick delta, defaulting to one tick.
func (f InputFrame) StepDelta() float64 {
	if f.Delta <= 0 {
		return 1
	}
	return f.Delta
}

// Clear resets all actions and tilt for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.TiltX = 0
	f.Delta = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.TiltX = f.TiltX
	clone.Delta = f.Delta
	return clone
}

package core

import (
	"image/color"
	"testing"
)

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionReset) {
		t.Fatal("new frame should have no actions")
	}

	f.Set(ActionReset)
	if !f.Has(ActionReset) {
		t.Error("Has(ActionReset) should be true after Set")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}

	f.TiltX = 3.5
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionReset) || f.TiltX != 0 {
		t.Error("Clear should drop actions and tilt")
	}
	if !clone.Has(ActionReset) || clone.TiltX != 3.5 {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestStepDelta(t *testing.T) {
	tests := []struct {
		delta, expected float64
	}{
		{0, 1},
		{-2, 1},
		{0.5, 0.5},
		{2, 2},
	}
	for _, tc := range tests {
		f := InputFrame{Delta: tc.delta}
		if got := f.StepDelta(); got != tc.expected {
			t.Errorf("StepDelta() with Delta=%v = %v, expected %v", tc.delta, got, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionReset.String() != "Reset" {
		t.Errorf("ActionReset.String() = %q", ActionReset.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestColorHex(t *testing.T) {
	c := ColorFrom(color.RGBA{R: 0x41, G: 0x44, B: 0x48, A: 0xff})
	if c.Hex() != "#414448" {
		t.Errorf("Hex() = %q, expected #414448", c.Hex())
	}
}

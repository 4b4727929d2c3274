package core

import "testing"

func TestInputFramePressedAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)
	f.SetHeld(ActionLeft)

	if !f.Has(ActionHardDrop) {
		t.Error("Has(HardDrop) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("held action must not be reported as pressed")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) should be true after SetHeld")
	}

	f.Clear()
	if f.Has(ActionHardDrop) || f.IsHeld(ActionLeft) {
		t.Error("Clear should reset pressed and held actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionHold) || f.IsHeld(ActionRight) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionHold)
	f.SetHeld(ActionRight)
	if !f.Has(ActionHold) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should accept actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotateCW)
	f.SetHeld(ActionSoftDrop)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionRotateCW) || !c.IsHeld(ActionSoftDrop) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestActionContinuous(t *testing.T) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionSoftDrop} {
		if !a.Continuous() {
			t.Errorf("%s should be continuous", a)
		}
	}
	for _, a := range []Action{ActionHardDrop, ActionHold, ActionRotateCW, ActionPause} {
		if a.Continuous() {
			t.Errorf("%s should not be continuous", a)
		}
	}
}

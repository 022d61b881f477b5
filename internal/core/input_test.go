package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSelect) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionSelect)
	f.Set(ActionLeft)
	if !f.Has(ActionSelect) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) = true, expected false")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Click(3, 4)
	f.Click(10, 2)
	if f.Empty() {
		t.Error("frame with clicks should not be empty")
	}
	if len(f.Clicks) != 2 || f.Clicks[1] != (Point{X: 10, Y: 2}) {
		t.Errorf("Clicks = %v, expected [(3,4) (10,2)]", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop actions and clicks")
	}
	if len(clone.Clicks) != 2 {
		t.Errorf("clone lost clicks after Clear: %v", clone.Clicks)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionSelect, "Select"},
		{ActionRight, "Right"},
		{ActionSkip, "Skip"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

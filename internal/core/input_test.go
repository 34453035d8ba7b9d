package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft)

	if !f.Pressed(ActionLeft) {
		t.Error("Left should be pressed")
	}
	if f.Pressed(ActionJump) {
		t.Error("Jump should not be pressed")
	}

	f.Set(ActionJump)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionJump) {
		t.Error("Clear should release all actions")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRight) {
		t.Error("zero frame should report nothing pressed")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}

	var src InputSource = f
	if !src.Pressed(ActionRight) {
		t.Error("InputFrame should satisfy InputSource")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) should be visible through Has")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameMerge(t *testing.T) {
	keyboard := FrameOf(ActionLeft)
	touch := FrameOf(ActionUp, ActionJump)

	merged := NewInputFrame()
	merged.Merge(keyboard)
	merged.Merge(touch)

	for _, a := range []Action{ActionLeft, ActionUp, ActionJump} {
		if !merged.Has(a) {
			t.Errorf("merged frame missing %s", a)
		}
	}
	if merged.Has(ActionRight) {
		t.Error("merged frame should not invent actions")
	}

	// Sources are not modified
	if keyboard.Has(ActionUp) {
		t.Error("Merge should not modify the source frame")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := FrameOf(ActionRight)
	c := f.Clone()
	c.Set(ActionDown)

	if f.Has(ActionDown) {
		t.Error("Clone should be independent of the original")
	}
	if !c.Has(ActionRight) {
		t.Error("Clone should copy existing actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionConfirm.String() != "Confirm" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should be named Unknown")
	}
}

package tui

import (
	"testing"

	"github.com/vovakirdan/tui-kong/internal/core"
)

func TestLatchHoldsMovement(t *testing.T) {
	l := NewInputLatch(3)
	l.Press(core.ActionLeft)

	for i := range 3 {
		if !l.Frame().Has(core.ActionLeft) {
			t.Fatalf("frame %d: left should still be held", i)
		}
	}
	if l.Frame().Has(core.ActionLeft) {
		t.Error("left should expire after the hold")
	}
}

func TestLatchRepeatRearms(t *testing.T) {
	l := NewInputLatch(2)
	l.Press(core.ActionUp)
	l.Frame()
	l.Press(core.ActionUp)

	for i := range 2 {
		if !l.Frame().Has(core.ActionUp) {
			t.Fatalf("frame %d after repeat: up should be held", i)
		}
	}
	if l.Frame().Has(core.ActionUp) {
		t.Error("up should expire two frames after the repeat")
	}
}

func TestLatchOppositeReleases(t *testing.T) {
	l := NewInputLatch(10)
	l.Press(core.ActionLeft)
	l.Press(core.ActionUp)
	l.Press(core.ActionRight)

	f := l.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Error("right and up should both be held")
	}

	l.Press(core.ActionDown)
	f = l.Frame()
	if f.Has(core.ActionUp) || !f.Has(core.ActionDown) {
		t.Error("down should replace up")
	}
}

func TestLatchOneShots(t *testing.T) {
	l := NewInputLatch(10)

	for _, a := range []core.Action{core.ActionJump, core.ActionConfirm, core.ActionPause} {
		l.Press(a)
		if !l.Frame().Has(a) {
			t.Errorf("%v should be in the next frame", a)
		}
		if l.Frame().Has(a) {
			t.Errorf("%v should be delivered once", a)
		}
	}

	l.Press(core.ActionNone)
	if l.Frame().Has(core.ActionNone) {
		t.Error("ActionNone should be ignored")
	}
}

func TestLatchRelease(t *testing.T) {
	l := NewInputLatch(10)
	l.Press(core.ActionRight)
	l.Press(core.ActionJump)
	l.Release()

	f := l.Frame()
	if f.Has(core.ActionRight) || f.Has(core.ActionJump) {
		t.Error("Release should drop held and pending actions")
	}
}

func TestNewInputLatchDefaultHold(t *testing.T) {
	if l := NewInputLatch(0); l.hold != DefaultHoldTicks {
		t.Errorf("hold = %d, expected %d", l.hold, DefaultHoldTicks)
	}
}

func TestHoldTicksScalesWithRate(t *testing.T) {
	tests := []struct{ rate, want int }{
		{60, DefaultHoldTicks},
		{30, DefaultHoldTicks / 2},
		{120, DefaultHoldTicks * 2},
		{1, 1},
		{0, DefaultHoldTicks},
	}
	for _, tc := range tests {
		if got := holdTicks(tc.rate); got != tc.want {
			t.Errorf("holdTicks(%d) = %d, expected %d", tc.rate, got, tc.want)
		}
	}
}

package tui

import "github.com/vovakirdan/tui-kong/internal/core"

// DefaultHoldTicks is how long a movement key stays held after its last
// press or repeat at 60 ticks per second.
const DefaultHoldTicks = 12

// InputLatch turns key presses into per-tick input frames.
//
// Terminals report key presses and auto-repeats but no releases, so
// movement actions (left, right, up, down) stay held for a number of ticks
// after each press and are re-armed by repeats. Every other action is
// delivered in exactly one frame.
type InputLatch struct {
	hold  int
	held  map[core.Action]int
	once  core.InputFrame
	frame core.InputFrame
}

// NewInputLatch creates a latch holding movement keys for hold ticks.
func NewInputLatch(hold int) *InputLatch {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &InputLatch{
		hold:  hold,
		held:  make(map[core.Action]int),
		once:  core.NewInputFrame(),
		frame: core.NewInputFrame(),
	}
}

// opposite returns the movement action that cancels a, or ActionNone.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	default:
		return core.ActionNone
	}
}

// Press records a key press. Pressing a direction releases its opposite.
func (l *InputLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if o := opposite(a); o != core.ActionNone {
		delete(l.held, o)
		l.held[a] = l.hold
		return
	}
	l.once.Set(a)
}

// Frame returns the input for the next tick and ages held keys by one tick.
// The returned frame is reused by the next call.
func (l *InputLatch) Frame() core.InputFrame {
	l.frame.Clear()
	l.frame.Merge(l.once)
	l.once.Clear()

	for a, ticks := range l.held {
		l.frame.Set(a)
		if ticks <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = ticks - 1
		}
	}
	return l.frame
}

// Release drops every held and pending action.
func (l *InputLatch) Release() {
	for a := range l.held {
		delete(l.held, a)
	}
	l.once.Clear()
}

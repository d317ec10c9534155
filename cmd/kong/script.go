package main

import (
	"fmt"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// inputScript returns the input for a tick of a headless run.
type inputScript func(tick uint64) core.InputFrame

func scriptByName(name string) (inputScript, error) {
	switch name {
	case "idle":
		return idleScript, nil
	case "auto":
		return autoScript, nil
	default:
		return nil, fmt.Errorf("unknown script %q: want idle or auto", name)
	}
}

// idleScript presses Enter twice a second and nothing else.
func idleScript(tick uint64) core.InputFrame {
	f := core.NewInputFrame()
	if tick%30 == 0 {
		f.Set(core.ActionConfirm)
	}
	return f
}

// autoScript walks in two-second sweeps, alternating direction and trying
// every ladder on the way up.
func autoScript(tick uint64) core.InputFrame {
	f := idleScript(tick)
	switch (tick / 120) % 4 {
	case 0:
		f.Set(core.ActionRight)
		f.Set(core.ActionUp)
	case 1:
		f.Set(core.ActionRight)
	case 2:
		f.Set(core.ActionLeft)
		f.Set(core.ActionUp)
	case 3:
		f.Set(core.ActionLeft)
	}
	if tick%47 == 0 {
		f.Set(core.ActionJump)
	}
	return f
}

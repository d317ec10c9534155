package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// UpdateAvatar advances the avatar by one tick of input-driven physics.
// It raises w.AvatarDied when the avatar falls past the bottom of the field.
func UpdateAvatar(w *World, in core.InputFrame, cfg config.KongConfig) {
	a := &w.Avatar
	p := cfg.Avatar
	startX := a.X

	// Horizontal intent
	a.VX = 0
	if in.Has(core.ActionLeft) {
		a.VX -= p.Speed
		a.Facing = -1
	}
	if in.Has(core.ActionRight) {
		a.VX += p.Speed
		a.Facing = 1
	}

	surfaces := w.Surfaces()
	support := Supported(a.Body(), surfaces)

	// Conveyor drift applies only to belt platforms the avatar stands on
	if dir := w.ConveyorAt(support); dir != 0 {
		a.VX += float64(dir) * cfg.Mechanics.ConveyorDrift
	}

	updateLadderAttachment(w, in, p.SnapTolerance)

	if a.OnLadder {
		climb(w, in, p.ClimbRate)
	} else {
		if in.Has(core.ActionJump) && a.VY == 0 && support >= 0 {
			a.VY = p.JumpImpulse
		}
		a.VY += p.Gravity

		prevFoot := a.Y + a.H
		a.X += a.VX
		a.Y += a.VY

		if a.VY > 0 {
			if i := Landing(prevFoot, a.Body(), surfaces, p.SnapTolerance); i >= 0 {
				a.Y = surfaces[i].Y - a.H
				a.VY = 0
				// Ride along with the elevator's move for this tick
				if e := i - len(w.Platforms()); e >= 0 {
					el := &w.Elevators[e]
					a.Y += el.NextY() - el.Y
				}
			}
		}
	}

	a.X = core.ClampF(a.X, 0, w.Width-a.W)

	if a.Y > w.Height {
		w.AvatarDied = true
	}

	// Walk animation
	if a.X != startX {
		a.animTicks++
		if p.AnimEvery > 0 && a.animTicks%p.AnimEvery == 0 {
			a.Frame = (a.Frame + 1) % 4
		}
	} else {
		a.animTicks = 0
		a.Frame = 0
	}

	// Countdown runs before pickup so a fresh power-up lasts the full duration
	if a.HasPowerUp {
		a.PowerUpTicks--
		if a.PowerUpTicks <= 0 {
			a.PowerUpTicks = 0
			a.HasPowerUp = false
		}
	}

	// Hammers exist on girder screens only
	if !a.HasPowerUp && w.Stage.Variant == VariantGirders {
		body := a.Body()
		for i := range w.Hammers {
			h := &w.Hammers[i]
			if h.Available && WithinRadius(body, Point{X: h.X, Y: h.Y}, cfg.Mechanics.HammerRadius) {
				h.Available = false
				a.HasPowerUp = true
				a.PowerUpTicks = cfg.Mechanics.PowerUpTicks
				break
			}
		}
	}
}

// updateLadderAttachment attaches the avatar to a ladder when up or down is
// held inside a ladder zone, and detaches it once it left that ladder.
func updateLadderAttachment(w *World, in core.InputFrame, tol float64) {
	a := &w.Avatar
	body := a.Body()
	ladders := w.Ladders()

	if a.OnLadder {
		l := ladders[a.Ladder]
		if !inLadderSpan(body.CenterX(), l) || body.Bottom() < l.Y || body.Y > l.Bottom() {
			a.OnLadder = false
			a.Ladder = -1
		}
		return
	}

	up, down := in.Has(core.ActionUp), in.Has(core.ActionDown)
	if !up && !down {
		return
	}

	idx, ok := LadderZone(body, ladders)
	if !ok && down {
		idx, ok = LadderTop(body, ladders, supportEpsilon)
	}
	if ok {
		a.OnLadder = true
		a.Ladder = idx
	}
}

// climb moves an attached avatar along its ladder. Reaching either end of
// the ladder snaps the foot to it and releases the avatar. Gravity and
// horizontal movement do not apply while attached.
func climb(w *World, in core.InputFrame, rate float64) {
	a := &w.Avatar
	l := w.Ladders()[a.Ladder]

	a.VX = 0
	switch {
	case in.Has(core.ActionUp):
		a.VY = -rate
	case in.Has(core.ActionDown):
		a.VY = rate
	default:
		a.VY = 0
	}
	a.Y += a.VY

	foot := a.Y + a.H
	switch {
	case foot <= l.Y:
		a.Y = l.Y - a.H
	case foot >= l.Bottom():
		a.Y = l.Bottom() - a.H
	default:
		return
	}
	a.VY = 0
	a.OnLadder = false
	a.Ladder = -1
}

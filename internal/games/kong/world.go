package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// ElevatorHeight is the thickness of an elevator platform.
const ElevatorHeight = 8

// Avatar is the player-controlled climber.
type Avatar struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Facing int // -1 left, +1 right
	Frame  int // Walk animation frame

	// OnLadder is set while the avatar is attached to a ladder.
	OnLadder bool
	Ladder   int

	HasPowerUp   bool
	PowerUpTicks int

	animTicks int
}

// Body returns the avatar's bounding box.
func (a *Avatar) Body() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

// Hazard is a barrel or fireball.
type Hazard struct {
	Kind   HazardKind
	X, Y   float64
	VX, VY float64
	W, H   float64

	Dir          int // Current roll direction
	RidingLadder bool
	Ladder       int
	Grounded     bool
	Frame        int
	Alive        bool
}

// Body returns the hazard's bounding box.
func (h *Hazard) Body() core.RectF {
	return core.NewRectF(h.X, h.Y, h.W, h.H)
}

// Kill marks the hazard not alive. Reports false if it was already dead.
func (h *Hazard) Kill() bool {
	if !h.Alive {
		return false
	}
	h.Alive = false
	return true
}

// Pickup is a hammer spot.
type Pickup struct {
	X, Y      float64
	Available bool
}

// Rivet is a removable rivet on the rivets screen.
type Rivet struct {
	X, Y    float64
	Removed bool
}

// Elevator is a platform oscillating vertically between MinY and MaxY.
type Elevator struct {
	X, Y, Width float64
	MinY, MaxY  float64
	Direction   int
	Speed       float64
}

// Body returns the elevator's platform rectangle.
func (e *Elevator) Body() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, ElevatorHeight)
}

// NextY returns the elevator's top after its next move, clamped to its bounds.
func (e *Elevator) NextY() float64 {
	return core.ClampF(e.Y+float64(e.Direction)*e.Speed, e.MinY, e.MaxY)
}

// Move advances the elevator one tick and turns it around at its bounds.
func (e *Elevator) Move() {
	e.Y = e.NextY()
	if e.Y <= e.MinY {
		e.Direction = 1
	} else if e.Y >= e.MaxY {
		e.Direction = -1
	}
}

// World owns every mutable entity of the current level attempt.
type World struct {
	Stage  *Stage
	Width  float64
	Height float64

	Avatar    Avatar
	Hazards   []Hazard
	Hammers   []Pickup
	Rivets    []Rivet
	Elevators []Elevator

	// AvatarDied is raised by a death trigger during the current tick.
	AvatarDied bool

	surfaces []core.RectF
}

// NewWorld creates a world seeded from the stage.
func NewWorld(stage *Stage, cfg config.KongConfig) *World {
	w := &World{
		Stage:   stage,
		Width:   cfg.Field.Width,
		Height:  cfg.Field.Height,
		Hazards: make([]Hazard, 0, 8),
	}
	w.Seed(cfg.Avatar)
	return w
}

// Seed re-initializes the level attempt: hazards cleared, power-up cleared,
// avatar at the start point, hammers, rivets, and elevators restored.
func (w *World) Seed(avatar config.KongAvatar) {
	f := w.Stage.Features

	w.Avatar = Avatar{
		X:      f.Start.X,
		Y:      f.Start.Y,
		W:      avatar.Width,
		H:      avatar.Height,
		Facing: 1,
		Ladder: -1,
	}
	w.Hazards = w.Hazards[:0]
	w.AvatarDied = false

	w.Hammers = w.Hammers[:0]
	for _, p := range f.Hammers {
		w.Hammers = append(w.Hammers, Pickup{X: p.X, Y: p.Y, Available: true})
	}

	w.Rivets = w.Rivets[:0]
	for _, p := range f.Rivets {
		w.Rivets = append(w.Rivets, Rivet{X: p.X, Y: p.Y})
	}

	w.Elevators = w.Elevators[:0]
	for _, e := range f.Elevators {
		w.Elevators = append(w.Elevators, Elevator{
			X: e.X, Y: e.Y, Width: e.Width,
			MinY: e.MinY, MaxY: e.MaxY,
			Direction: e.Direction,
			Speed:     e.Speed,
		})
	}
}

// Platforms returns the static platforms of the stage.
func (w *World) Platforms() []core.RectF {
	return w.Stage.Platforms
}

// Ladders returns the ladder zones of the stage.
func (w *World) Ladders() []core.RectF {
	return w.Stage.Ladders
}

// Surfaces returns platforms followed by elevator tops. Indices at or past
// len(Platforms()) refer to elevators.
func (w *World) Surfaces() []core.RectF {
	w.surfaces = append(w.surfaces[:0], w.Stage.Platforms...)
	for i := range w.Elevators {
		w.surfaces = append(w.surfaces, w.Elevators[i].Body())
	}
	return w.surfaces
}

// ConveyorAt returns the belt direction of platform i, 0 if it has none.
func (w *World) ConveyorAt(i int) int {
	belts := w.Stage.Features.Conveyors
	if i < 0 || i >= len(belts) {
		return 0
	}
	return belts[i]
}

// LiveHazards counts live hazards of the given kind.
func (w *World) LiveHazards(kind HazardKind) int {
	n := 0
	for i := range w.Hazards {
		if w.Hazards[i].Alive && w.Hazards[i].Kind == kind {
			n++
		}
	}
	return n
}

// Compact removes dead hazards in place, preserving the order of the rest.
func (w *World) Compact() {
	valid := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Alive {
			valid = append(valid, h)
		}
	}
	w.Hazards = valid
}

// RivetsRemaining counts rivets not yet removed.
func (w *World) RivetsRemaining() int {
	n := 0
	for _, r := range w.Rivets {
		if !r.Removed {
			n++
		}
	}
	return n
}

// GoalReached reports whether the avatar is inside the stage's goal area.
func (w *World) GoalReached() bool {
	return w.Stage.Features.Goal.Reached(w.Avatar.Body())
}

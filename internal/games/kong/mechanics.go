package kong

import "github.com/vovakirdan/tui-kong/internal/config"

// Mechanics holds the rules that differ between screen variants.
type Mechanics interface {
	// Variant returns the screen kind these rules belong to.
	Variant() Variant

	// Update advances per-screen state after the avatar and hazards moved.
	Update(w *World, l *Ledger)

	// Won reports whether the screen's completion condition holds.
	Won(w *World) bool

	// CompletionPhase is the phase entered when the screen is won.
	CompletionPhase() Phase
}

// NewMechanics returns the rules for a variant.
func NewMechanics(v Variant, mech config.KongMechanics, scoring config.KongScoring) Mechanics {
	switch v {
	case VariantGirders:
		return girders{}
	case VariantRivets:
		return rivets{radius: mech.RivetRadius, points: scoring.RivetPoints}
	case VariantElevators:
		return elevators{}
	case VariantConveyors:
		return conveyors{}
	default:
		panic("kong: no mechanics for " + v.String())
	}
}

// girders has no per-tick state; the hazards are the director's.
type girders struct{}

func (girders) Variant() Variant       { return VariantGirders }
func (girders) Update(*World, *Ledger) {}
func (girders) Won(w *World) bool      { return w.GoalReached() }
func (girders) CompletionPhase() Phase { return PhaseLevelComplete }

// rivets removes rivets the avatar walks over. All removed wins the screen.
type rivets struct {
	radius float64
	points int
}

func (rivets) Variant() Variant { return VariantRivets }

func (r rivets) Update(w *World, l *Ledger) {
	body := w.Avatar.Body()
	for i := range w.Rivets {
		rv := &w.Rivets[i]
		if rv.Removed {
			continue
		}
		if WithinRadius(body, Point{X: rv.X, Y: rv.Y}, r.radius) {
			rv.Removed = true
			l.Add(r.points)
		}
	}
}

func (rivets) Won(w *World) bool {
	return len(w.Rivets) > 0 && w.RivetsRemaining() == 0
}

func (rivets) CompletionPhase() Phase { return PhaseInterlude }

// elevators moves every lift and turns it around at its bounds.
type elevators struct{}

func (elevators) Variant() Variant { return VariantElevators }

func (elevators) Update(w *World, _ *Ledger) {
	for i := range w.Elevators {
		w.Elevators[i].Move()
	}
}

func (elevators) Won(w *World) bool      { return w.GoalReached() }
func (elevators) CompletionPhase() Phase { return PhaseLevelComplete }

// conveyors carries its belt directions in the stage features; the drift is
// applied in the avatar update, so there is nothing to advance here.
type conveyors struct{}

func (conveyors) Variant() Variant       { return VariantConveyors }
func (conveyors) Update(*World, *Ledger) {}
func (conveyors) Won(w *World) bool      { return w.GoalReached() }
func (conveyors) CompletionPhase() Phase { return PhaseLevelComplete }

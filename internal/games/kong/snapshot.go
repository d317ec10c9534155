package kong

import "math"

// Snapshot is a read-only copy of the game after a tick. Slices are owned by
// the snapshot, so it stays valid while the game keeps stepping.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Bonus     int
	Lives     int
	HighScore int
	Level     int // 1-based screen count this game
	Stage     int // Index into the level set
	StageName string
	Variant   Variant
	Loops     int

	Avatar    Avatar
	Hazards   []Hazard
	Hammers   []Pickup
	Rivets    []Rivet
	Elevators []Elevator
	Conveyors []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	stage := g.stage()
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.ledger.Score,
		Bonus:     g.ledger.Bonus,
		Lives:     g.ledger.Lives,
		HighScore: g.ledger.HighScore,
		Level:     g.levelNumber,
		Stage:     g.stageIndex,
		StageName: stage.Name,
		Variant:   stage.Variant,
		Loops:     g.loops,

		Avatar:    w.Avatar,
		Hazards:   append([]Hazard(nil), w.Hazards...),
		Hammers:   append([]Pickup(nil), w.Hammers...),
		Rivets:    append([]Rivet(nil), w.Rivets...),
		Elevators: append([]Elevator(nil), w.Elevators...),
		Conveyors: append([]int(nil), stage.Features.Conveyors...),

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixF := func(v float64) { mix(math.Float64bits(v)) }
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixInt(int(snap.Phase))
	mixInt(snap.Score)
	mixInt(snap.Bonus)
	mixInt(snap.Lives)
	mixInt(snap.HighScore)
	mixInt(snap.Level)
	mixInt(snap.Stage)
	mixInt(snap.Loops)

	a := snap.Avatar
	mixF(a.X)
	mixF(a.Y)
	mixF(a.VX)
	mixF(a.VY)
	mixInt(a.Facing)
	mixInt(a.Frame)
	mixB(a.OnLadder)
	mixB(a.HasPowerUp)
	mixInt(a.PowerUpTicks)

	mixInt(len(snap.Hazards))
	for _, hz := range snap.Hazards {
		mixInt(int(hz.Kind))
		mixF(hz.X)
		mixF(hz.Y)
		mixF(hz.VX)
		mixF(hz.VY)
		mixInt(hz.Dir)
		mixB(hz.RidingLadder)
		mixB(hz.Alive)
	}
	for _, p := range snap.Hammers {
		mixB(p.Available)
	}
	for _, r := range snap.Rivets {
		mixB(r.Removed)
	}
	for _, e := range snap.Elevators {
		mixF(e.Y)
		mixInt(e.Direction)
	}

	mix(snap.RNGState)
	return h
}

package kong

import (
	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

// HazardKind distinguishes barrels from fireballs.
type HazardKind int

const (
	HazardBarrel HazardKind = iota
	HazardFireball
)

// String returns the level file name of the kind.
func (k HazardKind) String() string {
	switch k {
	case HazardBarrel:
		return "barrel"
	case HazardFireball:
		return "fireball"
	default:
		return "unknown"
	}
}

// ParseHazardKind converts a level file name to a HazardKind.
func ParseHazardKind(s string) (HazardKind, bool) {
	switch s {
	case "barrel":
		return HazardBarrel, true
	case "fireball":
		return HazardFireball, true
	default:
		return 0, false
	}
}

// Reward returns the points for smashing a hazard of this kind.
func (k HazardKind) Reward(cfg config.KongScoring) int {
	if k == HazardFireball {
		return cfg.FireballReward
	}
	return cfg.BarrelReward
}

// spawnState tracks one spawner during a level attempt.
type spawnState struct {
	spec     SpawnerSpec
	interval int
	counter  int
}

// HazardDirector spawns hazards and moves them each tick.
type HazardDirector struct {
	cfg      config.KongHazards
	tol      float64 // Landing and ladder-top tolerance
	rng      *RNG
	spawners []spawnState

	// Difficulty multiplier applied to roll speeds
	speedScale float64
}

// NewHazardDirector creates a director using rng for every random decision.
func NewHazardDirector(cfg config.KongConfig, rng *RNG) *HazardDirector {
	return &HazardDirector{
		cfg:        cfg.Hazards,
		tol:        cfg.Avatar.SnapTolerance,
		rng:        rng,
		speedScale: 1,
	}
}

// Reset loads the stage's spawners with counters at zero.
// interval maps a configured spawn interval to the effective one.
func (d *HazardDirector) Reset(stage *Stage, speedScale float64, interval func(int) int) {
	d.speedScale = speedScale
	if d.speedScale <= 0 {
		d.speedScale = 1
	}
	d.spawners = d.spawners[:0]
	for _, spec := range stage.Features.Spawners {
		iv := spec.Interval
		if interval != nil {
			iv = interval(spec.Interval)
		}
		d.spawners = append(d.spawners, spawnState{spec: spec, interval: iv})
	}
}

// Update runs spawning, movement, avatar contact, and compaction.
// Smashed hazards award points through the ledger; lethal contact raises
// w.AvatarDied.
func (d *HazardDirector) Update(w *World, ledger *Ledger, scoring config.KongScoring) {
	d.spawn(w)

	for i := range w.Hazards {
		h := &w.Hazards[i]
		if !h.Alive {
			continue
		}
		switch h.Kind {
		case HazardBarrel:
			d.moveBarrel(w, h)
		case HazardFireball:
			d.moveFireball(w, h)
		}
		h.Frame++

		if h.Y > w.Height || h.Right() < -d.cfg.ExitMargin || h.X > w.Width+d.cfg.ExitMargin {
			h.Kill()
		}
	}

	avatar := w.Avatar.Body()
	for i := range w.Hazards {
		h := &w.Hazards[i]
		if !h.Alive || !avatar.Intersects(h.Body()) {
			continue
		}
		if w.Avatar.HasPowerUp {
			if h.Kill() {
				ledger.Add(h.Kind.Reward(scoring))
			}
			continue
		}
		w.AvatarDied = true
	}

	w.Compact()
}

// Right returns the x-coordinate of the hazard's right edge.
func (h *Hazard) Right() float64 {
	return h.X + h.W
}

func (d *HazardDirector) spawn(w *World) {
	for i := range d.spawners {
		s := &d.spawners[i]
		s.counter++
		if s.counter < s.interval {
			continue
		}
		s.counter = 0
		if w.LiveHazards(s.spec.Kind) >= s.spec.Cap {
			continue
		}
		w.Hazards = append(w.Hazards, d.newHazard(w, s.spec))
	}
}

func (d *HazardDirector) newHazard(w *World, spec SpawnerSpec) Hazard {
	h := Hazard{Kind: spec.Kind, X: spec.X, Y: spec.Y, Ladder: -1, Alive: true}

	dir := spec.Dir
	if dir == 0 {
		dir = 1
		if d.rng.Intn(2) == 0 {
			dir = -1
		}
	}
	h.Dir = dir

	switch spec.Kind {
	case HazardBarrel:
		h.W, h.H = d.cfg.BarrelWidth, d.cfg.BarrelHeight
		h.VX = float64(dir) * d.barrelSpeed()
	case HazardFireball:
		h.W, h.H = d.cfg.FireballWidth, d.cfg.FireballHeight
		h.VX = float64(dir) * d.fireballSpeed()
	}
	h.Grounded = Supported(h.Body(), w.Platforms()) >= 0
	return h
}

func (d *HazardDirector) barrelSpeed() float64 {
	return d.cfg.BarrelSpeed * d.speedScale
}

func (d *HazardDirector) fireballSpeed() float64 {
	return d.cfg.FireballSpeed * d.speedScale
}

// moveBarrel rolls a barrel along its platform, drops it straight down off
// edges, and reverses its roll each time it lands. A grounded barrel over a
// ladder top may start riding that ladder down.
func (d *HazardDirector) moveBarrel(w *World, h *Hazard) {
	ladders := w.Ladders()

	if h.RidingLadder {
		l := ladders[h.Ladder]
		h.VX = 0
		h.VY = d.cfg.LadderDescent
		h.Y += h.VY
		if h.Y+h.H >= l.Bottom() {
			h.Y = l.Bottom() - h.H
			h.VY = 0
			h.RidingLadder = false
			h.Ladder = -1
			h.land()
		}
		return
	}

	if h.Grounded && d.rng.Float64() < d.cfg.LadderChance {
		if idx, ok := LadderTop(h.Body(), ladders, d.tol); ok {
			h.RidingLadder = true
			h.Ladder = idx
			h.VX = 0
			h.VY = d.cfg.LadderDescent
			return
		}
	}

	if h.Grounded {
		h.VX = float64(h.Dir) * d.barrelSpeed()
	} else {
		h.VX = 0
	}
	h.VY += d.cfg.Gravity

	prevFoot := h.Y + h.H
	h.X += h.VX
	h.Y += h.VY

	platforms := w.Platforms()
	if i := Landing(prevFoot, h.Body(), platforms, d.tol); i >= 0 && h.VY > 0 {
		h.Y = platforms[i].Y - h.H
		h.VY = 0
		if !h.Grounded {
			h.land()
		}
		h.Grounded = true
		return
	}
	h.Grounded = false
}

// land flips the roll direction after a drop.
func (h *Hazard) land() {
	h.Dir = -h.Dir
	h.Grounded = true
}

// moveFireball bounces a fireball along platforms and turns it at the field
// edges. It occasionally climbs or descends a ladder it is passing.
func (d *HazardDirector) moveFireball(w *World, h *Hazard) {
	ladders := w.Ladders()

	if h.RidingLadder {
		l := ladders[h.Ladder]
		h.Y += h.VY
		foot := h.Y + h.H
		switch {
		case foot <= l.Y:
			h.Y = l.Y - h.H
			d.stopClimbing(h)
		case foot >= l.Bottom():
			h.Y = l.Bottom() - h.H
			d.stopClimbing(h)
		case d.rng.Float64() < d.cfg.LadderChance:
			d.stopClimbing(h)
		}
		return
	}

	if d.rng.Float64() < d.cfg.LadderChance {
		if d.startClimbing(h, ladders) {
			return
		}
	}

	h.VX = float64(h.Dir) * d.fireballSpeed()
	h.VY += d.cfg.Gravity

	prevFoot := h.Y + h.H
	h.X += h.VX
	h.Y += h.VY

	if h.X <= 0 {
		h.X = 0
		h.Dir = 1
	} else if h.Right() >= w.Width {
		h.X = w.Width - h.W
		h.Dir = -1
	}

	platforms := w.Platforms()
	if h.VY > 0 {
		if i := Landing(prevFoot, h.Body(), platforms, d.tol); i >= 0 {
			h.Y = platforms[i].Y - h.H
			h.VY = -d.cfg.FireballBounce
			h.Grounded = true
			return
		}
	}
	h.Grounded = false
}

// startClimbing attaches a fireball to a ladder it overlaps or stands on.
// At either end the only direction along the ladder is taken; in between
// the direction is random.
func (d *HazardDirector) startClimbing(h *Hazard, ladders []core.RectF) bool {
	body := h.Body()
	idx, ok := LadderZone(body, ladders)
	if !ok {
		idx, ok = LadderTop(body, ladders, d.tol)
	}
	if !ok {
		return false
	}

	l := ladders[idx]
	foot := body.Bottom()
	var up bool
	switch {
	case foot <= l.Y+supportEpsilon:
		up = false
	case foot >= l.Bottom()-supportEpsilon:
		up = true
	default:
		up = d.rng.Intn(2) == 0
	}

	h.RidingLadder = true
	h.Ladder = idx
	h.VX = 0
	h.VY = d.cfg.FireballClimb
	if up {
		h.VY = -d.cfg.FireballClimb
	}
	return true
}

func (d *HazardDirector) stopClimbing(h *Hazard) {
	h.RidingLadder = false
	h.Ladder = -1
	h.VY = 0
}

// RNG is a deterministic pseudo-random generator (64-bit LCG).
type RNG struct {
	state uint64
}

// NewRNG creates a generator from a seed. A zero seed is replaced by 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next returns the next raw value.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

package kong

import (
	"testing"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
)

func TestSupported(t *testing.T) {
	surfaces := []core.RectF{
		core.NewRectF(0, 240, 224, 8),
		core.NewRectF(16, 204, 208, 8),
	}

	tests := []struct {
		name string
		body core.RectF
		want int
	}{
		{"on floor", core.NewRectF(4, 224, 12, 16), 0},
		{"on upper girder", core.NewRectF(100, 188, 12, 16), 1},
		{"in the air", core.NewRectF(100, 180, 12, 16), -1},
		{"beside the girder", core.NewRectF(2, 188, 12, 16), -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Supported(tc.body, surfaces); got != tc.want {
				t.Errorf("Supported() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestLanding(t *testing.T) {
	surfaces := []core.RectF{core.NewRectF(0, 100, 50, 8)}

	// Crossing the top lands, regardless of speed
	if got := Landing(95, core.NewRectF(10, 90, 10, 16), surfaces, 4); got != 0 {
		t.Errorf("crossing landing = %d, expected 0", got)
	}
	// Foot still above the top
	if got := Landing(90, core.NewRectF(10, 82, 10, 16), surfaces, 4); got != -1 {
		t.Errorf("above landing = %d, expected -1", got)
	}
	// Started well below the top: falling through from underneath never snaps up
	if got := Landing(110, core.NewRectF(10, 96, 10, 16), surfaces, 4); got != -1 {
		t.Errorf("from below landing = %d, expected -1", got)
	}
	// No horizontal overlap
	if got := Landing(95, core.NewRectF(60, 90, 10, 16), surfaces, 4); got != -1 {
		t.Errorf("off-edge landing = %d, expected -1", got)
	}
}

func TestLadderZoneAndTop(t *testing.T) {
	ladders := []core.RectF{core.NewRectF(40, 204, 8, 36)}

	if _, ok := LadderZone(core.NewRectF(36, 224, 12, 16), ladders); !ok {
		t.Error("avatar at ladder foot should be in the ladder zone")
	}
	if _, ok := LadderZone(core.NewRectF(20, 224, 12, 16), ladders); ok {
		t.Error("avatar beside the ladder should not be in the zone")
	}
	// Standing on the girder above only touches the ladder
	if _, ok := LadderZone(core.NewRectF(36, 188, 12, 16), ladders); ok {
		t.Error("touching the ladder top is not inside the zone")
	}
	if _, ok := LadderTop(core.NewRectF(36, 188, 12, 16), ladders, supportEpsilon); !ok {
		t.Error("avatar standing on the ladder top should find it")
	}
}

func TestWithinRadius(t *testing.T) {
	body := core.NewRectF(22, 152, 12, 16) // Centre (28, 160)
	if !WithinRadius(body, Point{X: 28, Y: 160}, 1) {
		t.Error("centre point should be within any radius")
	}
	if !WithinRadius(body, Point{X: 36, Y: 166}, 10) {
		t.Error("point at distance 10 should be within radius 10")
	}
	if WithinRadius(body, Point{X: 40, Y: 160}, 10) {
		t.Error("point at distance 12 should be outside radius 10")
	}
}

func newTestWorld(t *testing.T, stage int) (*World, config.KongConfig) {
	t.Helper()
	cfg := config.DefaultKongConfig()
	return NewWorld(ClassicLevels().Stage(stage), cfg), cfg
}

func TestAvatarClimbsLadder(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.X = 36 // Centre over the first ladder

	up := core.FrameOf(core.ActionUp)
	for i := 0; i < 35; i++ {
		UpdateAvatar(w, up, cfg)
		if !w.Avatar.OnLadder {
			t.Fatalf("tick %d: avatar should still be climbing", i)
		}
	}

	UpdateAvatar(w, up, cfg)
	if w.Avatar.OnLadder {
		t.Error("avatar should let go at the ladder top")
	}
	if w.Avatar.Y != 188 {
		t.Errorf("avatar Y = %v, expected foot on the girder at 188", w.Avatar.Y)
	}

	// Holding up at the top does nothing more
	for i := 0; i < 10; i++ {
		UpdateAvatar(w, up, cfg)
	}
	if w.Avatar.Y != 188 {
		t.Errorf("avatar Y = %v after holding up on the girder, expected 188", w.Avatar.Y)
	}

	// And back down again
	down := core.FrameOf(core.ActionDown)
	for i := 0; i < 36; i++ {
		UpdateAvatar(w, down, cfg)
	}
	if w.Avatar.OnLadder || w.Avatar.Y != 224 {
		t.Errorf("after descending: OnLadder=%v Y=%v, expected false 224", w.Avatar.OnLadder, w.Avatar.Y)
	}
}

func TestAvatarJumpLandsOnTop(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.X = 100

	UpdateAvatar(w, core.FrameOf(core.ActionJump), cfg)
	if w.Avatar.Y >= 224 {
		t.Fatalf("avatar Y = %v after jump, expected to rise", w.Avatar.Y)
	}

	// Holding jump in the air must not add a second impulse
	peak := w.Avatar.Y
	for i := 0; i < 60; i++ {
		UpdateAvatar(w, core.FrameOf(core.ActionJump), cfg)
		if w.Avatar.Y+w.Avatar.H > 240 {
			t.Fatalf("tick %d: foot %v below the floor", i, w.Avatar.Y+w.Avatar.H)
		}
		if w.Avatar.Y < peak {
			peak = w.Avatar.Y
		}
		if w.Avatar.Y == 224 && w.Avatar.VY == 0 {
			break
		}
	}
	if w.Avatar.Y != 224 || w.Avatar.VY != 0 {
		t.Errorf("avatar did not land: Y=%v VY=%v", w.Avatar.Y, w.Avatar.VY)
	}
	if peak < 200 {
		t.Errorf("jump peak %v unexpectedly high", peak)
	}
}

func TestAvatarFallNeverSinksBelowSurface(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.X = 100
	w.Avatar.Y = 176 // Under the girder at 168, above the one at 204

	for i := 0; i < 100; i++ {
		UpdateAvatar(w, core.NewInputFrame(), cfg)
		if foot := w.Avatar.Y + w.Avatar.H; foot > 204 {
			t.Fatalf("tick %d: foot %v sank below the girder top", i, foot)
		}
	}
	if w.Avatar.Y != 188 {
		t.Errorf("avatar Y = %v, expected resting at 188", w.Avatar.Y)
	}
}

func TestAvatarClampsToField(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.X = 1

	for i := 0; i < 5; i++ {
		UpdateAvatar(w, core.FrameOf(core.ActionLeft), cfg)
	}
	if w.Avatar.X != 0 {
		t.Errorf("avatar X = %v, expected clamped to 0", w.Avatar.X)
	}
	if w.Avatar.Facing != -1 {
		t.Errorf("avatar facing %d, expected -1", w.Avatar.Facing)
	}
}

func TestAvatarFallsOutOfField(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.Y = 257

	UpdateAvatar(w, core.NewInputFrame(), cfg)
	if !w.AvatarDied {
		t.Error("avatar below the field should die")
	}
}

func TestConveyorDrift(t *testing.T) {
	w, cfg := newTestWorld(t, 3)
	w.Avatar.X = 100
	w.Avatar.Y = 180 // On the first belt, which runs left

	for i := 0; i < 10; i++ {
		UpdateAvatar(w, core.NewInputFrame(), cfg)
	}
	if w.Avatar.X != 95 {
		t.Errorf("avatar X = %v after 10 ticks on a left belt, expected 95", w.Avatar.X)
	}

	// Walking right against the belt moves at the difference
	UpdateAvatar(w, core.FrameOf(core.ActionRight), cfg)
	if w.Avatar.X != 95.5 {
		t.Errorf("avatar X = %v walking against the belt, expected 95.5", w.Avatar.X)
	}
}

func TestAvatarRidesElevator(t *testing.T) {
	w, cfg := newTestWorld(t, 2)
	mech := NewMechanics(VariantElevators, cfg.Mechanics, cfg.Scoring)
	ledger := NewLedger(cfg.Scoring, 3)

	w.Avatar.X = 60
	w.Avatar.Y = w.Elevators[0].Y - w.Avatar.H

	for i := 0; i < 50; i++ {
		UpdateAvatar(w, core.NewInputFrame(), cfg)
		mech.Update(w, &ledger)
		if foot := w.Avatar.Y + w.Avatar.H; foot != w.Elevators[0].Y {
			t.Fatalf("tick %d: foot %v, elevator top %v", i, foot, w.Elevators[0].Y)
		}
	}
	if w.Elevators[0].Y != 207 {
		t.Errorf("elevator Y = %v, expected 207 after 50 ticks", w.Elevators[0].Y)
	}
}

func TestPowerUpPickupAndExpiry(t *testing.T) {
	w, cfg := newTestWorld(t, 0)
	w.Avatar.X = 22
	w.Avatar.Y = 152 // Centre on the first hammer

	powered := 0
	for i := 0; i < 400; i++ {
		UpdateAvatar(w, core.NewInputFrame(), cfg)
		if w.Avatar.HasPowerUp {
			powered++
		}
	}
	if powered != cfg.Mechanics.PowerUpTicks {
		t.Errorf("power-up lasted %d ticks, expected %d", powered, cfg.Mechanics.PowerUpTicks)
	}
	if w.Hammers[0].Available {
		t.Error("hammer should be consumed")
	}
}

func TestHammersOnlyOnGirders(t *testing.T) {
	w, cfg := newTestWorld(t, 1)
	body := w.Avatar.Body()
	w.Hammers = append(w.Hammers, Pickup{X: body.CenterX(), Y: body.CenterY(), Available: true})

	UpdateAvatar(w, core.NewInputFrame(), cfg)
	if w.Avatar.HasPowerUp || !w.Hammers[0].Available {
		t.Error("hammer picked up on a rivets screen")
	}
}

func TestAvatarRidesElevatorIntoBound(t *testing.T) {
	cfg := config.DefaultKongConfig()
	stage := &Stage{
		Variant:   VariantElevators,
		Platforms: []core.RectF{core.NewRectF(0, 240, 224, 8)},
		Features: Features{
			Elevators: []ElevatorSpec{{X: 50, Y: 109.75, Width: 32, MinY: 100, MaxY: 110, Direction: 1, Speed: 0.5}},
		},
	}
	w := NewWorld(stage, cfg)
	mech := NewMechanics(VariantElevators, cfg.Mechanics, cfg.Scoring)
	ledger := NewLedger(cfg.Scoring, 3)
	w.Avatar.X = 56
	w.Avatar.Y = 109.75 - w.Avatar.H

	// The first move is cut short at MaxY
	for i := 0; i < 6; i++ {
		UpdateAvatar(w, core.NewInputFrame(), cfg)
		mech.Update(w, &ledger)
		e := w.Elevators[0]
		if foot := w.Avatar.Y + w.Avatar.H; foot != e.Y {
			t.Fatalf("tick %d: foot %v, elevator top %v", i, foot, e.Y)
		}
		if Supported(w.Avatar.Body(), w.Surfaces()) < 0 {
			t.Fatalf("tick %d: avatar not standing on the elevator", i)
		}
	}
	if e := w.Elevators[0]; e.Direction != -1 || e.Y != 107.5 {
		t.Errorf("elevator Y=%v dir=%d, expected 107.5 moving up", e.Y, e.Direction)
	}
}

func TestElevatorsTurnAtBounds(t *testing.T) {
	cfg := config.DefaultKongConfig()
	w := &World{Elevators: []Elevator{{Y: 73, MinY: 72, MaxY: 80, Direction: -1, Speed: 0.5}}}
	mech := NewMechanics(VariantElevators, cfg.Mechanics, cfg.Scoring)

	mech.Update(w, nil)
	mech.Update(w, nil)
	if e := w.Elevators[0]; e.Y != 72 || e.Direction != 1 {
		t.Fatalf("elevator at Y=%v dir=%d, expected 72 and turned up", e.Y, e.Direction)
	}
	for i := 0; i < 16; i++ {
		mech.Update(w, nil)
	}
	if e := w.Elevators[0]; e.Y != 80 || e.Direction != -1 {
		t.Errorf("elevator at Y=%v dir=%d, expected 80 and turned down", e.Y, e.Direction)
	}
}

func TestRivetsWonOnlyWhenAllRemoved(t *testing.T) {
	w, cfg := newTestWorld(t, 1)
	mech := NewMechanics(VariantRivets, cfg.Mechanics, cfg.Scoring)
	ledger := NewLedger(cfg.Scoring, 3)

	for i := range w.Rivets {
		if mech.Won(w) {
			t.Fatalf("won with %d rivets left", w.RivetsRemaining())
		}
		r := w.Rivets[i]
		w.Avatar.X = r.X - w.Avatar.W/2
		w.Avatar.Y = r.Y - w.Avatar.H/2
		mech.Update(w, &ledger)
		if !w.Rivets[i].Removed {
			t.Fatalf("rivet %d not removed", i)
		}
	}
	if !mech.Won(w) {
		t.Error("all rivets removed should win")
	}
	if ledger.Score != 6*cfg.Scoring.RivetPoints {
		t.Errorf("score = %d, expected %d", ledger.Score, 6*cfg.Scoring.RivetPoints)
	}

	// Walking over removed rivets scores nothing more
	mech.Update(w, &ledger)
	if ledger.Score != 6*cfg.Scoring.RivetPoints {
		t.Errorf("score changed to %d after revisiting", ledger.Score)
	}

	empty := &World{}
	if mech.Won(empty) {
		t.Error("a screen without rivets is never won by rivets")
	}
}

func TestMechanicsCompletionPhase(t *testing.T) {
	cfg := config.DefaultKongConfig()
	tests := []struct {
		variant Variant
		want    Phase
	}{
		{VariantGirders, PhaseLevelComplete},
		{VariantRivets, PhaseInterlude},
		{VariantElevators, PhaseLevelComplete},
		{VariantConveyors, PhaseLevelComplete},
	}

	for _, tc := range tests {
		m := NewMechanics(tc.variant, cfg.Mechanics, cfg.Scoring)
		if m.Variant() != tc.variant {
			t.Errorf("mechanics variant = %s, expected %s", m.Variant(), tc.variant)
		}
		if got := m.CompletionPhase(); got != tc.want {
			t.Errorf("%s completion = %s, expected %s", tc.variant, got, tc.want)
		}
	}
}

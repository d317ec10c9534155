package kong

import (
	"github.com/vovakirdan/tui-kong/internal/core"
)

// Phase is a state of the game state machine.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseHowHigh
	PhaseLevelIntro
	PhasePlaying
	PhasePaused
	PhaseDeath
	PhaseLevelComplete
	PhaseInterlude
	PhaseGameOver
)

// String returns the phase name reported in GameState.Phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseHowHigh:
		return "how_high"
	case PhaseLevelIntro:
		return "level_intro"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseDeath:
		return "death"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseInterlude:
		return "interlude"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// duration returns the auto-transition delay of a phase in ticks, 0 if the
// phase waits for input or play.
func (g *Game) duration(p Phase) int {
	gp := g.cfg.Gameplay
	switch p {
	case PhaseHowHigh:
		return gp.HowHighTicks
	case PhaseLevelIntro:
		return gp.LevelIntroTicks
	case PhaseDeath:
		return gp.DeathTicks
	case PhaseLevelComplete:
		return gp.CompleteTicks
	case PhaseInterlude:
		return gp.InterludeTicks
	default:
		return 0
	}
}

// enter switches phase and schedules its deadline.
func (g *Game) enter(p Phase) {
	from := g.phase
	g.phase = p
	g.deadline = 0
	if d := g.duration(p); d > 0 {
		g.deadline = g.tick + uint64(d) //#nosec G115 -- durations are positive
	}
	if p == PhaseLevelIntro {
		g.initLevel()
	}
	logger.Debug("phase", "from", from, "to", p, "tick", g.tick, "level", g.levelNumber)
}

// due reports whether the current phase's deadline has been reached.
func (g *Game) due() bool {
	return g.deadline > 0 && g.tick >= g.deadline
}

// advance runs one tick of the state machine.
func (g *Game) advance(in core.InputFrame) {
	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.newGame()
			g.enter(PhaseHowHigh)
		}

	case PhaseHowHigh:
		if in.Has(core.ActionConfirm) || g.due() {
			g.enter(PhaseLevelIntro)
		}

	case PhaseLevelIntro:
		if g.due() {
			g.enter(PhasePlaying)
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.enter(PhasePaused)
			return
		}
		g.play(in)

	case PhaseDeath:
		if in.Has(core.ActionConfirm) || g.due() {
			g.resolveDeath()
		}

	case PhaseLevelComplete, PhaseInterlude:
		if g.due() {
			g.nextLevel()
		}

	case PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.commitHighScore()
			g.enter(PhaseTitle)
		}
	}
}

// play runs one Playing tick: avatar, hazards, mechanics, win check, bonus.
func (g *Game) play(in core.InputFrame) {
	w := g.world
	w.AvatarDied = false

	UpdateAvatar(w, in, g.cfg)
	if w.AvatarDied {
		g.enter(PhaseDeath)
		return
	}

	g.director.Update(w, &g.ledger, g.cfg.Scoring)
	if w.AvatarDied {
		g.enter(PhaseDeath)
		return
	}

	g.mechanics.Update(w, &g.ledger)
	if g.mechanics.Won(w) {
		awarded := g.ledger.AwardBonus()
		logger.Info("level cleared", "level", g.levelNumber, "stage", g.stage().Name, "bonus", awarded)
		g.enter(g.mechanics.CompletionPhase())
		return
	}

	g.ledger.Tick()
}

// resolveDeath consumes a life once the death phase is acknowledged or times
// out, then restarts the attempt or ends the game.
func (g *Game) resolveDeath() {
	if g.ledger.LoseLife() {
		g.initLevel()
		g.enter(PhasePlaying)
		return
	}
	logger.Info("game over", "score", g.ledger.Score, "level", g.levelNumber)
	g.enter(PhaseGameOver)
}

// nextLevel awards the level bonus and moves to the next stage in the set,
// wrapping around and counting a loop at the end.
func (g *Game) nextLevel() {
	g.ledger.AwardLevel(g.levelNumber)
	g.levelNumber++
	g.stageIndex++
	if g.stageIndex >= g.levels.Len() {
		g.stageIndex = 0
		g.loops++
	}
	g.enter(PhaseLevelIntro)
}

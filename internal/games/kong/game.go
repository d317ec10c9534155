package kong

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

// HighScores persists the single best score of a game.
type HighScores = registry.HighScoreStore

// configPath stores the custom config path set via CLI
var configPath string

// levelsPath stores a custom level set file set via CLI
var levelsPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives phase changes and persistence problems. Discards by default.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsPath sets a level set file that replaces the built-in screens.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes the package's log output to l. A nil logger discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the girder-climbing game.
type Game struct {
	id      string
	title   string
	builtin *LevelSet
	levels  *LevelSet

	runtime    core.RuntimeConfig
	cfg        config.KongConfig
	difficulty *config.DifficultyManager
	rng        *RNG

	world     *World
	director  *HazardDirector
	mechanics Mechanics
	ledger    Ledger

	phase    Phase
	tick     uint64
	deadline uint64

	stageIndex  int
	levelNumber int // 1-based count of screens reached this game
	loops       int // Completed passes through the level set

	highScores      HighScores
	highScoreLoaded bool
}

// New creates the four-screen game.
func New() *Game {
	return &Game{id: "kong", title: "Kong", builtin: ClassicLevels()}
}

// NewMini creates the single-screen game.
func NewMini() *Game {
	return &Game{id: "kong_mini", title: "Kong (Mini)", builtin: MiniLevels()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// UseHighScores attaches a high score store and reads it once.
func (g *Game) UseHighScores(h HighScores) {
	g.highScores = h
	g.highScoreLoaded = false
	g.loadHighScore()
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadKong(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultKongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyKongPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.levels = g.builtin
	if levelsPath != "" {
		set, err := LoadLevelSet(levelsPath)
		if err != nil {
			logger.Warn("using built-in levels", "err", err)
		} else {
			g.levels = set
			logger.Info("loaded level set", "name", set.Name, "stages", set.Len())
		}
	}

	g.rng = NewRNG(runtime.Seed)
	g.director = NewHazardDirector(cfg, g.rng)
	best := g.ledger.HighScore
	g.ledger = NewLedger(cfg.Scoring, cfg.Gameplay.Lives)
	g.ledger.HighScore = best
	if !g.highScoreLoaded {
		g.loadHighScore()
	}

	g.tick = 0
	g.stageIndex = 0
	g.levelNumber = 1
	g.loops = 0
	g.initLevel()
	g.phase = PhaseTitle
	g.deadline = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Nothing is simulated while paused, including the tick counter
	if g.phase == PhasePaused {
		if in.Has(core.ActionPause) {
			g.enter(PhasePlaying)
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.advance(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ledger.Score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		Phase:    g.phase.String(),
	}
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Level returns the 1-based number of the screen being played this game.
func (g *Game) Level() int {
	return g.levelNumber
}

func (g *Game) stage() *Stage {
	return g.levels.Stage(g.stageIndex)
}

// newGame clears score and lives and rewinds to the first stage.
func (g *Game) newGame() {
	g.ledger.NewGame(g.cfg.Gameplay.Lives)
	g.stageIndex = 0
	g.levelNumber = 1
	g.loops = 0
}

// initLevel re-initializes the current stage for a fresh attempt.
func (g *Game) initLevel() {
	stage := g.stage()
	if g.world == nil || g.world.Stage != stage {
		g.world = NewWorld(stage, g.cfg)
	} else {
		g.world.Seed(g.cfg.Avatar)
	}
	g.mechanics = NewMechanics(stage.Variant, g.cfg.Mechanics, g.cfg.Scoring)

	loops := g.loops
	g.director.Reset(stage, g.difficulty.Speed(1, loops), func(base int) int {
		return g.difficulty.SpawnInterval(base, loops)
	})
	g.ledger.ResetBonus()
}

func (g *Game) loadHighScore() {
	if g.highScores == nil {
		return
	}
	g.highScoreLoaded = true
	score, err := g.highScores.Load()
	if err != nil || score < 0 {
		logger.Warn("high score unavailable", "err", err, "value", score)
		score = 0
	}
	g.ledger.HighScore = score
}

// commitHighScore records a run's final score when it beats the best one.
func (g *Game) commitHighScore() {
	if !g.ledger.CommitHighScore() {
		return
	}
	logger.Info("new high score", "game", g.id, "score", g.ledger.HighScore)
	if g.highScores == nil {
		return
	}
	if err := g.highScores.Save(g.ledger.HighScore); err != nil {
		logger.Warn("high score not saved", "err", err)
	}
}

// Register the games with the registry
func init() {
	registry.Register("kong", func() registry.Game {
		return New()
	})
	registry.Register("kong_mini", func() registry.Game {
		return NewMini()
	})
}

package kong

import "github.com/vovakirdan/tui-kong/internal/config"

// Ledger tracks score, the decaying bonus, lives, and the high score.
type Ledger struct {
	Score     int
	Bonus     int
	Lives     int
	HighScore int

	cfg        config.KongScoring
	bonusTicks int
}

// NewLedger creates a ledger for a new game.
func NewLedger(cfg config.KongScoring, lives int) Ledger {
	l := Ledger{cfg: cfg}
	l.NewGame(lives)
	return l
}

// NewGame clears the score and restores lives. The high score is kept.
func (l *Ledger) NewGame(lives int) {
	l.Score = 0
	l.Lives = lives
	l.ResetBonus()
}

// ResetBonus restores the bonus to its starting value for a level attempt.
func (l *Ledger) ResetBonus() {
	l.Bonus = l.cfg.StartBonus
	l.bonusTicks = 0
}

// Add awards points. Non-positive amounts are ignored so the score never
// decreases.
func (l *Ledger) Add(points int) {
	if points > 0 {
		l.Score += points
	}
}

// Tick decays the bonus by one step every BonusEvery ticks, floored at 0.
func (l *Ledger) Tick() {
	if l.cfg.BonusEvery <= 0 {
		return
	}
	l.bonusTicks++
	if l.bonusTicks < l.cfg.BonusEvery {
		return
	}
	l.bonusTicks = 0
	l.Bonus -= l.cfg.BonusStep
	if l.Bonus < 0 {
		l.Bonus = 0
	}
}

// AwardBonus adds the remaining bonus to the score and returns it.
func (l *Ledger) AwardBonus() int {
	awarded := l.Bonus
	l.Add(awarded)
	return awarded
}

// AwardLevel adds the per-level bonus for advancing past the given level.
func (l *Ledger) AwardLevel(level int) int {
	awarded := l.cfg.LevelBonus * level
	l.Add(awarded)
	return awarded
}

// LoseLife consumes one life and reports whether any remain.
func (l *Ledger) LoseLife() bool {
	if l.Lives > 0 {
		l.Lives--
	}
	return l.Lives > 0
}

// CommitHighScore raises the high score to the current score if it is
// higher. Reports whether the high score changed.
func (l *Ledger) CommitHighScore() bool {
	if l.Score <= l.HighScore {
		return false
	}
	l.HighScore = l.Score
	return true
}

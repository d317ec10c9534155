package kong

import (
	"fmt"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// Visual characters for rendering
const (
	GirderChar    = '='
	LadderChar    = 'H'
	ElevatorChar  = '#'
	BeltLeftChar  = '<'
	BeltRightChar = '>'
	AvatarChar    = 'M'
	HammerChar    = 'T'
	BarrelChar    = 'O'
	FireballChar  = '*'
	RivetChar     = 'o'
	KongChar      = 'K'
	GoalChar      = 'P'
	LifeChar      = 'm'
)

// Minimum terminal size for a readable field
const (
	minScreenW = 40
	minScreenH = 20
)

// viewport maps field coordinates to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	return viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(dst.Height()-1) / fieldH,
		top: 1,
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }
func (v viewport) row(y float64) int { return v.top + int(y*v.sy) }

// span returns the first and last columns covered by [x, x+w), at least one.
func (v viewport) span(x, w float64) (int, int) {
	c0 := v.col(x)
	c1 := v.col(x+w) - 1
	if c1 < c0 {
		c1 = c0
	}
	return c0, c1
}

// entityCell places an entity one row above the surface its foot rests on.
func (v viewport) entityCell(body core.RectF) (int, int) {
	return v.col(body.CenterX()), v.row(body.Bottom()) - 1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
		return
	case PhaseHowHigh:
		g.renderHowHigh(dst)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("1UP %06d  HIGH %06d  BONUS %04d  L=%02d",
		g.ledger.Score, g.ledger.HighScore, g.ledger.Bonus, g.levelNumber)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	x := dst.Width() - 1
	for i := 0; i < g.ledger.Lives && x > len(hud); i++ {
		dst.SetColored(x, 0, LifeChar, core.ColorBrightRed)
		x -= 2
	}
}

func (g *Game) renderField(dst *core.Screen) {
	w := g.world
	v := newViewport(dst, w.Width, w.Height)
	stage := w.Stage

	for _, l := range stage.Ladders {
		c0, c1 := v.span(l.X, l.W)
		for y := v.row(l.Y) + 1; y < v.row(l.Bottom()); y++ {
			for x := c0; x <= c1; x++ {
				dst.SetColored(x, y, LadderChar, core.ColorCyan)
			}
		}
	}

	for i, p := range stage.Platforms {
		glyph, color := rune(GirderChar), stage.Color
		switch w.ConveyorAt(i) {
		case -1:
			glyph, color = BeltLeftChar, core.ColorYellow
		case 1:
			glyph, color = BeltRightChar, core.ColorYellow
		}
		c0, c1 := v.span(p.X, p.W)
		y := v.row(p.Y)
		for x := c0; x <= c1; x++ {
			r := glyph
			// Belt animation: every fourth cell scrolls with the belt
			if glyph != GirderChar && (x+int(g.tick/8)*w.ConveyorAt(i))%4 != 0 {
				r = '-'
			}
			dst.SetColored(x, y, r, color)
		}
	}

	for _, e := range w.Elevators {
		c0, c1 := v.span(e.X, e.Width)
		y := v.row(e.Y)
		for x := c0; x <= c1; x++ {
			dst.SetColored(x, y, ElevatorChar, core.ColorMagenta)
		}
	}

	for _, r := range w.Rivets {
		if r.Removed {
			continue
		}
		// Rivet points sit at avatar-centre height; draw on the girder row
		dst.SetColored(v.col(r.X), v.row(r.Y+w.Avatar.H/2), RivetChar, core.ColorBrightYellow)
	}

	for _, h := range w.Hammers {
		if h.Available {
			dst.SetColored(v.col(h.X), v.row(h.Y), HammerChar, core.ColorYellow)
		}
	}

	g.renderCast(dst, v)

	for _, hz := range w.Hazards {
		x, y := v.entityCell(hz.Body())
		switch hz.Kind {
		case HazardBarrel:
			glyph := rune(BarrelChar)
			if hz.RidingLadder {
				glyph = '0'
			}
			dst.SetColored(x, y, glyph, core.ColorOrange)
		case HazardFireball:
			glyph := rune(FireballChar)
			if (hz.Frame/6)%2 == 1 {
				glyph = '+'
			}
			dst.SetColored(x, y, glyph, core.ColorBrightRed)
		}
	}

	g.renderAvatar(dst, v)
}

// renderCast draws the ape beside the first hazard source and the goal marker.
func (g *Game) renderCast(dst *core.Screen, v viewport) {
	f := g.world.Stage.Features
	goal := f.Goal
	dst.SetColored(v.col((goal.MinX+goal.MaxX)/2), v.row(goal.MaxY), GoalChar, core.ColorBrightMagenta)

	kx, ky := (goal.MinX+goal.MaxX)/2-24, goal.MaxY
	if len(f.Spawners) > 0 && f.Spawners[0].Kind == HazardBarrel {
		kx, ky = f.Spawners[0].X-16, f.Spawners[0].Y
	}
	x, y := v.col(kx), v.row(ky)
	dst.SetColored(x, y, KongChar, core.ColorOrange)
	dst.SetColored(x+1, y, KongChar, core.ColorOrange)
}

func (g *Game) renderAvatar(dst *core.Screen, v viewport) {
	a := &g.world.Avatar
	x, y := v.entityCell(a.Body())

	color := core.ColorBrightBlue
	if g.phase == PhaseDeath && (g.tick/10)%2 == 0 {
		color = core.ColorGray
	}
	glyph := rune(AvatarChar)
	if a.Frame%2 == 1 {
		glyph = 'N'
	}
	dst.SetColored(x, y, glyph, color)

	if a.HasPowerUp {
		// Hammer swings between overhead and in front
		hx, hy := x, y-1
		if (a.PowerUpTicks/8)%2 == 0 {
			hx, hy = x+a.Facing, y
		}
		dst.SetColored(hx, hy, HammerChar, core.ColorYellow)
	}
}

func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	title := "K  O  N  G"
	dst.DrawTextColored((dst.Width()-len(title))/2, mid-4, title, core.ColorBrightRed)
	high := fmt.Sprintf("HIGH SCORE %06d", g.ledger.HighScore)
	dst.DrawTextColored((dst.Width()-len(high))/2, mid-1, high, core.ColorBrightWhite)
	dst.DrawTextCentered(mid+1, "Press ENTER to start")
	dst.DrawTextCentered(mid+3, "Arrows move/climb  SPACE jump  P pause  Q quit")
}

func (g *Game) renderHowHigh(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "HOW HIGH CAN YOU GET ?")

	// One line per screen climbed so far this loop, highest first
	reached := g.stageIndex + 1
	for i := reached - 1; i >= 0; i-- {
		line := fmt.Sprintf("%-6s  %c%c", g.levels.Stage(i).Name, KongChar, KongChar)
		y := mid - 1 + (reached - 1 - i)
		dst.DrawTextColored((dst.Width()-len(line))/2, y, line, core.ColorOrange)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseLevelIntro:
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d", g.levelNumber), g.stage().Name)

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseDeath:
		g.drawCenteredBox(dst, "OUCH!", fmt.Sprintf("Lives left: %d  |  ENTER to continue", g.ledger.Lives-1))

	case PhaseLevelComplete:
		g.drawCenteredBox(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d", g.ledger.Score))

	case PhaseInterlude:
		g.drawCenteredBox(dst, "THE APE TUMBLES!", fmt.Sprintf("Score: %d", g.ledger.Score))

	case PhaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press ENTER", g.ledger.Score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

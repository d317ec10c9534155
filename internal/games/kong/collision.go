package kong

import (
	"math"

	"github.com/vovakirdan/tui-kong/internal/core"
)

// supportEpsilon is how close a foot must be to a surface top to count as
// standing on it.
const supportEpsilon = 0.01

// Supported returns the index of the first surface the body stands on, or -1.
func Supported(body core.RectF, surfaces []core.RectF) int {
	foot := body.Bottom()
	for i, s := range surfaces {
		if math.Abs(foot-s.Y) < supportEpsilon && body.OverlapsX(s) {
			return i
		}
	}
	return -1
}

// Landing finds the first surface a falling body crossed this tick.
// prevFoot is the foot before integration; next is the body after it.
// A surface qualifies when it overlaps next horizontally and its top lies in
// [prevFoot - tol, next foot]. Returns the surface index, or -1 when nothing
// was crossed.
func Landing(prevFoot float64, next core.RectF, surfaces []core.RectF, tol float64) int {
	foot := next.Bottom()
	for i, s := range surfaces {
		if !next.OverlapsX(s) {
			continue
		}
		if prevFoot <= s.Y+tol && foot >= s.Y {
			return i
		}
	}
	return -1
}

// inLadderSpan reports whether x lies within the horizontal span of a ladder.
func inLadderSpan(x float64, ladder core.RectF) bool {
	return x >= ladder.X && x <= ladder.Right()
}

// LadderZone returns the first ladder whose x-span contains the body's
// horizontal centre and whose vertical span strictly overlaps the body.
func LadderZone(body core.RectF, ladders []core.RectF) (int, bool) {
	cx := body.CenterX()
	for i, l := range ladders {
		if inLadderSpan(cx, l) && body.OverlapsY(l) {
			return i, true
		}
	}
	return -1, false
}

// LadderTop returns the first ladder whose top lies within tol of the
// body's foot and whose x-span contains the body's centre. Used for
// entering a ladder downward from the platform above it.
func LadderTop(body core.RectF, ladders []core.RectF, tol float64) (int, bool) {
	cx, foot := body.CenterX(), body.Bottom()
	for i, l := range ladders {
		if inLadderSpan(cx, l) && math.Abs(foot-l.Y) <= tol {
			return i, true
		}
	}
	return -1, false
}

// WithinRadius reports whether the body's centre lies within r of p.
func WithinRadius(body core.RectF, p Point, r float64) bool {
	dx := body.CenterX() - p.X
	dy := body.CenterY() - p.Y
	return dx*dx+dy*dy <= r*r
}

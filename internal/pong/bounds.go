// Package pong implements the Pong simulation: paddle movement, a
// predictive AI opponent, ball physics, and the match controller that
// orchestrates them tick by tick.
package pong

import "fmt"

// refTickMs is the duration of one reference tick at the 60 Hz baseline.
// All speeds are measured in cells per reference tick; elapsed wall time is
// normalized against this so behavior is frame-rate independent.
const refTickMs = 1000.0 / 60.0

// Bounds is the immutable playfield size in cells, fixed for a match.
type Bounds struct {
	W, H int
}

// NewBounds validates and creates playfield bounds.
func NewBounds(w, h int) (Bounds, error) {
	if w <= 0 || h <= 0 {
		return Bounds{}, fmt.Errorf("pong: bounds must be positive, got %dx%d", w, h)
	}
	return Bounds{W: w, H: h}, nil
}

// CenterX returns the horizontal center of the playfield.
func (b Bounds) CenterX() float64 {
	return float64(b.W) / 2
}

// CenterY returns the vertical center of the playfield.
func (b Bounds) CenterY() float64 {
	return float64(b.H) / 2
}

// Side identifies one of the two players, or neither.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

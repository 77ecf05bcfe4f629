package pong

import (
	"math"
	"math/rand"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
)

// serveConeDeg is the half-width in degrees of the random serve cone around
// the horizontal axis.
const serveConeDeg = 25.0

// BallPhase is the ball's explicit state: frozen during the serve countdown
// or moving in play.
type BallPhase int

const (
	PhaseServing BallPhase = iota
	PhaseActive
)

// Ball is the moving game object. Position is the center of a square of
// side Size, in continuous cell units; rounding happens only at the
// rendering boundary.
//
// The velocity vector always has magnitude equal to the scalar speed while
// the ball is Active. Speed only grows during a match (paddle hits and
// points, capped at the maximum) and is reset to the starting speed on a
// full match restart.
type Ball struct {
	X, Y   float64 // Center position
	Size   float64
	VX, VY float64

	speed          float64
	startSpeed     float64
	speedIncrement float64
	maxSpeed       float64
	maxBounceRad   float64

	phase            BallPhase
	serveRemainingMs float64
	serveDelayMs     float64

	rng *rand.Rand
}

// NewBall creates a ball with the given physics parameters.
// The ball starts in the Serving phase at the origin; call Reset to place
// and launch it.
func NewBall(phys config.Physics, serveDelayMs int, size float64, rng *rand.Rand) *Ball {
	return &Ball{
		Size:           size,
		speed:          phys.BallSpeed,
		startSpeed:     phys.BallSpeed,
		speedIncrement: phys.SpeedIncrement,
		maxSpeed:       phys.MaxBallSpeed,
		maxBounceRad:   phys.MaxBounceAngle * math.Pi / 180,
		phase:          PhaseServing,
		serveDelayMs:   float64(serveDelayMs),
		rng:            rng,
	}
}

// Speed returns the current scalar speed.
func (b *Ball) Speed() float64 {
	return b.speed
}

// Phase returns the ball's current phase.
func (b *Ball) Phase() BallPhase {
	return b.phase
}

// ServeRemainingMs returns the countdown left before the serve, or 0 when
// the ball is Active.
func (b *Ball) ServeRemainingMs() float64 {
	if b.phase != PhaseServing {
		return 0
	}
	return b.serveRemainingMs
}

// Box returns an immutable snapshot of the ball's rectangle.
func (b *Ball) Box() core.Box {
	return core.NewBox(b.X-b.Size/2, b.Y-b.Size/2, b.Size, b.Size)
}

// ResetSpeed restores the starting scalar speed. Only a full match restart
// calls this; scoring never slows the ball down.
func (b *Ball) ResetSpeed() {
	b.speed = b.startSpeed
}

// Reset recenters the ball, picks a serve direction in a shallow outward
// cone, and re-arms the serve countdown. When toward is SideLeft or
// SideRight the horizontal direction is forced so that side receives the
// serve; SideNone keeps the random direction.
func (b *Ball) Reset(cx, cy float64, toward Side) {
	b.X, b.Y = cx, cy

	// Shallow cone around the horizontal, flipped to the opposite cone half
	// the time
	deg := (b.rng.Float64()*2 - 1) * serveConeDeg
	if b.rng.Intn(2) == 1 {
		deg += 180
	}
	rad := deg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)

	switch toward {
	case SideLeft:
		dx = -math.Abs(dx)
	case SideRight:
		dx = math.Abs(dx)
	}

	b.VX = dx * b.speed
	b.VY = dy * b.speed
	b.phase = PhaseServing
	b.serveRemainingMs = b.serveDelayMs
}

// Update advances the ball by dtMs milliseconds and returns the side that
// scored, or SideNone.
//
// During the Serving phase only the countdown advances; position and
// collisions are frozen. Once Active the order of checks matters near
// corners: wall correction first, then scoring on the wall-corrected
// position, then paddle collision. A scoring tick skips paddle checks.
func (b *Ball) Update(dtMs float64, bounds Bounds, left, right *Paddle) Side {
	if b.phase == PhaseServing {
		b.serveRemainingMs -= dtMs
		if b.serveRemainingMs <= 0 {
			b.serveRemainingMs = 0
			b.phase = PhaseActive
		}
		return SideNone
	}

	dt := dtMs / refTickMs
	b.X += b.VX * dt
	b.Y += b.VY * dt

	// Top/bottom wall collision: clamp to the wall line and reflect
	half := b.Size / 2
	if b.Y-half <= 0 {
		b.Y = half
		b.VY = -b.VY
	} else if b.Y+half >= float64(bounds.H) {
		b.Y = float64(bounds.H) - half
		b.VY = -b.VY
	}

	// Scoring: the trailing edge must fully clear the boundary
	if b.X+half < 0 {
		b.raiseSpeed()
		return SideRight
	}
	if b.X-half > float64(bounds.W) {
		b.raiseSpeed()
		return SideLeft
	}

	// Paddle collision, gated on travel direction so a single hit cannot
	// bounce twice in one tick
	box := b.Box()
	if b.VX < 0 && box.Intersects(left.Box()) {
		b.bounceOffPaddle(left)
	} else if b.VX > 0 && box.Intersects(right.Box()) {
		b.bounceOffPaddle(right)
	}

	return SideNone
}

// bounceOffPaddle repositions the ball flush against the paddle's facing
// edge and sets a new velocity whose angle depends on where the paddle was
// struck: 0 at the center, the maximum bounce angle at the edges.
func (b *Ball) bounceOffPaddle(p *Paddle) {
	pb := p.Box()

	// Flush reposition prevents sticking inside the paddle on the next tick
	if b.VX < 0 {
		b.X = pb.Right() + b.Size/2
	} else {
		b.X = pb.X - b.Size/2
	}

	offset := core.ClampF((b.Y-pb.CenterY())/(pb.H/2), -1, 1)
	angle := offset * b.maxBounceRad

	b.raiseSpeed()

	// Horizontal sign flips so the ball travels away from the struck paddle
	dir := 1.0
	if b.VX > 0 {
		dir = -1.0
	}
	b.VX = dir * b.speed * math.Cos(angle)
	b.VY = b.speed * math.Sin(angle)
}

// raiseSpeed bumps the scalar speed, capped at the configured maximum.
func (b *Ball) raiseSpeed() {
	b.speed = math.Min(b.maxSpeed, b.speed+b.speedIncrement)
}

package pong

import "github.com/tuipong/tuipong/internal/core"

// Paddle is a vertically moving bat. The horizontal position is fixed for
// the paddle's lifetime; only Y changes, driven by a velocity that the
// controller (human input or AI) sets each tick.
type Paddle struct {
	X, Y  float64 // Top-left anchor
	W, H  float64
	Speed float64 // Velocity cap in cells per reference tick

	velocity float64
}

// NewPaddle creates a paddle at the given anchor position.
func NewPaddle(x, y, w, h, speed float64) *Paddle {
	return &Paddle{X: x, Y: y, W: w, H: h, Speed: speed}
}

// SetVelocity sets the vertical velocity for the next update.
// Zero is a valid steady state.
func (p *Paddle) SetVelocity(v float64) {
	p.velocity = v
}

// Velocity returns the current vertical velocity.
func (p *Paddle) Velocity() float64 {
	return p.velocity
}

// Update moves the paddle by velocity*dt along the vertical axis, then
// clamps so the paddle stays fully within [0, bounds.H].
// dt is measured in reference ticks.
func (p *Paddle) Update(dt float64, bounds Bounds) {
	p.Y += p.velocity * dt
	p.Y = clampY(p.Y, p.H, bounds)
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.H/2
}

// Box returns an immutable snapshot of the paddle's rectangle.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// clampY restricts a top anchor so a body of the given height stays within
// the vertical playfield.
func clampY(y, height float64, bounds Bounds) float64 {
	return core.ClampF(y, 0, float64(bounds.H)-height)
}

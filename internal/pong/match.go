package pong

import (
	"fmt"
	"math/rand"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
)

// ballSize is the ball's square side in cells.
const ballSize = 1.0

// Match owns both paddles, the AI controller, and the ball for their entire
// lifetime, and advances the simulation one tick at a time. The human plays
// the left paddle; the AI plays the right.
type Match struct {
	bounds Bounds
	cfg    config.Config
	rng    *rand.Rand

	left  *Paddle
	right *Paddle
	ai    *AIController
	ball  *Ball

	scoreLeft  int
	scoreRight int
	winner     Side
	elapsedMs  float64
}

// NewMatch validates the configuration and builds a match sized to the
// runtime screen. A zero runtime seed falls back to a fixed value; callers
// wanting time-based seeds set one explicitly (platform behavior).
func NewMatch(cfg config.Config, rt core.RuntimeConfig) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounds, err := NewBounds(rt.ScreenW, rt.ScreenH)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(rt.Seed))

	paddleH := float64(cfg.Paddles.Height)
	if cfg.Paddles.Height == 0 {
		// Scale with screen height, clamped to playable sizes
		paddleH = float64(core.Clamp(bounds.H/5, 3, 8))
	}
	paddleW := float64(cfg.Paddles.Width)
	margin := float64(cfg.Paddles.Margin)
	topY := bounds.CenterY() - paddleH/2

	m := &Match{
		bounds: bounds,
		cfg:    cfg,
		rng:    rng,
		left:   NewPaddle(margin, topY, paddleW, paddleH, cfg.Paddles.Speed),
		right: NewPaddle(
			float64(bounds.W)-margin-paddleW,
			topY,
			paddleW,
			paddleH,
			cfg.Paddles.Speed*cfg.Paddles.AISpeedFactor,
		),
	}
	m.ai = NewAIController(m.right, cfg.AI, rng)
	m.ball = NewBall(cfg.Physics, cfg.Gameplay.ServeDelayMs, ballSize, rng)
	m.ball.Reset(bounds.CenterX(), bounds.CenterY(), SideNone)

	return m, nil
}

// Tick advances the simulation by dtMs milliseconds.
// Once a winner is recorded the match is frozen and Tick is a no-op until
// Restart.
func (m *Match) Tick(dtMs float64, in core.InputFrame) {
	if m.winner != SideNone {
		return
	}
	m.elapsedMs += dtMs

	// Held key state maps directly to paddle velocity
	v := 0.0
	if in.Has(core.ActionUp) {
		v -= m.left.Speed
	}
	if in.Has(core.ActionDown) {
		v += m.left.Speed
	}
	m.left.SetVelocity(v)
	m.left.Update(dtMs/refTickMs, m.bounds)

	m.ai.Update(dtMs, m.ball.Box(), m.ball.VX, m.ball.VY, m.bounds)

	scorer := m.ball.Update(dtMs, m.bounds, m.left, m.right)
	if scorer != SideNone {
		m.scorePoint(scorer)
	}
}

// scorePoint credits a point, checks the win threshold, and re-serves
// toward the side that conceded.
func (m *Match) scorePoint(scorer Side) {
	switch scorer {
	case SideLeft:
		m.scoreLeft++
		if m.scoreLeft >= m.cfg.Gameplay.WinScore {
			m.winner = SideLeft
			return
		}
	case SideRight:
		m.scoreRight++
		if m.scoreRight >= m.cfg.Gameplay.WinScore {
			m.winner = SideRight
			return
		}
	}

	// The conceding side receives the next serve
	m.ball.Reset(m.bounds.CenterX(), m.bounds.CenterY(), scorer.Opponent())
}

// Restart clears scores and winner, recenters the paddles, restores the
// starting ball speed, and serves toward a random side.
func (m *Match) Restart() {
	m.scoreLeft = 0
	m.scoreRight = 0
	m.winner = SideNone
	m.elapsedMs = 0

	topY := m.bounds.CenterY() - m.left.H/2
	m.left.Y = topY
	m.left.SetVelocity(0)
	m.right.Y = topY
	m.right.SetVelocity(0)

	m.ball.ResetSpeed()
	m.ball.Reset(m.bounds.CenterX(), m.bounds.CenterY(), SideNone)
}

// Score returns the (left, right) score pair.
func (m *Match) Score() (int, int) {
	return m.scoreLeft, m.scoreRight
}

// Winner returns the winning side, or SideNone while the match is live.
func (m *Match) Winner() Side {
	return m.winner
}

// Over reports whether a winner has been decided.
func (m *Match) Over() bool {
	return m.winner != SideNone
}

// Ball returns the match ball.
func (m *Match) Ball() *Ball {
	return m.ball
}

// LeftPaddle returns the human paddle.
func (m *Match) LeftPaddle() *Paddle {
	return m.left
}

// RightPaddle returns the AI paddle.
func (m *Match) RightPaddle() *Paddle {
	return m.right
}

// Bounds returns the playfield bounds.
func (m *Match) Bounds() Bounds {
	return m.bounds
}

// DurationSecs returns whole seconds of simulated match time.
func (m *Match) DurationSecs() int {
	return int(m.elapsedMs / 1000)
}

// WinScore returns the configured score threshold.
func (m *Match) WinScore() int {
	return m.cfg.Gameplay.WinScore
}

// String summarizes the match state, mainly for logs.
func (m *Match) String() string {
	return fmt.Sprintf("match %d-%d winner=%s", m.scoreLeft, m.scoreRight, m.winner)
}

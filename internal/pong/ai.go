package pong

import (
	"math/rand"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
)

// AIController drives the right paddle toward a predicted ball position.
// It is a target-selection strategy layered on ordinary paddle movement:
// the controller only ever sets the paddle's velocity, so the match treats
// both paddles uniformly.
//
// The opponent is kept beatable through three tunable imperfections:
// a reaction delay before re-evaluating the target, random jitter on the
// predicted position, and proportional smoothing instead of instant snaps.
type AIController struct {
	paddle *Paddle
	rng    *rand.Rand

	reactionDelayMs float64
	errorMargin     float64
	trackSmooth     float64

	sinceReactMs float64
	targetY      float64
}

// NewAIController creates a controller for the given paddle.
func NewAIController(paddle *Paddle, cfg config.AI, rng *rand.Rand) *AIController {
	return &AIController{
		paddle:          paddle,
		rng:             rng,
		reactionDelayMs: cfg.ReactionDelayMs,
		errorMargin:     cfg.ErrorMargin,
		trackSmooth:     cfg.TrackSmooth,
		targetY:         paddle.CenterY(),
	}
}

// Update advances the AI paddle by dtMs milliseconds.
// The target is re-evaluated only once per reaction delay; between
// re-evaluations the stored target persists.
func (c *AIController) Update(dtMs float64, ball core.Box, ballVX, ballVY float64, bounds Bounds) {
	c.sinceReactMs += dtMs
	if c.sinceReactMs >= c.reactionDelayMs {
		c.sinceReactMs = 0
		c.targetY = c.predictTarget(ball, ballVX, ballVY, bounds)
	}

	// Smooth proportional tracking toward the target, capped at paddle speed
	desired := c.targetY - c.paddle.CenterY()
	v := core.ClampF(desired*c.trackSmooth, -c.paddle.Speed, c.paddle.Speed)
	c.paddle.SetVelocity(v)
	c.paddle.Update(dtMs/refTickMs, bounds)
}

// TargetY returns the currently tracked target position.
func (c *AIController) TargetY() float64 {
	return c.targetY
}

// predictTarget estimates where the ball will cross the paddle's near edge,
// accounting for wall bounces, then degrades the estimate with jitter.
func (c *AIController) predictTarget(ball core.Box, ballVX, ballVY float64, bounds Bounds) float64 {
	if ballVX <= 0 {
		// Ball moving away; drift back to center
		return bounds.CenterY()
	}

	timeToReach := (c.paddle.X - ball.CenterX()) / ballVX
	if timeToReach <= 0 {
		// Ball already past the paddle face
		return ball.CenterY()
	}

	predicted := reflectIntoRange(ball.CenterY()+ballVY*timeToReach, float64(bounds.H))

	jitter := (c.rng.Float64()*2 - 1) * c.errorMargin
	return predicted + jitter
}

// reflectIntoRange folds y into [0, h] by repeated mirroring, modeling
// elastic wall bounces without simulating them step by step.
func reflectIntoRange(y, h float64) float64 {
	for y < 0 || y > h {
		if y < 0 {
			y = -y
		}
		if y > h {
			y = 2*h - y
		}
	}
	return y
}

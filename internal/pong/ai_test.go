package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
)

func testAIConfig() config.AI {
	return config.AI{
		ReactionDelayMs: 100,
		ErrorMargin:     1.5,
		TrackSmooth:     0.18,
	}
}

func TestReflectIntoRange(t *testing.T) {
	tests := []struct {
		name     string
		y, h     float64
		expected float64
	}{
		{"already in range", 10, 24, 10},
		{"at top wall", 0, 24, 0},
		{"at bottom wall", 24, 24, 24},
		{"below top mirrors", -5, 24, 5},
		{"above bottom mirrors", 30, 24, 18},
		{"double fold below", -30, 24, 18},
		{"double fold above", 50, 24, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := reflectIntoRange(tc.y, tc.h)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("reflectIntoRange(%v, %v) = %v, expected %v", tc.y, tc.h, got, tc.expected)
			}
			if got < 0 || got > tc.h {
				t.Errorf("result %v outside [0, %v]", got, tc.h)
			}
		})
	}
}

func TestPredictDriftsToCenterWhenBallMovesAway(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	ai := NewAIController(paddle, testAIConfig(), rand.New(rand.NewSource(1)))

	ball := core.NewBox(40, 10, 1, 1)
	target := ai.predictTarget(ball, -0.5, 0.3, bounds)

	if target != bounds.CenterY() {
		t.Errorf("target = %v, expected center %v when ball moves away", target, bounds.CenterY())
	}
}

func TestPredictBallAlreadyPast(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	cfg := testAIConfig()
	cfg.ErrorMargin = 0 // exact prediction
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(1)))

	// Ball center beyond the paddle face, still moving right
	ball := core.NewBox(78, 7, 1, 1)
	target := ai.predictTarget(ball, 0.5, 0.3, bounds)

	if target != ball.CenterY() {
		t.Errorf("target = %v, expected current ball center %v", target, ball.CenterY())
	}
}

func TestPredictLinearProjection(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	cfg := testAIConfig()
	cfg.ErrorMargin = 0
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(1)))

	// Ball at x=37 center, moving right at 0.5/tick: reaches x=77 in 80 ticks.
	// Vertical: 10 + 0.1*80 = 18, no wall crossing.
	ball := core.NewBox(36.5, 9.5, 1, 1)
	target := ai.predictTarget(ball, 0.5, 0.1, bounds)

	if math.Abs(target-18) > 1e-9 {
		t.Errorf("target = %v, expected 18", target)
	}
}

func TestPredictReflectsOffWalls(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	cfg := testAIConfig()
	cfg.ErrorMargin = 0
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(1)))

	// Raw projection: 10 + 0.5*80 = 50, folded into [0,24]: 48-50 -> -2 ...
	// 50 -> 2*24-50 = -2 -> 2
	ball := core.NewBox(36.5, 9.5, 1, 1)
	target := ai.predictTarget(ball, 0.5, 0.5, bounds)

	if math.Abs(target-2) > 1e-9 {
		t.Errorf("target = %v, expected 2 after wall folding", target)
	}
}

func TestPredictErrorIsBounded(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	cfg := testAIConfig()
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(42)))

	// Geometrically exact answer for this trajectory is 18 (see above)
	ball := core.NewBox(36.5, 9.5, 1, 1)

	for i := 0; i < 1000; i++ {
		target := ai.predictTarget(ball, 0.5, 0.1, bounds)
		if math.Abs(target-18) > cfg.ErrorMargin {
			t.Fatalf("iteration %d: target %v deviates more than error margin %v from 18",
				i, target, cfg.ErrorMargin)
		}
	}
}

func TestReactionDelayGatesRetargeting(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	cfg := testAIConfig()
	cfg.ReactionDelayMs = 100
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(1)))

	ball := core.NewBox(36.5, 9.5, 1, 1)

	// First update accumulates 60ms: no retarget yet, initial target persists
	initial := ai.TargetY()
	ai.Update(60, ball, 0.5, 0.1, bounds)
	if ai.TargetY() != initial {
		t.Error("target recomputed before reaction delay elapsed")
	}

	// Second update crosses the delay: target must change
	ai.Update(60, ball, 0.5, 0.1, bounds)
	if ai.TargetY() == initial {
		t.Error("target not recomputed after reaction delay elapsed")
	}
}

func TestAIVelocityNeverExceedsSpeedCap(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 9.5, 1, 5, 0.7)
	ai := NewAIController(paddle, testAIConfig(), rand.New(rand.NewSource(7)))

	// Ball far from the paddle's current position forces a large desired move
	ball := core.NewBox(70, 0, 1, 1)
	for i := 0; i < 300; i++ {
		ai.Update(refTickMs, ball, 0.9, -0.4, bounds)
		if math.Abs(paddle.Velocity()) > paddle.Speed+1e-9 {
			t.Fatalf("tick %d: velocity %v exceeds cap %v", i, paddle.Velocity(), paddle.Speed)
		}
		if paddle.Y < 0 || paddle.Y+paddle.H > float64(bounds.H) {
			t.Fatalf("tick %d: AI paddle escaped bounds, Y=%v", i, paddle.Y)
		}
	}
}

func TestAITracksTowardTarget(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	paddle := NewPaddle(77, 2, 1, 5, 0.7)
	cfg := testAIConfig()
	cfg.ErrorMargin = 0
	ai := NewAIController(paddle, cfg, rand.New(rand.NewSource(1)))

	// Ball heading straight at the paddle's x at y=20
	ball := core.NewBox(39.5, 19.5, 1, 1)
	for i := 0; i < 600; i++ {
		ai.Update(refTickMs, ball, 0.5, 0, bounds)
	}

	if math.Abs(paddle.CenterY()-20) > 0.5 {
		t.Errorf("paddle center %v should converge near 20", paddle.CenterY())
	}
}

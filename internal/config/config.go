// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import "fmt"

// Config contains all tunable parameters for a match.
// Speeds are measured in cells per reference tick (60 Hz).
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Paddles  Paddles  `yaml:"paddles"`
	AI       AI       `yaml:"ai"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines ball movement parameters.
type Physics struct {
	BallSpeed      float64 `yaml:"ball_speed"`       // Scalar speed at match start
	SpeedIncrement float64 `yaml:"speed_increment"`  // Added on each paddle hit and each point
	MaxBallSpeed   float64 `yaml:"max_ball_speed"`   // Scalar speed cap
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // Degrees from horizontal at the paddle edge
}

// Paddles defines paddle geometry and movement parameters.
type Paddles struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"` // 0 = scale with screen height
	Margin        int     `yaml:"margin"` // Distance from the side wall
	Speed         float64 `yaml:"speed"`
	AISpeedFactor float64 `yaml:"ai_speed_factor"` // AI speed cap relative to the human paddle
}

// AI defines the opponent's prediction imperfections.
type AI struct {
	ReactionDelayMs float64 `yaml:"reaction_delay_ms"` // Time between target re-evaluations
	ErrorMargin     float64 `yaml:"error_margin"`      // Max target jitter in cells
	TrackSmooth     float64 `yaml:"track_smooth"`      // Proportional tracking factor per update
}

// Gameplay defines match rules.
type Gameplay struct {
	WinScore     int `yaml:"win_score"`
	ServeDelayMs int `yaml:"serve_delay_ms"` // Countdown between a point and the next serve
}

// Validate rejects malformed configuration.
// Called at match construction; a bad config is a programming or authoring
// error, never handled per-tick.
func (c Config) Validate() error {
	if c.Physics.BallSpeed <= 0 {
		return fmt.Errorf("config: ball_speed must be positive, got %v", c.Physics.BallSpeed)
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		return fmt.Errorf("config: max_ball_speed %v below ball_speed %v", c.Physics.MaxBallSpeed, c.Physics.BallSpeed)
	}
	if c.Physics.SpeedIncrement < 0 {
		return fmt.Errorf("config: speed_increment must not be negative, got %v", c.Physics.SpeedIncrement)
	}
	if c.Physics.MaxBounceAngle <= 0 || c.Physics.MaxBounceAngle >= 90 {
		return fmt.Errorf("config: max_bounce_angle must be in (0, 90), got %v", c.Physics.MaxBounceAngle)
	}
	if c.Paddles.Width <= 0 {
		return fmt.Errorf("config: paddle width must be positive, got %d", c.Paddles.Width)
	}
	if c.Paddles.Height < 0 {
		return fmt.Errorf("config: paddle height must not be negative, got %d", c.Paddles.Height)
	}
	if c.Paddles.Margin < 0 {
		return fmt.Errorf("config: paddle margin must not be negative, got %d", c.Paddles.Margin)
	}
	if c.Paddles.Speed <= 0 {
		return fmt.Errorf("config: paddle speed must be positive, got %v", c.Paddles.Speed)
	}
	if c.Paddles.AISpeedFactor <= 0 {
		return fmt.Errorf("config: ai_speed_factor must be positive, got %v", c.Paddles.AISpeedFactor)
	}
	if c.AI.ReactionDelayMs < 0 {
		return fmt.Errorf("config: reaction_delay_ms must not be negative, got %v", c.AI.ReactionDelayMs)
	}
	if c.AI.ErrorMargin < 0 {
		return fmt.Errorf("config: error_margin must not be negative, got %v", c.AI.ErrorMargin)
	}
	if c.AI.TrackSmooth <= 0 || c.AI.TrackSmooth > 1 {
		return fmt.Errorf("config: track_smooth must be in (0, 1], got %v", c.AI.TrackSmooth)
	}
	if c.Gameplay.WinScore < 1 {
		return fmt.Errorf("config: win_score must be at least 1, got %d", c.Gameplay.WinScore)
	}
	if c.Gameplay.ServeDelayMs < 0 {
		return fmt.Errorf("config: serve_delay_ms must not be negative, got %d", c.Gameplay.ServeDelayMs)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the AI parameters for a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.ReactionDelayMs = 220
		cfg.AI.ErrorMargin = 3.0
		cfg.Paddles.AISpeedFactor = 0.8
	case DifficultyNormal:
		cfg.AI.ReactionDelayMs = 100
		cfg.AI.ErrorMargin = 1.5
		cfg.Paddles.AISpeedFactor = 0.95
	case DifficultyHard:
		cfg.AI.ReactionDelayMs = 50
		cfg.AI.ErrorMargin = 0.5
		cfg.Paddles.AISpeedFactor = 1.0
	}
}

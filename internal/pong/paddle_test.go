package pong

import (
	"math"
	"testing"
)

func TestPaddleMovesByVelocity(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	p := NewPaddle(2, 10, 1, 5, 0.7)

	p.SetVelocity(0.5)
	p.Update(2, bounds) // two reference ticks

	if math.Abs(p.Y-11) > 1e-9 {
		t.Errorf("Y = %v, expected 11", p.Y)
	}

	p.SetVelocity(-0.5)
	p.Update(2, bounds)

	if math.Abs(p.Y-10) > 1e-9 {
		t.Errorf("Y = %v, expected 10", p.Y)
	}
}

func TestPaddleZeroVelocityIsSteady(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	p := NewPaddle(2, 10, 1, 5, 0.7)

	p.SetVelocity(0)
	for i := 0; i < 100; i++ {
		p.Update(1, bounds)
	}

	if p.Y != 10 {
		t.Errorf("Y = %v, expected 10 with zero velocity", p.Y)
	}
}

func TestPaddleClamping(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}

	tests := []struct {
		name     string
		startY   float64
		velocity float64
		dt       float64
	}{
		{"push past top", 1, -5, 10},
		{"push past bottom", 18, 5, 10},
		{"large step up", 12, -100, 1},
		{"large step down", 12, 100, 1},
		{"start above top", -3, 0, 1},
		{"start below bottom", 30, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(2, tc.startY, 1, 5, 0.7)
			p.SetVelocity(tc.velocity)
			p.Update(tc.dt, bounds)

			if p.Y < 0 {
				t.Errorf("paddle top %v above playfield", p.Y)
			}
			if p.Y+p.H > float64(bounds.H) {
				t.Errorf("paddle bottom %v below playfield", p.Y+p.H)
			}
		})
	}
}

func TestPaddleClampingUnderRepeatedUpdates(t *testing.T) {
	bounds := Bounds{W: 80, H: 24}
	p := NewPaddle(2, 10, 1, 5, 0.7)

	// Hold "up" long enough to pin the paddle to the wall, then "down"
	p.SetVelocity(-p.Speed)
	for i := 0; i < 200; i++ {
		p.Update(1, bounds)
		if p.Y < 0 || p.Y+p.H > float64(bounds.H) {
			t.Fatalf("paddle escaped bounds at tick %d: Y=%v", i, p.Y)
		}
	}
	if p.Y != 0 {
		t.Errorf("paddle should rest at the top wall, Y=%v", p.Y)
	}

	p.SetVelocity(p.Speed)
	for i := 0; i < 200; i++ {
		p.Update(1, bounds)
	}
	if p.Y != float64(bounds.H)-p.H {
		t.Errorf("paddle should rest at the bottom wall, Y=%v", p.Y)
	}
}

func TestPaddleBoxSnapshot(t *testing.T) {
	p := NewPaddle(2, 10, 1, 5, 0.7)
	box := p.Box()

	if box.X != 2 || box.Y != 10 || box.W != 1 || box.H != 5 {
		t.Errorf("Box() = %+v, expected {2 10 1 5}", box)
	}

	// Snapshot is a value: mutating the paddle does not alias the box
	p.Y = 20
	if box.Y != 10 {
		t.Error("Box() snapshot should not alias paddle state")
	}

	if p.CenterY() != 22.5 {
		t.Errorf("CenterY() = %v, expected 22.5", p.CenterY())
	}
}

package pong

import (
	"fmt"
	"math"

	"github.com/tuipong/tuipong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Render draws the current match state to the screen.
// Continuous positions are rounded here and nowhere else.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	// Center line (net)
	centerX := dst.Width() / 2
	for y := 1; y < dst.Height()-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	m.renderPaddle(dst, m.left)
	m.renderPaddle(dst, m.right)

	// Ball blinks during the serve countdown
	remaining := m.ball.ServeRemainingMs()
	if m.ball.Phase() == PhaseActive || (int(remaining)/200)%2 == 0 {
		dst.SetColored(roundToCell(m.ball.X), roundToCell(m.ball.Y), BallChar, core.ColorBrightYellow)
	}

	// Scores
	dst.DrawTextColored(centerX-5, 0, fmt.Sprintf("%d", m.scoreLeft), core.ColorBrightWhite)
	dst.DrawTextColored(centerX+4, 0, fmt.Sprintf("%d", m.scoreRight), core.ColorBrightWhite)

	// Labels
	dst.DrawTextColored(1, 0, "YOU", core.ColorGray)
	dst.DrawTextColored(dst.Width()-4, 0, "CPU", core.ColorGray)

	if remaining > 0 && m.winner == SideNone {
		step := int(remaining)/400 + 1
		dst.DrawTextCentered(dst.Height()/2-3, fmt.Sprintf("Serve in %d", step))
	}

	if m.winner != SideNone {
		msg := "YOU WIN!"
		if m.winner == SideRight {
			msg = "CPU WINS!"
		}
		sub := fmt.Sprintf("%d - %d  |  Press R to restart", m.scoreLeft, m.scoreRight)
		drawCenteredMessage(dst, msg, sub)
	}
}

// renderPaddle draws a paddle column by column.
func (m *Match) renderPaddle(dst *core.Screen, p *Paddle) {
	x := roundToCell(p.X)
	y := roundToCell(p.Y)
	for dy := 0; dy < int(p.H); dy++ {
		for dx := 0; dx < int(p.W); dx++ {
			dst.SetColored(x+dx, y+dy, PaddleChar, core.ColorWhite)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
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

// roundToCell converts a continuous coordinate to its screen cell.
func roundToCell(v float64) int {
	return int(math.Round(v))
}

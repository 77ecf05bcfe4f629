package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuipong/tuipong/internal/config"
	"github.com/tuipong/tuipong/internal/core"
	"github.com/tuipong/tuipong/internal/pong"
	"github.com/tuipong/tuipong/internal/storage"
)

// maxFrameMs caps the simulated time for one frame so a suspended terminal
// doesn't make the ball tunnel through paddles on resume.
const maxFrameMs = 250.0

// Model is the Bubble Tea model for a match against the computer.
type Model struct {
	match      *pong.Match
	screen     *core.Screen
	store      *storage.Store
	gameCfg    config.Config
	runtime    core.RuntimeConfig
	difficulty string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	lastTick   time.Time
	paused     bool
	quitting   bool
	matchSaved bool // Whether the result has been saved for the current match
}

// NewModel creates a new Bubble Tea model running a fresh match.
func NewModel(gameCfg config.Config, store *storage.Store, rt core.RuntimeConfig, difficulty string) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	match, err := pong.NewMatch(gameCfg, rt)
	if err != nil {
		return Model{}, err
	}

	return Model{
		match:      match,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		gameCfg:    gameCfg,
		runtime:    rt,
		difficulty: difficulty,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		if !m.match.Over() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.match.Over() {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionUp, core.ActionDown:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Rebuild the match at the new playfield size. A finished match keeps
	// its frozen board; an unplayably small terminal keeps the old match.
	if !m.match.Over() {
		if match, err := pong.NewMatch(m.gameCfg, m.runtime); err == nil {
			m.match = match
		}
	}

	return m, nil
}

// handleTick advances the simulation by the real time elapsed since the
// previous tick, so movement speed is independent of the render rate.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	elapsedMs := float64(1000) / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick).Microseconds()) / 1000
	}
	if elapsedMs > maxFrameMs {
		elapsedMs = maxFrameMs
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.match.Over() {
		m.match.Restart()
		m.matchSaved = false
		m.paused = false
		m.inputFrame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if !m.paused {
		m.match.Tick(elapsedMs, m.inputFrame)
	}

	// Save the result once per finished match
	if m.match.Over() && !m.matchSaved {
		if m.store != nil {
			scoreLeft, scoreRight := m.match.Score()
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveMatch(storage.MatchRecord{
				Winner:     m.match.Winner().String(),
				ScoreLeft:  scoreLeft,
				ScoreRight: scoreRight,
				Difficulty: m.difficulty,
				Duration:   m.match.DurationSecs(),
			})
		}
		m.matchSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)

	if m.paused {
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid, "PAUSED")
		m.screen.DrawTextCentered(mid+1, "Press P to resume")
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local match.
func Run(gameCfg config.Config, store *storage.Store, rt core.RuntimeConfig, difficulty string) error {
	model, err := NewModel(gameCfg, store, rt, difficulty)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

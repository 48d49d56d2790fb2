package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catzzz/internal/core"
	"github.com/vovakirdan/catzzz/internal/registry"
)

// Rows kept free below the picture for the HUD and help lines.
const chromeRows = 2

var (
	hudStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game     registry.Game
	config   core.RuntimeConfig
	canvas   *core.Canvas
	renderer *Renderer
	keys     KeyMap
	held     *HeldKeys
	help     help.Model

	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model for game, which must already be Reset with cfg.
// width and height are the initial terminal size in cells.
func NewModel(game registry.Game, cfg core.RuntimeConfig, width, height int) Model {
	return Model{
		game:      game,
		config:    cfg,
		canvas:    core.NewCanvas(cfg.CanvasW, cfg.CanvasH),
		renderer:  NewRenderer(),
		keys:      DefaultKeyMap(),
		held:      NewHeldKeys(DefaultHold),
		help:      help.New(),
		gameState: game.State(),
		width:     width,
		height:    height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the press; the game sees it on the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(m.keys.Action(msg), now)
	return m, nil
}

// handleTick steps the game with the keys held at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(now, m.held.Frame(now))
	m.gameState = result.State

	if m.gameState.Closed() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current frame, the HUD and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	cols, rows := FitCells(m.canvas.Width(), m.canvas.Height(), m.width, m.height-chromeRows)

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.canvas, cols, rows))
	b.WriteByte('\n')
	b.WriteString(hudStyle.Render(m.game.HUD()))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, width, height int) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}

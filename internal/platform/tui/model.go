package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-raid/internal/config"
	"github.com/vovakirdan/galaxy-raid/internal/core"
	"github.com/vovakirdan/galaxy-raid/internal/game"
	"github.com/vovakirdan/galaxy-raid/internal/sprite"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game session. Key and mouse
// messages are queued as commands and drained on the next tick, so the
// session only ever advances on TickMsg.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	renderer *ScreenRenderer
	queue    *core.CommandQueue
	mapper   *KeyMapper
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	ticks    uint64 // TickMsgs received, including end-screen ticks
	ended    bool   // End screen is showing
	quitting bool
}

// NewModel creates a model with a fresh session.
func NewModel(cfg config.GalaxyConfig, atlas *sprite.Atlas, rt core.RuntimeConfig, logger *log.Logger) *Model {
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.TickRate
	}

	keys := DefaultKeyMap()
	screen := core.NewScreen(rt.ScreenW, playfieldHeight(rt.ScreenH))

	m := &Model{
		session:  game.NewSession(cfg, atlas, logger),
		screen:   screen,
		renderer: NewScreenRenderer(screen, atlas, cfg.Field.Width, cfg.Field.Height),
		queue:    core.NewCommandQueue(),
		mapper:   NewKeyMapper(keys, cfg.Input.HoldTicks),
		keys:     keys,
		help:     help.New(),
		config:   rt,
	}
	m.renderer.RenderFrame(m.session.Frame())
	return m
}

// playfieldHeight leaves one row for the help footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, c := range m.mapper.MapKey(msg, m.ticks) {
			m.queue.Push(c)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.queue.Push(core.CommandDismiss)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		m.redraw()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick drains queued commands into one simulation step.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	for _, c := range m.mapper.Expire(m.ticks) {
		m.queue.Push(c)
	}
	cmds := m.queue.Drain()

	if m.ended {
		for _, c := range cmds {
			if c == core.CommandDismiss || c == core.CommandQuitRequested {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, tickCmd(m.config.TickRate)
	}

	res := m.session.Step(cmds)
	switch {
	case res.Reason == game.EndQuit:
		m.quitting = true
		return m, tea.Quit
	case res.Phase == game.PhaseEnded:
		m.ended = true
	}

	m.redraw()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) redraw() {
	if m.ended {
		m.renderer.RenderEndScreen(m.session.Score())
		return
	}
	m.renderer.RenderFrame(m.session.Frame())
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the running session.
func (m *Model) Session() *game.Session {
	return m.session
}

// Ended reports whether the end screen is showing.
func (m *Model) Ended() bool {
	return m.ended
}

// Run starts the Bubble Tea program for a local game and returns the final
// score.
func Run(cfg config.GalaxyConfig, atlas *sprite.Atlas, rt core.RuntimeConfig, logger *log.Logger) (int, error) {
	model := NewModel(cfg, atlas, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return model.session.Score(), err
	}
	return model.session.Score(), nil
}

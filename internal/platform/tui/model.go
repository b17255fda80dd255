package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/games/balloons"
)

const (
	chromeRows = 2  // HUD line above the play area, help line below
	minCols    = 40 // Narrowest play area that still fits four balloons
	minRows    = 12
)

// Options configures a game session.
type Options struct {
	Config  config.BalloonConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Mute    bool
}

// Model is the Bubble Tea model for the balloon game.
type Model struct {
	game   *balloons.Game
	sched  *scheduler
	screen *core.Screen
	hud    *hud
	keys   KeyMap
	help   help.Model
	cfg    config.BalloonConfig
	logger *log.Logger

	shotDir  string
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and the game it drives.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := opts.Config
	sched := newScheduler(logger)
	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH-chromeRows)
	h := newHUD(cfg.Rules.Lives)

	var audio balloons.Audio
	if cfg.Audio.Enabled && !opts.Mute {
		audio = newBellAudio(logger)
	}

	game := balloons.New(cfg, balloons.Deps{
		Renderer:  balloons.NewScreenRenderer(screen, cfg.Skins, logger),
		Audio:     audio,
		Display:   h,
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    logger,
	})
	logger.Debug("game created", "seed", seed)

	m := Model{
		game:    game,
		sched:   sched,
		screen:  screen,
		hud:     h,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		cfg:     cfg,
		logger:  logger,
		shotDir: screenshotDir(),
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	m.layout()
	return m
}

// Init sets the window title; the game waits for the start key.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Balloon Math")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()

	case timerMsg:
		m.sched.fire(msg.id)
	}

	return m, m.sched.flush()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.game.MoveLeft()
	case core.ActionRight:
		m.game.MoveRight()
	case core.ActionStart:
		m.game.Start()
	case core.ActionRestart:
		m.game.Restart()
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, m.sched.flush()
}

// saveScreenshot writes the play area to a text file. Failures are logged
// and the game continues.
func (m Model) saveScreenshot() {
	path, err := writeScreenshot(m.shotDir, m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// handleMouse moves the catcher under the pointer. A left click on the
// start or game-over panel starts a game.
func (m Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		if cols := m.screen.Width(); cols > 0 {
			x := (float64(msg.X) + 0.5) * m.cfg.PlayArea.Width / float64(cols)
			m.game.PointerMove(x)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.game.Running() {
			m.game.Start()
		}
	}
}

// layout sizes the play screen to the terminal and attaches or detaches the
// game surface depending on whether it fits.
func (m *Model) layout() {
	cols, rows := m.width, m.height-chromeRows
	if cols < minCols || rows < minRows {
		if m.game.HasSurface() {
			m.logger.Debug("terminal too small, detaching surface", "cols", m.width, "rows", m.height)
		}
		m.game.DetachSurface()
		return
	}

	m.screen.Resize(cols, rows)
	m.game.AttachSurface(balloons.Surface{
		Width:  m.cfg.PlayArea.Width,
		Height: m.cfg.PlayArea.Height,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.game.HasSurface() {
		msg := fmt.Sprintf("Terminal too small\nneed at least %dx%d", minCols, minRows+chromeRows)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	var body string
	switch m.hud.overlay {
	case overlayNone:
		body = RenderScreen(m.screen)
	default:
		body = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.renderOverlay())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHUD(),
		body,
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// renderHUD renders the question, score and lives line.
func (m Model) renderHUD() string {
	question := m.hud.question
	if question == "" {
		question = "Press enter to start"
	}

	lives, _ := strconv.Atoi(m.hud.lives)
	hearts := strings.Repeat("♥", max(lives, 0))

	return strings.Join([]string{
		questionStyle.Render(question),
		labelStyle.Render("Score ") + valueStyle.Render(m.hud.score),
		labelStyle.Render("Lives ") + livesStyle.Render(hearts) + labelStyle.Render(" ("+m.hud.lives+")"),
	}, "   ")
}

// renderOverlay renders the start or game-over panel.
func (m Model) renderOverlay() string {
	var b strings.Builder

	if m.hud.overlay == overlayGameOver {
		b.WriteString(titleStyle.Render("Game over"))
		b.WriteString("\n\n")
		b.WriteString("Final score: " + strconv.Itoa(m.hud.finalScore))
		b.WriteString("\n\n")
		b.WriteString(sessionBoard(m.hud.results, m.hud.best()).View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r or click to play again"))
		return overlayStyle.Render(b.String())
	}

	b.WriteString(titleStyle.Render("Balloon Math"))
	b.WriteString("\n\n")
	b.WriteString("Catch the balloon with the right answer.\n")
	b.WriteString("Let the wrong ones fall.\n")
	b.WriteString("You have " + strconv.Itoa(m.cfg.Rules.Lives) + " lives.")
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter or click to start"))
	return overlayStyle.Render(b.String())
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering needs motion without a pressed button
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
	"github.com/vovakirdan/tui-memorize/internal/registry"
	"github.com/vovakirdan/tui-memorize/internal/storage"
)

// NewGame creates a registered MemorizeIT game and hands it its setup.
func NewGame(gameID string, setup memorize.Setup) (*memorize.Game, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	mg, ok := g.(*memorize.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not a memorize game", gameID)
	}
	mg.Configure(setup)
	return mg, nil
}

// GameModel runs one session and then the summary screen.
type GameModel struct {
	game       *memorize.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionTag string
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	summary    *SummaryModel
	exitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model around a configured game. The store and the
// logger may be nil.
func NewGameModel(game *memorize.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		sessionTag: "local",
		sessionID:  newSessionID("local"),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the session.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.summary == nil {
		if m.keyMapper.MapKeyToFrame(core.ContextGame, msg, &m.inputFrame) == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(core.ContextSummary, msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		return m.leave()
	case core.ActionRestart:
		if m.summary.Scorecard().Submitted() {
			return m.restart()
		}
	case core.ActionConfirm:
		if m.summary.Scorecard().Submitted() {
			return m.leave()
		}
	}

	if m.summary.Apply(action) {
		m.gameState = m.game.State()
		m.saveSession()
	}
	return m, nil
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.exitOnBack {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = 0
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.summary = nil
	m.scoreSaved = false
	m.sessionID = newSessionID(m.sessionTag)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleResize resizes the screen. A running session is restarted at the
// new resolution because wave geometry is laid out once per wave.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if m.summary != nil {
		m.summary.SetWidth(msg.Width)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.summary != nil {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		aborted := false
		if ctrl := m.game.Controller(); ctrl != nil {
			aborted = ctrl.Aborted()
		}
		summary := NewSummaryModel(m.game.Title(), m.game.Scorecard(), aborted, m.config.ScreenW)
		m.summary = &summary
		// Ticks stop until the player restarts.
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// saveSession stores the submitted score and the per-figure rounds once.
func (m *GameModel) saveSession() {
	if m.scoreSaved || m.store == nil {
		m.scoreSaved = true
		return
	}
	m.scoreSaved = true

	card := m.summary.Scorecard()
	results := card.Results()
	rounds := make([]storage.Round, len(results))
	for i, r := range results {
		rounds[i] = storage.Round{
			Figure:   string(r.Figure),
			Expected: r.Expected,
			Guessed:  r.Guessed,
		}
	}
	if err := m.store.SaveSession(m.game.ID(), m.sessionID, card.Points(), rounds); err != nil {
		m.logger.Warn("could not save session", "game", m.game.ID(), "err", err)
	}
}

// View renders the game or the summary.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.summary != nil {
		return m.summary.View()
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// InSummary reports whether the session has ended.
func (m GameModel) InSummary() bool {
	return m.summary != nil
}

// Summary returns the summary screen, or nil while the session runs.
func (m GameModel) Summary() *SummaryModel {
	return m.summary
}

// ScoreSaved reports whether the submitted result has been handled.
func (m GameModel) ScoreSaved() bool {
	return m.scoreSaved
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WithSessionTag sets the prefix of the session identifiers stored with
// each round, such as the SSH user name.
func (m GameModel) WithSessionTag(tag string) GameModel {
	m.sessionTag = tag
	m.sessionID = newSessionID(tag)
	return m
}

// Run runs a single game with its summary in the terminal.
func Run(game *memorize.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newSessionID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

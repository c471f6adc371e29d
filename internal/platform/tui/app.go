package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
	"github.com/vovakirdan/tui-memorize/internal/sound"
	"github.com/vovakirdan/tui-memorize/internal/storage"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Store      *storage.Store
	Settings   config.Settings
	Save       SaveFunc // nil keeps settings in memory only
	ImageDir   string
	Sound      sound.Trigger
	Logger     *log.Logger
	SessionTag string
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenSettings
	screenScoreboard
	screenGame
)

// AppModel manages the full flow: menu -> game -> summary -> menu, plus the
// settings and scoreboard screens. It is the top-level model for both local
// play and SSH sessions.
type AppModel struct {
	opts       AppOptions
	config     core.RuntimeConfig
	screen     appScreen
	menu       MenuModel
	settings   SettingsModel
	scoreboard ScoreboardModel
	game       GameModel
	quitting   bool
}

// NewAppModel creates the application model starting at the main menu.
func NewAppModel(cfg core.RuntimeConfig, opts AppOptions) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}
	if opts.SessionTag == "" {
		opts.SessionTag = "local"
	}
	opts.Settings = config.Sanitize(opts.Settings)

	return AppModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the application.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSettings:
		return m.updateSettings(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case ChoiceSettings:
		m.settings = NewSettingsModel(m.opts.Settings, m.config.ScreenW, m.opts.Save)
		m.screen = screenSettings
		return m, m.settings.Init()

	case ChoiceScoreboard:
		m.scoreboard = NewScoreboardModel(m.opts.Store, "", m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case ChoiceGame:
		game, err := NewGame(selected.GameID, memorize.Setup{
			Settings: m.opts.Settings,
			ImageDir: m.opts.ImageDir,
			Sound:    m.opts.Sound,
			Logger:   m.opts.Logger,
		})
		if err != nil {
			m.opts.Logger.Error("cannot start game", "game", selected.GameID, "err", err)
			return m.backToMenu()
		}
		m.game = NewGameModel(game, m.opts.Store, m.config, m.opts.Logger).WithSessionTag(m.opts.SessionTag)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m.backToMenu()
}

func (m AppModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.settings.Update(msg)
	if sm, ok := next.(SettingsModel); ok {
		m.settings = sm
	}

	if m.settings.IsQuitting() || m.settings.Done() {
		m.opts.Settings = m.settings.Settings()
		if err := m.settings.SaveErr(); err != nil {
			m.opts.Logger.Warn("could not save settings", "err", err)
		}
		if m.settings.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSettings:
		return m.settings.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}

// Settings returns the settings currently in effect.
func (m AppModel) Settings() config.Settings {
	return m.opts.Settings
}

// RunApp runs the full application in the local terminal.
func RunApp(cfg core.RuntimeConfig, opts AppOptions) error {
	p := tea.NewProgram(NewAppModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

// SaveFunc persists settings when the player leaves the settings screen.
type SaveFunc func(config.Settings) error

// SettingsModel edits the game settings. Each row cycles through its
// allowed values.
type SettingsModel struct {
	settings  config.Settings
	cursor    int
	width     int
	keyMapper *KeyMapper
	save      SaveFunc
	saveErr   error
	done      bool
	quitting  bool
}

// NewSettingsModel creates the settings screen. save may be nil, in which
// case changes only live as long as the returned model.
func NewSettingsModel(s config.Settings, width int, save SaveFunc) SettingsModel {
	return SettingsModel{
		settings:  config.Sanitize(s),
		width:     width,
		keyMapper: NewKeyMapper(),
		save:      save,
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := config.Fields[m.cursor]

	switch m.keyMapper.MapKey(core.ContextSettings, msg) {
	case core.ActionQuit:
		m.quitting = true
		m.persist()
		return m, tea.Quit
	case core.ActionBack:
		m.done = true
		m.persist()
		return m, tea.Quit
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(config.Fields)-1 {
			m.cursor++
		}
	case core.ActionLeft:
		m.settings = m.settings.Cycle(field, -1)
	case core.ActionRight, core.ActionConfirm:
		m.settings = m.settings.Cycle(field, 1)
	}
	return m, nil
}

func (m *SettingsModel) persist() {
	if m.save != nil {
		m.saveErr = m.save(m.settings)
	}
}

// View renders the settings rows.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(logoStyle.Render("S E T T I N G S"), m.width))
	b.WriteString("\n\n")

	for i, f := range config.Fields {
		style, cursor := menuItemStyle, "  "
		if i == m.cursor {
			style, cursor = menuActiveStyle, "> "
		}
		line := fmt.Sprintf("%s%-10s %s %-6s %s", cursor, f.Label(), m.arrow(f, -1), m.settings.Value(f), m.arrow(f, 1))
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Select  |  Left/Right: Change  |  Esc: Save & back"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// arrow returns the change marker for dir, blank when the value cannot move
// that way.
func (m SettingsModel) arrow(f config.Field, dir int) string {
	if m.settings.Cycle(f, dir) == m.settings {
		return " "
	}
	if dir < 0 {
		return "<"
	}
	return ">"
}

// Settings returns the edited settings.
func (m SettingsModel) Settings() config.Settings {
	return m.settings
}

// Done reports whether the player left the screen with back.
func (m SettingsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// SaveErr returns the error from persisting the settings, if any.
func (m SettingsModel) SaveErr() error {
	return m.saveErr
}

// RunSettings runs the settings screen on its own and returns the result.
func RunSettings(s config.Settings, width int, save SaveFunc) (config.Settings, error) {
	p := tea.NewProgram(NewSettingsModel(s, width, save), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return s, err
	}
	m, ok := final.(SettingsModel)
	if !ok {
		return s, nil
	}
	return m.Settings(), m.SaveErr()
}

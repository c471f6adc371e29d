package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/registry"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceGame
	ChoiceSettings
	ChoiceScoreboard
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	GameID string
	Title  string
	Hint   string
}

var (
	logoStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorLogo.Hex()))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorMenu.Hex()))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorMenuActive.Hex()))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a menu listing every registered game followed by the
// settings, scoreboard and quit entries.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{Choice: ChoiceGame, GameID: g.ID, Title: g.Title, Hint: g.Description})
	}
	items = append(items,
		MenuItem{Choice: ChoiceSettings, Title: "Settings"},
		MenuItem{Choice: ChoiceScoreboard, Title: "Scoreboard"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(core.ContextMenu, msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) == 0 {
			return m, nil
		}
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(logoStyle.Render("M E M O R I Z E  I T"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		style, cursor := menuItemStyle, "  "
		if i == m.cursor {
			style, cursor = menuActiveStyle, "> "
		}
		b.WriteString(centerText(style.Render(fmt.Sprintf("%s%-16s", cursor, item.Title)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cursor < len(m.items) && m.items[m.cursor].Hint != "" {
		b.WriteString(centerText(menuHintStyle.Render(m.items[m.cursor].Hint), m.width))
	}
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc/Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

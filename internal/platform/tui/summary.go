package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
)

// SummaryKeyMap lists the bindings shown under the summary. The actual
// mapping is done by KeyMapper; these only feed the help view.
type SummaryKeyMap struct {
	Select  key.Binding
	Adjust  key.Binding
	Submit  key.Binding
	Restart key.Binding
	Back    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Adjust, k.Submit, k.Restart, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSummaryKeyMap returns the summary bindings.
func DefaultSummaryKeyMap() SummaryKeyMap {
	return SummaryKeyMap{
		Select:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("up/down", "figure")),
		Adjust:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("left/right", "count")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
	}
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorLogo.Hex()))
	summaryRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorMenu.Hex()))
	summaryActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorMenuActive.Hex()))
	correctStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorCorrect.Hex()))
	incorrectStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorIncorrect.Hex()))
	summaryHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))
)

// SummaryModel lets the player enter how many figures of each type they saw
// and shows the comparison once submitted.
type SummaryModel struct {
	title   string
	card    *memorize.Scorecard
	aborted bool
	cursor  int
	width   int
	help    help.Model
	keys    SummaryKeyMap
}

// NewSummaryModel creates a summary for a finished session.
func NewSummaryModel(title string, card *memorize.Scorecard, aborted bool, width int) SummaryModel {
	m := SummaryModel{
		title:   title,
		card:    card,
		aborted: aborted,
		width:   width,
		help:    help.New(),
		keys:    DefaultSummaryKeyMap(),
	}
	m.syncKeys()
	return m
}

// Apply handles one action. It returns true when the action submitted the
// guesses.
func (m *SummaryModel) Apply(a core.Action) bool {
	figures := m.card.Figures()

	switch a {
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(figures)-1 {
			m.cursor++
		}
	case core.ActionLeft:
		if len(figures) > 0 {
			m.card.Handle(memorize.Decrement{Figure: figures[m.cursor]})
		}
	case core.ActionRight:
		if len(figures) > 0 {
			m.card.Handle(memorize.Increment{Figure: figures[m.cursor]})
		}
	case core.ActionConfirm:
		if m.card.Handle(memorize.Submit{}) {
			m.syncKeys()
			return true
		}
	}
	return false
}

func (m *SummaryModel) syncKeys() {
	open := !m.card.Submitted()
	m.keys.Select.SetEnabled(open)
	m.keys.Adjust.SetEnabled(open)
	m.keys.Submit.SetEnabled(open)
	m.keys.Restart.SetEnabled(!open)
}

// SetWidth updates the width used for centering.
func (m *SummaryModel) SetWidth(w int) {
	m.width = w
	m.help.Width = w
}

// Cursor returns the index of the selected figure.
func (m SummaryModel) Cursor() int {
	return m.cursor
}

// Scorecard returns the underlying scorecard.
func (m SummaryModel) Scorecard() *memorize.Scorecard {
	return m.card
}

// View renders the summary.
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(summaryTitleStyle.Render(m.title), m.width))
	b.WriteString("\n")
	if m.aborted {
		b.WriteString(centerText(summaryHelpStyle.Render("round ended early"), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(summaryRowStyle.Render("How many did you see?"), m.width))
	b.WriteString("\n\n")

	submitted := m.card.Submitted()
	for i, r := range m.card.Results() {
		b.WriteString(centerText(m.renderRow(i, r, submitted), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if submitted {
		line := fmt.Sprintf("%d of %d correct  |  %d points", m.card.Correct(), len(m.card.Figures()), m.card.Points())
		b.WriteString(centerText(summaryActive.Render(line), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(summaryHelpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m SummaryModel) renderRow(i int, r memorize.Result, submitted bool) string {
	name := fmt.Sprintf("%-12s", displayName(r.Figure))

	if !submitted {
		style := summaryRowStyle
		cursor := "  "
		if i == m.cursor {
			style = summaryActive
			cursor = "> "
		}
		return style.Render(fmt.Sprintf("%s%s < %2d >", cursor, name, r.Guessed))
	}

	guess := fmt.Sprintf("%2d", r.Guessed)
	if r.Correct {
		return summaryRowStyle.Render("  "+name+"   ") + correctStyle.Render(guess) + "     "
	}
	return summaryRowStyle.Render("  "+name+"   ") + incorrectStyle.Render(guess) +
		summaryRowStyle.Render(fmt.Sprintf(" (%d)", r.Expected))
}

// displayName capitalizes a figure name for display.
func displayName(f memorize.FigureType) string {
	s := string(f)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

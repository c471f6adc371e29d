package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
)

func newTestCard() *memorize.Scorecard {
	truth := memorize.NewCounter(memorize.Square, memorize.Triangle)
	truth.Add(memorize.Square, 2)
	truth.Add(memorize.Triangle, 1)
	return memorize.NewScorecard(truth)
}

func TestSummaryAdjustAndSubmit(t *testing.T) {
	card := newTestCard()
	m := NewSummaryModel("MemorizeIT 2D", card, false, 80)

	m.Apply(core.ActionRight)
	m.Apply(core.ActionRight)
	m.Apply(core.ActionDown)
	m.Apply(core.ActionRight)
	m.Apply(core.ActionRight)
	m.Apply(core.ActionLeft)
	m.Apply(core.ActionLeft)

	if got := card.Guess(memorize.Square); got != 2 {
		t.Errorf("square guess = %d, expected 2", got)
	}
	if got := card.Guess(memorize.Triangle); got != 0 {
		t.Errorf("triangle guess = %d, expected 0", got)
	}

	if !m.Apply(core.ActionConfirm) {
		t.Fatal("Confirm should submit")
	}
	if m.Apply(core.ActionConfirm) {
		t.Error("second Confirm should not submit again")
	}
	if card.Correct() != 1 {
		t.Errorf("Correct() = %d, expected 1", card.Correct())
	}

	m.Apply(core.ActionRight)
	if card.Guess(memorize.Triangle) != 0 {
		t.Error("guesses are locked after submit")
	}
}

func TestSummaryCursorBounds(t *testing.T) {
	m := NewSummaryModel("t", newTestCard(), false, 80)

	m.Apply(core.ActionUp)
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, expected 0", m.Cursor())
	}
	for range 5 {
		m.Apply(core.ActionDown)
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, expected 1", m.Cursor())
	}
}

func TestSummaryView(t *testing.T) {
	card := newTestCard()
	m := NewSummaryModel("MemorizeIT 2D", card, true, 80)

	view := m.View()
	for _, want := range []string{"MemorizeIT 2D", "Square", "Triangle", "ended early"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.Apply(core.ActionConfirm)
	view = m.View()
	if !strings.Contains(view, "(2)") || !strings.Contains(view, "(1)") {
		t.Error("submitted view should show the real counts of wrong guesses")
	}
	if !strings.Contains(view, "0 of 2 correct") {
		t.Error("submitted view should show the correct total")
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(memorize.Octagon); got != "Octagon" {
		t.Errorf("displayName = %q", got)
	}
	if got := displayName(""); got != "" {
		t.Errorf("displayName(\"\") = %q", got)
	}
}

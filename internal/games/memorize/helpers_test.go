package memorize

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memorize/internal/config"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countingSound counts Play calls.
type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

func testSettings(figures, total, speed int, colors string) config.Settings {
	s := config.DefaultSettings()
	s.Figures = figures
	s.Time = total
	s.Speed = speed
	s.Colors = colors
	return s
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

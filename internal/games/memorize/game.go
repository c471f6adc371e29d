// Package memorize implements the MemorizeIT memory game: waves of figures
// are shown for a fixed time and the player reports how many of each type
// they saw.
package memorize

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/core"
	"github.com/vovakirdan/tui-memorize/internal/registry"
	"github.com/vovakirdan/tui-memorize/internal/sound"
)

// Game IDs used for the CLI and score storage.
const (
	StaticID  = "memorize_static"
	DynamicID = "memorize_dynamic"
)

// Setup carries the collaborators a Game needs beyond the runtime config.
type Setup struct {
	Settings config.Settings
	ImageDir string
	Sound    sound.Trigger
	Logger   *log.Logger
	Clock    core.Clock
}

// Game adapts a session Controller to the platform game loop.
type Game struct {
	mode  Mode
	setup Setup

	ctrl     *Controller
	card     *Scorecard
	gameOver bool

	images    []*assets.Image
	imagesRes [2]int
}

// NewStatic creates a static-mode game.
func NewStatic() *Game {
	return &Game{mode: ModeStatic, setup: Setup{Settings: config.DefaultSettings()}}
}

// NewDynamic creates a dynamic-mode game.
func NewDynamic() *Game {
	return &Game{mode: ModeDynamic, setup: Setup{Settings: config.DefaultSettings()}}
}

func init() {
	registry.Register(StaticID, func() registry.Game {
		return NewStatic()
	})
	registry.Register(DynamicID, func() registry.Game {
		return NewDynamic()
	})
}

// Configure replaces the collaborators used by the next Reset.
func (g *Game) Configure(s Setup) {
	s.Settings = config.Sanitize(s.Settings)
	if s.ImageDir != g.setup.ImageDir {
		g.images = nil
		g.imagesRes = [2]int{}
	}
	g.setup = s
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDynamic {
		return DynamicID
	}
	return StaticID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDynamic {
		return "MemorizeIT 3D"
	}
	return "MemorizeIT 2D"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeDynamic {
		return "Count the solids flying past"
	}
	return "Count the figures on the grid"
}

// Reset starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := g.setup.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	resW, resH := cfg.Resolution()
	opts := []Option{
		WithRand(rand.New(rand.NewSource(seed))),
		WithResolution(resW, resH),
		WithTickRate(cfg.TickRate),
		WithLogger(logger),
	}
	if g.setup.Clock != nil {
		opts = append(opts, WithClock(g.setup.Clock))
	}
	if g.setup.Sound != nil {
		opts = append(opts, WithSound(g.setup.Sound))
	}
	if g.mode == ModeStatic {
		opts = append(opts, WithImages(g.loadImages(resW, resH, logger)))
	}

	g.ctrl = NewController(g.mode, g.setup.Settings, opts...)
	g.card = nil
	g.gameOver = false
}

func (g *Game) loadImages(resW, resH int, logger *log.Logger) []*assets.Image {
	if g.setup.ImageDir == "" {
		return nil
	}
	if g.images != nil && g.imagesRes == [2]int{resW, resH} {
		return g.images
	}

	images, err := assets.NewLoader(g.setup.ImageDir, logger).Load(resW, resH)
	if err != nil {
		logger.Warn("images unavailable", "dir", g.setup.ImageDir, "err", err)
		return nil
	}
	g.images, g.imagesRes = images, [2]int{resW, resH}
	return images
}

// Step advances the session by one tick. Back ends the session early.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.ctrl.Abort()
	}
	if g.ctrl.Tick() == StateEnding {
		g.gameOver = true
		g.card = g.ctrl.Scorecard()
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current wave and the remaining time.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	g.ctrl.Draw(NewScreenRenderer(dst, g.ctrl.Camera().Z))

	left := fmt.Sprintf(" %ds ", int(g.ctrl.Remaining().Round(time.Second)/time.Second))
	dst.DrawColoredText(dst.Width()-len(left), 0, left, core.ColorGray)
}

// State returns the current game state. The score is only known once the
// player submits their counts.
func (g *Game) State() core.GameState {
	score := 0
	if g.card != nil && g.card.Submitted() {
		score = g.card.Points()
	}
	return core.GameState{Score: score, GameOver: g.gameOver}
}

// Controller returns the running session, or nil before Reset.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Scorecard returns the scorecard of a finished session, or nil while the
// session is running.
func (g *Game) Scorecard() *Scorecard {
	return g.card
}

// Settings returns the settings used by the next Reset.
func (g *Game) Settings() config.Settings {
	return g.setup.Settings
}

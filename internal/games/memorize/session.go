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
	"github.com/vovakirdan/tui-memorize/internal/sound"
)

// Mode selects the flavor of a session.
type Mode int

const (
	ModeStatic  Mode = iota // Flat figures on a 3x3 grid
	ModeDynamic             // Solids the camera flies past
)

// String returns the mode name used in game IDs.
func (m Mode) String() string {
	if m == ModeDynamic {
		return "dynamic"
	}
	return "static"
}

// State is the lifecycle phase of a session.
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateEnding
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// Depth the camera must travel past a dynamic wave before it is replaced.
const waveDepth = 100

// Where the first dynamic wave is anchored.
const firstSpawnZ = -10

// Controller runs one session: it spawns waves, keeps the ground-truth
// counter and ends the session when the time budget is spent.
// It is driven from a single goroutine.
type Controller struct {
	mode     Mode
	settings config.Settings
	policy   ColorPolicy

	clock  core.Clock
	rng    *rand.Rand
	colors *ColorSelector
	logger *log.Logger
	sound  sound.Trigger
	images []*assets.Image

	resW, resH int
	tickRate   int

	state     State
	aborted   bool
	elements  []Element
	counter   *Counter
	timer     Timer
	camera    Camera
	spawnedAt int
	wave      Wave
	waves     int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source.
func WithClock(c core.Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithRand sets the random source. The controller owns it afterwards.
func WithRand(r *rand.Rand) Option {
	return func(ctl *Controller) { ctl.rng = r }
}

// WithLogger sets the logger used for spawn diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithSound sets the trigger fired on every spawn when sound is on.
func WithSound(t sound.Trigger) Option {
	return func(ctl *Controller) { ctl.sound = t }
}

// WithImages supplies custom figure images for static mode.
func WithImages(images []*assets.Image) Option {
	return func(ctl *Controller) { ctl.images = images }
}

// WithResolution sets the static-mode area in virtual pixels.
func WithResolution(w, h int) Option {
	return func(ctl *Controller) { ctl.resW, ctl.resH = w, h }
}

// WithTickRate sets how many times per second Tick is called.
func WithTickRate(rate int) Option {
	return func(ctl *Controller) { ctl.tickRate = rate }
}

// NewController initializes a session and spawns its first wave.
// Settings must already be sanitized; invalid settings panic.
func NewController(mode Mode, settings config.Settings, opts ...Option) *Controller {
	if !settings.Valid() {
		panic(fmt.Sprintf("memorize: invalid settings %+v", settings))
	}

	w, h := core.DefaultConfig().Resolution()
	c := &Controller{
		mode:     mode,
		settings: settings,
		policy:   ParsePolicy(settings.Colors),
		resW:     w,
		resH:     h,
		tickRate: core.DefaultConfig().TickRate,
		state:    StateInitializing,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = core.SystemClock{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.sound == nil {
		c.sound = sound.Nop{}
	}

	c.colors = NewColorSelector(c.rng)
	if mode == ModeDynamic {
		c.elements = SelectElements3D(c.rng, c.colors, c.policy, settings.Figures)
	} else {
		c.elements = SelectElements2D(c.rng, c.colors, c.images, c.policy, settings.Figures)
	}

	types := make([]FigureType, len(c.elements))
	for i, e := range c.elements {
		types[i] = e.Figure
	}
	c.counter = NewCounter(types...)
	c.timer = NewTimer(c.clock.Now(), settings.Time, settings.Speed)
	c.camera = NewCamera(settings.Speed, c.tickRate)
	c.spawnedAt = firstSpawnZ

	c.logger.Debug("session start", "mode", mode, "figures", types, "colors", c.policy,
		"time", settings.Time, "speed", settings.Speed)

	c.spawn(float64(c.spawnedAt))
	c.state = StateRunning
	return c
}

// Tick advances the session by one frame and returns the resulting state.
// Once the state is StateEnding further calls do nothing.
func (c *Controller) Tick() State {
	if c.state == StateEnding {
		return c.state
	}

	now := c.clock.Now()
	if !c.timer.HasTimeLeft(now) {
		c.end("time")
		return c.state
	}

	switch c.mode {
	case ModeStatic:
		if c.timer.slotExpired(now) && c.timer.BeforeCutoff(now) {
			c.timer.Interval = c.timer.Interval.Add(c.timer.Wave)
			c.spawn(0)
		}
	case ModeDynamic:
		z := c.camera.Advance()
		if z < c.spawnedAt-waveDepth && c.timer.BeforeCutoff(now) {
			c.spawn(float64(z))
			c.spawnedAt = z
		}
	}
	return c.state
}

// Abort ends the session early. The counter gathered so far stays valid.
func (c *Controller) Abort() {
	if c.state == StateEnding {
		return
	}
	c.aborted = true
	c.end("abort")
}

func (c *Controller) end(reason string) {
	c.state = StateEnding
	c.logger.Debug("session end", "reason", reason, "waves", c.waves, "shown", c.counter.Total())
}

// spawn replaces the current wave with a new one of a random element.
func (c *Controller) spawn(positionZ float64) {
	el := c.elements[c.rng.Intn(len(c.elements))]

	var w Wave
	if c.mode == ModeDynamic {
		mode := DrawOutline
		if c.settings.Flame {
			mode = DrawFlame
		}
		w = NewWave3D(c.rng, c.colors, el.Figure, el.Color, positionZ, mode)
	} else {
		w = NewWave2D(c.rng, c.colors, el.Figure, el.Color, c.resW, c.resH)
	}

	c.wave = w
	c.waves++
	c.counter.Add(el.Figure, w.Len())
	if c.settings.SoundOn() {
		c.sound.Play()
	}

	c.logger.Debug("wave", "n", c.waves, "figure", el.Figure, "count", w.Len(), "z", positionZ)
}

// Mode returns the session mode.
func (c *Controller) Mode() Mode { return c.mode }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Aborted reports whether the session was stopped by the player.
func (c *Controller) Aborted() bool { return c.aborted }

// HasTimeLeft reports whether the session should keep running.
func (c *Controller) HasTimeLeft() bool {
	return c.state != StateEnding && c.timer.HasTimeLeft(c.clock.Now())
}

// Remaining returns the unspent time budget.
func (c *Controller) Remaining() time.Duration {
	return c.timer.Remaining(c.clock.Now())
}

// Timer returns a copy of the session timer.
func (c *Controller) Timer() Timer { return c.timer }

// Camera returns a copy of the dynamic-mode camera.
func (c *Controller) Camera() Camera { return c.camera }

// Wave returns the wave currently on screen.
func (c *Controller) Wave() Wave { return c.wave }

// Waves returns how many waves were spawned so far.
func (c *Controller) Waves() int { return c.waves }

// Elements returns the figures taking part in the session.
func (c *Controller) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Counter returns a snapshot of the ground-truth tally.
func (c *Controller) Counter() *Counter { return c.counter.Clone() }

// Scorecard hands the tally over to a new scorecard for the player's guesses.
func (c *Controller) Scorecard() *Scorecard {
	return NewScorecard(c.counter.Clone())
}

// Draw renders the current wave.
func (c *Controller) Draw(r Renderer) {
	if c.wave != nil {
		c.wave.Draw(r)
	}
}

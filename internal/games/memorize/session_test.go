package memorize

import (
	"image"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/config"
)

func TestTimerScenario(t *testing.T) {
	start := newFakeClock().Now()
	tm := NewTimer(start, 30, 2)

	if tm.Wave != 7*time.Second {
		t.Errorf("wave = %v, expected 7s", tm.Wave)
	}
	if tm.Last != 26500*time.Millisecond {
		t.Errorf("cutoff = %v, expected 26.5s", tm.Last)
	}
	if !tm.HasTimeLeft(start.Add(29 * time.Second)) {
		t.Error("time should be left at 29s")
	}
	if tm.HasTimeLeft(start.Add(30 * time.Second)) {
		t.Error("no time should be left at 30s")
	}
}

func TestCameraStep(t *testing.T) {
	tests := []struct {
		speed, rate int
		expected    float64
	}{
		{2, 60, 0.4},
		{4, 60, 0.8},
		{2, 30, 0.8},
		{1, 0, 0.2},
	}
	for _, tt := range tests {
		c := NewCamera(tt.speed, tt.rate)
		if diff := c.Step() - tt.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("NewCamera(%d, %d).Step() = %v, expected %v", tt.speed, tt.rate, c.Step(), tt.expected)
		}
	}
}

func newTestController(mode Mode, s config.Settings, clock *fakeClock, seed int64, opts ...Option) *Controller {
	opts = append([]Option{
		WithClock(clock),
		WithRand(seeded(seed)),
		WithResolution(1200, 900),
	}, opts...)
	return NewController(mode, s, opts...)
}

func TestControllerInitialization(t *testing.T) {
	for _, mode := range []Mode{ModeStatic, ModeDynamic} {
		t.Run(mode.String(), func(t *testing.T) {
			c := newTestController(mode, testSettings(3, 30, 2, "Medium"), newFakeClock(), 1)

			if c.State() != StateRunning {
				t.Errorf("state = %v, expected running", c.State())
			}
			if len(c.Elements()) != 3 {
				t.Fatalf("%d elements, expected 3", len(c.Elements()))
			}
			seen := make(map[FigureType]bool)
			for _, e := range c.Elements() {
				if seen[e.Figure] {
					t.Errorf("figure %q selected twice", e.Figure)
				}
				seen[e.Figure] = true
				if _, ok := LookupSolid(e.Figure); ok != (mode == ModeDynamic) {
					t.Errorf("figure %q does not belong to %s mode", e.Figure, mode)
				}
			}
			if c.Wave() == nil || c.Waves() != 1 {
				t.Fatal("first wave should be spawned during initialization")
			}
			if got := c.Counter().Get(c.Wave().Figure()); got != c.Wave().Len() {
				t.Errorf("counter = %d, expected first wave length %d", got, c.Wave().Len())
			}
		})
	}
}

func TestControllerInvalidSettingsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid settings")
		}
	}()
	NewController(ModeStatic, config.Settings{Figures: 9}, WithClock(newFakeClock()))
}

// runSession ticks a controller at 60 fps until it ends and checks the
// counter against every wave it saw.
func runSession(t *testing.T, c *Controller, clock *fakeClock) (waves []Wave, replacedAt []time.Duration) {
	t.Helper()
	start := clock.Now()

	expected := make(map[FigureType]int)
	record := func(w Wave) {
		waves = append(waves, w)
		expected[w.Figure()] += w.Len()
	}
	record(c.Wave())

	prevCounts := c.Counter()
	for i := 0; c.Tick() != StateEnding; i++ {
		if i > 100000 {
			t.Fatal("session never ended")
		}
		if c.Wave() != waves[len(waves)-1] {
			record(c.Wave())
			replacedAt = append(replacedAt, clock.Now().Sub(start))
		}

		cur := c.Counter()
		for _, ft := range cur.Types() {
			if cur.Get(ft) < prevCounts.Get(ft) {
				t.Fatalf("counter for %q decreased", ft)
			}
		}
		prevCounts = cur
		clock.Advance(time.Second / 60)
	}

	final := c.Counter()
	for _, ft := range final.Types() {
		if final.Get(ft) != expected[ft] {
			t.Errorf("counter[%q] = %d, sum of waves = %d", ft, final.Get(ft), expected[ft])
		}
	}
	if c.Waves() != len(waves) {
		t.Errorf("Waves() = %d, observed %d", c.Waves(), len(waves))
	}
	return waves, replacedAt
}

func TestStaticSession(t *testing.T) {
	clock := newFakeClock()
	start := clock.Now()
	c := newTestController(ModeStatic, testSettings(3, 30, 2, "Hard"), clock, 42)

	waves, replacedAt := runSession(t, c, clock)

	// Slots of 7s: replacements just after 7, 14 and 21 seconds; the slot
	// ending at 28s falls past the 26.5s cutoff.
	if len(waves) != 4 {
		t.Errorf("%d waves, expected 4", len(waves))
	}
	for _, at := range replacedAt {
		if at >= c.Timer().Last {
			t.Errorf("wave replaced at %v, after the cutoff", at)
		}
	}

	ended := clock.Now().Sub(start)
	if ended < 30*time.Second || ended >= 30*time.Second+time.Second/60 {
		t.Errorf("session ended at %v, expected the first frame at or after 30s", ended)
	}
	if c.HasTimeLeft() {
		t.Error("HasTimeLeft after ending")
	}
}

func TestDynamicSession(t *testing.T) {
	clock := newFakeClock()
	c := newTestController(ModeDynamic, testSettings(4, 60, 4, "Easy"), clock, 7, WithTickRate(60))

	waves, replacedAt := runSession(t, c, clock)

	// 0.8 units per frame: the first wave at -10 lasts until the camera
	// passes -110, about 2.3s; later waves last 100 units, about 2.1s.
	if len(waves) < 20 {
		t.Errorf("only %d waves in a 60s session", len(waves))
	}
	for _, at := range replacedAt {
		if at >= c.Timer().Last {
			t.Errorf("wave replaced at %v, after the cutoff", at)
		}
	}
	if c.Camera().Z >= -100 {
		t.Errorf("camera did not move: z = %v", c.Camera().Z)
	}
}

func TestLastWaveStability(t *testing.T) {
	for _, mode := range []Mode{ModeStatic, ModeDynamic} {
		t.Run(mode.String(), func(t *testing.T) {
			clock := newFakeClock()
			start := clock.Now()
			c := newTestController(mode, testSettings(2, 20, 3, "Medium"), clock, 11)

			var last Wave
			for c.Tick() != StateEnding {
				elapsed := clock.Now().Sub(start)
				if elapsed >= c.Timer().Last {
					if last == nil {
						last = c.Wave()
					} else if c.Wave() != last {
						t.Fatalf("wave replaced at %v after cutoff %v", elapsed, c.Timer().Last)
					}
				}
				clock.Advance(10 * time.Millisecond)
			}
		})
	}
}

func TestTerminationRegardlessOfWave(t *testing.T) {
	clock := newFakeClock()
	c := newTestController(ModeStatic, testSettings(2, 5, 1, "Easy"), clock, 3)

	// With speed 1 the 14s wave slot outlasts the 5s session.
	clock.Advance(5*time.Second - time.Nanosecond)
	if c.Tick() != StateRunning {
		t.Fatal("session ended early")
	}
	clock.Advance(time.Nanosecond)
	if c.Tick() != StateEnding {
		t.Fatal("session should end exactly at the budget")
	}
	if c.Waves() != 1 {
		t.Errorf("waves = %d, expected 1", c.Waves())
	}

	clock.Advance(time.Minute)
	if c.Tick() != StateEnding {
		t.Error("ending is terminal")
	}
}

func TestAbortKeepsCounter(t *testing.T) {
	clock := newFakeClock()
	c := newTestController(ModeDynamic, testSettings(3, 60, 2, "Hard"), clock, 5)
	before := c.Counter().Total()

	c.Abort()

	if c.State() != StateEnding || !c.Aborted() {
		t.Fatal("abort should end the session")
	}
	if c.Tick() != StateEnding {
		t.Error("tick after abort should stay ending")
	}
	if got := c.Scorecard().Results(); len(got) != 3 {
		t.Fatalf("scorecard has %d rows, expected 3", len(got))
	}
	if c.Counter().Total() != before || before == 0 {
		t.Errorf("counter total %d, expected %d", c.Counter().Total(), before)
	}
}

func TestSoundOnSpawn(t *testing.T) {
	for _, tt := range []struct {
		sound    string
		expectOn bool
	}{{"On", true}, {"Off", false}} {
		t.Run(tt.sound, func(t *testing.T) {
			clock := newFakeClock()
			snd := &countingSound{}
			s := testSettings(2, 30, 2, "Medium")
			s.Sound = tt.sound

			c := newTestController(ModeStatic, s, clock, 1, WithSound(snd))
			runSession(t, c, clock)

			if tt.expectOn && snd.plays != c.Waves() {
				t.Errorf("played %d times for %d waves", snd.plays, c.Waves())
			}
			if !tt.expectOn && snd.plays != 0 {
				t.Errorf("played %d times with sound off", snd.plays)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []int {
		clock := newFakeClock()
		c := newTestController(ModeStatic, testSettings(4, 30, 4, "Hard"), clock, 12345)
		for c.Tick() != StateEnding {
			clock.Advance(time.Second / 30)
		}
		counts := []int{}
		for _, ft := range c.Counter().Types() {
			counts = append(counts, c.Counter().Get(ft))
		}
		return counts
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("different figure sets: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed gave different counts: %v vs %v", a, b)
		}
	}
}

func testImages(names ...string) []*assets.Image {
	out := make([]*assets.Image, len(names))
	for i, n := range names {
		out[i] = &assets.Image{Name: n, Pixels: image.NewRGBA(image.Rect(0, 0, 10, 10))}
	}
	return out
}

func TestSelectElements2D(t *testing.T) {
	t.Run("fewer images than slots", func(t *testing.T) {
		rng := seeded(1)
		els := SelectElements2D(rng, NewColorSelector(rng), testImages("cat", "square"), PolicyEasy, 4)
		if len(els) != 4 {
			t.Fatalf("%d elements, expected 4", len(els))
		}
		if els[0].Color.Kind != ColorImage || els[1].Color.Kind != ColorImage {
			t.Error("every image should be used first")
		}
		seen := make(map[FigureType]bool)
		for _, e := range els {
			if seen[e.Figure] {
				t.Errorf("figure %q used twice", e.Figure)
			}
			seen[e.Figure] = true
		}
		for _, e := range els[2:] {
			if e.Color.Kind != ColorFixed {
				t.Errorf("geometric filler %q should follow the easy policy", e.Figure)
			}
		}
	})

	t.Run("enough images", func(t *testing.T) {
		rng := seeded(2)
		els := SelectElements2D(rng, NewColorSelector(rng), testImages("a", "b", "c", "d", "e"), PolicyHard, 3)
		if len(els) != 3 {
			t.Fatalf("%d elements, expected 3", len(els))
		}
		for _, e := range els {
			if e.Color.Kind != ColorImage {
				t.Errorf("%q is not an image", e.Figure)
			}
		}
	})

	t.Run("duplicate image names", func(t *testing.T) {
		tests := []struct {
			name   string
			images []string
			amount int
		}{
			{"sampled", []string{"cat", "cat", "dog"}, 2},
			{"with shapes", []string{"cat", "cat", "dog"}, 3},
			{"all the same", []string{"cat", "cat"}, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rng := seeded(4)
				els := SelectElements2D(rng, NewColorSelector(rng), testImages(tt.images...), PolicyEasy, tt.amount)
				if len(els) != tt.amount {
					t.Fatalf("%d elements, expected %d", len(els), tt.amount)
				}
				seen := make(map[FigureType]bool)
				for _, e := range els {
					if seen[e.Figure] {
						t.Errorf("figure %q used twice", e.Figure)
					}
					seen[e.Figure] = true
				}
			})
		}
	})

	t.Run("no images", func(t *testing.T) {
		rng := seeded(3)
		els := SelectElements2D(rng, NewColorSelector(rng), nil, PolicyMedium, 2)
		for _, e := range els {
			if _, ok := LookupShape(e.Figure); !ok || e.Color.Kind != ColorPerWave {
				t.Errorf("unexpected element %+v", e)
			}
		}
	})
}

func TestStaticSessionWithImages(t *testing.T) {
	clock := newFakeClock()
	c := newTestController(ModeStatic, testSettings(2, 10, 4, "Easy"), clock, 4, WithImages(testImages("cat", "dog")))

	waves, _ := runSession(t, c, clock)
	for _, w := range waves {
		if w.Figure() != "cat" && w.Figure() != "dog" {
			t.Errorf("wave of %q, expected only images", w.Figure())
		}
	}
}

package memorize

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-memorize/internal/core"
)

func TestNextNeverRepeats(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		sel := NewColorSelector(seeded(seed))
		prev := sel.Held()
		for i := 0; i < 200; i++ {
			sel.Next()
			if sel.Held() == prev {
				t.Fatalf("seed %d call %d: %s returned twice in a row", seed, i, prev)
			}
			prev = sel.Held()
		}
	}
}

func TestFirstColorIsNotGrey(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		sel := NewColorSelector(seeded(seed))
		sel.Next()
		if sel.Held() == "Grey" {
			t.Fatalf("seed %d: first pick was Grey", seed)
		}
	}
}

func TestNextUsesWholeCatalog(t *testing.T) {
	sel := NewColorSelector(seeded(7))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		sel.Next()
		seen[sel.Held()] = true
	}
	if len(seen) != len(catalog) {
		t.Errorf("saw %d colors, expected %d", len(seen), len(catalog))
	}
}

func TestPickEasyDistinct(t *testing.T) {
	members := make(map[core.Color]bool)
	for _, c := range catalog {
		members[Convert(c.RGB)] = true
	}

	for k := 1; k <= len(catalog); k++ {
		for seed := int64(1); seed <= 10; seed++ {
			specs := NewColorSelector(seeded(seed)).Pick(PolicyEasy, k)
			if len(specs) != k {
				t.Fatalf("Pick(Easy, %d) returned %d specs", k, len(specs))
			}
			seen := make(map[core.Color]bool)
			for _, s := range specs {
				if s.Kind != ColorFixed {
					t.Fatalf("easy spec kind = %v", s.Kind)
				}
				c := Convert(s.RGB)
				if seen[c] {
					t.Fatalf("Pick(Easy, %d) repeated %s", k, c.Hex())
				}
				if !members[c] {
					t.Fatalf("Pick(Easy, %d) returned %s outside the catalog", k, c.Hex())
				}
				seen[c] = true
			}
		}
	}
}

func TestPickEasyThree(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		specs := NewColorSelector(seeded(seed)).Pick(PolicyEasy, 3)
		if len(specs) != 3 {
			t.Fatalf("expected 3 colors, got %d", len(specs))
		}
		if specs[0].RGB == specs[1].RGB || specs[0].RGB == specs[2].RGB || specs[1].RGB == specs[2].RGB {
			t.Fatalf("seed %d: colors not distinct: %v", seed, specs)
		}
	}
}

func TestPickEasyTooManyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for 8 distinct colors")
		}
	}()
	NewColorSelector(seeded(1)).Pick(PolicyEasy, 8)
}

func TestPickSentinels(t *testing.T) {
	tests := []struct {
		policy ColorPolicy
		kind   ColorKind
	}{
		{PolicyMedium, ColorPerWave},
		{PolicyHard, ColorPerInstance},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			sel := NewColorSelector(seeded(1))
			for _, s := range sel.Pick(tt.policy, 4) {
				if s.Kind != tt.kind {
					t.Errorf("kind = %v, expected %v", s.Kind, tt.kind)
				}
			}
			if sel.Held() != "Grey" {
				t.Error("sentinel policies should not consume colors")
			}
		})
	}
}

func TestConvertTruncates(t *testing.T) {
	tests := []struct {
		name     string
		rgb      NamedColor
		expected core.Color
	}{
		{"orange", catalog[1], core.RGB(255, 127, 0)},
		{"red", catalog[2], core.RGB(204, 0, 0)},
		{"grey", catalog[6], core.RGB(127, 127, 127)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.rgb.RGB); got != tt.expected {
				t.Errorf("Convert(%v) = %s, expected %s", tt.rgb.RGB, got.Hex(), tt.expected.Hex())
			}
		})
	}
}

func TestConvertClamps(t *testing.T) {
	tests := []struct {
		name     string
		rgb      colorful.Color
		expected core.Color
	}{
		{"above one", colorful.Color{R: 1.5, G: 1, B: 0.5}, core.RGB(255, 255, 127)},
		{"below zero", colorful.Color{R: -0.2, G: 0, B: 1}, core.RGB(0, 0, 255)},
		{"in range", colorful.Color{R: 0.8, G: 0.5, B: 0}, core.RGB(204, 127, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.rgb); got != tt.expected {
				t.Errorf("Convert(%v) = %s, expected %s", tt.rgb, got.Hex(), tt.expected.Hex())
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, name := range []string{"Easy", "Medium", "Hard"} {
		if got := ParsePolicy(name).String(); got != name {
			t.Errorf("ParsePolicy(%q).String() = %q", name, got)
		}
	}
	if ParsePolicy("bogus") != PolicyMedium {
		t.Error("unknown policy should map to Medium")
	}
}

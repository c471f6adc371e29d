package memorize

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

// ColorPolicy decides how figures are colored during a session.
type ColorPolicy int

const (
	PolicyEasy   ColorPolicy = iota // One fixed color per figure type
	PolicyMedium                    // One random color per wave
	PolicyHard                      // One random color per instance
)

// ParsePolicy maps a settings value to a policy. Unknown names are treated
// as Medium.
func ParsePolicy(s string) ColorPolicy {
	switch s {
	case "Easy":
		return PolicyEasy
	case "Hard":
		return PolicyHard
	default:
		return PolicyMedium
	}
}

// String returns the settings name of the policy.
func (p ColorPolicy) String() string {
	switch p {
	case PolicyEasy:
		return "Easy"
	case PolicyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

// NamedColor is a catalog entry. RGB components are in the 0-1 range.
type NamedColor struct {
	Name string
	RGB  colorful.Color
}

var catalog = []NamedColor{
	{"Green", colorful.Color{R: 0, G: 1, B: 0}},
	{"Orange", colorful.Color{R: 1, G: 0.5, B: 0}},
	{"Red", colorful.Color{R: 0.8, G: 0, B: 0}},
	{"Blue", colorful.Color{R: 0, G: 0, B: 1}},
	{"Yellow", colorful.Color{R: 1, G: 1, B: 0}},
	{"Violet", colorful.Color{R: 1, G: 0, B: 1}},
	{"Grey", colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
}

// Flame colors used by the filled 3D draw mode.
var (
	FlameDark  = colorful.Color{R: 0.5, G: 0, B: 0}
	FlameLight = colorful.Color{R: 1, G: 0.5, B: 0}
)

// ColorSelector hands out colors that never repeat back to back.
// It is not safe for concurrent use; every session owns one.
type ColorSelector struct {
	rng  *rand.Rand
	held string
}

// NewColorSelector creates a selector whose previous pick is Grey, so the
// very first color is never Grey either.
func NewColorSelector(rng *rand.Rand) *ColorSelector {
	return &ColorSelector{rng: rng, held: "Grey"}
}

// Held returns the name of the most recently returned color.
func (s *ColorSelector) Held() string {
	return s.held
}

// Next returns a random catalog color different from the previous one.
func (s *ColorSelector) Next() colorful.Color {
	pool := make([]NamedColor, 0, len(catalog)-1)
	for _, c := range catalog {
		if c.Name != s.held {
			pool = append(pool, c)
		}
	}
	c := pool[s.rng.Intn(len(pool))]
	s.held = c.Name
	return c.RGB
}

// Pick returns the color specs for count figure types under policy.
// Easy yields count distinct fixed colors. Medium and Hard yield the
// matching sentinel for every slot. Asking Easy for more colors than the
// catalog holds panics.
func (s *ColorSelector) Pick(policy ColorPolicy, count int) []ColorSpec {
	specs := make([]ColorSpec, count)
	switch policy {
	case PolicyEasy:
		if count > len(catalog) {
			panic(fmt.Sprintf("memorize: %d distinct colors requested, catalog has %d", count, len(catalog)))
		}
		for i, idx := range s.rng.Perm(len(catalog))[:count] {
			specs[i] = FixedColor(catalog[idx].RGB)
		}
	case PolicyMedium:
		for i := range specs {
			specs[i] = ColorSpec{Kind: ColorPerWave}
		}
	default:
		for i := range specs {
			specs[i] = ColorSpec{Kind: ColorPerInstance}
		}
	}
	return specs
}

// Convert maps a 0-1 color to a 0-255 screen color. Out-of-range components
// are clamped, then each is truncated.
func Convert(c colorful.Color) core.Color {
	c = c.Clamped()
	return core.RGB(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(int(v * 255))
}

// ColorKind tags the variant held by a ColorSpec.
type ColorKind int

const (
	ColorFixed ColorKind = iota
	ColorPerWave
	ColorPerInstance
	ColorImage
)

// ColorSpec describes how a figure type is colored: a fixed color, one of
// the two random sentinels, or an image that replaces the figure.
type ColorSpec struct {
	Kind  ColorKind
	RGB   colorful.Color
	Image *assets.Image
}

// FixedColor returns a spec holding a single color.
func FixedColor(c colorful.Color) ColorSpec {
	return ColorSpec{Kind: ColorFixed, RGB: c}
}

// ImageColor returns a spec for an image figure.
func ImageColor(img *assets.Image) ColorSpec {
	return ColorSpec{Kind: ColorImage, Image: img}
}

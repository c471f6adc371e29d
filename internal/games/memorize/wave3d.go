package memorize

import (
	"math/rand"

	"github.com/vovakirdan/tui-memorize/internal/core"
)

// DrawMode selects how a solid is drawn.
type DrawMode int

const (
	DrawOutline DrawMode = iota // Edges in one color
	DrawFlame                   // Filled surfaces flickering between two tones
)

// Instance3D is one placed solid.
type Instance3D struct {
	Offset   Vec3
	Vertices []Vec3
	Mode     DrawMode
	Color    core.Color
}

// Wave3D is a dynamic-mode wave.
type Wave3D struct {
	figure    FigureType
	solid     *Solid
	instances []Instance3D
	flicker   *rand.Rand
}

func waveCount3D(rng *rand.Rand) int {
	return 2 + rng.Intn(5)
}

// randomOffset scatters a solid around the camera axis, 60 to 90 units ahead
// of positionZ.
func randomOffset(rng *rand.Rand, positionZ float64) Vec3 {
	sign := func() float64 {
		if rng.Intn(2) == 0 {
			return -1
		}
		return 1
	}
	x := sign() * float64(2+rng.Intn(8))
	y := sign() * float64(2+rng.Intn(8))
	lo := int(positionZ - 90)
	hi := int(positionZ - 60)
	z := float64(lo + rng.Intn(hi-lo))
	return Vec3{X: x, Y: y, Z: z}
}

// NewWave3D builds a wave of solids anchored ahead of positionZ.
func NewWave3D(rng *rand.Rand, sel *ColorSelector, figure FigureType, spec ColorSpec, positionZ float64, mode DrawMode) *Wave3D {
	spec = resolveWaveColor(spec, sel)
	solid := mustSolid(figure)
	n := waveCount3D(rng)

	wave := &Wave3D{
		figure:    figure,
		solid:     solid,
		instances: make([]Instance3D, 0, n),
		flicker:   rand.New(rand.NewSource(rng.Int63())),
	}
	for i := 0; i < n; i++ {
		inst := Instance3D{Mode: mode}
		if mode == DrawOutline {
			inst.Color = instanceColor(spec, sel)
		}
		inst.Offset = randomOffset(rng, positionZ)
		inst.Vertices = make([]Vec3, len(solid.Vertices))
		for j, v := range solid.Vertices {
			inst.Vertices[j] = v.Add(inst.Offset)
		}
		wave.instances = append(wave.instances, inst)
	}
	return wave
}

// Figure returns the figure type of the wave.
func (w *Wave3D) Figure() FigureType { return w.figure }

// Len returns the number of instances.
func (w *Wave3D) Len() int { return len(w.instances) }

// Instances returns the placed solids.
func (w *Wave3D) Instances() []Instance3D { return w.instances }

// Draw sends every instance to the renderer.
func (w *Wave3D) Draw(r Renderer) {
	dark, light := Convert(FlameDark), Convert(FlameLight)
	flame := func() core.Color {
		if w.flicker.Intn(2) == 0 {
			return dark
		}
		return light
	}

	for _, inst := range w.instances {
		if inst.Mode == DrawFlame {
			r.DrawFilled(inst.Vertices, w.solid.Surfaces, flame)
			continue
		}
		c := inst.Color
		r.DrawOutline(inst.Vertices, w.solid.Edges, func() core.Color { return c })
	}
}

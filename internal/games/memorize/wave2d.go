package memorize

import (
	"math/rand"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

// Relative odds of a 2D wave holding 1..9 figures.
var waveWeights = []float64{0.03, 0.10, 0.20, 0.20, 0.20, 0.15, 0.10, 0.01, 0.01}

// GridMidpoints returns the centers of a 3x3 grid over a w by h area,
// column by column.
func GridMidpoints(w, h int) []Point {
	xs := []int{w / 6, w / 2, w - w/6}
	ys := []int{h / 6, h / 2, h - h/6}

	out := make([]Point, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// FigureSize returns the half-extent of 2D figures for a resolution.
func FigureSize(w, h int) int {
	return min(w/3, h/3) / 4
}

func waveCount2D(rng *rand.Rand) int {
	total := 0.0
	for _, w := range waveWeights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range waveWeights {
		if r < w {
			return i + 1
		}
		r -= w
	}
	return len(waveWeights)
}

// Instance2D is one placed 2D figure or image.
type Instance2D struct {
	Mid    Point
	Size   int
	Color  core.Color
	Image  *assets.Image
	Points []Point // Polygon corners, or the image anchor
}

// Wave2D is a static-mode wave.
type Wave2D struct {
	figure    FigureType
	instances []Instance2D
}

// NewWave2D builds a wave of figure placed on distinct grid cells of a w by
// h area. Images are anchored so they are centered on their cell.
func NewWave2D(rng *rand.Rand, sel *ColorSelector, figure FigureType, spec ColorSpec, w, h int) *Wave2D {
	spec = resolveWaveColor(spec, sel)
	mids := GridMidpoints(w, h)
	size := FigureSize(w, h)
	n := waveCount2D(rng)

	var shape ShapeFunc
	if spec.Kind != ColorImage {
		shape = mustShape(figure)
	}

	wave := &Wave2D{figure: figure, instances: make([]Instance2D, 0, n)}
	for _, idx := range rng.Perm(len(mids))[:n] {
		mid := mids[idx]
		inst := Instance2D{Mid: mid, Size: size}

		if spec.Kind == ColorImage {
			iw, ih := spec.Image.Size()
			inst.Image = spec.Image
			inst.Points = []Point{{X: mid.X - iw/2, Y: mid.Y - ih/2}}
		} else {
			inst.Color = instanceColor(spec, sel)
			inst.Points = shape(mid, size)
		}
		wave.instances = append(wave.instances, inst)
	}
	return wave
}

// Figure returns the figure type of the wave.
func (w *Wave2D) Figure() FigureType { return w.figure }

// Len returns the number of instances.
func (w *Wave2D) Len() int { return len(w.instances) }

// Instances returns the placed figures.
func (w *Wave2D) Instances() []Instance2D { return w.instances }

// Draw sends every instance to the renderer.
func (w *Wave2D) Draw(r Renderer) {
	for _, inst := range w.instances {
		if inst.Image != nil {
			r.Blit(inst.Image, inst.Points[0])
			continue
		}
		r.DrawPolygon(inst.Color, inst.Points)
	}
}

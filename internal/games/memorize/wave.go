package memorize

import (
	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

// Wave is a batch of figures of one type spawned together. A wave never
// changes after it is built; the controller replaces it wholesale.
type Wave interface {
	Figure() FigureType
	Len() int
	Draw(r Renderer)
}

// ColorFunc yields the color of the next vertex being drawn.
type ColorFunc func() core.Color

// Renderer receives the geometry of a wave. 2D coordinates are in virtual
// pixels; 3D vertices are in world space.
type Renderer interface {
	DrawPolygon(c core.Color, points []Point)
	Blit(img *assets.Image, pos Point)
	DrawOutline(vertices []Vec3, edges [][2]int, color ColorFunc)
	DrawFilled(vertices []Vec3, surfaces [][]int, color ColorFunc)
}

// resolveWaveColor turns the per-wave sentinel into one fixed color.
// Other specs pass through.
func resolveWaveColor(spec ColorSpec, sel *ColorSelector) ColorSpec {
	if spec.Kind == ColorPerWave {
		return FixedColor(sel.Next())
	}
	return spec
}

// instanceColor resolves the color of a single instance.
func instanceColor(spec ColorSpec, sel *ColorSelector) core.Color {
	if spec.Kind == ColorPerInstance {
		return Convert(sel.Next())
	}
	return Convert(spec.RGB)
}

package memorize

import (
	"math"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

// Perspective of the dynamic-mode camera.
const (
	fovY      = 45.0
	nearPlane = 0.1
	farPlane  = 50.0
)

const fillRune = '█'

// ScreenRenderer rasterizes wave geometry onto a character screen. Each
// cell covers CellWidthPx by CellHeightPx virtual pixels and is lit when
// its center falls inside a shape.
type ScreenRenderer struct {
	screen  *core.Screen
	cameraZ float64
	w, h    float64 // Virtual resolution
	focal   float64
}

// NewScreenRenderer creates a renderer for dst viewed from cameraZ.
func NewScreenRenderer(dst *core.Screen, cameraZ float64) *ScreenRenderer {
	return &ScreenRenderer{
		screen:  dst,
		cameraZ: cameraZ,
		w:       float64(dst.Width() * core.CellWidthPx),
		h:       float64(dst.Height() * core.CellHeightPx),
		focal:   1 / math.Tan(fovY/2*math.Pi/180),
	}
}

type fpoint struct {
	X, Y float64
}

// DrawPolygon fills a polygon given in virtual pixels.
func (r *ScreenRenderer) DrawPolygon(c core.Color, points []Point) {
	pts := make([]fpoint, len(points))
	for i, p := range points {
		pts[i] = fpoint{X: float64(p.X), Y: float64(p.Y)}
	}
	r.fill(pts, func(float64, float64) core.Color { return c })
}

// Blit paints an image with its top-left corner at pos. Each cell takes the
// color of the image pixel under its center; transparent pixels are skipped.
func (r *ScreenRenderer) Blit(img *assets.Image, pos Point) {
	iw, ih := img.Size()
	b := img.Pixels.Bounds()

	x0, y0 := cellOf(float64(pos.X), float64(pos.Y))
	x1, y1 := cellOf(float64(pos.X+iw), float64(pos.Y+ih))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px, py := cellCenter(cx, cy)
			ix, iy := int(px)-pos.X, int(py)-pos.Y
			if ix < 0 || iy < 0 || ix >= iw || iy >= ih {
				continue
			}
			cr, cg, cb, ca := img.Pixels.At(b.Min.X+ix, b.Min.Y+iy).RGBA()
			if ca < 0x8000 {
				continue
			}
			r.screen.SetColored(cx, cy, fillRune, core.RGB(uint8(cr>>8), uint8(cg>>8), uint8(cb>>8)))
		}
	}
}

// DrawOutline draws the edges of a solid. Edges with an end behind the
// camera or both ends beyond the far plane are skipped.
func (r *ScreenRenderer) DrawOutline(vertices []Vec3, edges [][2]int, color ColorFunc) {
	for _, e := range edges {
		a, b := vertices[e[0]], vertices[e[1]]
		pa, da, okA := r.project(a)
		pb, db, okB := r.project(b)
		if !okA || !okB || (da > farPlane && db > farPlane) {
			continue
		}
		ax, ay := cellOf(pa.X, pa.Y)
		bx, by := cellOf(pb.X, pb.Y)
		if !r.nearScreen(ax, ay) || !r.nearScreen(bx, by) {
			continue
		}
		r.screen.DrawLine(ax, ay, bx, by, depthRune(min(da, db)), color())
	}
}

// DrawFilled fills the surfaces of a solid. Surfaces with more than four
// corners are drawn as consecutive quads. Every cell takes the color of the
// nearest corner, and color is called once per corner.
func (r *ScreenRenderer) DrawFilled(vertices []Vec3, surfaces [][]int, color ColorFunc) {
	for _, surface := range surfaces {
		for start := 0; start < len(surface); start += 4 {
			quad := surface[start:min(start+4, len(surface))]
			if len(quad) < 3 {
				continue
			}

			pts := make([]fpoint, 0, len(quad))
			cols := make([]core.Color, 0, len(quad))
			visible := true
			for _, idx := range quad {
				p, d, ok := r.project(vertices[idx])
				if !ok || d > farPlane {
					visible = false
					break
				}
				pts = append(pts, p)
				cols = append(cols, color())
			}
			if !visible {
				continue
			}

			r.fill(pts, func(x, y float64) core.Color {
				best, bestD := 0, math.Inf(1)
				for i, p := range pts {
					if d := (p.X-x)*(p.X-x) + (p.Y-y)*(p.Y-y); d < bestD {
						best, bestD = i, d
					}
				}
				return cols[best]
			})
		}
	}
}

// project maps a world point to virtual pixels. It returns the depth in
// front of the camera and false when the point is closer than the near plane.
func (r *ScreenRenderer) project(v Vec3) (fpoint, float64, bool) {
	d := r.cameraZ - v.Z
	if d < nearPlane {
		return fpoint{}, d, false
	}
	aspect := r.w / r.h
	nx := r.focal / aspect * v.X / d
	ny := r.focal * v.Y / d
	return fpoint{
		X: (nx + 1) / 2 * r.w,
		Y: (1 - ny) / 2 * r.h,
	}, d, true
}

// fill lights every cell whose center lies inside the polygon (even-odd
// rule), coloring it with colorAt.
func (r *ScreenRenderer) fill(pts []fpoint, colorAt func(x, y float64) core.Color) {
	if len(pts) < 3 {
		return
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0, y0 := cellOf(minX, minY)
	x1, y1 := cellOf(maxX, maxY)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.screen.Width()-1), min(y1, r.screen.Height()-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px, py := cellCenter(cx, cy)
			if insidePolygon(pts, px, py) {
				r.screen.SetColored(cx, cy, fillRune, colorAt(px, py))
			}
		}
	}
}

// nearScreen bounds line endpoints so points just past the near plane do
// not produce huge lines.
func (r *ScreenRenderer) nearScreen(cx, cy int) bool {
	w, h := r.screen.Width(), r.screen.Height()
	return cx >= -w && cx <= 2*w && cy >= -h && cy <= 2*h
}

func insidePolygon(pts []fpoint, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / core.CellWidthPx)), int(math.Floor(y / core.CellHeightPx))
}

func cellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * core.CellWidthPx, (float64(cy) + 0.5) * core.CellHeightPx
}

// depthRune picks a lighter glyph for farther lines.
func depthRune(d float64) rune {
	switch {
	case d < 15:
		return '#'
	case d < 30:
		return '+'
	default:
		return '.'
	}
}

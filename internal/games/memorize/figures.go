package memorize

import (
	"fmt"
	"sort"
)

// FigureType names a drawable figure: a 2D shape, a 3D solid or an image.
type FigureType string

// 2D shapes.
const (
	Square   FigureType = "square"
	Triangle FigureType = "triangle"
	Diamond  FigureType = "diamond"
	Octagon  FigureType = "octagon"
)

// Point is a position in virtual pixel space.
type Point struct {
	X, Y int
}

// ShapeFunc returns the polygon corners of a shape centered at mid.
type ShapeFunc func(mid Point, size int) []Point

var shapes = map[FigureType]ShapeFunc{
	Diamond:  diamondPoints,
	Square:   squarePoints,
	Triangle: trianglePoints,
	Octagon:  octagonPoints,
}

// LookupShape returns the point generator for a 2D figure.
func LookupShape(t FigureType) (ShapeFunc, bool) {
	f, ok := shapes[t]
	return f, ok
}

// Shapes returns the 2D catalog sorted by name.
func Shapes() []FigureType {
	out := make([]FigureType, 0, len(shapes))
	for t := range shapes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func mustShape(t FigureType) ShapeFunc {
	f, ok := LookupShape(t)
	if !ok {
		panic(fmt.Sprintf("memorize: unknown 2D figure %q", t))
	}
	return f
}

func offsets(mid Point, pts ...[2]int) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: mid.X + p[0], Y: mid.Y + p[1]}
	}
	return out
}

func diamondPoints(mid Point, s int) []Point {
	return offsets(mid, [2]int{0, -s}, [2]int{-s, 0}, [2]int{0, s}, [2]int{s, 0})
}

func squarePoints(mid Point, s int) []Point {
	return offsets(mid, [2]int{-s, -s}, [2]int{-s, s}, [2]int{s, s}, [2]int{s, -s})
}

func trianglePoints(mid Point, s int) []Point {
	return offsets(mid, [2]int{-s, s}, [2]int{s, s}, [2]int{0, -s})
}

func octagonPoints(mid Point, s int) []Point {
	h := s / 2
	return offsets(mid,
		[2]int{-s, h}, [2]int{-s, -h}, [2]int{-h, -s}, [2]int{h, -s},
		[2]int{s, -h}, [2]int{s, h}, [2]int{h, s}, [2]int{-h, s},
	)
}

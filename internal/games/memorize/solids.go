package memorize

import (
	"fmt"
	"sort"
)

// 3D solids.
const (
	Cube       FigureType = "Cube"
	Prism      FigureType = "Octagon"
	Octahedron FigureType = "Octahedron"
	Pyramid    FigureType = "Pyramid"
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v translated by o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Solid is the static geometry of a 3D figure. Edges index pairs of
// vertices for outlines; Surfaces index vertex lists for filled drawing.
type Solid struct {
	Name     FigureType
	Vertices []Vec3
	Edges    [][2]int
	Surfaces [][]int
}

var solids = map[FigureType]*Solid{
	Cube: {
		Name: Cube,
		Vertices: []Vec3{
			{1, -1, -1}, {1, 1, -1}, {-1, 1, -1}, {-1, -1, -1},
			{1, -1, 1}, {1, 1, 1}, {-1, -1, 1}, {-1, 1, 1},
		},
		Edges: [][2]int{
			{0, 1}, {0, 3}, {0, 4}, {2, 1}, {2, 3}, {2, 7},
			{6, 3}, {6, 4}, {6, 7}, {5, 1}, {5, 4}, {5, 7},
		},
		Surfaces: [][]int{
			{0, 1, 2, 3}, {3, 2, 7, 6}, {6, 7, 5, 4},
			{4, 5, 1, 0}, {1, 5, 7, 2}, {4, 0, 3, 6},
		},
	},
	Prism: {
		Name: Prism,
		Vertices: []Vec3{
			{-0.25, 0, -0.5}, {0.25, 0, -0.5}, {0.5, 0, -0.25}, {0.5, 0, 0.25},
			{0.25, 0, 0.5}, {-0.25, 0, 0.5}, {-0.5, 0, 0.25}, {-0.5, 0, -0.25},
			{-0.25, 1, -0.5}, {0.25, 1, -0.5}, {0.5, 1, -0.25}, {0.5, 1, 0.25},
			{0.25, 1, 0.5}, {-0.25, 1, 0.5}, {-0.5, 1, 0.25}, {-0.5, 1, -0.25},
		},
		Edges: [][2]int{
			{0, 7}, {0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7},
			{8, 15}, {8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15},
			{0, 8}, {1, 9}, {2, 10}, {3, 11}, {4, 12}, {5, 13}, {6, 14}, {7, 15},
		},
		Surfaces: [][]int{
			{9, 8, 11, 10, 12, 15, 8, 11, 13, 12, 15, 14},
			{1, 0, 3, 2, 4, 7, 0, 3, 5, 4, 7, 6},
			{0, 1, 9, 8}, {1, 2, 10, 9}, {2, 3, 11, 10}, {3, 4, 12, 11},
			{4, 5, 13, 12}, {5, 6, 14, 13}, {6, 7, 15, 14}, {7, 15, 8, 0},
		},
	},
	Octahedron: {
		Name: Octahedron,
		Vertices: []Vec3{
			{0, 1, 0}, {-0.5, 0, -0.5}, {0.5, 0, -0.5},
			{0.5, 0, 0.5}, {-0.5, 0, 0.5}, {0, -1, 0},
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {2, 3},
			{3, 4}, {4, 1}, {5, 1}, {5, 2}, {5, 3}, {5, 4},
		},
		Surfaces: [][]int{
			{0, 1, 2}, {0, 3, 2}, {0, 4, 3}, {0, 4, 1},
			{5, 1, 2}, {5, 3, 2}, {5, 4, 3}, {5, 4, 1},
		},
	},
	Pyramid: {
		Name: Pyramid,
		Vertices: []Vec3{
			{0, 1, 0}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {2, 3}, {3, 4}, {4, 1},
		},
		Surfaces: [][]int{
			{0, 1, 2}, {0, 3, 2}, {0, 4, 3}, {0, 4, 1}, {1, 2, 3, 4},
		},
	},
}

// LookupSolid returns the geometry of a 3D figure.
func LookupSolid(t FigureType) (*Solid, bool) {
	s, ok := solids[t]
	return s, ok
}

// Solids returns the 3D catalog sorted by name.
func Solids() []FigureType {
	out := make([]FigureType, 0, len(solids))
	for t := range solids {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func mustSolid(t FigureType) *Solid {
	s, ok := LookupSolid(t)
	if !ok {
		panic(fmt.Sprintf("memorize: unknown 3D figure %q", t))
	}
	return s
}

package memorize

import (
	"reflect"
	"testing"
)

func TestShapePoints(t *testing.T) {
	mid := Point{X: 100, Y: 50}

	tests := []struct {
		figure   FigureType
		expected []Point
	}{
		{Diamond, []Point{{100, 40}, {90, 50}, {100, 60}, {110, 50}}},
		{Square, []Point{{90, 40}, {90, 60}, {110, 60}, {110, 40}}},
		{Triangle, []Point{{90, 60}, {110, 60}, {100, 40}}},
		{Octagon, []Point{
			{90, 55}, {90, 45}, {95, 40}, {105, 40},
			{110, 45}, {110, 55}, {105, 60}, {95, 60},
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.figure), func(t *testing.T) {
			f, ok := LookupShape(tt.figure)
			if !ok {
				t.Fatalf("shape %q not registered", tt.figure)
			}
			if got := f(mid, 10); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("points = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCatalogs(t *testing.T) {
	if got := Shapes(); !reflect.DeepEqual(got, []FigureType{Diamond, Octagon, Square, Triangle}) {
		t.Errorf("Shapes() = %v", got)
	}
	if got := Solids(); !reflect.DeepEqual(got, []FigureType{Cube, Prism, Octahedron, Pyramid}) {
		t.Errorf("Solids() = %v", got)
	}
	if _, ok := LookupShape(Cube); ok {
		t.Error("solids must not resolve as 2D shapes")
	}
	if _, ok := LookupSolid(Square); ok {
		t.Error("shapes must not resolve as solids")
	}
}

func TestSolidTables(t *testing.T) {
	tests := []struct {
		figure              FigureType
		vertices, edges, sf int
	}{
		{Cube, 8, 12, 6},
		{Prism, 16, 24, 10},
		{Octahedron, 6, 12, 8},
		{Pyramid, 5, 8, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.figure), func(t *testing.T) {
			s, ok := LookupSolid(tt.figure)
			if !ok {
				t.Fatalf("solid %q not registered", tt.figure)
			}
			if len(s.Vertices) != tt.vertices || len(s.Edges) != tt.edges || len(s.Surfaces) != tt.sf {
				t.Errorf("got %d vertices, %d edges, %d surfaces", len(s.Vertices), len(s.Edges), len(s.Surfaces))
			}
			for _, e := range s.Edges {
				if e[0] >= len(s.Vertices) || e[1] >= len(s.Vertices) {
					t.Errorf("edge %v out of range", e)
				}
			}
			for _, surf := range s.Surfaces {
				for _, idx := range surf {
					if idx >= len(s.Vertices) {
						t.Errorf("surface %v out of range", surf)
					}
				}
			}
		})
	}

	cube, _ := LookupSolid(Cube)
	if cube.Vertices[0] != (Vec3{1, -1, -1}) || cube.Edges[11] != [2]int{5, 7} {
		t.Error("cube table differs from the reference geometry")
	}
}

func TestMustLookup(t *testing.T) {
	for _, s := range Shapes() {
		if mustShape(s) == nil {
			t.Errorf("mustShape(%q) = nil", s)
		}
	}
	for _, s := range Solids() {
		if mustSolid(s) == nil {
			t.Errorf("mustSolid(%q) = nil", s)
		}
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{"shape", func() { mustShape("nonagon") }},
		{"solid", func() { mustSolid("torus") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("unknown figure should panic")
				}
			}()
			tt.fn()
		})
	}
}

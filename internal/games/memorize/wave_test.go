package memorize

import (
	"image"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-memorize/internal/assets"
	"github.com/vovakirdan/tui-memorize/internal/core"
)

func TestGridMidpoints(t *testing.T) {
	expected := []Point{
		{200, 150}, {200, 450}, {200, 750},
		{600, 150}, {600, 450}, {600, 750},
		{1000, 150}, {1000, 450}, {1000, 750},
	}
	if got := GridMidpoints(1200, 900); !reflect.DeepEqual(got, expected) {
		t.Errorf("GridMidpoints(1200, 900) = %v", got)
	}
	if got := FigureSize(1200, 900); got != 75 {
		t.Errorf("FigureSize(1200, 900) = %d, expected 75", got)
	}
}

func TestWave2DBoundsAndDistinctPoints(t *testing.T) {
	rng := seeded(3)
	sel := NewColorSelector(rng)
	mids := make(map[Point]bool)
	for _, m := range GridMidpoints(1200, 900) {
		mids[m] = true
	}

	sizes := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		w := NewWave2D(rng, sel, Square, ColorSpec{Kind: ColorPerInstance}, 1200, 900)
		if w.Len() < 1 || w.Len() > 9 {
			t.Fatalf("2D wave of %d figures", w.Len())
		}
		sizes[w.Len()] = true

		used := make(map[Point]bool)
		for _, inst := range w.Instances() {
			if !mids[inst.Mid] {
				t.Fatalf("%v is not a grid midpoint", inst.Mid)
			}
			if used[inst.Mid] {
				t.Fatalf("midpoint %v used twice", inst.Mid)
			}
			used[inst.Mid] = true
			if inst.Size != 75 {
				t.Fatalf("size = %d", inst.Size)
			}
		}
	}
	if len(sizes) < 7 {
		t.Errorf("only %d distinct wave sizes in 2000 waves", len(sizes))
	}
}

func TestWave2DColors(t *testing.T) {
	rng := seeded(5)

	t.Run("fixed", func(t *testing.T) {
		sel := NewColorSelector(rng)
		w := NewWave2D(rng, sel, Triangle, FixedColor(catalog[0].RGB), 600, 600)
		for _, inst := range w.Instances() {
			if inst.Color != core.RGB(0, 255, 0) {
				t.Errorf("color = %s", inst.Color.Hex())
			}
		}
		if sel.Held() != "Grey" {
			t.Error("fixed colors should not consume the selector")
		}
	})

	t.Run("per wave", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			w := NewWave2D(rng, NewColorSelector(rng), Diamond, ColorSpec{Kind: ColorPerWave}, 600, 600)
			first := w.Instances()[0].Color
			for _, inst := range w.Instances() {
				if inst.Color != first {
					t.Fatal("per-wave color differs inside a wave")
				}
			}
		}
	})

	t.Run("per instance", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			w := NewWave2D(rng, NewColorSelector(rng), Diamond, ColorSpec{Kind: ColorPerInstance}, 600, 600)
			insts := w.Instances()
			for j := 1; j < len(insts); j++ {
				if insts[j].Color == insts[j-1].Color {
					t.Fatal("consecutive instances share a color")
				}
			}
		}
	})
}

func TestWave2DImageAnchor(t *testing.T) {
	img := &assets.Image{Name: "cat", Pixels: image.NewRGBA(image.Rect(0, 0, 40, 20))}
	w := NewWave2D(seeded(1), NewColorSelector(seeded(1)), "cat", ImageColor(img), 1200, 900)

	for _, inst := range w.Instances() {
		anchor := Point{X: inst.Mid.X - 20, Y: inst.Mid.Y - 10}
		if inst.Image != img || inst.Points[0] != anchor {
			t.Errorf("image at %v, expected %v", inst.Points[0], anchor)
		}
	}
}

func TestWave3D(t *testing.T) {
	rng := seeded(9)
	sel := NewColorSelector(rng)
	cube, _ := LookupSolid(Cube)

	for i := 0; i < 500; i++ {
		const posZ = -250
		w := NewWave3D(rng, sel, Cube, ColorSpec{Kind: ColorPerInstance}, posZ, DrawOutline)
		if w.Len() < 2 || w.Len() > 6 {
			t.Fatalf("3D wave of %d solids", w.Len())
		}
		for _, inst := range w.Instances() {
			o := inst.Offset
			ax, ay := core.Abs(int(o.X)), core.Abs(int(o.Y))
			if ax < 2 || ax > 9 || ay < 2 || ay > 9 {
				t.Fatalf("offset %v out of x/y range", o)
			}
			if o.Z < posZ-90 || o.Z >= posZ-60 {
				t.Fatalf("offset z %v outside [%d, %d)", o.Z, posZ-90, posZ-60)
			}
			if inst.Vertices[0] != cube.Vertices[0].Add(o) {
				t.Fatal("vertices not translated by offset")
			}
		}
	}
}

func TestWave3DFlame(t *testing.T) {
	w := NewWave3D(seeded(2), NewColorSelector(seeded(2)), Pyramid, ColorSpec{Kind: ColorPerWave}, -10, DrawFlame)

	rec := &recordingRenderer{}
	w.Draw(rec)

	if rec.filled != w.Len() || rec.outlines != 0 {
		t.Errorf("flame wave drew %d filled, %d outlines", rec.filled, rec.outlines)
	}
	dark, light := Convert(FlameDark), Convert(FlameLight)
	for _, c := range rec.colors {
		if c != dark && c != light {
			t.Fatalf("flame color %s", c.Hex())
		}
	}
}

type recordingRenderer struct {
	polygons, blits, outlines, filled int
	colors                            []core.Color
}

func (r *recordingRenderer) DrawPolygon(c core.Color, _ []Point) {
	r.polygons++
	r.colors = append(r.colors, c)
}

func (r *recordingRenderer) Blit(*assets.Image, Point) { r.blits++ }

func (r *recordingRenderer) DrawOutline(_ []Vec3, edges [][2]int, color ColorFunc) {
	r.outlines++
	for range edges {
		r.colors = append(r.colors, color())
	}
}

func (r *recordingRenderer) DrawFilled(_ []Vec3, surfaces [][]int, color ColorFunc) {
	r.filled++
	for _, s := range surfaces {
		for range s {
			r.colors = append(r.colors, color())
		}
	}
}

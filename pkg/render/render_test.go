package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
	"github.com/ChrisBeaumont/axescache/pkg/render"
)

// flipTransform maps data onto the same pixel grid with y inverted,
// the identity for everything these tests need.
type flipTransform struct {
	h float64
}

func (t flipTransform) DataToDevice(x, y float64) (float64, float64) {
	return x, t.h - y
}

func (t flipTransform) DeviceToData(px, py float64) (float64, float64) {
	return px, t.h - py
}

func newRenderer(w, h int) *render.ImageRenderer {
	return render.NewImageRenderer(w, h, flipTransform{h: float64(h)})
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{name: "horizontal", x1: 2, y1: 5, x2: 17, y2: 5},
		{name: "vertical", x1: 5, y1: 2, x2: 5, y2: 17},
		{name: "diagonal", x1: 0, y1: 0, x2: 19, y2: 19},
		{name: "steep", x1: 3, y1: 1, x2: 6, y2: 18},
		{name: "point", x1: 9, y1: 9, x2: 9, y2: 9},
	}
	col := color.RGBA{255, 0, 0, 255}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 20, 20))
			render.Bresenham(img, tt.x1, tt.y1, tt.x2, tt.y2, col)
			if img.RGBAAt(tt.x1, tt.y1) != col {
				t.Errorf("start point (%d,%d) not set", tt.x1, tt.y1)
			}
			if img.RGBAAt(tt.x2, tt.y2) != col {
				t.Errorf("end point (%d,%d) not set", tt.x2, tt.y2)
			}
		})
	}
}

func TestBresenhamClipsOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// must not panic
	render.Bresenham(img, -5, -5, 15, 15, color.RGBA{255, 255, 255, 255})
	if img.RGBAAt(5, 5).R != 255 {
		t.Error("in-bounds part of clipped line not drawn")
	}
}

func TestDrawImagePlacesByExtent(t *testing.T) {
	r := newRenderer(100, 100)

	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	// extent x 10..20, y 70..80 lands at device (10,20)-(20,30)
	r.DrawImage(src, axescache.Extent{XMin: 10, XMax: 20, YMin: 70, YMax: 80})

	img := r.Image()
	if img.RGBAAt(15, 25) != red {
		t.Error("pixel inside destination rect not painted")
	}
	if img.RGBAAt(15, 40) == red {
		t.Error("pixel below destination rect painted")
	}
	if img.RGBAAt(5, 25) == red {
		t.Error("pixel left of destination rect painted")
	}
}

func TestDrawMeshFillsCells(t *testing.T) {
	r := newRenderer(100, 100)

	xs := []float64{10, 20, 40}
	ys := []float64{90, 80, 60} // device y 10, 20, 40
	shade := [][]uint8{
		{100, 200, 0},
		{50, 150, 0},
		{0, 0, 0},
	}
	r.DrawMesh(xs, ys, shade)

	img := r.Image()
	if got := img.RGBAAt(15, 15); got.R != 100 || got.G != 100 || got.B != 100 {
		t.Errorf("cell(0,0) = %v, want gray 100", got)
	}
	if got := img.RGBAAt(30, 30); got.R != 150 {
		t.Errorf("cell(1,1) = %v, want gray 150", got)
	}
	// mesh shades render gray, never colored
	if got := img.RGBAAt(15, 15); got.R != got.G || got.G != got.B {
		t.Errorf("mesh cell not grayscale: %v", got)
	}
}

func TestFillCircle(t *testing.T) {
	r := newRenderer(20, 20)
	col := color.RGBA{0, 255, 0, 255}
	r.FillCircle(10, 10, 3, col)

	img := r.Image()
	if img.RGBAAt(10, 10) != col {
		t.Error("center not filled")
	}
	if img.RGBAAt(13, 10) != col {
		t.Error("radius edge not filled")
	}
	if img.RGBAAt(14, 10) == col {
		t.Error("pixel outside radius filled")
	}
}

func TestRGBAIsSnapshot(t *testing.T) {
	r := newRenderer(10, 10)
	r.Fill(color.RGBA{1, 2, 3, 255})
	snap := r.RGBA()
	r.Fill(color.RGBA{200, 200, 200, 255})
	if snap.RGBAAt(5, 5).R != 1 {
		t.Error("snapshot mutated by later draw")
	}
}

func TestDrawString(t *testing.T) {
	r := newRenderer(40, 10)
	col := color.RGBA{255, 255, 255, 255}
	r.DrawString(0, 0, "-1.5", col)

	img := r.Image()
	var lit int
	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) == col {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("DrawString painted nothing")
	}
	if got, want := render.StringWidth("-1.5"), 4*4-1; got != want {
		t.Errorf("StringWidth = %d, want %d", got, want)
	}
}

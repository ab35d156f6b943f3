package axescache_test

import (
	"image"
	"image/color"
	"math"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

// testTransform maps the view onto a w x h device raster, y inverted,
// log axes through log10.
type testTransform struct {
	view axescache.View
	w, h float64
}

func (t testTransform) DataToDevice(x, y float64) (float64, float64) {
	x0, x1 := t.scaleX(t.view.XMin), t.scaleX(t.view.XMax)
	y0, y1 := t.scaleY(t.view.YMin), t.scaleY(t.view.YMax)
	px := (t.scaleX(x) - x0) / (x1 - x0) * t.w
	py := t.h - (t.scaleY(y)-y0)/(y1-y0)*t.h
	return px, py
}

func (t testTransform) DeviceToData(px, py float64) (float64, float64) {
	x0, x1 := t.scaleX(t.view.XMin), t.scaleX(t.view.XMax)
	y0, y1 := t.scaleY(t.view.YMin), t.scaleY(t.view.YMax)
	x := x0 + px/t.w*(x1-x0)
	y := y0 + (t.h-py)/t.h*(y1-y0)
	if t.view.XScale == axescache.ScaleLog {
		x = math.Pow(10, x)
	}
	if t.view.YScale == axescache.ScaleLog {
		y = math.Pow(10, y)
	}
	return x, y
}

func (t testTransform) scaleX(v float64) float64 {
	if t.view.XScale == axescache.ScaleLog {
		return math.Log10(v)
	}
	return v
}

func (t testTransform) scaleY(v float64) float64 {
	if t.view.YScale == axescache.ScaleLog {
		return math.Log10(v)
	}
	return v
}

// testSurface counts draw calls and appends to a shared order log.
type testSurface struct {
	view axescache.View
	w, h int

	fullDraws  int
	patchDraws int
	xDraws     int
	yDraws     int
	spineDraws int

	order *[]string
}

func newTestSurface(view axescache.View, w, h int) *testSurface {
	return &testSurface{view: view, w: w, h: h, order: &[]string{}}
}

func (s *testSurface) View() axescache.View { return s.view }

func (s *testSurface) Transform() axescache.Transform {
	return testTransform{view: s.view, w: float64(s.w), h: float64(s.h)}
}

func (s *testSurface) DrawFull(r axescache.Renderer) {
	s.fullDraws++
	*s.order = append(*s.order, "full")
}

func (s *testSurface) DrawPatch(r axescache.Renderer) {
	s.patchDraws++
	*s.order = append(*s.order, "patch")
}

func (s *testSurface) DrawXAxis(r axescache.Renderer) {
	s.xDraws++
	*s.order = append(*s.order, "xaxis")
}

func (s *testSurface) DrawYAxis(r axescache.Renderer) {
	s.yDraws++
	*s.order = append(*s.order, "yaxis")
}

func (s *testSurface) DrawSpines(r axescache.Renderer) {
	s.spineDraws++
	*s.order = append(*s.order, "spines")
}

// testRenderer serves a canned pixel buffer and records what the
// capture draws back.
type testRenderer struct {
	img *image.RGBA

	imageDraws int
	meshDraws  int

	lastImage  *image.RGBA
	lastExtent axescache.Extent
	lastXs     []float64
	lastYs     []float64
	lastShade  [][]uint8

	order *[]string
}

func newTestRenderer(w, h int, order *[]string) *testRenderer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}
	return &testRenderer{img: img, order: order}
}

func (r *testRenderer) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *testRenderer) RGBA() *image.RGBA { return r.img }

func (r *testRenderer) DrawImage(img *image.RGBA, ext axescache.Extent) {
	r.imageDraws++
	r.lastImage = img
	r.lastExtent = ext
	if r.order != nil {
		*r.order = append(*r.order, "image")
	}
}

func (r *testRenderer) DrawMesh(xs, ys []float64, shade [][]uint8) {
	r.meshDraws++
	r.lastXs, r.lastYs, r.lastShade = xs, ys, shade
	if r.order != nil {
		*r.order = append(*r.order, "mesh")
	}
}

// testEvents is an in-process EventSource delivering synchronously.
type testEvents struct {
	handlers map[string][]func(float64)
}

func newTestEvents() *testEvents {
	return &testEvents{handlers: make(map[string][]func(float64))}
}

func (e *testEvents) SubscribeFunc(event string, f func(float64)) func() {
	e.handlers[event] = append(e.handlers[event], f)
	idx := len(e.handlers[event]) - 1
	return func() {
		e.handlers[event][idx] = nil
	}
}

func (e *testEvents) fire(event string, value float64) {
	for _, f := range e.handlers[event] {
		if f != nil {
			f(value)
		}
	}
}

func linearView() axescache.View {
	return axescache.View{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
}

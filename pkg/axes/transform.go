package axes

import (
	"math"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

// axesTransform maps the current view onto a device raster of
// width x height pixels. Device origin is top-left, y down; data y
// grows upward. Log axes map through log10, so panning and zooming in
// device space stays uniform on screen.
type axesTransform struct {
	view   axescache.View
	width  float64
	height float64
}

var _ axescache.Transform = axesTransform{}

func newTransform(v axescache.View, width, height int) axesTransform {
	return axesTransform{view: v, width: float64(width), height: float64(height)}
}

func (t axesTransform) DataToDevice(x, y float64) (float64, float64) {
	x0, x1 := scaled(t.view.XMin, t.view.XScale), scaled(t.view.XMax, t.view.XScale)
	y0, y1 := scaled(t.view.YMin, t.view.YScale), scaled(t.view.YMax, t.view.YScale)
	px := (scaled(x, t.view.XScale) - x0) / span(x0, x1) * t.width
	py := t.height - (scaled(y, t.view.YScale)-y0)/span(y0, y1)*t.height
	return px, py
}

func (t axesTransform) DeviceToData(px, py float64) (float64, float64) {
	x0, x1 := scaled(t.view.XMin, t.view.XScale), scaled(t.view.XMax, t.view.XScale)
	y0, y1 := scaled(t.view.YMin, t.view.YScale), scaled(t.view.YMax, t.view.YScale)
	x := unscaled(x0+px/t.width*span(x0, x1), t.view.XScale)
	y := unscaled(y0+(t.height-py)/t.height*span(y0, y1), t.view.YScale)
	return x, y
}

// smallest positive value a log axis will accept
const logFloor = 1e-12

func scaled(v float64, s axescache.Scale) float64 {
	if s == axescache.ScaleLog {
		return math.Log10(math.Max(v, logFloor))
	}
	return v
}

func unscaled(v float64, s axescache.Scale) float64 {
	if s == axescache.ScaleLog {
		return math.Pow(10, v)
	}
	return v
}

func span(a, b float64) float64 {
	if b == a {
		return 1
	}
	return b - a
}

// zoomView shrinks (factor < 1) or grows (factor > 1) the view about
// its center, working in scaled space so log axes zoom evenly on
// screen.
func zoomView(v axescache.View, factor float64) axescache.View {
	x0, x1 := scaled(v.XMin, v.XScale), scaled(v.XMax, v.XScale)
	y0, y1 := scaled(v.YMin, v.YScale), scaled(v.YMax, v.YScale)

	cx, cy := (x0+x1)*0.5, (y0+y1)*0.5
	hx, hy := (x1-x0)*0.5*factor, (y1-y0)*0.5*factor

	v.XMin = unscaled(cx-hx, v.XScale)
	v.XMax = unscaled(cx+hx, v.XScale)
	v.YMin = unscaled(cy-hy, v.YScale)
	v.YMax = unscaled(cy+hy, v.YScale)
	return v
}

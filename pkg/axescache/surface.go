package axescache

import "image"

// Scale is the mapping mode of one axis.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLog
)

func (s Scale) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	default:
		return "unknown"
	}
}

// View is the data-space window of a plot surface together with the
// scale mode of each axis.
type View struct {
	XMin, XMax float64
	YMin, YMax float64
	XScale     Scale
	YScale     Scale
}

// Linear reports whether both axes use a linear scale.
func (v View) Linear() bool {
	return v.XScale == ScaleLinear && v.YScale == ScaleLinear
}

// Extent is a data-space rectangle used to position a cached image.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Transform maps between data-space coordinates and device pixels for
// the current view. Device origin is top-left, y grows downward.
type Transform interface {
	DataToDevice(x, y float64) (float64, float64)
	DeviceToData(px, py float64) (float64, float64)
}

// Renderer is the host render backend and target rolled into one, the
// way an immediate-mode raster backend exposes both. After a draw the
// rendered pixels can be read back through RGBA.
type Renderer interface {
	// Size returns the device pixel dimensions of the render target.
	Size() (width, height int)
	// RGBA returns a snapshot of the rendered pixels, row-major top to
	// bottom in device coordinates.
	RGBA() *image.RGBA
	// DrawImage renders img positioned by its data-space extent. The
	// first pixel row of img corresponds to ext.YMax.
	DrawImage(img *image.RGBA, ext Extent)
	// DrawMesh renders a grid of gray cells addressed by the possibly
	// non-uniform data-space boundary arrays xs and ys. shade[i][j] is
	// the cell between ys[i]..ys[i+1] and xs[j]..xs[j+1]; the last row
	// and column of shade are unused.
	DrawMesh(xs, ys []float64, shade [][]uint8)
}

// Surface is the plot area whose draws are being managed. It is owned
// by the host; the cache only calls into it.
type Surface interface {
	View() View
	Transform() Transform
	// DrawFull performs the original, expensive draw: background,
	// plot content and all axis chrome.
	DrawFull(r Renderer)
	// Chrome draws used on the fast path so text and lines stay crisp
	// while the content is served from the cache.
	DrawPatch(r Renderer)
	DrawXAxis(r Renderer)
	DrawYAxis(r Renderer)
	DrawSpines(r Renderer)
}

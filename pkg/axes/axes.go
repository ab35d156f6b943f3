// Package axes provides an interactive 2D plot widget for Fyne. The
// widget renders its series into an RGBA raster through pkg/render,
// supports drag panning and scroll zooming, and exposes the surface
// and event hooks pkg/axescache needs to substitute cached redraws
// for full ones while the user interacts.
package axes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
	"github.com/ChrisBeaumont/axescache/pkg/colors"
	"github.com/ChrisBeaumont/axescache/pkg/debug"
	"github.com/ChrisBeaumont/axescache/pkg/ebus"
	"github.com/ChrisBeaumont/axescache/pkg/render"
)

var (
	_ fyne.Widget           = (*Axes)(nil)
	_ axescache.Surface     = (*Axes)(nil)
	_ axescache.EventSource = (*Axes)(nil)
)

// DrawHandler renders the surface onto a renderer. Installing one
// replaces the widget's direct draw path; this is the override point
// an AxesCache hooks into.
type DrawHandler interface {
	Draw(r axescache.Renderer)
}

type Axes struct {
	widget.BaseWidget

	name string

	view   axescache.View
	series []*Series

	background color.RGBA
	foreground color.RGBA
	colorMode  colors.ColorBlindMode

	handler DrawHandler

	img  *canvas.Image
	size fyne.Size

	seq float64

	refreshPending bool
}

type AxesOpt func(*Axes)

func WithXScale(s axescache.Scale) AxesOpt {
	return func(a *Axes) { a.view.XScale = s }
}

func WithYScale(s axescache.Scale) AxesOpt {
	return func(a *Axes) { a.view.YScale = s }
}

func WithBackground(col color.RGBA) AxesOpt {
	return func(a *Axes) { a.background = col }
}

func WithColorBlindMode(mode colors.ColorBlindMode) AxesOpt {
	return func(a *Axes) { a.colorMode = mode }
}

func WithView(xmin, xmax, ymin, ymax float64) AxesOpt {
	return func(a *Axes) {
		a.view.XMin, a.view.XMax = xmin, xmax
		a.view.YMin, a.view.YMax = ymin, ymax
	}
}

// NewAxes creates an empty plot surface. The name scopes the widget's
// event topics on the bus, so every surface needs its own.
func NewAxes(name string, opts ...AxesOpt) *Axes {
	a := &Axes{
		name:       name,
		view:       axescache.View{XMin: 0, XMax: 1, YMin: 0, YMax: 1},
		background: color.RGBA{20, 20, 20, 255},
		foreground: color.RGBA{220, 220, 220, 255},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ExtendBaseWidget(a)

	a.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	a.img.FillMode = canvas.ImageFillOriginal
	a.img.ScaleMode = canvas.ImageScaleFastest
	return a
}

func (a *Axes) Name() string { return a.name }

// AddSeries appends a dataset to the plot.
func (a *Axes) AddSeries(s *Series) {
	a.series = append(a.series, s)
}

func (a *Axes) Series() []*Series { return a.series }

// SetView replaces the data-space window.
func (a *Axes) SetView(xmin, xmax, ymin, ymax float64) {
	a.view.XMin, a.view.XMax = xmin, xmax
	a.view.YMin, a.view.YMax = ymin, ymax
}

func (a *Axes) SetXScale(s axescache.Scale) {
	a.view.XScale = s
}

func (a *Axes) SetYScale(s axescache.Scale) {
	a.view.YScale = s
}

func (a *Axes) SetColorBlindMode(mode colors.ColorBlindMode) {
	a.colorMode = mode
}

// SetDrawHandler installs the draw override. Passing nil restores the
// direct full-draw path.
func (a *Axes) SetDrawHandler(h DrawHandler) {
	a.handler = h
}

// AutoScale fits the view to the visible series with a 5% margin,
// applied in scaled space so log axes pad evenly.
func (a *Axes) AutoScale() {
	first := true
	var xmin, xmax, ymin, ymax float64
	for _, s := range a.series {
		if s.hidden || len(s.X) == 0 || len(s.Y) == 0 {
			continue
		}
		x0, x1, y0, y1 := s.bounds()
		if first {
			xmin, xmax, ymin, ymax = x0, x1, y0, y1
			first = false
			continue
		}
		xmin, xmax = min(xmin, x0), max(xmax, x1)
		ymin, ymax = min(ymin, y0), max(ymax, y1)
	}
	if first {
		return
	}
	a.view.XMin, a.view.XMax = pad(xmin, xmax, a.view.XScale)
	a.view.YMin, a.view.YMax = pad(ymin, ymax, a.view.YScale)
}

func pad(lo, hi float64, s axescache.Scale) (float64, float64) {
	a, b := scaled(lo, s), scaled(hi, s)
	m := (b - a) * 0.05
	if m == 0 {
		m = 0.5
	}
	return unscaled(a-m, s), unscaled(b+m, s)
}

// View implements axescache.Surface.
func (a *Axes) View() axescache.View {
	return a.view
}

// Transform implements axescache.Surface for the current view and
// device size.
func (a *Axes) Transform() axescache.Transform {
	w, h := a.deviceSize()
	return newTransform(a.view, w, h)
}

func (a *Axes) deviceSize() (int, int) {
	return max(int(a.size.Width), 1), max(int(a.size.Height), 1)
}

// DrawFull performs the expensive draw: background, every visible
// series rasterized in parallel, then the axis chrome.
func (a *Axes) DrawFull(r axescache.Renderer) {
	ir, ok := r.(*render.ImageRenderer)
	if !ok {
		log.Printf("axes: cannot draw content on %T", r)
		return
	}
	start := time.Now()

	a.DrawPatch(r)

	w, h := ir.Size()
	tr := newTransform(a.view, w, h)
	layers := make([]*image.RGBA, len(a.series))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, s := range a.series {
		if s.hidden {
			continue
		}
		i, s := i, s
		g.Go(func() error {
			lr := render.NewImageRenderer(w, h, tr)
			s.draw(lr, tr, a.colorMode)
			layers[i] = lr.Image()
			return nil
		})
	}
	g.Wait()

	dst := ir.Image()
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		draw.Draw(dst, dst.Bounds(), layer, image.Point{}, draw.Over)
	}

	a.DrawXAxis(r)
	a.DrawYAxis(r)
	a.DrawSpines(r)

	debug.Log(fmt.Sprintf("axes %s: full draw %dx%d took %s", a.name, w, h, time.Since(start)))
}

// DrawPatch fills the plot background.
func (a *Axes) DrawPatch(r axescache.Renderer) {
	if ir, ok := r.(*render.ImageRenderer); ok {
		ir.Fill(a.background)
	}
}

func (a *Axes) DrawXAxis(r axescache.Renderer) {
	ir, ok := r.(*render.ImageRenderer)
	if !ok {
		return
	}
	w, h := ir.Size()
	tr := newTransform(a.view, w, h)
	for _, v := range tickValues(a.view.XMin, a.view.XMax, a.view.XScale) {
		px, _ := tr.DataToDevice(v, a.view.YMin)
		x := int(px)
		ir.Line(x, h-2, x, h-6, a.foreground)
		label := formatTick(v)
		ir.DrawString(x-render.StringWidth(label)/2, h-13, label, a.foreground)
	}
}

func (a *Axes) DrawYAxis(r axescache.Renderer) {
	ir, ok := r.(*render.ImageRenderer)
	if !ok {
		return
	}
	w, h := ir.Size()
	tr := newTransform(a.view, w, h)
	for _, v := range tickValues(a.view.YMin, a.view.YMax, a.view.YScale) {
		_, py := tr.DataToDevice(a.view.XMin, v)
		y := int(py)
		ir.Line(1, y, 5, y, a.foreground)
		ir.DrawString(7, y-2, formatTick(v), a.foreground)
	}
}

// DrawSpines draws the plot border.
func (a *Axes) DrawSpines(r axescache.Renderer) {
	ir, ok := r.(*render.ImageRenderer)
	if !ok {
		return
	}
	w, h := ir.Size()
	ir.Line(0, 0, w-1, 0, a.foreground)
	ir.Line(0, h-1, w-1, h-1, a.foreground)
	ir.Line(0, 0, 0, h-1, a.foreground)
	ir.Line(w-1, 0, w-1, h-1, a.foreground)
}

// SubscribeFunc implements axescache.EventSource scoped to this
// surface's topics. The returned function unsubscribes.
func (a *Axes) SubscribeFunc(event string, f func(float64)) func() {
	return ebus.SubscribeFunc(a.topic(event), f)
}

func (a *Axes) topic(event string) string {
	return "axes." + a.name + "." + event
}

func (a *Axes) publish(event string) {
	a.seq++
	if err := ebus.Publish(a.topic(event), a.seq); err != nil {
		log.Println("axes:", err)
	}
}

func (a *Axes) Refresh() {
	a.redraw()
}

func (a *Axes) redraw() {
	w, h := int(a.size.Width), int(a.size.Height)
	if w <= 0 || h <= 0 {
		return
	}
	r := render.NewImageRenderer(w, h, a.Transform())
	if a.handler != nil {
		a.handler.Draw(r)
	} else {
		a.DrawFull(r)
	}
	a.img.Image = r.Image()
	a.img.Refresh()
}

// throttledRefresh defers the redraw a beat so bus handlers fired by
// the same interaction land first.
func (a *Axes) throttledRefresh() {
	if a.refreshPending {
		return
	}
	a.refreshPending = true
	time.AfterFunc(10*time.Millisecond, func() {
		a.redraw()
		a.refreshPending = false
	})
}

func (a *Axes) CreateRenderer() fyne.WidgetRenderer {
	return &axesRenderer{a: a}
}

type axesRenderer struct {
	a    *Axes
	size fyne.Size
}

func (r *axesRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 150)
}

func (r *axesRenderer) Destroy() {}

func (r *axesRenderer) Refresh() {
	r.a.redraw()
}

func (r *axesRenderer) Layout(size fyne.Size) {
	if r.size == size {
		return
	}
	resized := r.size != fyne.NewSize(0, 0)
	r.size = size
	r.a.size = size
	r.a.img.Resize(size)
	if resized {
		// device dimensions changed under a possibly cached frame
		r.a.publish(axescache.EventResize)
	}
	r.a.throttledRefresh()
}

func (r *axesRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.a.img}
}

package axes

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

var (
	_ fyne.Draggable    = (*Axes)(nil)
	_ fyne.Scrollable   = (*Axes)(nil)
	_ desktop.Mouseable = (*Axes)(nil)
)

// Dragged pans the view by the device-space delta. The shift runs
// through the transform, so panning a log axis slides it evenly on
// screen. Each step redraws; with a cache installed that redraw is the
// fast path.
func (a *Axes) Dragged(event *fyne.DragEvent) {
	tr := a.Transform()
	w, h := a.deviceSize()
	dx, dy := float64(event.Dragged.DX), float64(event.Dragged.DY)

	x0, y0 := tr.DeviceToData(-dx, -dy)
	x1, y1 := tr.DeviceToData(float64(w)-dx, float64(h)-dy)

	a.view.XMin, a.view.XMax = x0, x1
	a.view.YMin, a.view.YMax = y1, y0
	a.redraw()
}

// DragEnd marks the end of a pan; listeners such as an attached cache
// invalidate on it, and the deferred redraw then renders in full.
func (a *Axes) DragEnd() {
	a.publish(axescache.EventMouseUp)
	a.throttledRefresh()
}

// Scrolled zooms 8% per notch about the view center.
func (a *Axes) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY > 0 {
		a.view = zoomView(a.view, 0.92)
	} else {
		a.view = zoomView(a.view, 1.08)
	}
	a.redraw()
}

func (a *Axes) MouseDown(event *desktop.MouseEvent) {
}

// MouseUp ends an interaction. The release is published on the bus so
// every registered listener, the cache included, hears it.
func (a *Axes) MouseUp(event *desktop.MouseEvent) {
	a.publish(axescache.EventMouseUp)
	a.throttledRefresh()
}

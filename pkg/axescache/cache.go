package axescache

import "log"

// Events a cache subscribes to on its surface. The payload is an
// event sequence number; only the arrival matters.
const (
	EventMouseUp = "mouseup"
	EventResize  = "resize"
)

// EventSource is the host's event subscription capability scoped to
// one surface. The returned function unsubscribes the handler.
type EventSource interface {
	SubscribeFunc(event string, f func(float64)) func()
}

// AxesCache alters how a plot surface is rendered. The first draw runs
// the full render and records it as a RenderCapture. While the capture
// is held, further draws skip the expensive render and re-render the
// capture at the correct location and magnification, which keeps
// panning and zooming smooth even when the full render is costly.
// When the mouse button is released (ending a pan or zoom), or the
// canvas is resized, the cache is cleared and the next draw renders in
// full again.
//
// All methods must be called from the host's render/event loop; the
// cache slot is not guarded by a lock.
type AxesCache struct {
	surface Surface
	capture *RenderCapture
	unsubs  []func()
}

// New attaches a cache to s. If events is non-nil, Reset is registered
// for the surface's mouse-up and resize events. The host still decides
// how draws reach the cache: install it with the surface's draw
// handler override point.
func New(s Surface, events EventSource) *AxesCache {
	c := &AxesCache{surface: s}
	if events != nil {
		c.unsubs = append(c.unsubs,
			events.SubscribeFunc(EventMouseUp, func(float64) { c.Reset() }),
			events.SubscribeFunc(EventResize, func(float64) { c.Reset() }),
		)
	}
	return c
}

// Draw renders the surface onto r. With an empty slot this is a miss:
// the full draw runs and its result is captured. With a held capture
// it is a hit: background, cached content and axis chrome are drawn in
// that order so text and lines stay crisp over the stale raster.
func (c *AxesCache) Draw(r Renderer) {
	if c.capture == nil {
		c.surface.DrawFull(r)
		rc, err := NewRenderCapture(c.surface, r)
		if err != nil {
			log.Println("axescache: not caching:", err)
			return
		}
		c.capture = rc
		return
	}
	c.surface.DrawPatch(r)
	c.capture.Draw(r)
	c.surface.DrawXAxis(r)
	c.surface.DrawYAxis(r)
	c.surface.DrawSpines(r)
}

// Reset clears the cache slot so the next draw renders in full. Safe
// to call at any time; a no-op when already empty.
func (c *AxesCache) Reset() {
	c.capture = nil
}

// Cached reports whether a captured frame is held.
func (c *AxesCache) Cached() bool {
	return c.capture != nil
}

// Close unsubscribes the event handlers registered by New. The cache
// remains usable afterwards but no longer resets itself.
func (c *AxesCache) Close() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
}

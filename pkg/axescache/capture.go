package axescache

import (
	"fmt"
	"image"
)

// move in this many pixels from the view edges, to avoid grabbing the
// tick marks
const insetPx = 5

// RenderCapture is a reusable snapshot of a finished render: the view
// region cropped out of the backend's pixel buffer, anchored to the
// data-space bounds that were active at capture time.
//
// Two representations are kept. The direct image is used while both
// axes are linear. When either axis is non-linear the screen-to-data
// spacing is non-uniform and the image would land in the wrong place,
// so a mesh addressed by explicit data coordinates is drawn instead.
// The mesh uses only the red channel as cell shade; exact-color
// resampling under non-linear scales is not attempted, so the fast
// path renders grayscale there. That is a known visual regression
// carried over deliberately.
type RenderCapture struct {
	surface Surface

	img    *image.RGBA
	extent Extent

	meshX []float64
	meshY []float64
	shade [][]uint8
}

// NewRenderCapture crops the just-rendered pixel buffer of r down to
// the view region of s, inset from the edges, and derives both
// drawable representations from it. It must only be called after the
// full draw has completed so the buffer holds finished pixels.
func NewRenderCapture(s Surface, r Renderer) (*RenderCapture, error) {
	px, py, dx, dy, err := corners(s, r)
	if err != nil {
		return nil, err
	}

	snap := r.RGBA()

	rect := image.Rect(px[0], py[0], px[len(px)-1]+1, py[len(py)-1]+1)
	rect = rect.Intersect(snap.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("capture region %v outside buffer %v", rect, snap.Bounds())
	}
	cropped := cropRGBA(snap, rect)

	// the far extent edges are the exclusive crop bounds, one pixel
	// past the last kept column and row, so the cached image redraws
	// over exactly the region it was cut from
	tr := s.Transform()
	fx, _ := tr.DeviceToData(float64(rect.Max.X), float64(rect.Max.X))
	_, fy := tr.DeviceToData(float64(rect.Max.Y), float64(rect.Max.Y))

	c := &RenderCapture{
		surface: s,
		img:     cropped,
		extent: Extent{
			XMin: dx[0],
			XMax: fx,
			YMin: min(dy[0], fy),
			YMax: max(dy[0], fy),
		},
		meshX: dx,
		meshY: dy,
		shade: redChannel(cropped),
	}
	return c, nil
}

// Draw renders the capture onto r. The representation is chosen from
// the surface's scale mode at call time, not from capture time, so a
// scale change between draws switches paths without re-capturing.
// Idempotent; no cache state is touched.
func (c *RenderCapture) Draw(r Renderer) {
	if c.surface.View().Linear() {
		r.DrawImage(c.img, c.extent)
		return
	}
	r.DrawMesh(c.meshX, c.meshY, c.shade)
}

// Extent returns the data-space bounds the capture corresponds to.
func (c *RenderCapture) Extent() Extent { return c.extent }

// MeshX returns the per-column data-space x coordinates of the mesh
// representation.
func (c *RenderCapture) MeshX() []float64 { return c.meshX }

// MeshY returns the per-row data-space y coordinates of the mesh
// representation.
func (c *RenderCapture) MeshY() []float64 { return c.meshY }

// Image returns the cropped direct-image representation.
func (c *RenderCapture) Image() *image.RGBA { return c.img }

// corners computes the device and data coordinates for a box inset
// insetPx pixels from the edge of the view.
//
// Returns four arrays:
//
//	px : device x for each column of the box
//	py : device y for each row of the box
//	dx : data x for each column of the box
//	dy : data y for each row of the box
func corners(s Surface, r Renderer) (px, py []int, dx, dy []float64, err error) {
	v := s.View()
	tr := s.Transform()

	ax, ay := tr.DataToDevice(v.XMin, v.YMin)
	bx, by := tr.DataToDevice(v.XMax, v.YMax)

	x0 := int(min(ax, bx)) + insetPx
	x1 := int(max(ax, bx)) - insetPx
	y0 := int(min(ay, by)) + insetPx
	y1 := int(max(ay, by)) - insetPx

	if x1 <= x0 || y1 <= y0 {
		return nil, nil, nil, nil, fmt.Errorf("degenerate view region %dx%d", x1-x0, y1-y0)
	}

	px = make([]int, 0, x1-x0)
	dx = make([]float64, 0, x1-x0)
	for x := x0; x < x1; x++ {
		px = append(px, x)
		d, _ := tr.DeviceToData(float64(x), float64(x))
		dx = append(dx, d)
	}

	py = make([]int, 0, y1-y0)
	dy = make([]float64, 0, y1-y0)
	for y := y0; y < y1; y++ {
		py = append(py, y)
		_, d := tr.DeviceToData(float64(y), float64(y))
		dy = append(dy, d)
	}
	return px, py, dx, dy, nil
}

// cropRGBA copies rect out of src into a fresh image anchored at the
// origin. The source buffer is not retained.
func cropRGBA(src *image.RGBA, rect image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.SetRGBA(x, y, src.RGBAAt(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}

// redChannel extracts the red plane of img as mesh cell shades.
func redChannel(img *image.RGBA) [][]uint8 {
	b := img.Bounds()
	shade := make([][]uint8, b.Dy())
	for y := range shade {
		row := make([]uint8, b.Dx())
		for x := range row {
			row[x] = img.RGBAAt(b.Min.X+x, b.Min.Y+y).R
		}
		shade[y] = row
	}
	return shade
}

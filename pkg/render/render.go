package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

var _ axescache.Renderer = (*ImageRenderer)(nil)

// ImageRenderer is a software render backend over an RGBA buffer. It
// is both the target drawn into and, once a draw has finished, the
// source of readable pixels.
type ImageRenderer struct {
	img *image.RGBA
	tr  axescache.Transform
}

func NewImageRenderer(width, height int, tr axescache.Transform) *ImageRenderer {
	return &ImageRenderer{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		tr:  tr,
	}
}

// Image returns the live backing buffer for display.
func (r *ImageRenderer) Image() *image.RGBA {
	return r.img
}

func (r *ImageRenderer) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// RGBA returns a copy of the rendered pixels so the caller can keep it
// past the next draw.
func (r *ImageRenderer) RGBA() *image.RGBA {
	b := r.img.Bounds()
	snap := image.NewRGBA(b)
	copy(snap.Pix, r.img.Pix)
	return snap
}

// DrawImage scales img into the device rectangle the extent maps to
// under the current transform. Nearest neighbour keeps the blit cheap;
// the cache trades sharpness for interactivity anyway.
func (r *ImageRenderer) DrawImage(img *image.RGBA, ext axescache.Extent) {
	x0, y0 := r.tr.DataToDevice(ext.XMin, ext.YMax)
	x1, y1 := r.tr.DataToDevice(ext.XMax, ext.YMin)
	dst := image.Rect(int(x0), int(y0), int(x1), int(y1))
	if dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(r.img, dst, img, img.Bounds(), xdraw.Over, nil)
}

// DrawMesh fills one gray rectangle per cell, positioned through the
// transform, so non-uniform data spacing lands where it belongs on
// screen.
func (r *ImageRenderer) DrawMesh(xs, ys []float64, shade [][]uint8) {
	if len(xs) < 2 || len(ys) < 2 {
		return
	}
	for i := 0; i < len(ys)-1; i++ {
		if i >= len(shade) {
			break
		}
		row := shade[i]
		for j := 0; j < len(xs)-1; j++ {
			if j >= len(row) {
				break
			}
			x0, y0 := r.tr.DataToDevice(xs[j], ys[i])
			x1, y1 := r.tr.DataToDevice(xs[j+1], ys[i+1])
			g := row[j]
			r.FillRect(rectOf(x0, y0, x1, y1), color.RGBA{g, g, g, 255})
		}
	}
}

// FillRect fills rect clipped to the buffer.
func (r *ImageRenderer) FillRect(rect image.Rectangle, col color.RGBA) {
	rect = rect.Intersect(r.img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.img.SetRGBA(x, y, col)
		}
	}
}

// Fill floods the whole buffer.
func (r *ImageRenderer) Fill(col color.RGBA) {
	r.FillRect(r.img.Bounds(), col)
}

// FillCircle draws a filled circle of radius rad centered at x, y.
func (r *ImageRenderer) FillCircle(x, y, rad int, col color.RGBA) {
	if rad <= 0 {
		r.img.SetRGBA(x, y, col)
		return
	}
	rr := rad * rad
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rr {
				r.img.SetRGBA(x+dx, y+dy, col)
			}
		}
	}
}

// Line draws a 1px line between two device points.
func (r *ImageRenderer) Line(x0, y0, x1, y1 int, col color.RGBA) {
	Bresenham(r.img, x0, y0, x1, y1, col)
}

// rectOf builds a normalized integer rectangle from two device
// corners in any order. At least 1px per side so thin mesh cells
// still show.
func rectOf(x0, y0, x1, y1 float64) image.Rectangle {
	rect := image.Rect(int(x0), int(y0), int(x1), int(y1))
	if rect.Dx() == 0 {
		rect.Max.X++
	}
	if rect.Dy() == 0 {
		rect.Max.Y++
	}
	return rect
}

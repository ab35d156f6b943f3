package axes

import (
	"image/color"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
	"github.com/ChrisBeaumont/axescache/pkg/colors"
	"github.com/ChrisBeaumont/axescache/pkg/render"
)

type SeriesKind int

const (
	Scatter SeriesKind = iota
	Line
)

// Series is one plotted dataset. When C is set, each point is colored
// by its value through the colorblind-aware ramp instead of the flat
// series color.
type Series struct {
	Name string
	Kind SeriesKind
	X, Y []float64
	C    []float64
	Size int

	Color  color.RGBA
	hidden bool

	cmin, cmax float64
}

func NewSeries(name string, xs, ys []float64) *Series {
	s := &Series{
		Name:  name,
		X:     xs,
		Y:     ys,
		Size:  2,
		Color: colors.GetColor(name),
	}
	return s
}

// SetValues attaches per-point color values.
func (s *Series) SetValues(c []float64) {
	s.C = c
	if len(c) > 0 {
		s.cmin, s.cmax = findMinMax(c)
	}
}

func (s *Series) Hidden() bool { return s.hidden }

func (s *Series) SetHidden(hidden bool) { s.hidden = hidden }

// draw rasterizes the series through tr onto r. Points outside the
// buffer are clipped by the renderer.
func (s *Series) draw(r *render.ImageRenderer, tr axescache.Transform, mode colors.ColorBlindMode) {
	n := min(len(s.X), len(s.Y))
	switch s.Kind {
	case Line:
		var px0, py0 int
		for i := 0; i < n; i++ {
			x, y := tr.DataToDevice(s.X[i], s.Y[i])
			px1, py1 := int(x), int(y)
			if i > 0 {
				r.Line(px0, py0, px1, py1, s.Color)
			}
			px0, py0 = px1, py1
		}
	default:
		for i := 0; i < n; i++ {
			col := s.Color
			if i < len(s.C) {
				col = colors.GetColorInterpolation(s.cmin, s.cmax, s.C[i], mode)
			}
			x, y := tr.DataToDevice(s.X[i], s.Y[i])
			r.FillCircle(int(x), int(y), s.Size, col)
		}
	}
}

// bounds returns the data extent of the series.
func (s *Series) bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = findMinMax(s.X)
	ymin, ymax = findMinMax(s.Y)
	return
}

func findMinMax(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

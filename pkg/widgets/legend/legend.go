// Package legend lists the series of an axes widget with toggles and
// per-series color picking.
package legend

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ChrisBeaumont/axescache/pkg/axes"
)

type Legend struct {
	widget.BaseWidget

	box *fyne.Container
}

func New(ax *axes.Axes) *Legend {
	l := &Legend{
		box: container.NewVBox(),
	}
	l.ExtendBaseWidget(l)

	for _, s := range ax.Series() {
		entry := newSeriesEntry(s.Name, s.Color,
			func(active bool) {
				s.SetHidden(!active)
				ax.Refresh()
			},
			func(col color.Color) {
				r, g, b, a := col.RGBA()
				s.Color = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
				ax.Refresh()
			})
		l.box.Add(entry)
	}
	return l
}

func (l *Legend) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.box)
}

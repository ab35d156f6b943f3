package legend

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
)

var (
	_ fyne.Tappable          = (*seriesEntry)(nil)
	_ fyne.SecondaryTappable = (*seriesEntry)(nil)
)

// seriesEntry is one legend row: the series name rendered in its
// color. Tapping toggles the series, a secondary tap opens a picker
// for its color.
type seriesEntry struct {
	widget.BaseWidget

	label  *canvas.Text
	col    color.Color
	active bool

	onToggle func(active bool)
	onColor  func(col color.Color)
}

func newSeriesEntry(name string, col color.Color, onToggle func(bool), onColor func(color.Color)) *seriesEntry {
	e := &seriesEntry{
		label:    canvas.NewText(name, col),
		col:      col,
		active:   true,
		onToggle: onToggle,
		onColor:  onColor,
	}
	e.label.TextSize = entryTextSize
	e.label.TextStyle = fyne.TextStyle{Bold: true}
	e.ExtendBaseWidget(e)
	return e
}

const entryTextSize = 11

// setActive restyles the row: active entries are bold in the series
// color, inactive ones dim italic.
func (e *seriesEntry) setActive(active bool) {
	e.active = active
	if active {
		e.label.Color = e.col
		e.label.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		e.label.Color = color.RGBA{128, 128, 128, 255}
		e.label.TextStyle = fyne.TextStyle{Italic: true}
	}
	e.label.Refresh()
}

func (e *seriesEntry) setColor(col color.Color) {
	e.col = col
	if e.active {
		e.label.Color = col
		e.label.Refresh()
	}
}

func (e *seriesEntry) Tapped(*fyne.PointEvent) {
	e.setActive(!e.active)
	if e.onToggle != nil {
		e.onToggle(e.active)
	}
}

func (e *seriesEntry) TappedSecondary(*fyne.PointEvent) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(col color.Color) {
		e.setColor(col)
		if e.onColor != nil {
			e.onColor(col)
		}
	})

	cv := fyne.CurrentApp().Driver().CanvasForObject(e.label)
	var pop *widget.PopUp
	pop = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			pop.Hide()
		}),
	), cv)
	pop.Show()
}

func (e *seriesEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.label)
}

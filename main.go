package main

import (
	"fmt"
	"log"
	"math/rand"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ChrisBeaumont/axescache/pkg/axes"
	"github.com/ChrisBeaumont/axescache/pkg/axescache"
	"github.com/ChrisBeaumont/axescache/pkg/capture"
	"github.com/ChrisBeaumont/axescache/pkg/colors"
	"github.com/ChrisBeaumont/axescache/pkg/debug"
	"github.com/ChrisBeaumont/axescache/pkg/ebus"
	"github.com/ChrisBeaumont/axescache/pkg/layout"
	"github.com/ChrisBeaumont/axescache/pkg/theme"
	"github.com/ChrisBeaumont/axescache/pkg/widgets/legend"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

// Demo: a scatter plot big enough that a full redraw is visibly slow,
// kept smooth while panning and zooming by an attached AxesCache.
func main() {
	a := app.NewWithID("com.chrisbeaumont.axescache")
	a.Settings().SetTheme(&theme.AxesTheme{})
	defer debug.Close()

	num := a.Preferences().IntWithFallback("pointCount", 100_000)
	mode := colors.StringToColorBlindMode(a.Preferences().StringWithFallback("colorMode", colors.Normal))

	ax := axes.NewAxes("demo", axes.WithColorBlindMode(mode))
	ax.AddSeries(randomScatter("scatter", num))
	ax.AutoScale()

	cache := axescache.New(ax, ax)
	ax.SetDrawHandler(cache)

	unsub := ebus.SubscribeAllFunc(func(topic string, value float64) {
		debug.Log(fmt.Sprintf("event %s %.0f", topic, value))
	})
	defer unsub()

	logY := widget.NewCheck("log y", func(on bool) {
		if on {
			ax.SetYScale(axescache.ScaleLog)
		} else {
			ax.SetYScale(axescache.ScaleLinear)
		}
		ax.Refresh()
	})

	rescale := widget.NewButton("autoscale", func() {
		ax.AutoScale()
		cache.Reset()
		ax.Refresh()
	})

	w := a.NewWindow("axescache")

	snap := widget.NewButton("snapshot", func() {
		name, err := capture.Screenshot(w.Canvas())
		if err != nil {
			log.Println("snapshot:", err)
			return
		}
		log.Println("saved", name)
	})

	w.SetContent(container.NewBorder(
		container.NewHBox(logY, rescale, snap),
		nil,
		nil,
		layout.NewFixedWidth(180, legend.New(ax)),
		ax,
	))
	w.Resize(fyne.NewSize(1024, 768))
	w.ShowAndRun()
}

// randomScatter mirrors the classic stress case: normally distributed
// points with random color values. Magnitudes picked so the y values
// stay positive for the log-scale toggle.
func randomScatter(name string, num int) *axes.Series {
	xs := make([]float64, num)
	ys := make([]float64, num)
	cs := make([]float64, num)
	for i := range xs {
		xs[i] = rand.NormFloat64()
		ys[i] = rand.ExpFloat64() + 0.01
		cs[i] = rand.Float64() * 255
	}
	s := axes.NewSeries(name, xs, ys)
	s.SetValues(cs)
	return s
}

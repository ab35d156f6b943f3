package axes

import (
	"math"
	"testing"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

func TestTransformRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		view axescache.View
		x, y float64
	}{
		{
			name: "linear center",
			view: axescache.View{XMin: 0, XMax: 10, YMin: 0, YMax: 10},
			x:    5, y: 5,
		},
		{
			name: "linear off center",
			view: axescache.View{XMin: -3, XMax: 7, YMin: 100, YMax: 200},
			x:    1.5, y: 140,
		},
		{
			name: "log y",
			view: axescache.View{XMin: 0, XMax: 10, YMin: 1, YMax: 1000, YScale: axescache.ScaleLog},
			x:    2, y: 50,
		},
		{
			name: "log both",
			view: axescache.View{XMin: 1, XMax: 100, YMin: 1, YMax: 100, XScale: axescache.ScaleLog, YScale: axescache.ScaleLog},
			x:    10, y: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTransform(tt.view, 200, 150)
			px, py := tr.DataToDevice(tt.x, tt.y)
			gx, gy := tr.DeviceToData(px, py)
			if math.Abs(gx-tt.x) > 1e-9 || math.Abs(gy-tt.y) > 1e-9 {
				t.Errorf("round trip (%f,%f) -> (%f,%f)", tt.x, tt.y, gx, gy)
			}
		})
	}
}

func TestTransformOrientation(t *testing.T) {
	v := axescache.View{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	tr := newTransform(v, 100, 100)

	px, py := tr.DataToDevice(0, 0)
	if px != 0 || py != 100 {
		t.Errorf("(XMin,YMin) = device (%f,%f), want (0,100)", px, py)
	}
	px, py = tr.DataToDevice(10, 10)
	if px != 100 || py != 0 {
		t.Errorf("(XMax,YMax) = device (%f,%f), want (100,0)", px, py)
	}
}

func TestZoomView(t *testing.T) {
	v := axescache.View{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	in := zoomView(v, 0.5)
	if math.Abs(in.XMin-2.5) > 1e-9 || math.Abs(in.XMax-7.5) > 1e-9 {
		t.Errorf("zoom in x = [%f,%f], want [2.5,7.5]", in.XMin, in.XMax)
	}

	out := zoomView(v, 2)
	if math.Abs(out.YMin+5) > 1e-9 || math.Abs(out.YMax-15) > 1e-9 {
		t.Errorf("zoom out y = [%f,%f], want [-5,15]", out.YMin, out.YMax)
	}

	// log axes zoom about the geometric center
	lv := axescache.View{XMin: 1, XMax: 100, YMin: 1, YMax: 100, XScale: axescache.ScaleLog, YScale: axescache.ScaleLog}
	lin := zoomView(lv, 0.5)
	if math.Abs(lin.XMin-math.Pow(10, 0.5)) > 1e-9 {
		t.Errorf("log zoom XMin = %f, want 10^0.5", lin.XMin)
	}
}

func TestTickValues(t *testing.T) {
	tests := []struct {
		name        string
		lo, hi      float64
		scale       axescache.Scale
		first, last float64
		count       int
	}{
		{name: "unit decade", lo: 0, hi: 10, first: 0, last: 10, count: 6},
		{name: "negative span", lo: -5, hi: 5, first: -4, last: 4, count: 5},
		{name: "log decades", lo: 1, hi: 1000, scale: axescache.ScaleLog, first: 1, last: 1000, count: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tickValues(tt.lo, tt.hi, tt.scale)
			if len(got) != tt.count {
				t.Fatalf("tick count = %d (%v), want %d", len(got), got, tt.count)
			}
			if math.Abs(got[0]-tt.first) > 1e-6 {
				t.Errorf("first tick = %f, want %f", got[0], tt.first)
			}
			if math.Abs(got[len(got)-1]-tt.last) > tt.last*1e-6+1e-6 {
				t.Errorf("last tick = %f, want %f", got[len(got)-1], tt.last)
			}
		})
	}
}

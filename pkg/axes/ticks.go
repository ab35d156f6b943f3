package axes

import (
	"math"
	"strconv"

	"github.com/ChrisBeaumont/axescache/pkg/axescache"
)

// tickValues returns the tick locations for one axis. Linear axes get
// round steps; log axes get round steps in log10 space, which lands on
// decades whenever the span allows.
func tickValues(lo, hi float64, s axescache.Scale) []float64 {
	a, b := scaled(lo, s), scaled(hi, s)
	if b <= a {
		return nil
	}
	step := niceStep(b - a)
	var ticks []float64
	for v := math.Ceil(a/step) * step; v <= b+step*1e-9; v += step {
		ticks = append(ticks, unscaled(v, s))
		if len(ticks) > 12 {
			break
		}
	}
	return ticks
}

// niceStep picks a 1/2/5 step that yields around five ticks.
func niceStep(span float64) float64 {
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag < 1.5:
		return mag
	case raw/mag < 3:
		return 2 * mag
	case raw/mag < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}

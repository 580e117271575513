// Package physics maps financial metrics to visual and physical bubble
// properties. Every function here is pure: the same inputs always produce
// the same outputs, and missing metrics fall back to fixed defaults.
package physics

import (
	"fmt"
	"math"
)

// Normalize rescales value from [min, max] to [targetMin, targetMax].
// When min equals max there is no range to project from, so the target
// minimum is returned instead of dividing by zero.
func Normalize(value, min, max, targetMin, targetMax float64) float64 {
	if max == min {
		return targetMin
	}
	n := (value - min) / (max - min)
	return targetMin + n*(targetMax-targetMin)
}

// Color maps daily performance to an HSL color string.
//
// The hue runs from deep blue (strong losses) through cyan and yellow to
// red (strong gains). Saturation grows with the absolute Rule of 40 score,
// so companies with extreme growth/profitability balance render more vivid.
func Color(changePct, ruleOf40 float64) string {
	var hue int
	switch {
	case changePct >= 3:
		hue = 0 // red, strong gains
	case changePct >= 1:
		hue = 30 // orange
	case changePct >= 0:
		hue = 50 // yellow
	case changePct >= -1:
		hue = 180 // cyan
	case changePct >= -3:
		hue = 200 // light blue
	default:
		hue = 220 // deep blue, strong losses
	}

	saturation := math.Min(100, math.Max(40, 50+math.Abs(ruleOf40)/2))

	// Fixed lightness keeps every bubble visible on the dark background.
	const lightness = 60

	return fmt.Sprintf("hsl(%d, %.0f%%, %d%%)", hue, saturation, lightness)
}

// Glow converts a Rule of 40 score into a glow intensity in [0.1, 1.0].
// Scores of 40 and above are considered good and glow at half strength or
// more; negative scores barely glow at all.
func Glow(ruleOf40 float64) float64 {
	switch {
	case ruleOf40 >= 80:
		return 1.0
	case ruleOf40 >= 40:
		return 0.5 + (ruleOf40-40)/80
	case ruleOf40 >= 0:
		return 0.2 + (ruleOf40/40)*0.3
	default:
		return 0.1
	}
}

// BubbleSize maps market capitalization to a marker diameter in pixels.
// Capitalizations span several orders of magnitude, so sizes are assigned
// on a log10 scale normalized over the whole snapshot into [10, 60].
// Non-positive caps get a fixed minimal size of 5.
func BubbleSize(marketCap float64, allCaps []float64) float64 {
	if marketCap <= 0 {
		return 5
	}

	logCap := math.Log10(marketCap + 1)
	minLog, maxLog := logCap, logCap
	for i, c := range allCaps {
		l := math.Log10(c + 1)
		if i == 0 {
			minLog, maxLog = l, l
			continue
		}
		if l < minLog {
			minLog = l
		}
		if l > maxLog {
			maxLog = l
		}
	}

	return Normalize(logCap, minLog, maxLog, 10, 60)
}

// PulseSpeed maps trading volume to an animation speed multiplier in
// [0.5, 3.0]. Without volume data the pulse runs at normal speed.
func PulseSpeed(volume float64, allVolumes []float64) float64 {
	if len(allVolumes) == 0 || volume <= 0 {
		return 1.0
	}
	minV, maxV := allVolumes[0], allVolumes[0]
	for _, v := range allVolumes[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return Normalize(volume, minV, maxV, 0.5, 3.0)
}

// Opacity maps the debt-to-equity ratio to a transparency level. Healthy
// balance sheets stay fully opaque; heavily indebted companies fade toward
// a ghostly 0.4.
func Opacity(debtToEquity float64) float64 {
	switch {
	case debtToEquity <= 0:
		return 1.0
	case debtToEquity <= 50:
		return 1.0
	case debtToEquity <= 150:
		return 0.9 - (debtToEquity-50)/100*0.3
	default:
		return math.Max(0.4, 0.6-(debtToEquity-150)/200*0.2)
	}
}

// Velocity derives a 2-D velocity vector from revenue growth and price
// momentum. Growing companies drift up and to the right at a speed
// proportional to their growth; shrinking ones drift down-left. Momentum
// adds a vertical component.
func Velocity(revenueGrowth, momentum float64) (vx, vy float64) {
	speed := math.Abs(revenueGrowth) / 20

	angle := 45.0
	if revenueGrowth < 0 {
		angle = -135.0
	}
	rad := angle * math.Pi / 180

	vx = speed * math.Cos(rad)
	vy = speed*math.Sin(rad) + momentum/100
	return vx, vy
}

// Elasticity maps 52-week volatility to a bounce factor in [0.3, 1.0].
// Volatile stocks bounce hard off the field boundary; with no volatility
// data a neutral 0.5 is used.
func Elasticity(volatility float64) float64 {
	if volatility <= 0 {
		return 0.5
	}
	return math.Min(1.0, 0.3+volatility/100)
}

package physics

import (
	"hash/fnv"
	"math/rand"

	"stockradar/internal/feature/snapshot/domain/entity"
)

// Bubble is the full visual tuple for one stock: rendering properties plus
// position and velocity inside the radar field.
type Bubble struct {
	Ticker     string  `json:"ticker"`
	Color      string  `json:"color"`
	Size       float64 `json:"size"`
	Glow       float64 `json:"glow"`
	Opacity    float64 `json:"opacity"`
	PulseSpeed float64 `json:"pulse_speed"`
	Elasticity float64 `json:"elasticity"`

	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Mode selects which metric drives the attraction clustering.
type Mode string

const (
	ModeNone   Mode = "none"
	ModeValue  Mode = "value"  // high Rule of 40 stocks attract
	ModeGrowth Mode = "growth" // high revenue growth stocks attract
	ModeProfit Mode = "profit" // high operating margin stocks attract
	ModeSize   Mode = "size"   // large market cap stocks attract
)

// Bounds limits bubble movement to a rectangle.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Compute derives the visual tuple for every stock in the snapshot.
// Bubbles come back in the same order as the input; positions are zero
// until Place is called.
func Compute(stocks []entity.Stock) []Bubble {
	caps := make([]float64, len(stocks))
	vols := make([]float64, len(stocks))
	for i, s := range stocks {
		caps[i] = s.MarketCap
		vols[i] = float64(s.Volume)
	}

	bubbles := make([]Bubble, len(stocks))
	for i, s := range stocks {
		vx, vy := Velocity(s.RevenueGrowth, s.MonthChange)
		bubbles[i] = Bubble{
			Ticker:     s.Ticker,
			Color:      Color(s.ChangePct, s.RuleOf40),
			Size:       BubbleSize(s.MarketCap, caps),
			Glow:       Glow(s.RuleOf40),
			Opacity:    Opacity(s.DebtToEquity),
			PulseSpeed: PulseSpeed(float64(s.Volume), vols),
			Elasticity: Elasticity(s.Volatility),
			VX:         vx,
			VY:         vy,
		}
	}
	return bubbles
}

// Seed derives a deterministic layout seed from the snapshot identity.
// The same set of tickers fetched at the same time always yields the same
// initial placement, while each refresh reshuffles the field.
func Seed(stocks []entity.Stock) int64 {
	h := fnv.New64a()
	for _, s := range stocks {
		h.Write([]byte(s.Ticker))
		h.Write([]byte{0})
	}
	if len(stocks) > 0 {
		var buf [8]byte
		ts := stocks[0].FetchedAt.Unix()
		for i := 0; i < 8; i++ {
			buf[i] = byte(ts >> (8 * i))
		}
		h.Write(buf[:])
	}
	return int64(h.Sum64())
}

// Place assigns initial positions inside a width x height field, keeping a
// margin of 10 from the edges. Placement is pseudo-random but fully
// determined by seed.
func Place(bubbles []Bubble, width, height float64, seed int64) {
	const margin = 10
	rng := rand.New(rand.NewSource(seed))
	for i := range bubbles {
		bubbles[i].X = margin + rng.Float64()*(width-2*margin)
		bubbles[i].Y = margin + rng.Float64()*(height-2*margin)
	}
}

// Weights extracts the attraction weight for each stock under the given
// mode, min-max normalized into [0, 1]. An unknown mode returns nil,
// meaning no attraction.
func Weights(stocks []entity.Stock, mode Mode) []float64 {
	raw := make([]float64, len(stocks))
	switch mode {
	case ModeValue:
		for i, s := range stocks {
			raw[i] = s.RuleOf40
		}
	case ModeGrowth:
		for i, s := range stocks {
			raw[i] = s.RevenueGrowth
		}
	case ModeProfit:
		for i, s := range stocks {
			raw[i] = s.OperatingMargin
		}
	case ModeSize:
		for i, s := range stocks {
			raw[i] = s.MarketCap
		}
	default:
		return nil
	}

	if len(raw) == 0 {
		return raw
	}
	minW, maxW := raw[0], raw[0]
	for _, w := range raw[1:] {
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
	}
	// The small epsilon keeps a flat metric from collapsing to 0/0.
	span := maxW - minW + 0.001
	for i := range raw {
		raw[i] = (raw[i] - minW) / span
	}
	return raw
}

// Attract pulls bubbles toward the weighted center of mass of the
// high-weight cluster (weights above 0.7). Low-weight bubbles feel the
// strongest pull; the cluster itself barely moves. A nil or empty weight
// slice leaves all velocities untouched.
func Attract(bubbles []Bubble, weights []float64, strength float64) {
	if len(weights) != len(bubbles) {
		return
	}

	var cx, cy, total float64
	for i, w := range weights {
		if w > 0.7 {
			cx += bubbles[i].X * w
			cy += bubbles[i].Y * w
			total += w
		}
	}
	if total == 0 {
		return
	}
	cx /= total
	cy /= total

	for i := range bubbles {
		pull := strength * (1 - weights[i])
		bubbles[i].VX += (cx - bubbles[i].X) * pull
		bubbles[i].VY += (cy - bubbles[i].Y) * pull
	}
}

// Step advances every bubble by dt, bouncing off the bounds with each
// bubble's own elasticity and applying a slight damping so the field
// eventually settles.
func Step(bubbles []Bubble, dt float64, bounds Bounds) {
	const damping = 0.98

	for i := range bubbles {
		b := &bubbles[i]
		b.X += b.VX * dt
		b.Y += b.VY * dt

		if b.X < bounds.MinX {
			b.X = bounds.MinX
			b.VX *= -b.Elasticity
		} else if b.X > bounds.MaxX {
			b.X = bounds.MaxX
			b.VX *= -b.Elasticity
		}

		if b.Y < bounds.MinY {
			b.Y = bounds.MinY
			b.VY *= -b.Elasticity
		} else if b.Y > bounds.MaxY {
			b.Y = bounds.MaxY
			b.VY *= -b.Elasticity
		}

		b.VX *= damping
		b.VY *= damping
	}
}

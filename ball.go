package herofx

import (
	"math"
	"math/rand/v2"
)

// Ball is the eroding ball. Velocity is in pixels per tick.
type Ball struct {
	X, Y   float64
	DX, DY float64
	Radius float64
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Physics holds the bounce rules of the ball.
type Physics struct {
	Bounce   float64 // multiplier applied on every bounce
	MaxSpeed float64 // velocity magnitude cap
	Jitter   float64 // width of the uniform noise added on cell hits
	Rand     *rand.Rand
}

// NewPhysics builds physics from config. A nil rng gets a random seed.
func NewPhysics(cfg PongConfig, rng *rand.Rand) Physics {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return Physics{
		Bounce:   cfg.Bounce,
		MaxSpeed: cfg.MaxSpeed,
		Jitter:   cfg.Jitter,
		Rand:     rng,
	}
}

// Step advances the ball one tick inside a w×h canvas and strikes every
// unhit cell under its bounding box. It returns the number of cells struck.
func (p Physics) Step(b *Ball, cells []Cell, w, h float64) int {
	b.X += b.DX
	b.Y += b.DY

	if b.Y-b.Radius < 0 || b.Y+b.Radius > h {
		b.DY = -b.DY * p.Bounce
		b.DX *= p.Bounce
	}
	if b.X-b.Radius < 0 || b.X+b.Radius > w {
		b.DX = -b.DX * p.Bounce
		b.DY *= p.Bounce
	}
	p.capSpeed(b)

	b.X = math.Max(b.Radius, math.Min(w-b.Radius, b.X))
	b.Y = math.Max(b.Radius, math.Min(h-b.Radius, b.Y))

	hits := 0
	for i := range cells {
		c := &cells[i]
		if c.Hit || !ballOverlaps(b, c) {
			continue
		}
		c.Hit = true
		hits++
		cx := float64(c.X) + float64(c.Size)/2
		cy := float64(c.Y) + float64(c.Size)/2
		jitter := (p.Rand.Float64() - 0.5) * p.Jitter
		if math.Abs(b.X-cx) > math.Abs(b.Y-cy) {
			b.DX = -b.DX * p.Bounce
			b.DY += jitter
		} else {
			b.DY = -b.DY * p.Bounce
			b.DX += jitter
		}
	}
	if hits > 0 {
		// Cell bounces and jitter may push past the cap again.
		p.capSpeed(b)
	}
	return hits
}

func (p Physics) capSpeed(b *Ball) {
	spd := b.Speed()
	if spd > p.MaxSpeed {
		k := p.MaxSpeed / spd
		b.DX *= k
		b.DY *= k
	}
}

func ballOverlaps(b *Ball, c *Cell) bool {
	x, y, s := float64(c.X), float64(c.Y), float64(c.Size)
	return b.X+b.Radius > x && b.X-b.Radius < x+s &&
		b.Y+b.Radius > y && b.Y-b.Radius < y+s
}

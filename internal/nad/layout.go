package nad

import (
	"context"
	"math"
	"math/rand"

	"github.com/bft-labs/gridsim/internal/domain"
)

const (
	minCanvas = 800
	// pxPerNode scales the automatic canvas with the square root of the node count
	pxPerNode = 120
	padding   = 60
	// transformerPull multiplies the attraction along transformer edges so
	// the voltage levels of a substation stay together
	transformerPull = 4
)

// canvasSize returns the configured size, or one derived from the node count.
func (p Parameters) canvasSize(nodes int) (int, int) {
	side := int(math.Max(minCanvas, pxPerNode*math.Sqrt(float64(nodes))))
	w, h := p.Width, p.Height
	if w == 0 {
		w = side
	}
	if h == 0 {
		h = side
	}
	return w, h
}

// layout places the vertices with the Fruchterman-Reingold algorithm:
// every pair repels, every edge attracts, and the step size cools down.
// The random source is seeded from the parameters so the result only
// depends on the graph.
func layout(ctx context.Context, g *graph, p Parameters, width, height float64) error {
	n := len(g.vertices)
	switch n {
	case 0:
		return nil
	case 1:
		g.vertices[0].x, g.vertices[0].y = width/2, height/2
		return nil
	}

	rng := rand.New(rand.NewSource(p.Seed))
	for _, v := range g.vertices {
		v.x = rng.Float64()*(width-2*padding) + padding
		v.y = rng.Float64()*(height-2*padding) + padding
	}

	k := math.Sqrt(width * height / float64(n))
	temperature := width / 10
	fx := make([]float64, n)
	fy := make([]float64, n)

	for iter := 0; iter < p.LayoutIterations; iter++ {
		if iter%50 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for i := range fx {
			fx[i], fy[i] = 0, 0
		}

		// Repulsion between all pairs
		for i := 0; i < n; i++ {
			vi := g.vertices[i]
			for j := i + 1; j < n; j++ {
				vj := g.vertices[j]
				dx, dy := vi.x-vj.x, vi.y-vj.y
				dist := math.Max(math.Hypot(dx, dy), 0.01)
				force := k * k / dist
				fx[i] += dx / dist * force
				fy[i] += dy / dist * force
				fx[j] -= dx / dist * force
				fy[j] -= dy / dist * force
			}
		}

		// Attraction along edges
		for _, e := range g.edges {
			va, vb := g.vertices[e.a], g.vertices[e.b]
			dx, dy := va.x-vb.x, va.y-vb.y
			dist := math.Hypot(dx, dy)
			if dist < 0.01 {
				continue
			}
			force := dist * dist / k
			if e.br.Kind == domain.BranchTransformer {
				force *= transformerPull
			}
			fx[e.a] -= dx / dist * force
			fy[e.a] -= dy / dist * force
			fx[e.b] += dx / dist * force
			fy[e.b] += dy / dist * force
		}

		// Move with cooling
		cool := 1 - float64(iter)/float64(p.LayoutIterations)
		for i, v := range g.vertices {
			force := math.Hypot(fx[i], fy[i])
			if force == 0 {
				continue
			}
			step := math.Min(force, temperature) * cool
			v.x += fx[i] / force * step
			v.y += fy[i] / force * step
		}
		temperature *= 0.95
	}

	normalize(g, width, height)
	return nil
}

// normalize scales the positions to fit the canvas inside the padding.
func normalize(g *graph, width, height float64) {
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, v := range g.vertices {
		minX, maxX = math.Min(minX, v.x), math.Max(maxX, v.x)
		minY, maxY = math.Min(minY, v.y), math.Max(maxY, v.y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}
	targetW, targetH := width-2*padding, height-2*padding
	for _, v := range g.vertices {
		v.x = padding + (v.x-minX)/rangeX*targetW
		v.y = padding + (v.y-minY)/rangeY*targetH
	}
}

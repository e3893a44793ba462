package traffic

import (
	"github.com/samber/lo"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

// RandomSource yields uniform integers in [0, n). *math/rand.Rand
// satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// City holds every intersection of a grid in row-major order.
type City struct {
	Rows, Cols    int
	Intersections []*Intersection
}

// NewCity allocates empty intersections for g.
func NewCity(g *graph.Graph) *City {
	return &City{
		Rows: g.Rows,
		Cols: g.Cols,
		Intersections: lo.Times(g.Len(), func(id int) *Intersection {
			return NewIntersection(id)
		}),
	}
}

// Len returns the number of intersections.
func (c *City) Len() int { return len(c.Intersections) }

// At returns intersection id.
func (c *City) At(id int) *Intersection { return c.Intersections[id] }

// Seed fills every approach with a random queue in [0, bound).
// A non-positive bound leaves the queues untouched.
func (c *City) Seed(rnd RandomSource, bound int) {
	if bound <= 0 {
		return
	}
	for _, in := range c.Intersections {
		for _, d := range graph.Directions {
			in.Queues[d] = rnd.Intn(bound)
		}
	}
}

// Congestion snapshots each intersection's total queue, indexed by id.
// Path queries read this copy so later service cannot change the answer.
func (c *City) Congestion() []int {
	return lo.Map(c.Intersections, func(in *Intersection, _ int) int {
		return in.TotalQueue()
	})
}

// TotalQueue sums queues over the whole city.
func (c *City) TotalQueue() int { return lo.Sum(c.Congestion()) }

// Clone deep-copies the city state.
func (c *City) Clone() *City {
	return &City{
		Rows: c.Rows,
		Cols: c.Cols,
		Intersections: lo.Map(c.Intersections, func(in *Intersection, _ int) *Intersection {
			cp := *in
			return &cp
		}),
	}
}

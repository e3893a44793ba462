package signal

import (
	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/traffic"
)

// Mode is an intersection's control state for the current cycle.
type Mode int

const (
	// Normal splits the cycle proportionally to queues.
	Normal Mode = iota
	// Overridden hands the whole cycle to one approach for an emergency.
	Overridden
)

func (m Mode) String() string {
	if m == Overridden {
		return "overridden"
	}
	return "normal"
}

// ResetPreemption returns every intersection to Normal.
func ResetPreemption(city *traffic.City) {
	for _, in := range city.Intersections {
		in.ClearPreemption()
	}
}

// Preempt flags, for each hop u->v of route, the approach of u pointing
// towards v. The route is checked before any flag is written.
func Preempt(g *graph.Graph, city *traffic.City, route []int) error {
	for _, id := range route {
		if !g.Contains(id) {
			return graph.NewNodeOutOfRangeError(id, g.Len())
		}
	}
	for i := 1; i < len(route); i++ {
		u, v := route[i-1], route[i]
		d, ok := g.DirectionBetween(u, v)
		if !ok {
			continue
		}
		city.At(u).Preempt[d] = true
	}
	return nil
}

// Decision is the controller output for one intersection and cycle.
type Decision struct {
	Mode  Mode
	Times Allocation
	Green graph.Direction
}

// Decide runs the allocator, unless the intersection is preempted, in
// which case the first flagged approach (N, S, E, W order) takes the
// whole cycle. Any further flags on the same intersection are ignored.
func Decide(in *traffic.Intersection, cycleSeconds int) Decision {
	if d, ok := in.Preempted(); ok {
		var times Allocation
		times[d] = cycleSeconds
		return Decision{Mode: Overridden, Times: times, Green: d}
	}
	times := AllocateGreenTimes(in.Queues, cycleSeconds)
	return Decision{Mode: Normal, Times: times, Green: GreenDirection(times)}
}

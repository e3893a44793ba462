package traffic

import (
	"github.com/samber/lo"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

// Intersection stores the queue state of one grid node.
type Intersection struct {
	ID int

	// Queues holds waiting vehicles per approach; never negative.
	Queues [graph.NumDirections]int

	// Green is the approach shown as green for the last cycle, or -1
	// before the first cycle. Reporting only.
	Green graph.Direction

	// Preempt marks approaches claimed by an emergency route this cycle.
	Preempt [graph.NumDirections]bool
}

// NewIntersection returns an empty intersection with no green marker.
func NewIntersection(id int) *Intersection {
	return &Intersection{ID: id, Green: NoGreen}
}

// NoGreen marks an intersection that has not been allocated yet.
const NoGreen graph.Direction = -1

// TotalQueue sums all four approaches.
func (in *Intersection) TotalQueue() int { return lo.Sum(in.Queues[:]) }

// Queue returns the queue of approach d.
func (in *Intersection) Queue(d graph.Direction) int { return in.Queues[d] }

// Arrive adds n vehicles to approach d.
func (in *Intersection) Arrive(d graph.Direction, n int) {
	if n > 0 {
		in.Queues[d] += n
	}
}

// Discharge removes up to capacity vehicles from approach d and returns
// how many left.
func (in *Intersection) Discharge(d graph.Direction, capacity int) int {
	served := min(max(capacity, 0), in.Queues[d])
	in.Queues[d] -= served
	return served
}

// ClearPreemption drops all preemption flags.
func (in *Intersection) ClearPreemption() { in.Preempt = [graph.NumDirections]bool{} }

// Preempted returns the first flagged approach in N, S, E, W order.
func (in *Intersection) Preempted() (graph.Direction, bool) {
	for _, d := range graph.Directions {
		if in.Preempt[d] {
			return d, true
		}
	}
	return graph.North, false
}

// Package signal decides how each intersection splits its cycle among the
// four approaches.
package signal

import (
	"math"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

// Allocation is green seconds per approach, indexed by graph.Direction.
type Allocation [graph.NumDirections]int

// Sum returns the total allocated seconds.
func (a Allocation) Sum() int {
	return a[graph.North] + a[graph.South] + a[graph.East] + a[graph.West]
}

// AllocateGreenTimes splits cycleSeconds among the approaches in
// proportion to queues. The result always sums to cycleSeconds.
//
// An idle intersection gets cycleSeconds/4 per approach with the
// remainder on North. Otherwise each approach receives
// max(1, round(share*T)) and a correction pass trims or pads until the
// sum is exact: surplus is taken one second at a time from the approach
// with the smallest queue still above one second, deficit is given to the
// approach with the largest queue. Ties go to the earlier of N, S, E, W.
func AllocateGreenTimes(queues [graph.NumDirections]int, cycleSeconds int) Allocation {
	var times Allocation
	total := 0
	for _, q := range queues {
		total += q
	}

	if total == 0 {
		for _, d := range graph.Directions {
			times[d] = cycleSeconds / graph.NumDirections
		}
		times[graph.North] += cycleSeconds % graph.NumDirections
		return times
	}

	assigned := 0
	for _, d := range graph.Directions {
		ratio := float64(queues[d]) / float64(total)
		times[d] = max(1, int(math.Round(ratio*float64(cycleSeconds))))
		assigned += times[d]
	}

	for assigned > cycleSeconds {
		idx := trimCandidate(queues, times, 1)
		if idx == -1 {
			break
		}
		times[idx]--
		assigned--
	}
	// Only cycles shorter than four seconds get here with a surplus: the
	// one-second floor cannot hold, so it gives way to the exact sum.
	for assigned > cycleSeconds {
		idx := trimCandidate(queues, times, 0)
		if idx == -1 {
			break // negative cycleSeconds
		}
		times[idx]--
		assigned--
	}

	for assigned < cycleSeconds {
		idx, bestQ := 0, -1
		for _, d := range graph.Directions {
			if queues[d] > bestQ {
				idx, bestQ = int(d), queues[d]
			}
		}
		times[idx]++
		assigned++
	}

	return times
}

// trimCandidate picks the approach with the smallest queue whose
// allocation is above floor, or -1.
func trimCandidate(queues [graph.NumDirections]int, times Allocation, floor int) int {
	idx, bestQ := -1, math.MaxInt
	for _, d := range graph.Directions {
		if times[d] > floor && queues[d] < bestQ {
			idx, bestQ = int(d), queues[d]
		}
	}
	return idx
}

// GreenDirection is the approach with the largest allocation, lowest
// index on ties.
func GreenDirection(a Allocation) graph.Direction {
	best := graph.North
	for _, d := range graph.Directions[1:] {
		if a[d] > a[best] {
			best = d
		}
	}
	return best
}

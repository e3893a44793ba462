package simulation

import (
	"fmt"
	"math"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/signal"
	"github.com/ardalan-sia/gridsignal/pkg/traffic"
)

// serviceEpsilon keeps products like 0.1*30 from flooring to 2.
const serviceEpsilon = 1e-9

// Options are the per-cycle signal parameters.
type Options struct {
	CycleSeconds      int
	ServiceRate       float64 // vehicles per green second
	MaxArrivalPerLane int     // arrivals drawn uniformly from [0, max]
}

// Validate rejects options the cycle model cannot run with.
func (o Options) Validate() error {
	if o.CycleSeconds < 1 {
		return NewConfigError("cycle_seconds", o.CycleSeconds, "must be at least 1")
	}
	if o.ServiceRate < 0 || math.IsNaN(o.ServiceRate) || math.IsInf(o.ServiceRate, 0) {
		return NewConfigError("service_rate", o.ServiceRate, "must be a finite non-negative number")
	}
	if o.MaxArrivalPerLane < 0 || o.MaxArrivalPerLane == math.MaxInt {
		return NewConfigError("max_arrival_per_lane", o.MaxArrivalPerLane,
			fmt.Sprintf("must be within [0, %d]", math.MaxInt-1))
	}
	return nil
}

// NodeReport records what happened at one intersection in a cycle.
type NodeReport struct {
	Decision signal.Decision
	Arrived  [graph.NumDirections]int
	Served   [graph.NumDirections]int
}

// CycleReport is the outcome of one RunCycle call.
type CycleReport struct {
	Nodes    []NodeReport // indexed by node id
	Route    []int        // emergency route applied, if any
	Arrived  int
	Served   int
	QueueSum int
}

// ServiceCapacity is the number of whole vehicles dischargeable in
// seconds of green. Capacities beyond the int range saturate at
// math.MaxInt.
func ServiceCapacity(rate float64, seconds int) int {
	f := math.Floor(rate*float64(seconds) + serviceEpsilon)
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// RunCycle advances every intersection by one cycle in row-major order:
// random arrivals, preemption for route (may be nil), allocation and
// service. The totals are folded into m when m is non-nil. Options, city
// size and route are all checked before any queue changes.
func RunCycle(g *graph.Graph, city *traffic.City, opts Options, route []int, rnd traffic.RandomSource, m *Metrics) (*CycleReport, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if city.Len() != g.Len() {
		return nil, NewConfigError("city", city.Len(), "intersection count does not match the grid")
	}
	for _, id := range route {
		if !g.Contains(id) {
			return nil, graph.NewNodeOutOfRangeError(id, g.Len())
		}
	}

	rep := &CycleReport{
		Nodes: make([]NodeReport, city.Len()),
		Route: route,
	}

	for id, in := range city.Intersections {
		for _, d := range graph.Directions {
			arr := rnd.Intn(opts.MaxArrivalPerLane + 1)
			in.Arrive(d, arr)
			rep.Nodes[id].Arrived[d] = arr
			rep.Arrived += arr
		}
	}

	signal.ResetPreemption(city)
	if len(route) > 0 {
		if err := signal.Preempt(g, city, route); err != nil {
			return nil, err
		}
	}

	for id, in := range city.Intersections {
		nr := &rep.Nodes[id]
		nr.Decision = signal.Decide(in, opts.CycleSeconds)
		in.Green = nr.Decision.Green

		for _, d := range graph.Directions {
			served := in.Discharge(d, ServiceCapacity(opts.ServiceRate, nr.Decision.Times[d]))
			nr.Served[d] = served
			rep.Served += served
		}
		rep.QueueSum += in.TotalQueue()
	}

	if m != nil {
		m.Record(rep)
	}
	return rep, nil
}

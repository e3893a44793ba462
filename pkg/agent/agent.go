package agent

import (
	"fmt"
	"strings"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

// RoutePolicy selects which planned path a responder drives.
type RoutePolicy string

const (
	Shortest   RoutePolicy = "shortest"
	Congestion RoutePolicy = "congestion"
)

// ParsePolicy accepts a policy name, case-insensitively.
func ParsePolicy(s string) (RoutePolicy, error) {
	switch p := RoutePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case Shortest, Congestion:
		return p, nil
	}
	return "", fmt.Errorf("unknown route policy %q (want %q or %q)", s, Shortest, Congestion)
}

// Responder models one emergency vehicle crossing the grid.
type Responder struct {
	Source      int
	Destination int

	// TriggerCycle is the 1-based cycle in which the vehicle crosses.
	TriggerCycle int

	Policy RoutePolicy
}

// Route is one planned path and what it costs under the congestion
// weighting at planning time.
type Route struct {
	Nodes []int
	Hops  int
	Cost  int
}

// Dispatch holds both planned paths and the one chosen by policy.
type Dispatch struct {
	Shortest   Route
	Congestion Route
	Policy     RoutePolicy
}

// Chosen returns the route selected by the dispatch policy, or an empty
// Route when the policy is not recognised.
func (d *Dispatch) Chosen() Route {
	switch d.Policy {
	case Shortest:
		return d.Shortest
	case Congestion:
		return d.Congestion
	}
	return Route{}
}

// Validate checks the endpoints against g.
func (r *Responder) Validate(g *graph.Graph) error {
	if !g.Contains(r.Source) {
		return graph.NewNodeOutOfRangeError(r.Source, g.Len())
	}
	if !g.Contains(r.Destination) {
		return graph.NewNodeOutOfRangeError(r.Destination, g.Len())
	}
	return nil
}

// Plan computes the plain and the congestion-aware path from a single
// queue snapshot so both are costed against the same instant. An empty
// policy means Congestion; any other unknown policy is an error.
func (r *Responder) Plan(g *graph.Graph, load []int) (*Dispatch, error) {
	policy := Congestion
	if r.Policy != "" {
		p, err := ParsePolicy(string(r.Policy))
		if err != nil {
			return nil, err
		}
		policy = p
	}
	weight := graph.CongestionWeight(load)

	short, err := g.ShortestPath(r.Source, r.Destination)
	if err != nil {
		return nil, fmt.Errorf("shortest path: %w", err)
	}
	aware, err := g.CongestionAwarePath(r.Source, r.Destination, load)
	if err != nil {
		return nil, fmt.Errorf("congestion-aware path: %w", err)
	}

	return &Dispatch{
		Shortest:   newRoute(g, short, weight),
		Congestion: newRoute(g, aware, weight),
		Policy:     policy,
	}, nil
}

func newRoute(g *graph.Graph, nodes []int, weight func(graph.Edge) int) Route {
	return Route{
		Nodes: nodes,
		Hops:  max(len(nodes)-1, 0),
		Cost:  g.PathCost(nodes, weight),
	}
}

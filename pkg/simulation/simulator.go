package simulation

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ardalan-sia/gridsignal/pkg/agent"
	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/traffic"
)

// Observer is called after every completed cycle.
type Observer func(cycle int, rep *CycleReport, d *agent.Dispatch)

type Simulator struct {
	RunID   uuid.UUID
	Graph   *graph.Graph
	City    *traffic.City
	Options Options
	Metrics *Metrics

	rnd       traffic.RandomSource
	responder *agent.Responder
	observer  Observer
	log       *slog.Logger
	cycle     int
}

// NewSimulator builds an empty city on g. A nil logger discards output.
func NewSimulator(g *graph.Graph, opts Options, rnd traffic.RandomSource, log *slog.Logger) (*Simulator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.New()
	return &Simulator{
		RunID:   id,
		Graph:   g,
		City:    traffic.NewCity(g),
		Options: opts,
		Metrics: &Metrics{},
		rnd:     rnd,
		log:     log.With("run_id", id.String()),
	}, nil
}

// Seed draws the initial queue of every lane from [0, bound).
func (s *Simulator) Seed(bound int) {
	s.City.Seed(s.rnd, bound)
	s.log.Debug("seeded initial queues", "bound", bound, "total_queue", s.City.TotalQueue())
}

// Dispatch schedules an emergency vehicle. Only one can be active.
func (s *Simulator) Dispatch(r *agent.Responder) error {
	if err := r.Validate(s.Graph); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	if r.TriggerCycle < 1 {
		return NewConfigError("emergency_cycle", r.TriggerCycle, "must be at least 1")
	}
	s.responder = r
	return nil
}

// Observe installs fn as the per-cycle observer.
func (s *Simulator) Observe(fn Observer) { s.observer = fn }

// Cycle returns the number of completed cycles.
func (s *Simulator) Cycle() int { return s.cycle }

// Step runs one cycle. When the responder is due, both routes are planned
// from the queues as they stand before arrivals and the chosen one
// preempts its intersections for this cycle.
func (s *Simulator) Step() (*CycleReport, error) {
	next := s.cycle + 1

	var (
		route    []int
		dispatch *agent.Dispatch
	)
	if s.responder != nil && s.responder.TriggerCycle == next {
		d, err := s.responder.Plan(s.Graph, s.City.Congestion())
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", next, err)
		}
		dispatch = d
		route = d.Chosen().Nodes
		s.log.Info("emergency dispatched",
			"cycle", next,
			"policy", string(d.Policy),
			"shortest", d.Shortest.Nodes,
			"shortest_cost", d.Shortest.Cost,
			"congestion", d.Congestion.Nodes,
			"congestion_cost", d.Congestion.Cost,
		)
	}

	rep, err := RunCycle(s.Graph, s.City, s.Options, route, s.rnd, s.Metrics)
	if err != nil {
		return nil, fmt.Errorf("cycle %d: %w", next, err)
	}
	s.cycle = next

	s.log.Debug("cycle complete",
		"cycle", next,
		"arrived", rep.Arrived,
		"served", rep.Served,
		"queued", rep.QueueSum,
	)
	if s.observer != nil {
		s.observer(next, rep, dispatch)
	}
	return rep, nil
}

// Run executes cycles sequentially.
func (s *Simulator) Run(cycles int) error {
	if cycles < 0 {
		return NewConfigError("cycles", cycles, "must not be negative")
	}
	for i := 0; i < cycles; i++ {
		if _, err := s.Step(); err != nil {
			return err
		}
	}
	s.log.Info("simulation finished",
		"cycles", s.cycle,
		"arrived", s.Metrics.Arrived,
		"served", s.Metrics.Served,
		"avg_queue", s.Metrics.AverageQueue(),
	)
	return nil
}

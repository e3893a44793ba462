package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ardalan-sia/gridsignal/internal/config"
	"github.com/ardalan-sia/gridsignal/pkg/agent"
	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/report"
	"github.com/ardalan-sia/gridsignal/pkg/simulation"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gridsignal:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if cfg.Interactive {
		if err := config.Prompt(os.Stdin, os.Stdout, cfg); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := cfg.NewLogger(os.Stderr)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := graph.BuildGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}
	sim, err := simulation.NewSimulator(g, cfg.Options(), rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return err
	}
	log.Info("simulation configured",
		"run_id", sim.RunID.String(),
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"cycles", cfg.Cycles,
		"seed", seed,
	)

	if r, ok := cfg.Responder(); ok {
		if err := sim.Dispatch(r); err != nil {
			return err
		}
	}

	sim.Seed(cfg.InitialQueueBound)
	fmt.Println("\nInitial network state:")
	report.NetworkState(os.Stdout, sim.City, 0)

	sim.Observe(func(cycle int, _ *simulation.CycleReport, d *agent.Dispatch) {
		if d != nil {
			report.Dispatch(os.Stdout, cycle, d)
		}
		report.NetworkState(os.Stdout, sim.City, cycle)
	})
	if err := sim.Run(cfg.Cycles); err != nil {
		return err
	}

	fmt.Println()
	report.Summary(os.Stdout, sim.Metrics)
	return nil
}

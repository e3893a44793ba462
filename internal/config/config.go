package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ardalan-sia/gridsignal/pkg/agent"
	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/simulation"
)

const envPrefix = "GRIDSIGNAL_"

// getEnv reads GRIDSIGNAL_<key> or falls back to defaultValue.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(envPrefix + key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

type Config struct {
	Rows, Cols int
	Cycles     int

	CycleSeconds      int
	ServiceRate       float64
	MaxArrivalPerLane int
	InitialQueueBound int // exclusive; 0 starts with empty queues
	Seed              int64

	EmergencyCycle  int // 0 disables the emergency vehicle
	EmergencySource int
	EmergencyDest   int
	RoutePolicy     string

	LogLevel    string
	Interactive bool
}

// Default returns the built-in configuration: a 2x2 grid, one 30 s cycle.
func Default() Config {
	return Config{
		Rows:              2,
		Cols:              2,
		Cycles:            1,
		CycleSeconds:      30,
		ServiceRate:       0.5,
		MaxArrivalPerLane: 5,
		InitialQueueBound: 20,
		RoutePolicy:       string(agent.Congestion),
		LogLevel:          "info",
	}
}

// FromEnv overlays GRIDSIGNAL_* variables on c.
func FromEnv(c *Config) {
	c.Rows = getEnvAsInt("ROWS", c.Rows)
	c.Cols = getEnvAsInt("COLS", c.Cols)
	c.Cycles = getEnvAsInt("CYCLES", c.Cycles)
	c.CycleSeconds = getEnvAsInt("CYCLE_SECONDS", c.CycleSeconds)
	c.ServiceRate = getEnvAsFloat("SERVICE_RATE", c.ServiceRate)
	c.MaxArrivalPerLane = getEnvAsInt("MAX_ARRIVAL", c.MaxArrivalPerLane)
	c.InitialQueueBound = getEnvAsInt("INITIAL_QUEUE", c.InitialQueueBound)
	c.Seed = getEnvAsInt64("SEED", c.Seed)
	c.EmergencyCycle = getEnvAsInt("EMERGENCY_CYCLE", c.EmergencyCycle)
	c.EmergencySource = getEnvAsInt("EMERGENCY_SRC", c.EmergencySource)
	c.EmergencyDest = getEnvAsInt("EMERGENCY_DEST", c.EmergencyDest)
	c.RoutePolicy = getEnv("ROUTE_POLICY", c.RoutePolicy)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Interactive = getEnvAsBool("INTERACTIVE", c.Interactive)
}

// Load builds the configuration from defaults, the .env file named by
// GRIDSIGNAL_ENV_FILE (default ".env"), the environment and args, in
// increasing precedence. A missing .env file is not an error.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(getEnv("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	c := Default()
	FromEnv(&c)

	flags := flag.NewFlagSet("gridsignal", flag.ContinueOnError)
	flags.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	flags.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	flags.IntVar(&c.Cycles, "cycles", c.Cycles, "number of cycles to simulate")
	flags.IntVar(&c.CycleSeconds, "cycle-seconds", c.CycleSeconds, "cycle duration per intersection in seconds")
	flags.Float64Var(&c.ServiceRate, "service-rate", c.ServiceRate, "vehicles discharged per green second")
	flags.IntVar(&c.MaxArrivalPerLane, "max-arrival", c.MaxArrivalPerLane, "maximum arrivals per lane per cycle")
	flags.IntVar(&c.InitialQueueBound, "initial-queue", c.InitialQueueBound, "initial queues drawn from [0, n); 0 for empty")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one from the clock")
	flags.IntVar(&c.EmergencyCycle, "emergency-cycle", c.EmergencyCycle, "cycle in which the emergency vehicle crosses; 0 disables it")
	flags.IntVar(&c.EmergencySource, "emergency-src", c.EmergencySource, "emergency vehicle start node")
	flags.IntVar(&c.EmergencyDest, "emergency-dest", c.EmergencyDest, "emergency vehicle destination node")
	flags.StringVar(&c.RoutePolicy, "route-policy", c.RoutePolicy, "emergency route: shortest or congestion")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	flags.BoolVar(&c.Interactive, "interactive", c.Interactive, "prompt for grid and signal settings")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks every value before any simulation state exists.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return graph.NewInvalidDimensionError(c.Rows, c.Cols)
	}
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if c.Cycles < 0 {
		return simulation.NewConfigError("cycles", c.Cycles, "must not be negative")
	}
	if c.InitialQueueBound < 0 {
		return simulation.NewConfigError("initial_queue", c.InitialQueueBound, "must not be negative")
	}
	if _, err := agent.ParsePolicy(c.RoutePolicy); err != nil {
		return simulation.NewConfigError("route_policy", c.RoutePolicy, err.Error())
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return simulation.NewConfigError("log_level", c.LogLevel, err.Error())
	}
	if c.EmergencyCycle < 0 || c.EmergencyCycle > c.Cycles {
		return simulation.NewConfigError("emergency_cycle", c.EmergencyCycle,
			fmt.Sprintf("must be within [0, %d]", c.Cycles))
	}
	if c.EmergencyCycle > 0 {
		n := c.Rows * c.Cols
		for _, id := range []int{c.EmergencySource, c.EmergencyDest} {
			if id < 0 || id >= n {
				return graph.NewNodeOutOfRangeError(id, n)
			}
		}
	}
	return nil
}

// Options returns the per-cycle signal parameters.
func (c *Config) Options() simulation.Options {
	return simulation.Options{
		CycleSeconds:      c.CycleSeconds,
		ServiceRate:       c.ServiceRate,
		MaxArrivalPerLane: c.MaxArrivalPerLane,
	}
}

// Responder returns the configured emergency vehicle, if one is enabled.
// Call after Validate.
func (c *Config) Responder() (*agent.Responder, bool) {
	if c.EmergencyCycle == 0 {
		return nil, false
	}
	policy, _ := agent.ParsePolicy(c.RoutePolicy)
	return &agent.Responder{
		Source:       c.EmergencySource,
		Destination:  c.EmergencyDest,
		TriggerCycle: c.EmergencyCycle,
		Policy:       policy,
	}, true
}

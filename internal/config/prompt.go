package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ardalan-sia/gridsignal/pkg/simulation"
)

// Prompt asks for the grid and signal settings on w, reading answers
// from r. An empty answer keeps the current value. c is only updated
// once every answer has parsed.
func Prompt(r io.Reader, w io.Writer, c *Config) error {
	next := *c
	sc := bufio.NewScanner(r)
	ask := func(field, question string, apply func(string) error) error {
		fmt.Fprint(w, question)
		if !sc.Scan() {
			return sc.Err()
		}
		answer := strings.TrimSpace(sc.Text())
		if answer == "" {
			return nil
		}
		if err := apply(answer); err != nil {
			return simulation.NewConfigError(field, answer, "not a number")
		}
		return nil
	}
	intField := func(dst *int) func(string) error {
		return func(s string) error {
			v, err := strconv.Atoi(s)
			if err == nil {
				*dst = v
			}
			return err
		}
	}

	steps := []struct {
		field, question string
		apply           func(string) error
	}{
		{"rows", fmt.Sprintf("Enter grid rows R (default %d): ", c.Rows), intField(&next.Rows)},
		{"cols", fmt.Sprintf("Enter grid cols C (default %d): ", c.Cols), intField(&next.Cols)},
		{"cycles", fmt.Sprintf("Enter number of cycles (default %d): ", c.Cycles), intField(&next.Cycles)},
		{"cycle_seconds", fmt.Sprintf("Enter cycle time per intersection in seconds (default %d): ", c.CycleSeconds), intField(&next.CycleSeconds)},
		{"service_rate", fmt.Sprintf("Enter service rate (vehicles per second when green, default %g): ", c.ServiceRate), func(s string) error {
			v, err := strconv.ParseFloat(s, 64)
			if err == nil {
				next.ServiceRate = v
			}
			return err
		}},
	}
	for _, st := range steps {
		if err := ask(st.field, st.question, st.apply); err != nil {
			return err
		}
	}
	*c = next
	return nil
}

// Package report renders simulation state as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/ardalan-sia/gridsignal/pkg/agent"
	"github.com/ardalan-sia/gridsignal/pkg/graph"
	"github.com/ardalan-sia/gridsignal/pkg/simulation"
	"github.com/ardalan-sia/gridsignal/pkg/traffic"
)

const rule = "=============================="

// Node formats one intersection as "[Node 3] (N:1 S:0 E:4 W:2) G:E".
func Node(in *traffic.Intersection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Node %d] (N:%d S:%d E:%d W:%d)", in.ID,
		in.Queues[graph.North], in.Queues[graph.South], in.Queues[graph.East], in.Queues[graph.West])
	if in.Green.Valid() {
		fmt.Fprintf(&b, " G:%s", in.Green)
	}
	return b.String()
}

// NetworkState writes the whole grid, one row of intersections per line.
func NetworkState(w io.Writer, city *traffic.City, cycle int) {
	fmt.Fprintf(w, "\n=== Cycle %d Network State ===\n", cycle)
	for _, row := range lo.Chunk(city.Intersections, city.Cols) {
		cells := lo.Map(row, func(in *traffic.Intersection, _ int) string { return Node(in) })
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
	fmt.Fprintln(w, rule)
}

// Dispatch compares the two planned emergency routes.
func Dispatch(w io.Writer, cycle int, d *agent.Dispatch) {
	fmt.Fprintf(w, "\n*** Emergency vehicle crossing in cycle %d ***\n", cycle)
	fmt.Fprintf(w, "Shortest path:         %s (hops %d, congestion cost %d)\n",
		formatPath(d.Shortest.Nodes), d.Shortest.Hops, d.Shortest.Cost)
	fmt.Fprintf(w, "Congestion-aware path: %s (hops %d, congestion cost %d)\n",
		formatPath(d.Congestion.Nodes), d.Congestion.Hops, d.Congestion.Cost)
	fmt.Fprintf(w, "Applied: %s\n", d.Policy)
}

// Summary writes the run-wide counters.
func Summary(w io.Writer, m *simulation.Metrics) {
	fmt.Fprintf(w, "Cycles run: %d\n", m.Cycles)
	fmt.Fprintf(w, "Vehicles arrived: %d\n", m.Arrived)
	fmt.Fprintf(w, "Vehicles served: %d\n", m.Served)
	fmt.Fprintf(w, "Average queue per intersection: %.2f\n", m.AverageQueue())
}

func formatPath(nodes []int) string {
	if len(nodes) == 0 {
		return "(none)"
	}
	return strings.Join(lo.Map(nodes, func(n int, _ int) string { return fmt.Sprint(n) }), " -> ")
}

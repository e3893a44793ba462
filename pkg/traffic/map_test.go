package traffic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

func newCity(t *testing.T, rows, cols int) *City {
	t.Helper()
	g, err := graph.BuildGrid(rows, cols)
	require.NoError(t, err)
	return NewCity(g)
}

func TestNewCity(t *testing.T) {
	c := newCity(t, 2, 3)
	require.Equal(t, 6, c.Len())
	for id, in := range c.Intersections {
		assert.Equal(t, id, in.ID)
		assert.Equal(t, NoGreen, in.Green)
		assert.Zero(t, in.TotalQueue())
	}
}

func TestSeedBounds(t *testing.T) {
	c := newCity(t, 3, 3)
	c.Seed(rand.New(rand.NewSource(1)), 20)
	for _, in := range c.Intersections {
		for _, q := range in.Queues {
			assert.GreaterOrEqual(t, q, 0)
			assert.Less(t, q, 20)
		}
	}

	empty := newCity(t, 2, 2)
	empty.Seed(rand.New(rand.NewSource(1)), 0)
	assert.Zero(t, empty.TotalQueue())
}

func TestCongestionSnapshot(t *testing.T) {
	c := newCity(t, 1, 2)
	c.At(0).Queues = [4]int{1, 2, 3, 4}
	c.At(1).Queues = [4]int{0, 0, 7, 0}

	snap := c.Congestion()
	assert.Equal(t, []int{10, 7}, snap)
	assert.Equal(t, 17, c.TotalQueue())

	c.At(0).Discharge(graph.West, 4)
	assert.Equal(t, []int{10, 7}, snap, "snapshot must not follow later service")
}

func TestDischarge(t *testing.T) {
	in := NewIntersection(0)
	in.Arrive(graph.East, 5)
	in.Arrive(graph.East, -3)

	assert.Equal(t, 3, in.Discharge(graph.East, 3))
	assert.Equal(t, 2, in.Queue(graph.East))
	assert.Equal(t, 2, in.Discharge(graph.East, 10))
	assert.Zero(t, in.Queue(graph.East))
	assert.Zero(t, in.Discharge(graph.East, -1))
}

func TestPreempted(t *testing.T) {
	in := NewIntersection(0)
	_, ok := in.Preempted()
	assert.False(t, ok)

	in.Preempt[graph.West] = true
	in.Preempt[graph.South] = true
	d, ok := in.Preempted()
	assert.True(t, ok)
	assert.Equal(t, graph.South, d)

	in.ClearPreemption()
	_, ok = in.Preempted()
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	c := newCity(t, 2, 2)
	c.At(3).Queues[graph.North] = 9
	cp := c.Clone()
	cp.At(3).Queues[graph.North] = 1
	assert.Equal(t, 9, c.At(3).Queue(graph.North))
}

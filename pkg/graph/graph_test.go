package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid(t *testing.T) {
	tests := []struct {
		rows, cols int
		edges      int
	}{
		{1, 1, 0},
		{1, 4, 6},
		{2, 2, 8},
		{3, 3, 24},
		{4, 5, 62},
	}
	for _, tt := range tests {
		g, err := BuildGrid(tt.rows, tt.cols)
		require.NoError(t, err)
		assert.Equal(t, tt.rows*tt.cols, g.Len())

		total := 0
		for u := 0; u < g.Len(); u++ {
			assert.LessOrEqual(t, len(g.Neighbors(u)), 4)
			for _, e := range g.Neighbors(u) {
				total++
				assert.Equal(t, u, e.From)
				assert.NotEqual(t, u, e.To, "self loop at %d", u)
				assert.Equal(t, 1, e.Weight)
				assert.True(t, hasEdge(g, e.To, u), "missing reverse of %d->%d", u, e.To)
			}
		}
		assert.Equal(t, tt.edges, total, "%dx%d", tt.rows, tt.cols)
	}
}

func TestBuildGridNeighbourOrder(t *testing.T) {
	g, err := BuildGrid(3, 3)
	require.NoError(t, err)

	// centre node lists N, S, E, W
	var to []int
	for _, e := range g.Neighbors(4) {
		to = append(to, e.To)
	}
	assert.Equal(t, []int{1, 7, 5, 3}, to)

	// corner has two neighbours
	assert.Len(t, g.Neighbors(0), 2)
}

func TestBuildGridInvalidDimension(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		g, err := BuildGrid(dims[0], dims[1])
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrInvalidDimension), "dims %v: %v", dims, err)
		assert.False(t, errors.Is(err, ErrNodeOutOfRange))
	}
}

func TestCoordRoundTrip(t *testing.T) {
	g, err := BuildGrid(3, 4)
	require.NoError(t, err)
	for id := 0; id < g.Len(); id++ {
		r, c := g.Coord(id)
		assert.Equal(t, id, g.ID(r, c))
	}
	assert.True(t, g.Contains(11))
	assert.False(t, g.Contains(12))
	assert.False(t, g.Contains(-1))
}

func TestDirectionBetween(t *testing.T) {
	g, err := BuildGrid(3, 3)
	require.NoError(t, err)

	tests := []struct {
		u, v int
		want Direction
	}{
		{4, 1, North},
		{4, 7, South},
		{4, 5, East},
		{4, 3, West},
	}
	for _, tt := range tests {
		d, ok := g.DirectionBetween(tt.u, tt.v)
		assert.True(t, ok)
		assert.Equal(t, tt.want, d, "%d->%d", tt.u, tt.v)

		off := d.Offset()
		ur, uc := g.Coord(tt.u)
		assert.Equal(t, tt.v, g.ID(ur+off.DRow, uc+off.DCol))
	}

	_, ok := g.DirectionBetween(4, 4)
	assert.False(t, ok)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "N", North.String())
	assert.Equal(t, "S", South.String())
	assert.Equal(t, "E", East.String())
	assert.Equal(t, "W", West.String())
	assert.Equal(t, "?", Direction(7).String())
	assert.False(t, Direction(-1).Valid())
}

func hasEdge(g *Graph, u, v int) bool {
	for _, e := range g.Neighbors(u) {
		if e.To == v {
			return true
		}
	}
	return false
}

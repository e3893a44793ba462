package signal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardalan-sia/gridsignal/pkg/graph"
)

type queues = [graph.NumDirections]int

func TestAllocateIdleRemainderToNorth(t *testing.T) {
	tests := []struct {
		cycle int
		want  Allocation
	}{
		{30, Allocation{9, 7, 7, 7}},
		{32, Allocation{8, 8, 8, 8}},
		{7, Allocation{4, 1, 1, 1}},
		{3, Allocation{3, 0, 0, 0}},
		{0, Allocation{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AllocateGreenTimes(queues{}, tt.cycle), "T=%d", tt.cycle)
	}
}

func TestAllocateProportional(t *testing.T) {
	tests := []struct {
		name  string
		q     queues
		cycle int
		want  Allocation
	}{
		{"even", queues{5, 5, 5, 5}, 40, Allocation{10, 10, 10, 10}},
		// 10+1+30+1: both surplus seconds come off the smaller queue
		{"floors trimmed", queues{10, 0, 30, 0}, 40, Allocation{8, 1, 30, 1}},
		{"one busy lane", queues{0, 0, 0, 12}, 30, Allocation{1, 1, 1, 27}},
		// 30*1/3 = 10 each for three lanes, plus the floor on the empty one
		{"surplus trimmed from smallest queue", queues{1, 1, 1, 0}, 30, Allocation{9, 10, 10, 1}},
		// 7.5 rounds up to 8+8+8+8 = 32; equal queues trim North first
		{"rounding surplus", queues{3, 3, 3, 3}, 30, Allocation{6, 8, 8, 8}},
		// 2.25 rounds down to 2+2+2+2 = 8; equal queues pad North
		{"rounding deficit", queues{1, 1, 1, 1}, 9, Allocation{3, 2, 2, 2}},
		// 1+1+1+2 = 5; the longest queue takes the missing second
		{"deficit to longest queue", queues{1, 1, 1, 2}, 6, Allocation{1, 1, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocateGreenTimes(tt.q, tt.cycle)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.cycle, got.Sum())
		})
	}
}

func TestAllocateSumAndFloor(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		var q queues
		for d := range q {
			if rnd.Intn(3) > 0 {
				q[d] = rnd.Intn(40)
			}
		}
		cycle := rnd.Intn(120)

		got := AllocateGreenTimes(q, cycle)
		assert.Equal(t, cycle, got.Sum(), "q=%v T=%d", q, cycle)
		for d, v := range got {
			assert.GreaterOrEqual(t, v, 0, "q=%v T=%d", q, cycle)
			if cycle >= 4 && q[0]+q[1]+q[2]+q[3] > 0 {
				assert.GreaterOrEqual(t, v, 1, "direction %d starved: q=%v T=%d", d, q, cycle)
			}
		}
	}
}

func TestAllocateShortCycleKeepsSum(t *testing.T) {
	for cycle := 0; cycle < 4; cycle++ {
		got := AllocateGreenTimes(queues{1, 1, 1, 1}, cycle)
		assert.Equal(t, cycle, got.Sum(), "T=%d", cycle)
	}
}

func TestGreenDirection(t *testing.T) {
	assert.Equal(t, graph.North, GreenDirection(Allocation{9, 7, 7, 7}))
	assert.Equal(t, graph.East, GreenDirection(Allocation{1, 5, 20, 4}))
	assert.Equal(t, graph.South, GreenDirection(Allocation{3, 10, 10, 7}))
	assert.Equal(t, graph.North, GreenDirection(Allocation{}))
}

package graph

// Direction is one of the four cardinal approaches of an intersection.
// The numeric order N, S, E, W is the evaluation order used for every
// tie-break in the allocator and the preemption protocol.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// NumDirections is the number of approaches per intersection.
const NumDirections = 4

// Directions lists all approaches in evaluation order.
var Directions = [NumDirections]Direction{North, South, East, West}

// Offset is a row/column step on the grid.
type Offset struct {
	DRow, DCol int
}

// offsets maps each direction to the grid step taken when travelling that way.
var offsets = [NumDirections]Offset{
	North: {DRow: -1, DCol: 0},
	South: {DRow: 1, DCol: 0},
	East:  {DRow: 0, DCol: 1},
	West:  {DRow: 0, DCol: -1},
}

// Offset returns the row/column step for d.
func (d Direction) Offset() Offset { return offsets[d] }

// String returns the one-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}

// Valid reports whether d is one of the four approaches.
func (d Direction) Valid() bool { return d >= North && d <= West }

// DirectionOf converts a row/column delta into a compass direction.
// A vertical component wins over a horizontal one; a zero delta has no
// direction.
func DirectionOf(dRow, dCol int) (Direction, bool) {
	switch {
	case dRow < 0:
		return North, true
	case dRow > 0:
		return South, true
	case dCol > 0:
		return East, true
	case dCol < 0:
		return West, true
	}
	return North, false
}

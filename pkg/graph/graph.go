package graph

import (
	"container/heap"
	"math"
)

// Edge represents a directed adjacency between two intersections.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Graph is an R×C street grid. Topology is fixed once built.
type Graph struct {
	Rows, Cols int
	Edges      [][]Edge // index = from node
}

// BuildGrid connects every intersection to its in-bounds 4-neighbours
// with unit weight.
func BuildGrid(rows, cols int) (*Graph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, NewInvalidDimensionError(rows, cols)
	}
	g := &Graph{
		Rows:  rows,
		Cols:  cols,
		Edges: make([][]Edge, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := g.ID(r, c)
			for _, d := range Directions {
				off := d.Offset()
				nr, nc := r+off.DRow, c+off.DCol
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				g.Edges[u] = append(g.Edges[u], Edge{From: u, To: g.ID(nr, nc), Weight: 1})
			}
		}
	}
	return g, nil
}

// Len returns the number of intersections.
func (g *Graph) Len() int { return g.Rows * g.Cols }

// ID maps a grid position to its node id (row-major).
func (g *Graph) ID(row, col int) int { return row*g.Cols + col }

// Coord maps a node id back to its grid position.
func (g *Graph) Coord(id int) (row, col int) { return id / g.Cols, id % g.Cols }

// Contains reports whether id names an intersection of g.
func (g *Graph) Contains(id int) bool { return id >= 0 && id < g.Len() }

// Neighbors returns outgoing edges.
func (g *Graph) Neighbors(node int) []Edge { return g.Edges[node] }

// DirectionBetween returns the compass direction of travel from u to v.
func (g *Graph) DirectionBetween(u, v int) (Direction, bool) {
	ur, uc := g.Coord(u)
	vr, vc := g.Coord(v)
	return DirectionOf(vr-ur, vc-uc)
}

// Dijkstra with custom weightFn. Returns the node sequence from start to
// goal inclusive and its total weight, or a nil path when goal is
// unreachable. Both ids must be valid.
func (g *Graph) Dijkstra(start, goal int, weight func(Edge) int) ([]int, int) {
	n := g.Len()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}
	dist[start] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &item{node: start, priority: 0, seq: seq})

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*item)
		u := it.node
		if it.priority > dist[u] {
			continue // stale entry
		}
		if u == goal {
			break
		}
		for _, e := range g.Neighbors(u) {
			alt := dist[u] + weight(e)
			if alt < dist[e.To] {
				dist[e.To] = alt
				prev[e.To] = u
				seq++
				heap.Push(pq, &item{node: e.To, priority: alt, seq: seq})
			}
		}
	}

	if dist[goal] == math.MaxInt {
		return nil, 0
	}

	// reconstruct path of nodes
	var path []int
	for u := goal; u != -1; u = prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[goal]
}

// ---------- internal PQ ----------
// Equal priorities pop in insertion order, which keeps queries
// deterministic without promising which equal-cost route wins.
type item struct {
	node     int
	priority int
	seq      int
}
type priorityQueue []*item

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*item)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

package graph

// CongestionDivisor is the queue length that adds one unit to the cost of
// entering a node.
const CongestionDivisor = 5

// UnitWeight uses the stored topology weight.
func UnitWeight(e Edge) int { return e.Weight }

// CongestionWeight returns a weight function charging 1 + floor(load/5)
// for entering node v, where load[v] is v's total queue at snapshot time.
// Nodes beyond the end of load count as empty.
func CongestionWeight(load []int) func(Edge) int {
	return func(e Edge) int {
		q := 0
		if e.To < len(load) {
			q = load[e.To]
		}
		return 1 + q/CongestionDivisor
	}
}

// ShortestPath returns the fewest-hop route from src to dest inclusive.
func (g *Graph) ShortestPath(src, dest int) ([]int, error) {
	if err := g.checkEndpoints(src, dest); err != nil {
		return nil, err
	}
	path, _ := g.Dijkstra(src, dest, UnitWeight)
	return path, nil
}

// CongestionAwarePath routes around queued intersections. load is a
// per-node snapshot of total queue length taken before the query; it is
// never re-read mid-search. Equal-cost routes are tied arbitrarily.
func (g *Graph) CongestionAwarePath(src, dest int, load []int) ([]int, error) {
	if err := g.checkEndpoints(src, dest); err != nil {
		return nil, err
	}
	path, _ := g.Dijkstra(src, dest, CongestionWeight(load))
	return path, nil
}

// PathCost sums weight over consecutive hops of path. Every id in path
// must be a node of g.
func (g *Graph) PathCost(path []int, weight func(Edge) int) int {
	total := 0
	for i := 1; i < len(path); i++ {
		e := Edge{From: path[i-1], To: path[i]}
		for _, cand := range g.Neighbors(path[i-1]) {
			if cand.To == path[i] {
				e = cand
				break
			}
		}
		total += weight(e)
	}
	return total
}

func (g *Graph) checkEndpoints(src, dest int) error {
	if !g.Contains(src) {
		return NewNodeOutOfRangeError(src, g.Len())
	}
	if !g.Contains(dest) {
		return NewNodeOutOfRangeError(dest, g.Len())
	}
	return nil
}

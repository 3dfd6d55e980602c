package planner

import "math"

// Unbounded marks a course whose latest offset is not constrained by the target.
const Unbounded = math.MaxInt32

// TopoOrder orders the graph with Kahn's algorithm, level by level, seeding each
// level in input order. ok is false when a cycle keeps some courses from ever
// reaching in-degree zero; order then holds only the courses that were visited.
func TopoOrder(g *Graph) (order []int64, ok bool) {
	inDeg := make(map[int64]int, g.Len())
	queue := make([]int64, 0, g.Len())
	for _, id := range g.order {
		inDeg[id] = len(g.prereqs[id])
		if inDeg[id] == 0 {
			queue = append(queue, id)
		}
	}

	order = make([]int64, 0, g.Len())
	for len(queue) > 0 {
		var next []int64
		for _, id := range queue {
			order = append(order, id)
			for _, dep := range g.dependents[id] {
				inDeg[dep]--
				if inDeg[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		queue = next
	}

	return order, len(order) == g.Len()
}

// Unvisited returns, in input order, the courses missing from a topological order.
// For a cyclic graph these are the cycle members and everything downstream of them.
func Unvisited(g *Graph, order []int64) []int64 {
	visited := make(map[int64]struct{}, len(order))
	for _, id := range order {
		visited[id] = struct{}{}
	}
	var out []int64
	for _, id := range g.order {
		if _, ok := visited[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// EarliestOffsets returns the longest-path distance of every course from a root.
// A course waits for the slowest of its prerequisite chains.
func EarliestOffsets(g *Graph, order []int64) map[int64]int {
	earliest := make(map[int64]int, len(order))
	for _, id := range order {
		e := 0
		for _, p := range g.prereqs[id] {
			if earliest[p]+1 > e {
				e = earliest[p] + 1
			}
		}
		earliest[id] = e
	}
	return earliest
}

// LatestOffsets pins the target at targetOffset and walks the order backwards,
// tightening every prerequisite to one term before its tightest dependent.
// Courses that do not feed the target stay Unbounded and are scheduled as
// filler, so callers must prune the input to the target's open prerequisites.
func LatestOffsets(g *Graph, order []int64, targetID int64, targetOffset int) map[int64]int {
	latest := make(map[int64]int, len(order))
	for _, id := range order {
		latest[id] = Unbounded
	}
	latest[targetID] = targetOffset

	for i := len(order) - 1; i >= 0; i-- {
		lat := latest[order[i]]
		if lat == Unbounded {
			continue
		}
		for _, p := range g.prereqs[order[i]] {
			if lat-1 < latest[p] {
				latest[p] = lat - 1
			}
		}
	}
	return latest
}

// DownstreamCounts weighs each course by how much of the graph hangs off it:
// the sum over its dependents of one plus the dependent's own count.
func DownstreamCounts(g *Graph, order []int64) map[int64]int {
	counts := make(map[int64]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := 0
		for _, dep := range g.dependents[id] {
			n += 1 + counts[dep]
		}
		counts[id] = n
	}
	return counts
}

// Analysis bundles the per-course results of the critical-path phase.
type Analysis struct {
	Order      []int64
	Earliest   map[int64]int
	Latest     map[int64]int
	Downstream map[int64]int
}

// Analyze composes the critical-path functions for an acyclic graph. ok is false
// on a cycle, in which case only Order is populated.
func Analyze(g *Graph, targetID int64) (Analysis, bool) {
	order, ok := TopoOrder(g)
	if !ok {
		return Analysis{Order: order}, false
	}
	earliest := EarliestOffsets(g, order)
	return Analysis{
		Order:      order,
		Earliest:   earliest,
		Latest:     LatestOffsets(g, order, targetID, earliest[targetID]),
		Downstream: DownstreamCounts(g, order),
	}, true
}

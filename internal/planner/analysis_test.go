package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(id int64, number string, prereqTerms ...string) Course {
	return Course{
		ID:           id,
		Dept:         "MATH",
		Number:       number,
		Title:        "Course " + number,
		UnitsMin:     4,
		UnitsMax:     4,
		Difficulty:   2,
		Workload:     2,
		TypicalTerms: prereqTerms,
	}
}

func edge(courseID, prereqID int64) PrereqEdge {
	return PrereqEdge{CourseID: courseID, PrereqID: prereqID}
}

func TestBuildGraph(t *testing.T) {
	t.Run("isolated courses get empty adjacency", func(t *testing.T) {
		g := BuildGraph([]Course{course(1, "18"), course(2, "20A")}, nil)
		assert.Equal(t, 2, g.Len())
		assert.NotNil(t, g.Prereqs(1))
		assert.Empty(t, g.Prereqs(1))
		assert.NotNil(t, g.Dependents(2))
		assert.Empty(t, g.Dependents(2))
	})

	t.Run("dangling and duplicate edges", func(t *testing.T) {
		g := BuildGraph(
			[]Course{course(1, "20A"), course(2, "20B")},
			[]PrereqEdge{edge(2, 1), edge(2, 1), edge(2, 99), edge(99, 1)},
		)
		assert.Equal(t, []int64{1}, g.Prereqs(2))
		assert.Equal(t, []int64{2}, g.Dependents(1))
	})

	t.Run("first duplicate course wins", func(t *testing.T) {
		first := course(1, "20A")
		second := course(1, "20Z")
		g := BuildGraph([]Course{first, second}, nil)
		require.Equal(t, 1, g.Len())
		c, ok := g.Course(1)
		require.True(t, ok)
		assert.Equal(t, "20A", c.Number)
	})
}

// diamond: A -> B -> C -> D and A -> D directly.
func diamond() *Graph {
	return BuildGraph(
		[]Course{course(1, "A"), course(2, "B"), course(3, "C"), course(4, "D")},
		[]PrereqEdge{edge(2, 1), edge(3, 2), edge(4, 3), edge(4, 1)},
	)
}

func TestTopoOrder(t *testing.T) {
	order, ok := TopoOrder(diamond())
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3, 4}, order)

	cyclic := BuildGraph(
		[]Course{course(1, "A"), course(2, "B"), course(3, "C"), course(4, "D")},
		[]PrereqEdge{edge(1, 2), edge(2, 1), edge(4, 2)},
	)
	order, ok = TopoOrder(cyclic)
	assert.False(t, ok)
	assert.Equal(t, []int64{3}, order)
	assert.Equal(t, []int64{1, 2, 4}, Unvisited(cyclic, order))
	assert.Equal(t, []int64{1, 2, 4}, CycleMembers(cyclic))
	assert.Empty(t, CycleMembers(diamond()))
}

func TestEarliestOffsetsTakesLongestPath(t *testing.T) {
	g := diamond()
	order, ok := TopoOrder(g)
	require.True(t, ok)

	earliest := EarliestOffsets(g, order)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 3: 2, 4: 3}, earliest)
}

func TestLatestOffsets(t *testing.T) {
	g := BuildGraph(
		[]Course{course(1, "A"), course(2, "B"), course(3, "C"), course(4, "D"), course(5, "E")},
		[]PrereqEdge{edge(2, 1), edge(3, 2), edge(4, 3), edge(4, 1)},
	)
	order, ok := TopoOrder(g)
	require.True(t, ok)

	latest := LatestOffsets(g, order, 4, 3)
	assert.Equal(t, 3, latest[4])
	assert.Equal(t, 2, latest[3])
	assert.Equal(t, 1, latest[2])
	assert.Equal(t, 0, latest[1], "tightest dependent bound wins")
	assert.Equal(t, Unbounded, latest[5], "courses outside the target closure are unbounded")
}

func TestDownstreamCounts(t *testing.T) {
	g := diamond()
	order, _ := TopoOrder(g)
	counts := DownstreamCounts(g, order)
	assert.Equal(t, 0, counts[4])
	assert.Equal(t, 1, counts[3])
	assert.Equal(t, 2, counts[2])
	assert.Equal(t, 4, counts[1])
}

func TestAnalyze(t *testing.T) {
	a, ok := Analyze(diamond(), 4)
	require.True(t, ok)
	assert.Equal(t, 3, a.Earliest[4])
	assert.Equal(t, 3, a.Latest[4])
	assert.Equal(t, 0, a.Latest[1])
}

func TestWouldCreateCycle(t *testing.T) {
	edges := []PrereqEdge{edge(2, 1), edge(3, 2)}

	assert.True(t, WouldCreateCycle(edges, edge(1, 3)))
	assert.True(t, WouldCreateCycle(edges, edge(1, 1)))
	assert.False(t, WouldCreateCycle(edges, edge(3, 1)))
	assert.False(t, WouldCreateCycle(edges, edge(4, 3)))
}

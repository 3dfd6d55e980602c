package planner

// Graph is the immutable prerequisite structure of one planning run.
type Graph struct {
	order      []int64
	courses    map[int64]Course
	prereqs    map[int64][]int64
	dependents map[int64][]int64
}

// BuildGraph indexes courses and edges. Every course gets an entry in both
// adjacency maps, so isolated courses are representable. Edges that reference a
// course outside the list are skipped and duplicate edges collapse. When a course
// ID repeats, the first occurrence wins.
func BuildGraph(courses []Course, edges []PrereqEdge) *Graph {
	g := &Graph{
		order:      make([]int64, 0, len(courses)),
		courses:    make(map[int64]Course, len(courses)),
		prereqs:    make(map[int64][]int64, len(courses)),
		dependents: make(map[int64][]int64, len(courses)),
	}

	for _, c := range courses {
		if _, exists := g.courses[c.ID]; exists {
			continue
		}
		g.order = append(g.order, c.ID)
		g.courses[c.ID] = c
		g.prereqs[c.ID] = []int64{}
		g.dependents[c.ID] = []int64{}
	}

	seen := make(map[PrereqEdge]struct{}, len(edges))
	for _, e := range edges {
		if !g.Has(e.CourseID) || !g.Has(e.PrereqID) {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		g.prereqs[e.CourseID] = append(g.prereqs[e.CourseID], e.PrereqID)
		g.dependents[e.PrereqID] = append(g.dependents[e.PrereqID], e.CourseID)
	}

	return g
}

// Len returns the number of distinct courses.
func (g *Graph) Len() int {
	return len(g.order)
}

// IDs returns course IDs in input order.
func (g *Graph) IDs() []int64 {
	out := make([]int64, len(g.order))
	copy(out, g.order)
	return out
}

// Has reports whether id is part of the graph.
func (g *Graph) Has(id int64) bool {
	_, ok := g.courses[id]
	return ok
}

// Course returns the course with the given ID.
func (g *Graph) Course(id int64) (Course, bool) {
	c, ok := g.courses[id]
	return c, ok
}

// Prereqs returns the direct prerequisites of id in edge order.
func (g *Graph) Prereqs(id int64) []int64 {
	return g.prereqs[id]
}

// Dependents returns the courses that list id as a direct prerequisite.
func (g *Graph) Dependents(id int64) []int64 {
	return g.dependents[id]
}

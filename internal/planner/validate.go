package planner

import (
	"errors"
	"fmt"
)

// Difficulty and workload scores are bounded to this range.
const (
	MinScore = 1
	MaxScore = 10
)

// Validate checks the input contract that Plan otherwise tolerates. Callers that
// want hard errors instead of blockers run it first.
func (in Input) Validate() error {
	var errs []error

	if in.TargetID <= 0 {
		errs = append(errs, errors.New("target course id must be positive"))
	}
	if _, ok := ParseTerm(in.TargetTerm); !ok {
		errs = append(errs, fmt.Errorf("unknown target term %q", in.TargetTerm))
	}
	if in.TargetYear <= 0 {
		errs = append(errs, fmt.Errorf("target year %d must be positive", in.TargetYear))
	}
	if in.Limits.MaxUnits < 0 || in.Limits.MaxDifficulty < 0 || in.Limits.MaxCourses < 0 {
		errs = append(errs, errors.New("limits must not be negative"))
	}

	ids := make(map[int64]struct{}, len(in.Courses))
	for _, c := range in.Courses {
		if _, dup := ids[c.ID]; dup {
			errs = append(errs, fmt.Errorf("course %d listed twice", c.ID))
		}
		ids[c.ID] = struct{}{}
		if c.UnitsMin < 0 || c.UnitsMax < c.UnitsMin {
			errs = append(errs, fmt.Errorf("%s: invalid unit range %d-%d", c.Code(), c.UnitsMin, c.UnitsMax))
		}
		if c.Difficulty < MinScore || c.Difficulty > MaxScore {
			errs = append(errs, fmt.Errorf("%s: difficulty %d out of range", c.Code(), c.Difficulty))
		}
		if c.Workload < MinScore || c.Workload > MaxScore {
			errs = append(errs, fmt.Errorf("%s: workload %d out of range", c.Code(), c.Workload))
		}
		for _, tc := range c.TypicalTerms {
			if _, ok := ParseTerm(tc); !ok {
				errs = append(errs, fmt.Errorf("%s: unknown term code %q", c.Code(), tc))
			}
		}
	}

	for _, e := range DanglingEdges(in.Courses, in.Edges) {
		errs = append(errs, fmt.Errorf("edge %d -> %d references a course outside the list", e.CourseID, e.PrereqID))
	}

	return errors.Join(errs...)
}

// DanglingEdges returns edges whose endpoints are not both in courses.
func DanglingEdges(courses []Course, edges []PrereqEdge) []PrereqEdge {
	ids := make(map[int64]struct{}, len(courses))
	for _, c := range courses {
		ids[c.ID] = struct{}{}
	}
	var out []PrereqEdge
	for _, e := range edges {
		_, okCourse := ids[e.CourseID]
		_, okPrereq := ids[e.PrereqID]
		if !okCourse || !okPrereq {
			out = append(out, e)
		}
	}
	return out
}

// CycleMembers returns, in input order, the courses that cannot be ordered
// topologically. It is empty for an acyclic graph.
func CycleMembers(g *Graph) []int64 {
	order, ok := TopoOrder(g)
	if ok {
		return nil
	}
	return Unvisited(g, order)
}

// WouldCreateCycle reports whether adding edge to the existing edge set closes a
// cycle, i.e. whether edge.CourseID is already reachable as a prerequisite of
// edge.PrereqID.
func WouldCreateCycle(edges []PrereqEdge, edge PrereqEdge) bool {
	if edge.CourseID == edge.PrereqID {
		return true
	}
	prereqs := make(map[int64][]int64, len(edges))
	for _, e := range edges {
		prereqs[e.CourseID] = append(prereqs[e.CourseID], e.PrereqID)
	}

	seen := map[int64]bool{edge.PrereqID: true}
	stack := []int64{edge.PrereqID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range prereqs[id] {
			if p == edge.CourseID {
				return true
			}
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}
	return false
}

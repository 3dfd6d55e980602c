package models

import "github.com/yigit/roadmap/internal/planner"

// Course represents a catalog course.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Dept        string  `json:"dept" db:"dept"`
	Number      string  `json:"number" db:"number"`
	Title       string  `json:"title" db:"title"`
	UnitsMin    int     `json:"unitsMin" db:"units_min"`
	UnitsMax    int     `json:"unitsMax" db:"units_max"`
	Difficulty  int     `json:"difficulty" db:"difficulty"`
	Workload    int     `json:"workload" db:"workload"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable

	// Populated when needed
	TypicalTerms   []TermCode `json:"typicalTerms,omitempty"`
	PrereqCount    int        `json:"prereqCount"`
	DependentCount int        `json:"dependentCount"`
}

// Code returns "DEPT NUMBER".
func (c *Course) Code() string {
	return c.Dept + " " + c.Number
}

// ToPlanner converts the catalog row into the planner's course snapshot.
func (c *Course) ToPlanner() planner.Course {
	terms := make([]string, 0, len(c.TypicalTerms))
	for _, t := range c.TypicalTerms {
		terms = append(terms, string(t))
	}
	return planner.Course{
		ID:           c.ID,
		Dept:         c.Dept,
		Number:       c.Number,
		Title:        c.Title,
		UnitsMin:     c.UnitsMin,
		UnitsMax:     c.UnitsMax,
		Difficulty:   c.Difficulty,
		Workload:     c.Workload,
		TypicalTerms: terms,
	}
}

// PrereqEdge states that PrereqCourseID must be completed before CourseID.
type PrereqEdge struct {
	CourseID       int64 `json:"courseId" db:"course_id"`
	PrereqCourseID int64 `json:"prereqCourseId" db:"prereq_course_id"`
}

// ToPlanner converts the edge for the planner.
func (e PrereqEdge) ToPlanner() planner.PrereqEdge {
	return planner.PrereqEdge{CourseID: e.CourseID, PrereqID: e.PrereqCourseID}
}

// ClosureEdge is one edge reached while walking prerequisites back from a
// target. Depth counts edges from the target, starting at 1.
type ClosureEdge struct {
	CourseID       int64 `db:"course_id"`
	PrereqCourseID int64 `db:"prereq_course_id"`
	Depth          int   `db:"depth"`
}

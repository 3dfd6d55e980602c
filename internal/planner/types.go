package planner

// Course is an immutable snapshot of a schedulable course.
type Course struct {
	ID           int64    `json:"id" yaml:"id"`
	Dept         string   `json:"dept" yaml:"dept"`
	Number       string   `json:"number" yaml:"number"`
	Title        string   `json:"title" yaml:"title"`
	UnitsMin     int      `json:"unitsMin" yaml:"unitsMin"`
	UnitsMax     int      `json:"unitsMax" yaml:"unitsMax"`
	Difficulty   int      `json:"difficulty" yaml:"difficulty"`
	Workload     int      `json:"workload" yaml:"workload"`
	TypicalTerms []string `json:"typicalTerms" yaml:"typicalTerms"`
}

// Code returns the human readable course code, e.g. "MATH 20A".
func (c Course) Code() string {
	return c.Dept + " " + c.Number
}

// PrereqEdge states that PrereqID must be taken in a strictly earlier term than CourseID.
type PrereqEdge struct {
	CourseID int64 `json:"courseId" yaml:"courseId"`
	PrereqID int64 `json:"prereqCourseId" yaml:"prereqCourseId"`
}

// Limits caps the load of a single term. Zero fields fall back to the planner defaults.
type Limits struct {
	MaxUnits      int `json:"maxUnitsPerQuarter" yaml:"maxUnitsPerQuarter"`
	MaxDifficulty int `json:"maxDifficultyPerQuarter" yaml:"maxDifficultyPerQuarter"`
	MaxCourses    int `json:"maxCoursesPerQuarter" yaml:"maxCoursesPerQuarter"`
}

// Weights are the heuristic constants of the scoring function.
type Weights struct {
	Criticality float64 `json:"criticality" yaml:"criticality"`
	LoadBalance float64 `json:"loadBalance" yaml:"loadBalance"`
	Urgency     float64 `json:"urgency" yaml:"urgency"`
}

// Options configures a Planner.
type Options struct {
	Limits        Limits
	Weights       Weights
	CeilingMargin int
	HeavyRatio    float64
}

// Default tuning.
const (
	DefaultMaxUnits      = 16
	DefaultMaxDifficulty = 24
	DefaultMaxCourses    = 4
	DefaultCeilingMargin = 5
	DefaultHeavyRatio    = 0.85
)

// DefaultOptions returns the stock limits and weights.
func DefaultOptions() Options {
	return Options{
		Limits: Limits{
			MaxUnits:      DefaultMaxUnits,
			MaxDifficulty: DefaultMaxDifficulty,
			MaxCourses:    DefaultMaxCourses,
		},
		Weights: Weights{
			Criticality: 2,
			LoadBalance: 3,
			Urgency:     10,
		},
		CeilingMargin: DefaultCeilingMargin,
		HeavyRatio:    DefaultHeavyRatio,
	}
}

// Input is everything a planning run needs. Courses must already exclude completed ones.
type Input struct {
	TargetID   int64        `json:"targetCourseId" yaml:"targetCourseId"`
	TargetTerm string       `json:"targetTerm" yaml:"targetTerm"`
	TargetYear int          `json:"targetYear" yaml:"targetYear"`
	Courses    []Course     `json:"courses" yaml:"courses"`
	Edges      []PrereqEdge `json:"edges" yaml:"edges"`
	Limits     Limits       `json:"limits" yaml:"limits"`
}

// Totals aggregates one term.
type Totals struct {
	Units       int  `json:"units"`
	Difficulty  int  `json:"difficulty"`
	Workload    int  `json:"workload"`
	CourseCount int  `json:"courseCount"`
	IsHeavy     bool `json:"isHeavy"`
}

// QuarterPlan is one populated term of the schedule.
type QuarterPlan struct {
	Term       string   `json:"term"`
	Year       int      `json:"year"`
	Courses    []Course `json:"courses"`
	Totals     Totals   `json:"totals"`
	TotalUnits int      `json:"totalUnits"`
}

// Explanation collects the human readable diagnostics of a run.
type Explanation struct {
	Blockers    []string `json:"blockers"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newExplanation() Explanation {
	return Explanation{
		Blockers:    []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

// Result is the outcome of a planning run.
type Result struct {
	Plan        []QuarterPlan `json:"plan"`
	Unscheduled []Course      `json:"unscheduled"`
	Explanation Explanation   `json:"explanation"`
}

// ScheduledCount returns the number of courses placed in the plan.
func (r Result) ScheduledCount() int {
	n := 0
	for _, q := range r.Plan {
		n += len(q.Courses)
	}
	return n
}

// TotalUnits sums units over all planned terms.
func (r Result) TotalUnits() int {
	n := 0
	for _, q := range r.Plan {
		n += q.TotalUnits
	}
	return n
}

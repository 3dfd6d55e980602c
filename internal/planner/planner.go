package planner

import (
	"fmt"
	"strings"
)

// Planner runs planning passes with a fixed set of options. It holds no per-run
// state and is safe for concurrent use.
type Planner struct {
	opts Options
}

// New returns a Planner. Non-positive options fall back to DefaultOptions.
func New(opts Options) *Planner {
	def := DefaultOptions()
	opts.Limits = opts.Limits.withDefaults(def.Limits)
	if opts.Weights == (Weights{}) {
		opts.Weights = def.Weights
	}
	if opts.CeilingMargin <= 0 {
		opts.CeilingMargin = def.CeilingMargin
	}
	if opts.HeavyRatio <= 0 || opts.HeavyRatio > 1 {
		opts.HeavyRatio = def.HeavyRatio
	}
	return &Planner{opts: opts}
}

// Options returns the effective options.
func (p *Planner) Options() Options {
	return p.opts
}

// Plan runs the planner with DefaultOptions.
func Plan(in Input) Result {
	return New(DefaultOptions()).Plan(in)
}

// Plan schedules in.Courses so that the target lands in in.TargetTerm/in.TargetYear.
func (p *Planner) Plan(in Input) Result {
	exp := newExplanation()

	if len(in.Courses) == 0 {
		exp.Suggestions = append(exp.Suggestions, "Nothing to schedule: all prerequisites are already completed.")
		return Result{Plan: []QuarterPlan{}, Unscheduled: []Course{}, Explanation: exp}
	}

	term, ok := ParseTerm(in.TargetTerm)
	if !ok {
		return structuralFailure(in, exp, fmt.Sprintf(
			"Unknown target term %q; expected one of Fall, Winter, Spring.", in.TargetTerm))
	}

	g := BuildGraph(in.Courses, in.Edges)
	if !g.Has(in.TargetID) {
		return structuralFailure(in, exp, fmt.Sprintf(
			"Target course %d is not part of the course list.", in.TargetID))
	}

	analysis, ok := Analyze(g, in.TargetID)
	if !ok {
		return structuralFailure(in, exp, fmt.Sprintf(
			"Circular dependency detected in prerequisites: %s.", codes(g, Unvisited(g, analysis.Order))))
	}

	limits := in.Limits.withDefaults(p.opts.Limits)
	at := anchor{term: term, year: in.TargetYear, offset: analysis.Earliest[in.TargetID]}

	alloc := newAllocator(g, analysis, limits, p.opts.Weights, at, p.opts.CeilingMargin)
	alloc.run()
	unscheduled := alloc.unscheduled(&exp)
	plan := assemble(alloc.terms, at, limits, p.opts.HeavyRatio, &exp)

	if len(unscheduled) == 0 && len(exp.Blockers) == 0 {
		exp.Suggestions = append(exp.Suggestions, fmt.Sprintf(
			"All %s scheduled across %s.", plural(g.Len(), "course"), plural(len(plan), "quarter")))
	}

	return Result{Plan: plan, Unscheduled: unscheduled, Explanation: exp}
}

// structuralFailure reports a run that cannot produce any schedule.
func structuralFailure(in Input, exp Explanation, blocker string) Result {
	exp.Blockers = append(exp.Blockers, blocker)
	unscheduled := make([]Course, len(in.Courses))
	copy(unscheduled, in.Courses)
	return Result{Plan: []QuarterPlan{}, Unscheduled: unscheduled, Explanation: exp}
}

func (l Limits) withDefaults(def Limits) Limits {
	if l.MaxUnits <= 0 {
		l.MaxUnits = def.MaxUnits
	}
	if l.MaxDifficulty <= 0 {
		l.MaxDifficulty = def.MaxDifficulty
	}
	if l.MaxCourses <= 0 {
		l.MaxCourses = def.MaxCourses
	}
	return l
}

func codes(g *Graph, ids []int64) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if c, ok := g.Course(id); ok {
			names = append(names, c.Code())
		}
	}
	return strings.Join(names, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

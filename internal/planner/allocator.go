package planner

import (
	"fmt"
	"sort"
	"strings"
)

// termLoad is the running roster of one term offset.
type termLoad struct {
	courses    []Course
	units      int
	difficulty int
	workload   int
}

// allocator owns the scheduling state of a single run.
type allocator struct {
	g        *Graph
	analysis Analysis
	limits   Limits
	weights  Weights
	anchor   anchor
	ceiling  int

	terms     map[int]*termLoad
	assigned  map[int64]int
	remaining map[int64]bool
}

func newAllocator(g *Graph, a Analysis, limits Limits, weights Weights, at anchor, margin int) *allocator {
	remaining := make(map[int64]bool, g.Len())
	for _, id := range g.order {
		remaining[id] = true
	}
	return &allocator{
		g:         g,
		analysis:  a,
		limits:    limits,
		weights:   weights,
		anchor:    at,
		ceiling:   at.offset + margin,
		terms:     make(map[int]*termLoad),
		assigned:  make(map[int64]int, g.Len()),
		remaining: remaining,
	}
}

type candidate struct {
	course Course
	score  float64
}

// run fills term offsets from 0 up to the ceiling.
func (a *allocator) run() {
	for t := 0; len(a.remaining) > 0 && t <= a.ceiling; t++ {
		eligible := a.eligible(t)
		if len(eligible) == 0 {
			continue
		}

		load := a.load(t)
		scored := make([]candidate, 0, len(eligible))
		for _, id := range eligible {
			c := a.g.courses[id]
			scored = append(scored, candidate{course: c, score: a.score(c, t, load)})
		}
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})

		term, _ := a.anchor.calendar(t)
		for _, cand := range scored {
			if !a.fits(cand.course, load, term.Code()) {
				continue
			}
			a.place(cand.course, t, load)
		}
	}
}

// eligible lists, in input order, the remaining courses whose prerequisites all sit
// in earlier terms and whose latest bound still allows term t.
func (a *allocator) eligible(t int) []int64 {
	var out []int64
	for _, id := range a.g.order {
		if !a.remaining[id] {
			continue
		}
		if a.analysis.Latest[id] < t {
			continue
		}
		ready := true
		for _, p := range a.g.prereqs[id] {
			slot, ok := a.assigned[p]
			if !ok || slot >= t {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, id)
		}
	}
	return out
}

func (a *allocator) score(c Course, t int, load *termLoad) float64 {
	criticality := float64(a.analysis.Downstream[c.ID])
	if latest := a.analysis.Latest[c.ID]; latest != Unbounded {
		slack := latest - t
		criticality += a.weights.Urgency / float64(slack+1)
	}

	balance := 1.0
	if a.limits.MaxDifficulty > 0 {
		balance = 1 - float64(load.difficulty+c.Difficulty)/float64(a.limits.MaxDifficulty)
	}

	return a.weights.Criticality*criticality + a.weights.LoadBalance*balance
}

// fits checks one candidate against the offering and the post-addition totals.
func (a *allocator) fits(c Course, load *termLoad, code string) bool {
	if !offered(c, code) {
		return false
	}
	if load.units+c.UnitsMax > a.limits.MaxUnits {
		return false
	}
	if load.difficulty+c.Difficulty > a.limits.MaxDifficulty {
		return false
	}
	return len(load.courses)+1 <= a.limits.MaxCourses
}

func offered(c Course, code string) bool {
	if len(c.TypicalTerms) == 0 {
		return true
	}
	for _, tc := range c.TypicalTerms {
		if strings.EqualFold(strings.TrimSpace(tc), code) {
			return true
		}
	}
	return false
}

func (a *allocator) load(t int) *termLoad {
	l, ok := a.terms[t]
	if !ok {
		l = &termLoad{}
		a.terms[t] = l
	}
	return l
}

func (a *allocator) place(c Course, t int, load *termLoad) {
	load.courses = append(load.courses, c)
	load.units += c.UnitsMax
	load.difficulty += c.Difficulty
	load.workload += c.Workload
	a.assigned[c.ID] = t
	delete(a.remaining, c.ID)
}

// unscheduled reports every course left after the ceiling, in input order, and
// explains each one.
func (a *allocator) unscheduled(exp *Explanation) []Course {
	out := []Course{}
	term, year := a.anchor.term, a.anchor.year
	for _, id := range a.g.order {
		if !a.remaining[id] {
			continue
		}
		c := a.g.courses[id]
		out = append(out, c)

		var missing []string
		for _, p := range a.g.prereqs[id] {
			if a.remaining[p] {
				missing = append(missing, a.g.courses[p].Code())
			}
		}
		if len(missing) > 0 {
			exp.Blockers = append(exp.Blockers, fmt.Sprintf(
				"%s could not be scheduled because its prerequisites are also unscheduled: %s.",
				c.Code(), strings.Join(missing, ", ")))
			continue
		}
		exp.Blockers = append(exp.Blockers, fmt.Sprintf(
			"%s could not fit within the quarter constraints before %s %d.", c.Code(), term, year))
		exp.Suggestions = append(exp.Suggestions, fmt.Sprintf(
			"Try increasing maxCoursesPerQuarter or maxUnitsPerQuarter to fit %s.", c.Code()))
	}
	return out
}

package planner

import (
	"fmt"
	"sort"
)

// assemble converts populated term offsets into calendar terms in offset order.
func assemble(terms map[int]*termLoad, at anchor, limits Limits, heavyRatio float64, exp *Explanation) []QuarterPlan {
	offsets := make([]int, 0, len(terms))
	for t, load := range terms {
		if len(load.courses) > 0 {
			offsets = append(offsets, t)
		}
	}
	sort.Ints(offsets)

	heavyUnits := float64(limits.MaxUnits) * heavyRatio
	heavyDifficulty := float64(limits.MaxDifficulty) * heavyRatio

	plan := make([]QuarterPlan, 0, len(offsets))
	for _, t := range offsets {
		load := terms[t]
		term, year := at.calendar(t)
		heavy := float64(load.units) >= heavyUnits || float64(load.difficulty) >= heavyDifficulty
		if heavy {
			exp.Warnings = append(exp.Warnings, fmt.Sprintf(
				"%s %d is a heavy quarter (%d units, difficulty sum %d). Consider spreading courses if possible.",
				term, year, load.units, load.difficulty))
		}

		courses := make([]Course, len(load.courses))
		copy(courses, load.courses)
		plan = append(plan, QuarterPlan{
			Term:    string(term),
			Year:    year,
			Courses: courses,
			Totals: Totals{
				Units:       load.units,
				Difficulty:  load.difficulty,
				Workload:    load.workload,
				CourseCount: len(load.courses),
				IsHeavy:     heavy,
			},
			TotalUnits: load.units,
		})
	}
	return plan
}

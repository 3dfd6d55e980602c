package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/yigit/roadmap/internal/planner"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// renderPlan prints one block per term followed by unscheduled courses and
// the explanation lists.
func renderPlan(w io.Writer, res planner.Result) {
	for _, q := range res.Plan {
		heavy := ""
		if q.Totals.IsHeavy {
			heavy = warningColor.Sprint(" heavy")
		}
		_, _ = headerColor.Fprintf(w, "▸ %s %d", q.Term, q.Year)
		_, _ = dimColor.Fprintf(w, "  %d units, difficulty %d, workload %d", q.TotalUnits, q.Totals.Difficulty, q.Totals.Workload)
		fmt.Fprintln(w, heavy)

		for _, c := range q.Courses {
			fmt.Fprintf(w, "    %-10s %s\n", c.Code(), c.Title)
		}
	}

	if len(res.Plan) > 0 {
		fmt.Fprintf(w, "\n%d quarters, %d units\n", len(res.Plan), res.TotalUnits())
	}

	if len(res.Unscheduled) > 0 {
		codes := make([]string, 0, len(res.Unscheduled))
		for _, c := range res.Unscheduled {
			codes = append(codes, c.Code())
		}
		_, _ = errorColor.Fprintf(w, "\nUnscheduled: %s\n", strings.Join(codes, ", "))
	}

	for _, b := range res.Explanation.Blockers {
		_, _ = errorColor.Fprintf(w, "✗ %s\n", b)
	}
	for _, warn := range res.Explanation.Warnings {
		_, _ = warningColor.Fprintf(w, "⚠ %s\n", warn)
	}
	for _, s := range res.Explanation.Suggestions {
		_, _ = infoColor.Fprintf(w, "• %s\n", s)
	}
}

package planner

import "strings"

// Term is a named slot of the academic year.
type Term string

// Terms of the three-quarter academic year, in calendar order.
const (
	Fall   Term = "Fall"
	Winter Term = "Winter"
	Spring Term = "Spring"
)

var termCycle = []Term{Fall, Winter, Spring}

var termCodes = map[Term]string{
	Fall:   "FA",
	Winter: "WI",
	Spring: "SP",
}

// Terms returns the term cycle in order.
func Terms() []Term {
	out := make([]Term, len(termCycle))
	copy(out, termCycle)
	return out
}

// ParseTerm accepts a term name ("Fall", "FALL") or its code ("FA").
func ParseTerm(s string) (Term, bool) {
	s = strings.TrimSpace(s)
	for _, t := range termCycle {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, termCodes[t]) {
			return t, true
		}
	}
	return "", false
}

// Code returns the two-letter offering code of the term.
func (t Term) Code() string {
	return termCodes[t]
}

func (t Term) index() int {
	for i, c := range termCycle {
		if c == t {
			return i
		}
	}
	return 0
}

// anchor pins one term offset to a calendar term and year. Every other offset is
// translated by the same shift along the term cycle.
type anchor struct {
	term   Term
	year   int
	offset int
}

// calendar maps a term offset to its (term, year) label. The year increments when
// the cycle wraps from Spring back to Fall.
func (a anchor) calendar(offset int) (Term, int) {
	n := len(termCycle)
	abs := a.year*n + a.term.index() + (offset - a.offset)
	return termCycle[floorMod(abs, n)], floorDiv(abs, n)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

package models

import "github.com/yigit/roadmap/internal/planner"

// TermCode is the two-letter code stored in course_offerings.
type TermCode string

// Term code constants
const (
	TermFall   TermCode = "FA"
	TermWinter TermCode = "WI"
	TermSpring TermCode = "SP"
)

// ParseTermCode accepts a term name or code and returns its canonical code.
func ParseTermCode(s string) (TermCode, bool) {
	t, ok := planner.ParseTerm(s)
	if !ok {
		return "", false
	}
	return TermCode(t.Code()), true
}

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/roadmap/internal/planner"
)

// Validation rule patterns
var (
	// Department codes are 2 to 6 letters, e.g. MATH or CSE
	DeptPattern = `^[A-Z]{2,6}$`

	// Course numbers are 1 to 3 digits with an optional letter suffix, e.g. 20A or 100
	NumberPattern = `^[0-9]{1,3}[A-Z]{0,2}$`

	TitleMinLength = 2
	TitleMaxLength = 200
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Dept   *regexp.Regexp
	Number *regexp.Regexp
}{
	Dept:   regexp.MustCompile(DeptPattern),
	Number: regexp.MustCompile(NumberPattern),
}

// Tags registered on the validator engine.
const (
	TagCourseDept   = "coursedept"
	TagCourseNumber = "coursenumber"
	TagTerm         = "term"
)

// NormalizeCode upper-cases and trims a department code or course number.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RegisterValidators adds the course catalog rules to a validator instance,
// typically gin's binding engine.
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagCourseDept: func(fl validator.FieldLevel) bool {
			return CompiledPatterns.Dept.MatchString(NormalizeCode(fl.Field().String()))
		},
		TagCourseNumber: func(fl validator.FieldLevel) bool {
			return CompiledPatterns.Number.MatchString(NormalizeCode(fl.Field().String()))
		},
		TagTerm: func(fl validator.FieldLevel) bool {
			_, ok := planner.ParseTerm(fl.Field().String())
			return ok
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// FormatFieldError creates a human-readable validation error message
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max", "lte":
		return e.Field() + " must be at most " + e.Param()
	case "gtefield":
		return e.Field() + " must not be less than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case TagCourseDept:
		return e.Field() + " must be 2-6 letters, e.g. MATH"
	case TagCourseNumber:
		return e.Field() + " must look like 20A or 100"
	case TagTerm:
		return e.Field() + " must be one of Fall, Winter, Spring"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

package models

// CourseOffering records a term in which a course is typically offered.
type CourseOffering struct {
	CourseID int64    `json:"courseId" db:"course_id"`
	TermCode TermCode `json:"termCode" db:"term_code"`
}

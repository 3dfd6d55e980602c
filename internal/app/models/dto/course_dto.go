package dto

import "github.com/yigit/roadmap/internal/app/models"

// CourseResponse represents a catalog course
type CourseResponse struct {
	ID             int64    `json:"id" example:"3"`
	Dept           string   `json:"dept" example:"MATH"`
	Number         string   `json:"number" example:"20C"`
	Code           string   `json:"code" example:"MATH 20C"`
	Title          string   `json:"title" example:"Calculus and Analytic Geometry for Science and Engineering"`
	UnitsMin       int      `json:"unitsMin" example:"4"`
	UnitsMax       int      `json:"unitsMax" example:"4"`
	Difficulty     int      `json:"difficulty" example:"5"`
	Workload       int      `json:"workload" example:"5"`
	Description    string   `json:"description,omitempty"`
	TypicalTerms   []string `json:"typicalTerms" example:"FA,WI,SP"`
	PrereqCount    int      `json:"prereqCount" example:"1"`
	DependentCount int      `json:"dependentCount" example:"6"`
}

// CourseListResponse represents a page of courses
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Dept         string   `json:"dept" binding:"required,coursedept" example:"MATH"`
	Number       string   `json:"number" binding:"required,coursenumber" example:"20A"`
	Title        string   `json:"title" binding:"required,min=2,max=200" example:"Calculus for Science and Engineering"`
	UnitsMin     int      `json:"unitsMin" binding:"required,min=1,max=12" example:"4"`
	UnitsMax     int      `json:"unitsMax" binding:"required,min=1,max=12,gtefield=UnitsMin" example:"4"`
	Difficulty   int      `json:"difficulty" binding:"omitempty,min=1,max=10" example:"5"`
	Workload     int      `json:"workload" binding:"omitempty,min=1,max=10" example:"5"`
	Description  *string  `json:"description"`
	TypicalTerms []string `json:"typicalTerms" binding:"omitempty,dive,term" example:"FA,SP"`
}

// AddPrerequisiteRequest adds an edge to the prerequisite graph
type AddPrerequisiteRequest struct {
	PrereqCourseID int64 `json:"prereqCourseId" binding:"required,gt=0" example:"1"`
}

// CourseSearchQuery represents the GET /courses query string
type CourseSearchQuery struct {
	Query   string `form:"query"`
	MajorID int64  `form:"majorId" binding:"omitempty,gt=0"`
}

// FromCourse converts a model.Course to a CourseResponse
func FromCourse(c *models.Course) CourseResponse {
	if c == nil {
		return CourseResponse{}
	}

	terms := make([]string, 0, len(c.TypicalTerms))
	for _, t := range c.TypicalTerms {
		terms = append(terms, string(t))
	}

	description := ""
	if c.Description != nil {
		description = *c.Description
	}

	return CourseResponse{
		ID:             c.ID,
		Dept:           c.Dept,
		Number:         c.Number,
		Code:           c.Code(),
		Title:          c.Title,
		UnitsMin:       c.UnitsMin,
		UnitsMax:       c.UnitsMax,
		Difficulty:     c.Difficulty,
		Workload:       c.Workload,
		Description:    description,
		TypicalTerms:   terms,
		PrereqCount:    c.PrereqCount,
		DependentCount: c.DependentCount,
	}
}

// FromCourses converts a slice of courses, never returning nil
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}

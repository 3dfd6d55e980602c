package dto

import "github.com/yigit/roadmap/internal/app/models"

// CourseNode is a course placed in a prerequisite roadmap
type CourseNode struct {
	ID          int64  `json:"id" example:"3"`
	Dept        string `json:"dept" example:"MATH"`
	Number      string `json:"number" example:"20C"`
	Title       string `json:"title"`
	UnitsMin    int    `json:"unitsMin" example:"4"`
	UnitsMax    int    `json:"unitsMax" example:"4"`
	Description string `json:"description,omitempty"`
	// Depth is the longest prerequisite distance to the target; the target is 0
	Depth int `json:"depth" example:"2"`
}

// PrereqEdgeResponse is one edge of the roadmap
type PrereqEdgeResponse struct {
	CourseID       int64 `json:"courseId" example:"4"`
	PrereqCourseID int64 `json:"prereqCourseId" example:"3"`
}

// RoadmapResponse is the prerequisite closure of a target course
type RoadmapResponse struct {
	TargetCourse  CourseNode           `json:"targetCourse"`
	Prerequisites []CourseNode         `json:"prerequisites"`
	Edges         []PrereqEdgeResponse `json:"edges"`
}

// NewCourseNode converts a course at a given depth
func NewCourseNode(c *models.Course, depth int) CourseNode {
	n := CourseNode{
		ID:       c.ID,
		Dept:     c.Dept,
		Number:   c.Number,
		Title:    c.Title,
		UnitsMin: c.UnitsMin,
		UnitsMax: c.UnitsMax,
		Depth:    depth,
	}
	if c.Description != nil {
		n.Description = *c.Description
	}
	return n
}

// FromEdges converts model edges for the response
func FromEdges(edges []models.PrereqEdge) []PrereqEdgeResponse {
	out := make([]PrereqEdgeResponse, 0, len(edges))
	for _, e := range edges {
		out = append(out, PrereqEdgeResponse{CourseID: e.CourseID, PrereqCourseID: e.PrereqCourseID})
	}
	return out
}

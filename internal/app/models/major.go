package models

// Major is a degree program with grouped course requirements.
type Major struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	RequirementCount int    `json:"requirementCount"`
}

// MajorRequirement links a course to a major under a named group.
type MajorRequirement struct {
	MajorID   int64  `json:"majorId"`
	CourseID  int64  `json:"courseId"`
	GroupName string `json:"groupName"`
	Required  bool   `json:"required"`
}

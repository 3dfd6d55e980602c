package dto

import "github.com/yigit/roadmap/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Mathematics"`
	Code string `json:"code" example:"MATH"`
}

// FromDepartments converts departments for the response
func FromDepartments(departments []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, DepartmentResponse{ID: d.ID, Name: d.Name, Code: d.Code})
	}
	return out
}

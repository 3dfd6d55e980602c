package dto

import "github.com/yigit/roadmap/internal/app/models"

// MajorResponse represents a major with its requirement count
type MajorResponse struct {
	ID               int64  `json:"id" example:"1"`
	Name             string `json:"name" example:"Mathematics"`
	Code             string `json:"code" example:"MA30"`
	RequirementCount int    `json:"requirementCount" example:"30"`
}

// FromMajors converts majors for the response
func FromMajors(majors []*models.Major) []MajorResponse {
	out := make([]MajorResponse, 0, len(majors))
	for _, m := range majors {
		out = append(out, MajorResponse{
			ID:               m.ID,
			Name:             m.Name,
			Code:             m.Code,
			RequirementCount: m.RequirementCount,
		})
	}
	return out
}

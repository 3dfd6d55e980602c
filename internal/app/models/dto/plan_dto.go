package dto

import "github.com/yigit/roadmap/internal/planner"

// GeneratePlanRequest represents a plan generation request
type GeneratePlanRequest struct {
	TargetCourseID          int64   `json:"targetCourseId" binding:"required,gt=0" example:"12"`
	TargetTerm              string  `json:"targetTerm" binding:"required,term" example:"Fall"`
	TargetYear              int     `json:"targetYear" binding:"required,min=2000,max=2100" example:"2026"`
	TakenCourseIDs          []int64 `json:"takenCourseIds" example:"1,2"`
	MaxUnitsPerQuarter      int     `json:"maxUnitsPerQuarter" binding:"omitempty,min=1,max=40" example:"16"`
	MaxDifficultyPerQuarter int     `json:"maxDifficultyPerQuarter" binding:"omitempty,min=1,max=100" example:"24"`
	MaxCoursesPerQuarter    int     `json:"maxCoursesPerQuarter" binding:"omitempty,min=1,max=10" example:"4"`
}

// Limits returns the per-request overrides; zero fields use the configured defaults.
func (r GeneratePlanRequest) Limits() planner.Limits {
	return planner.Limits{
		MaxUnits:      r.MaxUnitsPerQuarter,
		MaxDifficulty: r.MaxDifficultyPerQuarter,
		MaxCourses:    r.MaxCoursesPerQuarter,
	}
}

// GeneratePlanResponse is a generated term-by-term plan
type GeneratePlanResponse struct {
	PlanID        string                `json:"planId" example:"7d0c5a7e-7b55-4a8b-9d8a-0b1f6c0e9a11"`
	Plan          []planner.QuarterPlan `json:"plan"`
	Unscheduled   []planner.Course      `json:"unscheduled"`
	Explanation   planner.Explanation   `json:"explanation"`
	TotalQuarters int                   `json:"totalQuarters" example:"4"`
	TotalUnits    int                   `json:"totalUnits" example:"28"`
}

// NewGeneratePlanResponse flattens a planner result
func NewGeneratePlanResponse(planID string, res planner.Result) GeneratePlanResponse {
	return GeneratePlanResponse{
		PlanID:        planID,
		Plan:          res.Plan,
		Unscheduled:   res.Unscheduled,
		Explanation:   res.Explanation,
		TotalQuarters: len(res.Plan),
		TotalUnits:    res.TotalUnits(),
	}
}

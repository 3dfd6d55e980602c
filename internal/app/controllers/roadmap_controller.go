package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/middleware"
)

// RoadmapController serves prerequisite roadmaps
type RoadmapController struct {
	roadmapService services.RoadmapService
}

// NewRoadmapController creates a new RoadmapController
func NewRoadmapController(roadmapService services.RoadmapService) *RoadmapController {
	return &RoadmapController{roadmapService: roadmapService}
}

type roadmapQuery struct {
	CourseID int64 `form:"courseId" binding:"required,gt=0"`
}

// GetRoadmap returns every prerequisite of a course with its depth
// @Summary Get course roadmap
// @Description Returns the transitive prerequisites of a course; depth is the longest distance to the target
// @Tags roadmap
// @Produce json
// @Param courseId query int true "Target course ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoadmapResponse} "Roadmap retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid courseId"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roadmap [get]
func (c *RoadmapController) GetRoadmap(ctx *gin.Context) {
	var query roadmapQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	roadmap, err := c.roadmapService.GetRoadmap(ctx, query.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roadmap))
}

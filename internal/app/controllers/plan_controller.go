package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/middleware"
)

// PlanController generates term plans
type PlanController struct {
	planService services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// GeneratePlan schedules the prerequisites of a target course
// @Summary Generate a plan
// @Description Schedules the remaining prerequisites of a target so that it lands in the requested term. Courses that cannot be placed are listed with blockers.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.GeneratePlanRequest true "Plan request"
// @Success 200 {object} dto.APIResponse{data=dto.GeneratePlanResponse} "Plan generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Target course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) GeneratePlan(ctx *gin.Context) {
	var req dto.GeneratePlanRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	plan, err := c.planService.GeneratePlan(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(plan))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/middleware"
)

// MajorController handles major endpoints
type MajorController struct {
	majorService services.MajorService
}

// NewMajorController creates a new MajorController
func NewMajorController(majorService services.MajorService) *MajorController {
	return &MajorController{majorService: majorService}
}

// GetAllMajors retrieves all majors
// @Summary Get all majors
// @Description Retrieves majors with their requirement counts, ordered by name
// @Tags majors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MajorResponse} "Majors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors [get]
func (c *MajorController) GetAllMajors(ctx *gin.Context) {
	majors, err := c.majorService.GetAllMajors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(majors))
}

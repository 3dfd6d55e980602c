package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/middleware"
)

// TranscriptController matches transcripts against the catalog
type TranscriptController struct {
	transcriptService services.TranscriptService
}

// NewTranscriptController creates a new TranscriptController
func NewTranscriptController(transcriptService services.TranscriptService) *TranscriptController {
	return &TranscriptController{transcriptService: transcriptService}
}

// MatchTranscript finds catalog courses in transcript text
// @Summary Match transcript courses
// @Description Finds every catalog course code mentioned in text extracted from a transcript
// @Tags transcript
// @Accept json
// @Produce json
// @Param request body dto.TranscriptMatchRequest true "Transcript text"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptMatchResponse} "Courses matched"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 413 {object} dto.ErrorResponse "Transcript too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transcript/match [post]
func (c *TranscriptController) MatchTranscript(ctx *gin.Context) {
	var req dto.TranscriptMatchRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.transcriptService.MatchCourses(ctx, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

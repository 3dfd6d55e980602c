package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/middleware"
	"github.com/yigit/roadmap/internal/pkg/helpers"
)

// CourseController handles catalog course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// parseID reads a positive int64 path parameter, writing a 400 when it is not one
func parseID(ctx *gin.Context, param, what string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+what+" ID")
		errorDetail = errorDetail.WithDetails(what + " ID must be a positive number").WithField(param)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// SearchCourses searches the catalog
// @Summary Search courses
// @Description Matches "DEPT NUM" against course codes or text against titles, or lists a major's courses
// @Tags courses
// @Produce json
// @Param query query string false "Search text, e.g. MATH 20"
// @Param majorId query int false "List the courses of this major"
// @Param page query int false "Page number (default 1)"
// @Param size query int false "Page size (default 20, max 50)"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	var query dto.CourseSearchQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	courses, err := c.courseService.SearchCourses(ctx, query, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a course with its typical terms and prerequisite counts
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse adds a course to the catalog
// @Summary Create a course
// @Description Creates a course with its typical offering terms
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// AddPrerequisite adds a prerequisite edge
// @Summary Add a prerequisite
// @Description Requires prereqCourseId before the course; rejected when it would create a cycle
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.AddPrerequisiteRequest true "Prerequisite"
// @Success 201 {object} dto.APIResponse{data=dto.PrereqEdgeResponse} "Prerequisite added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Prerequisite exists or would create a cycle"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/prerequisites [post]
func (c *CourseController) AddPrerequisite(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "course")
	if !ok {
		return
	}

	var req dto.AddPrerequisiteRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.courseService.AddPrerequisite(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.PrereqEdgeResponse{
		CourseID:       id,
		PrereqCourseID: req.PrereqCourseID,
	}))
}

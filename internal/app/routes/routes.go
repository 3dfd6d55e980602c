package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/roadmap/docs" // registers the swagger spec
	"github.com/yigit/roadmap/internal/app/controllers"
	"github.com/yigit/roadmap/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Course     *controllers.CourseController
	Roadmap    *controllers.RoadmapController
	Plan       *controllers.PlanController
	Major      *controllers.MajorController
	Department *controllers.DepartmentController
	Transcript *controllers.TranscriptController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes. maxTranscriptBytes caps the
// transcript upload body.
func SetupRouter(router *gin.Engine, c Controllers, maxTranscriptBytes int64) {
	router.GET("/health", c.Health.Health)
	router.GET("/ping", c.Health.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// API version group
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.SearchCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.POST("/:id/prerequisites", c.Course.AddPrerequisite)
	}

	v1.GET("/roadmap", c.Roadmap.GetRoadmap)
	v1.POST("/plans", c.Plan.GeneratePlan)
	v1.GET("/majors", c.Major.GetAllMajors)
	v1.GET("/departments", c.Department.GetAllDepartments)

	// twice the text limit, for JSON escaping
	v1.POST("/transcript/match", middleware.BodyLimit(2*maxTranscriptBytes), c.Transcript.MatchTranscript)
}

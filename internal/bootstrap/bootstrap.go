package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/roadmap/internal/app/controllers"
	appMigrations "github.com/yigit/roadmap/internal/app/migrations"
	appRepos "github.com/yigit/roadmap/internal/app/repositories"
	appRoutes "github.com/yigit/roadmap/internal/app/routes"
	appServices "github.com/yigit/roadmap/internal/app/services"
	"github.com/yigit/roadmap/internal/config"
	"github.com/yigit/roadmap/internal/db"
	appMiddleware "github.com/yigit/roadmap/internal/middleware"
	"github.com/yigit/roadmap/internal/pkg/logger"
	"github.com/yigit/roadmap/internal/pkg/validation"
	"github.com/yigit/roadmap/internal/planner"
	"github.com/yigit/roadmap/internal/seed"
)

// DefaultConfigPath is used when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService     appServices.CourseService
	RoadmapService    appServices.RoadmapService
	PlanService       appServices.PlanService
	MajorService      appServices.MajorService
	DepartmentService appServices.DepartmentService
	TranscriptService appServices.TranscriptService
	Controllers       appRoutes.Controllers
	Repos             *appRepos.Repositories
	Planner           *planner.Planner
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds the default catalog.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(dbPool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Planner = planner.New(cfg.PlannerOptions())

	courseRepo := deps.Repos.CourseRepository
	deps.CourseService = appServices.NewCourseService(courseRepo, deps.Repos.MajorRepository, lgr)
	deps.RoadmapService = appServices.NewRoadmapService(courseRepo)
	deps.PlanService = appServices.NewPlanService(courseRepo, deps.Planner, lgr)
	deps.MajorService = appServices.NewMajorService(deps.Repos.MajorRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.TranscriptService = appServices.NewTranscriptService(courseRepo, cfg.Transcript.MaxTextBytes)

	deps.Controllers = appRoutes.Controllers{
		Course:     appControllers.NewCourseController(deps.CourseService),
		Roadmap:    appControllers.NewRoadmapController(deps.RoadmapService),
		Plan:       appControllers.NewPlanController(deps.PlanService),
		Major:      appControllers.NewMajorController(deps.MajorService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService),
		Transcript: appControllers.NewTranscriptController(deps.TranscriptService),
		Health:     appControllers.NewHealthController(dbPool),
	}

	return deps, nil
}

// RegisterValidators installs the course validation tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return validation.RegisterValidators(v)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	appRoutes.SetupRouter(router, deps.Controllers, int64(cfg.Transcript.MaxTextBytes))
	return router, nil
}

package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/enrolly/enrolly/internal/app/controllers"
	appMigrations "github.com/enrolly/enrolly/internal/app/migrations"
	appRepos "github.com/enrolly/enrolly/internal/app/repositories"
	appRoutes "github.com/enrolly/enrolly/internal/app/routes"
	appServices "github.com/enrolly/enrolly/internal/app/services"
	"github.com/enrolly/enrolly/internal/config"
	"github.com/enrolly/enrolly/internal/db"
	appMiddleware "github.com/enrolly/enrolly/internal/middleware"
	"github.com/enrolly/enrolly/internal/pkg/logger"
	"github.com/enrolly/enrolly/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	ProfileService    appServices.ProfileService
	InstructorService appServices.InstructorService
	CourseService     appServices.CourseService
	EnrollmentService appServices.EnrollmentService

	HealthController     *appControllers.HealthController
	StudentController    *appControllers.StudentController
	ProfileController    *appControllers.ProfileController
	InstructorController *appControllers.InstructorController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			// Seed failures should not prevent startup
			lgr.Error().Err(err).Msg("Failed to seed sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.ProfileRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.ProfileService = appServices.NewProfileService(
		deps.Repos.ProfileRepository,
		deps.Repos.StudentRepository,
	)
	deps.InstructorService = appServices.NewInstructorService(
		deps.Repos.InstructorRepository,
		deps.Repos.CourseRepository,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.InstructorRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.HealthController = appControllers.NewHealthController()
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.HealthController,
		deps.StudentController,
		deps.ProfileController,
		deps.InstructorController,
		deps.CourseController,
		deps.EnrollmentController,
	)

	return router
}

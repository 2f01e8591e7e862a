package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/unirecords/internal/app/controllers"
	appMigrations "github.com/yigit/unirecords/internal/app/migrations"
	appRepos "github.com/yigit/unirecords/internal/app/repositories"
	appRoutes "github.com/yigit/unirecords/internal/app/routes"
	appServices "github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/db"
	appMiddleware "github.com/yigit/unirecords/internal/middleware"
	pkgAuth "github.com/yigit/unirecords/internal/pkg/auth"
	"github.com/yigit/unirecords/internal/pkg/helpers"
	"github.com/yigit/unirecords/internal/pkg/logger"
	"github.com/yigit/unirecords/internal/pkg/metrics"
	"github.com/yigit/unirecords/internal/seed"
)

// DefaultConfigPath is read when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	JWTService        *pkgAuth.JWTService
	Metrics           *metrics.Metrics
	AuthMiddleware    *appMiddleware.AuthMiddleware
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	AdminController   *appControllers.AdminController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and, when enabled,
// applies the schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.AutoMigrate {
		if err := RunMigrations(context.Background(), database, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database, nil
}

// RunMigrations applies the embedded schema
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := appMigrations.NewMigrator(database.Pool, lgr).Apply(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Metrics = metrics.New()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 2*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(database, deps.Repos, deps.JWTService, deps.Metrics, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(
		deps.Services.StudentService,
		deps.Services.AuditService,
		deps.Services.RegistrationService,
		lgr,
	)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService, lgr)

	return deps
}

// SeedDefaults creates the default admin and, when enabled, the demo records.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies, demo bool) error {
	return seed.CreateDefaultData(ctx, seed.Stores{
		Admins:   deps.Repos.AdminRepository,
		Students: deps.Repos.StudentRepository,
	}, deps.Services.AdminService, seed.Options{
		AdminUsername: cfg.Seed.AdminUsername,
		AdminPassword: cfg.Seed.AdminPassword,
		Demo:          demo,
	}, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(deps.Metrics),
		cors.New(corsConfig(cfg)),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.AuthMiddleware,
		deps.Metrics,
	)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", appMiddleware.HeaderRequestID},
		ExposeHeaders: []string{appMiddleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	origins := cfg.AllowedOrigins()
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

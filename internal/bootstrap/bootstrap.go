// Package bootstrap wires configuration, storage, services and routes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emre/eventra/internal/app/controllers"
	appMigrations "github.com/emre/eventra/internal/app/migrations"
	appRepos "github.com/emre/eventra/internal/app/repositories"
	appRoutes "github.com/emre/eventra/internal/app/routes"
	appServices "github.com/emre/eventra/internal/app/services"
	"github.com/emre/eventra/internal/config"
	"github.com/emre/eventra/internal/db"
	appMiddleware "github.com/emre/eventra/internal/middleware"
	pkgAuth "github.com/emre/eventra/internal/pkg/auth"
	"github.com/emre/eventra/internal/pkg/email"
	"github.com/emre/eventra/internal/pkg/filestorage"
	"github.com/emre/eventra/internal/pkg/helpers"
	"github.com/emre/eventra/internal/pkg/logger"
	"github.com/emre/eventra/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	EventManagerService    appServices.EventManagerService
	VolunteerService       appServices.VolunteerService
	SponsorService         appServices.SponsorService
	EventService           appServices.EventService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	EventManagerController *appControllers.EventManagerController
	VolunteerController    *appControllers.VolunteerController
	SponsorController      *appControllers.SponsorController
	EventController        *appControllers.EventController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Mailer                 email.EmailService
	Logger                 zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := migrator.MigrateDir(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Stale refresh tokens accumulate between deployments; clear them now.
	if removed, err := deps.Repos.Token.DeleteExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to delete expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens deleted")
	}

	baseURL := cfg.Server.BaseURL
	fileStorageBaseURL := strings.TrimRight(baseURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		BaseURL:   baseURL,
	}, lgr)

	runInTx := func(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
		return db.WithTransaction(ctx, dbPool, fn)
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.User,
		deps.Repos.Token,
		deps.JWTService,
		deps.Mailer,
		runInTx,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.User)
	deps.EventManagerService = appServices.NewEventManagerService(deps.Repos.User, deps.FileStorage)
	deps.VolunteerService = appServices.NewVolunteerService(deps.Repos.User)
	deps.SponsorService = appServices.NewSponsorService(deps.Repos.User)
	deps.EventService = appServices.NewEventService(deps.Repos.Event, deps.Repos.User)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.EventManagerController = appControllers.NewEventManagerController(deps.EventManagerService, lgr)
	deps.VolunteerController = appControllers.NewVolunteerController(deps.VolunteerService, lgr)
	deps.SponsorController = appControllers.NewSponsorController(deps.SponsorService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.EventManagerController,
		deps.VolunteerController,
		deps.SponsorController,
		deps.EventController,
		deps.AuthMiddleware,
	)

	return router
}

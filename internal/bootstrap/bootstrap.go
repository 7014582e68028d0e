package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appControllers "github.com/harish176/placement-portal/internal/app/controllers"
	appRepos "github.com/harish176/placement-portal/internal/app/repositories"
	appRoutes "github.com/harish176/placement-portal/internal/app/routes"
	appServices "github.com/harish176/placement-portal/internal/app/services"
	"github.com/harish176/placement-portal/internal/config"
	"github.com/harish176/placement-portal/internal/db"
	appMiddleware "github.com/harish176/placement-portal/internal/middleware"
	pkgAuth "github.com/harish176/placement-portal/internal/pkg/auth"
	"github.com/harish176/placement-portal/internal/pkg/cache"
	"github.com/harish176/placement-portal/internal/pkg/email"
	"github.com/harish176/placement-portal/internal/pkg/filestorage"
	"github.com/harish176/placement-portal/internal/pkg/helpers"
	"github.com/harish176/placement-portal/internal/pkg/logger"
	"github.com/harish176/placement-portal/internal/pkg/observability"
	"github.com/harish176/placement-portal/internal/pkg/validation"
	"github.com/harish176/placement-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	AuthService      *appServices.AuthService
	StudentService   appServices.StudentService
	FacultyService   appServices.FacultyService
	CompanyService   appServices.CompanyService
	PlacementService appServices.PlacementService
	TPCMemberService appServices.TPCMemberService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	LoginLimiter   *appMiddleware.RateLimiter

	JWTService  *pkgAuth.JWTService
	Hasher      *pkgAuth.PasswordHasher
	FileStorage *filestorage.LocalStorage
	Cache       *cache.Client
	Prom        *observability.Prom
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromSettings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("mode", cfg.Server.Mode).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// NewPasswordHasher builds the hasher at the configured cost.
func NewPasswordHasher(cfg *config.Config) *pkgAuth.PasswordHasher {
	return pkgAuth.NewPasswordHasher(cfg.Security.BcryptCost)
}

// SetupDatabase connects to MongoDB, ensures indexes and seeds the admin
// account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure indexes")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	lgr.Info().Msg("Database indexes ensured.")

	if err := SeedAdmin(ctx, cfg, database, lgr); err != nil {
		// the API is still usable by existing admins
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	return database, nil
}

// SeedAdmin creates the configured admin account if no admin exists.
func SeedAdmin(ctx context.Context, cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) error {
	_, err := seed.EnsureAdmin(ctx,
		appRepos.NewFacultyRepository(database.Database, nil),
		NewPasswordHasher(cfg),
		seed.AdminAccount{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: cfg.Admin.Name},
		lgr.With().Str("component", "seed").Logger(),
	)
	return err
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	var dbErrors appRepos.ErrorObserver
	if cfg.Observability.MetricsEnabled {
		deps.Prom = observability.NewProm()
		dbErrors = deps.Prom.ObserveDBError
	}

	deps.Repos = appRepos.NewRepositories(database.Database, dbErrors)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.FileBaseURL())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		AccessSecret:    cfg.JWT.Secret,
		RefreshSecret:   cfg.JWT.RefreshSecret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 7*24*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 30*24*time.Hour),
		Issuer:          cfg.JWT.Issuer,
	})
	deps.Hasher = NewPasswordHasher(cfg)

	mailer := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, logger.Component("email"))

	var logins appServices.LoginObserver
	if deps.Prom != nil {
		logins = deps.Prom
	}

	// --- Services ---
	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(
		repos.StudentRepository, repos.FacultyRepository,
		deps.JWTService, deps.Hasher, mailer, logins,
		logger.Component("auth"),
	)
	deps.StudentService = appServices.NewStudentService(
		repos.StudentRepository, repos.PlacementRepository, deps.Hasher, mailer, logger.Component("students"),
	)
	deps.FacultyService = appServices.NewFacultyService(repos.FacultyRepository, deps.Hasher, logger.Component("faculty"))
	deps.CompanyService = appServices.NewCompanyService(repos.CompanyRepository, deps.FileStorage, logger.Component("companies"))
	deps.PlacementService = appServices.NewPlacementService(repos.PlacementRepository, logger.Component("placements"))
	deps.TPCMemberService = appServices.NewTPCMemberService(repos.TPCMemberRepository, logger.Component("tpc"))

	// --- Middleware ---
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService)
	if cfg.Redis.Addr != "" {
		deps.Cache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := deps.Cache.Ping(pingCtx); err != nil {
			// the limiter fails open, so an unreachable Redis only disables it
			lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable at startup")
		}
		cancel()
		deps.LoginLimiter = appMiddleware.NewRateLimiter(
			deps.Cache, "login",
			cfg.Security.LoginRateLimit,
			helpers.ParseDuration(cfg.Security.LoginRateWindow, 15*time.Minute),
			logger.Component("ratelimit"),
		)
	} else {
		lgr.Info().Msg("REDIS_ADDR not set, login rate limiting disabled")
	}

	// --- Controllers ---
	deps.Controllers = appRoutes.Controllers{
		Health:    appControllers.NewHealthController(database),
		Auth:      appControllers.NewAuthController(deps.AuthService, logger.Component("auth")),
		Student:   appControllers.NewStudentController(deps.StudentService),
		Faculty:   appControllers.NewFacultyController(deps.FacultyService),
		Company:   appControllers.NewCompanyController(deps.CompanyService),
		Placement: appControllers.NewPlacementController(deps.PlacementService),
		TPCMember: appControllers.NewTPCMemberController(deps.TPCMemberService),
	}

	lgr.Info().Msg("Dependencies initialized")
	return deps, nil
}

// SetupRouter builds the gin engine with the global middleware chain and all
// routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20

	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.Recovery())
	if cfg.Observability.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	}
	if deps.Prom != nil {
		router.Use(deps.Prom.GinHandleMiddleware())
		router.GET("/metrics", deps.Prom.Handler())
	}
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigins))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.LoginLimiter)

	lgr.Info().Msg("Router configured")
	return router
}

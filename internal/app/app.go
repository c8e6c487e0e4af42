package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/controller"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"
	"shona_dict_backend/pkg/configwatcher"
	"shona_dict_backend/pkg/database"
	"shona_dict_backend/pkg/logger"
	"shona_dict_backend/pkg/monitoring"
	"shona_dict_backend/pkg/security"
	"shona_dict_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	tracer   *sdktrace.TracerProvider
}

type repositories struct {
	user       *repository.UserRepository
	word       *repository.WordRepository
	suggestion *repository.SuggestionRepository
	challenge  *repository.ChallengeRepository
	completion *repository.CompletionRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	word        *service.WordService
	suggestion  *service.SuggestionService
	challenge   *service.ChallengeService
	completion  *service.CompletionService
	translation *service.TranslationService
}

type controllers struct {
	auth           *controller.AuthController
	word           *controller.WordController
	suggestion     *controller.SuggestionController
	challenge      *controller.ChallengeController
	challengeAdmin *controller.ChallengeAdminController
	translation    *controller.TranslationController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		word:       repository.NewWordRepository(db),
		suggestion: repository.NewSuggestionRepository(db),
		challenge:  repository.NewChallengeRepository(db),
		completion: repository.NewCompletionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.word = service.NewWordService(repos.word, rdb)
	s.suggestion = service.NewSuggestionService(repos.suggestion, repos.word)
	s.challenge = service.NewChallengeService(repos.challenge, rdb)
	s.completion = service.NewCompletionService(repos.completion)
	s.translation = service.NewTranslationService(cfg.AI)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		word:           controller.NewWordController(s.word, s.storage),
		suggestion:     controller.NewSuggestionController(s.suggestion),
		challenge:      controller.NewChallengeController(s.challenge, s.completion),
		challengeAdmin: controller.NewChallengeAdminController(s.challenge, s.completion),
		translation:    controller.NewTranslationController(s.translation),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the scheduled-publish sweep so drafts with a
// publishAt in the past go live without admin intervention, and watches the
// config file for hot-reloadable settings.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.challenge.ProcessScheduledPublishes(); err != nil {
				logger.Log.Error("scheduled publish error", zap.Error(err))
			}
		}
	}()

	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		// Only the AI settings are read per request; everything else
		// is wired at startup and needs a restart.
		a.Config.AI = newCfg.AI
		s.translation.SetConfig(newCfg.AI)
		logger.Log.Info("configuration reloaded")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, &cfg.Admin)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("shona-dict", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown with a five second drain window.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}

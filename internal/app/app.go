package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/madhuri-perumalla/CareerValidAI/internal/config"
	"github.com/madhuri-perumalla/CareerValidAI/internal/controller"
	"github.com/madhuri-perumalla/CareerValidAI/internal/repository"
	"github.com/madhuri-perumalla/CareerValidAI/internal/service"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/database"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/logger"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/monitoring"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/security"
	"github.com/madhuri-perumalla/CareerValidAI/pkg/tracing"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type services struct {
	ai        *service.AIService
	storage   *service.StorageService
	session   *service.SessionService
	github    *service.GitHubService
	resume    *service.ResumeService
	portfolio *service.PortfolioService
	skill     *service.SkillService
	chat      *service.ChatService
	builder   *service.BuilderService
}

type controllers struct {
	session  *controller.SessionController
	analysis *controller.AnalysisController
	skill    *controller.SkillController
	chat     *controller.ChatController
	builder  *controller.BuilderController
	health   *controller.HealthController
}

func (a *App) initStore() repository.SessionStore {
	if a.Config.Session.Backend == "database" && a.DB != nil {
		return repository.NewDBStore(a.DB)
	}
	return repository.NewMemoryStore()
}

func (a *App) initServices(store repository.SessionStore, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.session = service.NewSessionService(store)
	s.github = service.NewGitHubService(cfg.GitHub, rdb, store, s.ai)
	s.resume = service.NewResumeService(store, s.ai)
	s.portfolio = service.NewPortfolioService(cfg.GitHub, store, s.ai)
	s.skill = service.NewSkillService(store, s.ai)
	s.chat = service.NewChatService(store, s.ai)
	s.builder = service.NewBuilderService(store, s.ai, s.storage)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		session:  controller.NewSessionController(s.session),
		analysis: controller.NewAnalysisController(s.github, s.resume, s.portfolio),
		skill:    controller.NewSkillController(s.skill),
		chat:     controller.NewChatController(s.chat),
		builder:  controller.NewBuilderController(s.builder),
		health:   controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig propagates a reloaded config to the running services.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.ai.UpdateConfig(cfg.AI)
	logger.Log.Info("Config reloaded", zap.String("model", cfg.AI.Model))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	if cfg.Database.Enabled {
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
		app.DB = db
	}

	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		app.Redis = rdb
	}

	store := app.initStore()
	services := app.initServices(store, cfg, app.Redis)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-valid-ai", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

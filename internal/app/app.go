package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placement_prep_backend/internal/config"
	"placement_prep_backend/internal/controller"
	"placement_prep_backend/internal/repository"
	"placement_prep_backend/internal/service"
	"placement_prep_backend/pkg/configwatcher"
	"placement_prep_backend/pkg/database"
	"placement_prep_backend/pkg/logger"
	"placement_prep_backend/pkg/mailer"
	"placement_prep_backend/pkg/monitoring"
	"placement_prep_backend/pkg/security"
	"placement_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	cancelWorkers   context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	subject     *repository.SubjectRepository
	roadmap     *repository.RoadmapRepository
	schedule    *repository.ScheduleRepository
	performance *repository.PerformanceRepository
	streak      *repository.StreakRepository
	settings    *repository.SettingsRepository
	resume      *repository.ResumeRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	subject     *service.SubjectService
	roadmap     *service.RoadmapService
	schedule    *service.ScheduleService
	streak      *service.StreakService
	performance *service.PerformanceService
	dashboard   *service.DashboardService
	settings    *service.SettingsService
	storage     *service.StorageService
	resume      *service.ResumeService
	reminder    *service.ReminderService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	subject     *controller.SubjectController
	roadmap     *controller.RoadmapController
	schedule    *controller.ScheduleController
	performance *controller.PerformanceController
	dashboard   *controller.DashboardController
	settings    *controller.SettingsController
	resume      *controller.ResumeController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		subject:     repository.NewSubjectRepository(db),
		roadmap:     repository.NewRoadmapRepository(db),
		schedule:    repository.NewScheduleRepository(db),
		performance: repository.NewPerformanceRepository(db),
		streak:      repository.NewStreakRepository(db),
		settings:    repository.NewSettingsRepository(db),
		resume:      repository.NewResumeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.subject, cfg)
	s.user = service.NewUserService(repos.user)
	s.subject = service.NewSubjectService(repos.subject)
	s.settings = service.NewSettingsService(repos.settings)
	s.roadmap = service.NewRoadmapService(repos.roadmap, repos.settings)
	s.streak = service.NewStreakService(repos.streak, repos.schedule)
	s.schedule = service.NewScheduleService(repos.schedule, repos.subject, repos.settings, s.streak, rdb)
	s.performance = service.NewPerformanceService(repos.performance, repos.subject, s.streak)
	s.dashboard = service.NewDashboardService(repos.user, s.schedule, s.roadmap, s.performance, s.streak, rdb)
	s.resume = service.NewResumeService(repos.resume, s.storage)
	s.reminder = service.NewReminderService(repos.settings, repos.schedule, mailer.New(&cfg.Mailer))

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		subject:     controller.NewSubjectController(s.subject),
		roadmap:     controller.NewRoadmapController(s.roadmap),
		schedule:    controller.NewScheduleController(s.schedule),
		performance: controller.NewPerformanceController(s.performance),
		dashboard:   controller.NewDashboardController(s.dashboard),
		settings:    controller.NewSettingsController(s.settings),
		resume:      controller.NewResumeController(s.resume),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func (a *App) startBackgroundTasks(s *services) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelWorkers = cancel
	go s.reminder.Run(ctx)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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
		if _, err := tracing.InitTracer("placement-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == config.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	// Hot-reloads config edits in place: holders of the shared *Config (JWT
	// middleware, mailer) pick up new values on their next use.
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		updated, ok := newCfg.(*config.Config)
		if !ok {
			return
		}
		*app.Config = *updated
		logger.Log.Info("Configuration reloaded")
		for _, cb := range app.configCallbacks {
			cb(updated)
		}
	})

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

	if a.cancelWorkers != nil {
		a.cancelWorkers()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

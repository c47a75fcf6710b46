package app

import (
	"context"
	"linkup_backend/internal/config"
	"linkup_backend/internal/controller"
	"linkup_backend/internal/repository"
	"linkup_backend/internal/service"
	"linkup_backend/pkg/configwatcher"
	"linkup_backend/pkg/database"
	"linkup_backend/pkg/logger"
	"linkup_backend/pkg/monitoring"
	"linkup_backend/pkg/security"
	"linkup_backend/pkg/tracing"
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
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	friendship *repository.FriendshipRepository
	post       *repository.PostRepository
	comment    *repository.CommentRepository
	story      *repository.StoryRepository
	chat       *repository.ChatRepository
}

type services struct {
	storage    *service.StorageService
	user       *service.UserService
	friendship *service.FriendshipService
	graph      *service.GraphService
	post       *service.PostService
	comment    *service.CommentService
	story      *service.StoryService
	chat       *service.ChatService
	chatHub    *service.ChatHub
}

type controllers struct {
	user    *controller.UserController
	friend  *controller.FriendController
	post    *controller.PostController
	comment *controller.CommentController
	story   *controller.StoryController
	graph   *controller.GraphController
	message *controller.MessageController
	chat    *controller.ChatController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		friendship: repository.NewFriendshipRepository(db, rdb),
		post:       repository.NewPostRepository(db),
		comment:    repository.NewCommentRepository(db),
		story:      repository.NewStoryRepository(db),
		chat:       repository.NewChatRepository(db, rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.user = service.NewUserService(repos.user)
	s.friendship = service.NewFriendshipService(repos.friendship, repos.user)
	s.graph = service.NewGraphService(repos.user, repos.friendship)
	s.post = service.NewPostService(repos.post, repos.user)
	s.comment = service.NewCommentService(repos.comment)
	s.story = service.NewStoryService(repos.story, repos.friendship)
	s.chat = service.NewChatService(repos.chat)

	s.chatHub = service.NewChatHub(rdb)
	go s.chatHub.Run()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		user:    controller.NewUserController(s.user, a.Config),
		friend:  controller.NewFriendController(s.friendship, s.user),
		post:    controller.NewPostController(s.post, s.storage, a.Config),
		comment: controller.NewCommentController(s.comment),
		story:   controller.NewStoryController(s.story, s.storage, a.Config),
		graph:   controller.NewGraphController(s.graph),
		message: controller.NewMessageController(s.chat),
		chat:    controller.NewChatController(s.chatHub),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// debug 模式默认建表，release 模式需要 -migrate 显式触发
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("linkup-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热更新：回调里只读刷新，不重建连接
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(reloaded interface{}) {
		logger.Log.Info("Config file reloaded")
		for _, cb := range app.configCallbacks {
			cb(cfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 清理 WebSocket连接和Redis在线状态
	if a.services != nil && a.services.chatHub != nil {
		a.services.chatHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

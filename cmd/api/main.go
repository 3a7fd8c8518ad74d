package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "payrates/api/swagger" // swagger docs
	"payrates/internal/config"
	"payrates/internal/database"
	"payrates/internal/handler"
	"payrates/internal/logger"
	"payrates/internal/middleware"
	"payrates/internal/ratelock"
	"payrates/internal/repository"
	"payrates/internal/service"
	"payrates/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Award Pay Rates API
// @version         1.0
// @description     Pay rate calculation and computed rule generation for modern awards.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "payrates")
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.Database.DSN(), log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))

	locker := newLocker(ctx, cfg.Redis, log)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	awardRepo := repository.NewAwardRepository(db)
	employmentTypeRepo := repository.NewEmploymentTypeRepository(db)
	classificationRepo := repository.NewClassificationRepository(db)
	penaltyRepo := repository.NewPenaltyRateRepository(db)
	allowanceRepo := repository.NewAllowanceRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ruleRepo := repository.NewComputedRuleRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	clock := service.SystemClock()
	ruleEngine := service.NewRuleEngineService(awardRepo, employmentTypeRepo, classificationRepo, penaltyRepo, allowanceRepo, tagRepo, clock, log)
	ruleBuilder := service.NewRuleBuilderService(awardRepo, classificationRepo, penaltyRepo, ruleRepo, auditRepo, txManager, locker, wsHub, clock, log)
	payRuleService := service.NewPayRuleService(ruleRepo, clock)
	statisticsService := service.NewStatisticsService(statsRepo, clock)
	awardService := service.NewAwardService(awardRepo)
	auditService := service.NewAuditService(auditRepo)

	// Initialize Handlers
	payRateHandler := handler.NewPayRateHandler(ruleEngine, log)
	ruleHandler := handler.NewRuleHandler(ruleBuilder, payRuleService, cfg.RulesGeneratedBy, log)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService, log)
	awardHandler := handler.NewAwardHandler(awardService, log)
	auditHandler := handler.NewAuditHandler(auditService, log)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API Routing
	payRateHandler.RegisterRoutes(router.Group(""))
	ruleHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))
	awardHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newLocker returns a redis-backed generation lock, or a no-op lock when redis is not configured.
// An unreachable redis at startup is only a warning: generation proceeds without the lock.
func newLocker(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) ratelock.Locker {
	if !cfg.Enabled() {
		log.Info("REDIS_ADDR not set; rule generation locking disabled")
		return ratelock.NewNoopLocker()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unreachable; generation will proceed without lock until it recovers", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		log.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return ratelock.NewRedisLocker(rdb, ratelock.DefaultOptions(), log)
}

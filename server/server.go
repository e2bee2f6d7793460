package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lifelog-app/lifelog-backend/config"
	"github.com/lifelog-app/lifelog-backend/docs"
	activityHandler "github.com/lifelog-app/lifelog-backend/internal/handler/activity"
	diaryHandler "github.com/lifelog-app/lifelog-backend/internal/handler/diary"
	trendsHandler "github.com/lifelog-app/lifelog-backend/internal/handler/trends"
	userHandler "github.com/lifelog-app/lifelog-backend/internal/handler/user"
	"github.com/lifelog-app/lifelog-backend/internal/repository"
	"github.com/lifelog-app/lifelog-backend/internal/service/activity"
	"github.com/lifelog-app/lifelog-backend/internal/service/diary"
	"github.com/lifelog-app/lifelog-backend/internal/service/redis"
	"github.com/lifelog-app/lifelog-backend/internal/service/trends"
	"github.com/lifelog-app/lifelog-backend/internal/service/user"
	"github.com/lifelog-app/lifelog-backend/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterHandler struct {
	userHandler     *userHandler.UserHandler
	diaryHandler    *diaryHandler.DiaryHandler
	activityHandler *activityHandler.ActivityHandler
	trendsHandler   *trendsHandler.TrendsHandler
}

func RunServer(config *config.Config) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	case "dev", "development":
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode (default)")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	redisService := redis.NewRedisService(config.Redis)
	if redisService != nil {
		defer redisService.Close()
	} else {
		log.Println("⚠️ Redis unavailable, dashboard caching disabled")
	}

	userRepo := repository.NewUserRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	var cache trends.Cache
	var diaryInvalidator diary.DashboardInvalidator
	var activityInvalidator activity.DashboardInvalidator
	if redisService != nil {
		cache = redisService
		diaryInvalidator = redisService
		activityInvalidator = redisService
	}

	userSrv := user.NewUserService(userRepo)
	diarySrv := diary.NewDiaryService(diaryRepo, diaryInvalidator)
	activitySrv := activity.NewActivityService(activityRepo, activityInvalidator)
	trendsSrv := trends.NewService(diaryRepo, activityRepo, trends.DefaultCatalog(), cache)

	routerHandler := &RouterHandler{
		userHandler:     userHandler.NewUserHandler(userSrv),
		diaryHandler:    diaryHandler.NewDiaryHandler(diarySrv),
		activityHandler: activityHandler.NewActivityHandler(activitySrv),
		trendsHandler:   trendsHandler.NewTrendsHandler(trendsSrv),
	}

	r := setupRouter(routerHandler, db)

	srv := &http.Server{
		Addr:    ":" + config.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler, db *sqlx.DB) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggerMiddleware())

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := 200
		if err := db.Ping(); err != nil {
			status = "unhealthy"
			code = 503
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Unix(),
			"service":   "lifelog-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:8080"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Lifelog API"
	docs.SwaggerInfo.Description = "Diary, activity and trends API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/users/auth", routerHandler.userHandler.CreateOrAuthUserWithPassword)
		publicRoutes.POST("/users/logout", routerHandler.userHandler.Logout)
	}

	privateRoutes := r.Group("/api/v1")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.GET("/users/profile", routerHandler.userHandler.GetUserById)

		privateRoutes.POST("/diaries", routerHandler.diaryHandler.CreateDiary)
		privateRoutes.GET("/diaries", routerHandler.diaryHandler.GetDiaries)
		privateRoutes.GET("/diaries/:id", routerHandler.diaryHandler.GetDiary)
		privateRoutes.PUT("/diaries/:id", routerHandler.diaryHandler.UpdateDiary)
		privateRoutes.DELETE("/diaries/:id", routerHandler.diaryHandler.DeleteDiary)

		privateRoutes.POST("/activities", routerHandler.activityHandler.CreateActivity)
		privateRoutes.GET("/activities", routerHandler.activityHandler.GetActivities)
		privateRoutes.GET("/activities/:id", routerHandler.activityHandler.GetActivity)
		privateRoutes.PUT("/activities/:id", routerHandler.activityHandler.UpdateActivity)
		privateRoutes.DELETE("/activities/:id", routerHandler.activityHandler.DeleteActivity)

		trendsRoutes := privateRoutes.Group("/trends")
		{
			trendsRoutes.GET("/mood", routerHandler.trendsHandler.GetMoodTrend)
			trendsRoutes.GET("/mood/community", routerHandler.trendsHandler.GetCommunityMood)
			trendsRoutes.GET("/mood-factors", routerHandler.trendsHandler.GetMoodFactors)
			trendsRoutes.GET("/completion", routerHandler.trendsHandler.GetCompletion)
			trendsRoutes.GET("/life-balance", routerHandler.trendsHandler.GetLifeBalance)
			trendsRoutes.GET("/pattern", routerHandler.trendsHandler.GetPattern)
			trendsRoutes.GET("/summary", routerHandler.trendsHandler.GetSummary)
		}
	}

	return r
}

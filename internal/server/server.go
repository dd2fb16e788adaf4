package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"edudash/internal/config"
	"edudash/internal/handler"
	"edudash/internal/metrics"
	"edudash/internal/middleware"
	"edudash/internal/models"
	"edudash/internal/rbac"
	"edudash/internal/repository"
	"edudash/internal/service"
	"edudash/internal/token"
)

type Server struct {
	router *gin.Engine
	log    *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, log *zap.Logger) *Server {
	repo := repository.NewUserRepository(db, log)
	return &Server{
		router: NewRouter(repo, cfg, log),
		log:    log,
	}
}

// NewRouter assembles the full engine from a user repository so tests can
// swap in an in-memory store.
func NewRouter(repo repository.UserRepository, cfg *config.Config, log *zap.Logger) *gin.Engine {
	router := gin.Default()

	tokens := token.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	authService := service.NewAuthService(repo, tokens, log)
	collector := metrics.NewCollector()
	guard := rbac.NewGuard(tokens)

	authHandler := handler.NewAuthHandler(authService, collector, log)
	dashboardHandler := handler.NewDashboardHandler(log)

	// Edge enforcement runs before everything; it skips the API and
	// operational endpoints, which enforce themselves below.
	router.Use(middleware.EdgeGuard(guard, collector, log))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	authGroup := router.Group("/api/auth")
	authGroup.POST("/register", loginLimiter.Middleware(), authHandler.Register)
	authGroup.POST("/login", loginLimiter.Middleware(), authHandler.Login)

	authRequired := router.Group("/api")
	authRequired.Use(middleware.Authenticate(tokens, log))
	{
		authRequired.GET("/auth/me", authHandler.Me)
		authRequired.POST("/auth/logout", authHandler.Logout)

		dashboard := authRequired.Group("/dashboard")
		dashboard.GET("", dashboardHandler.Overview)
		dashboard.GET("/teacher",
			middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
			dashboardHandler.Teacher)
		dashboard.GET("/admin",
			middleware.RequireRoles(models.RoleAdmin),
			dashboardHandler.Admin)
	}

	return router
}

func (s *Server) Run(addr string) {
	s.log.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.log.Fatal("Server failed to start", zap.Error(err))
	}
}

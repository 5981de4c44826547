package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlers "github.com/IT22898920/GYM-App-sub004/internal/adapter/handler/http"
	"github.com/IT22898920/GYM-App-sub004/internal/config"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/provider"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/infrastructure/database"
	"github.com/IT22898920/GYM-App-sub004/internal/middleware/auth"
	"github.com/IT22898920/GYM-App-sub004/internal/usecase"
	"github.com/IT22898920/GYM-App-sub004/pkg/logger"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	receipts repository.ReceiptStore
	card     provider.CardProcessor
	fees     usecase.PlanFees
}

func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	repos *database.Repositories,
	receipts repository.ReceiptStore,
	card provider.CardProcessor,
	fees usecase.PlanFees,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()

	origins := cfg.Server.HTTP.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(middleware.Recover())
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.PUT, echo.DELETE},
	}))
	logger.WithEchoErrorHandler(e, log)

	return &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		repos:    repos,
		receipts: receipts,
		card:     card,
		fees:     fees,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	srv := s.echo.Server
	srv.ReadTimeout = s.config.Server.HTTP.ReadTimeout
	srv.WriteTimeout = s.config.Server.HTTP.WriteTimeout

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": "gym",
		})
	})
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	currency := s.config.Service.Currency
	if currency == "" {
		currency = "USD"
	}

	registrationService := usecase.NewRegistrationService(
		s.repos.Members, s.receipts, s.card, s.fees, currency, s.logger)
	memberService := usecase.NewMemberService(s.repos.Members, s.logger)
	gymService := usecase.NewGymService(s.repos.Gyms, s.logger)
	planService := usecase.NewWorkoutPlanService(s.repos.WorkoutPlans, s.logger)
	paymentService := usecase.NewPaymentService(s.repos.Payments, s.logger)
	authService := usecase.NewAuthService(
		s.repos.Users, s.config.JWT.Secret, s.config.JWT.TokenTTL, s.logger)

	memberHandler := handlers.NewMemberHandler(registrationService, memberService, s.receipts, s.logger)
	gymHandler := handlers.NewGymHandler(gymService, s.logger)
	planHandler := handlers.NewWorkoutPlanHandler(planService, s.logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, s.logger)
	authHandler := handlers.NewAuthHandler(authService, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
	}

	v1 := s.echo.Group("/api/v1")

	// Public routes
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/members/register/:gymId", memberHandler.Register)
	v1.GET("/gyms", gymHandler.List)
	v1.GET("/gyms/:id", gymHandler.Get)
	v1.GET("/gyms/:gymId/workout-plans", planHandler.ListByGym)
	v1.GET("/workout-plans/:id", planHandler.Get)

	protected := v1.Group("", auth.JWTMiddleware(jwtConfig))

	staff := auth.RequireRoles(s.logger,
		string(entity.RoleOwner), string(entity.RoleAdmin))
	trainers := auth.RequireRoles(s.logger,
		string(entity.RoleInstructor), string(entity.RoleOwner), string(entity.RoleAdmin))

	// Member administration: listing, pending review, payment decisions.
	members := protected.Group("/members", staff)
	members.GET("", memberHandler.List)
	members.GET("/pending", memberHandler.ListPending)
	members.GET("/:id", memberHandler.Get)
	members.GET("/:id/receipt", memberHandler.DownloadReceipt)
	members.GET("/:id/payments", paymentHandler.ListByMember)
	members.PATCH("/:id/confirm-payment", memberHandler.ConfirmPayment)
	members.PATCH("/:id/reject-payment", memberHandler.RejectPayment)

	// Gym profile management.
	gyms := protected.Group("/gyms", staff)
	gyms.POST("", gymHandler.Create)
	gyms.GET("/mine", gymHandler.Mine)
	gyms.PUT("/:id", gymHandler.Update)

	// Training programs.
	plans := protected.Group("/workout-plans", trainers)
	plans.POST("", planHandler.Create)
	plans.PUT("/:id", planHandler.Update)
	plans.DELETE("/:id", planHandler.Delete)

	// Payment ledger.
	protected.GET("/payments", paymentHandler.List, staff)
}

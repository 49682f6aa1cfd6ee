package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"horas-api/docs"
	"horas-api/internal/config"
	"horas-api/internal/crypto"
	"horas-api/internal/handler"
	"horas-api/internal/middleware"
	"horas-api/internal/repository"
	"horas-api/internal/service"
)

type Server struct {
	router  *gin.Engine
	db      *sqlx.DB
	cfg     *config.Config
	logger  *zap.Logger
	metrics *middleware.Metrics
	tokens  service.TokenService
	hasher  *crypto.PasswordHasher
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	hasher, err := crypto.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	router := gin.New()
	metrics := middleware.NewMetrics()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger), metrics.Handler())

	s := &Server{
		router:  router,
		db:      db,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		tokens:  tokens,
		hasher:  hasher,
	}

	s.setupRoutes()

	return s, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	timeout := s.cfg.QueryTimeout()
	responder := handler.Responder{ExposeDetails: s.cfg.ExposeErrorDetails()}

	funcionarioRepo := repository.NewFuncionarioRepository(s.db, timeout, s.logger)
	usuarioRepo := repository.NewUsuarioRepository(s.db, timeout, s.logger)
	cargoRepo := repository.NewCargoRepository(s.db, timeout, s.logger)

	funcionarioHandler := handler.NewFuncionarioHandler(service.NewFuncionarioService(funcionarioRepo, s.logger), responder, s.logger)
	usuarioHandler := handler.NewUsuarioHandler(service.NewUsuarioService(usuarioRepo, s.hasher, s.tokens, s.logger), responder, s.logger)
	cargoHandler := handler.NewCargoHandler(service.NewCargoService(cargoRepo, s.logger), responder, s.logger)

	// Ping route for health check
	s.router.GET("/ping", s.ping)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))
	s.router.GET("/api-docs/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	guard := middleware.AuthMiddleware(s.tokens, s.logger)
	api := s.router.Group("/api")

	funcionarios := api.Group("/funcionarios", guard)
	{
		funcionarios.POST("", funcionarioHandler.Create)
		funcionarios.GET("", funcionarioHandler.List)
		funcionarios.GET("/:id", funcionarioHandler.GetByID)
		funcionarios.PUT("/:id", funcionarioHandler.Update)
		funcionarios.DELETE("/:id", funcionarioHandler.Delete)
	}

	// Registration and login are public; listing and deletion need a token.
	usuarios := api.Group("/usuarios")
	{
		usuarios.POST("", usuarioHandler.Register)
		usuarios.POST("/login", usuarioHandler.Login)
		usuarios.GET("", guard, usuarioHandler.List)
		usuarios.DELETE("/:id", guard, usuarioHandler.Delete)
	}

	api.GET("/cargos", guard, cargoHandler.List)
}

func (s *Server) ping(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.QueryTimeout())
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("Database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, handler.ErrorResponse{Error: "Banco de dados indisponível."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Run serves until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("port", s.cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}

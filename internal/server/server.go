// Package server is the composition root: it wires the repository, credential
// utilities, asset pipeline, and identity service together, then mounts the
// two façades — the chi HTTP router and the gRPC server — over the single
// shared IdentityService instance.
//
// Nothing here contains business logic. If a behavior differs between the two
// transports, the bug is in a façade, not in this wiring.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"

	"github.com/sakif/account-service/internal/asset"
	"github.com/sakif/account-service/internal/auth"
	"github.com/sakif/account-service/internal/blob/s3"
	"github.com/sakif/account-service/internal/config"
	"github.com/sakif/account-service/internal/handler"
	"github.com/sakif/account-service/internal/middleware"
	sqliteRepo "github.com/sakif/account-service/internal/repository/sqlite"
	"github.com/sakif/account-service/internal/rpc"
	"github.com/sakif/account-service/internal/service"
)

// Server owns both listeners and the database handle; Start runs them and
// Close-equivalents happen during graceful shutdown.
type Server struct {
	router     *chi.Mux
	grpcServer *grpc.Server
	config     *config.Config
	logger     *slog.Logger
	db         *sqliteRepo.DB
}

// New assembles the full dependency graph:
//
//	sqlite.DB ─────────────┐
//	TokenService ──────────┤
//	PasswordService ───────┼→ IdentityService ─┬→ AccountHandler (HTTP)
//	s3.Store → asset.Manager┘                  └→ rpc.AccountServer (gRPC)
//
// Each layer receives interfaces or narrow structs, never the config blob.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	objectStore, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		BaseURL:   cfg.S3BaseURL,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating object store: %w", err)
	}
	assets := asset.NewManager(objectStore, logger)

	identity := service.NewIdentityService(db, tokens, passwords, assets, logger)

	s := &Server{
		router:     chi.NewRouter(),
		grpcServer: grpc.NewServer(),
		config:     cfg,
		logger:     logger,
		db:         db,
	}

	s.setupHTTP(identity, tokens)
	rpc.RegisterWith(s.grpcServer, identity, logger)

	return s, nil
}

// setupHTTP mounts middleware and the /auth routes.
func (s *Server) setupHTTP(identity *service.IdentityService, tokens *auth.TokenService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Welcome to the User Account Service API"}`))
	})

	accounts := handler.NewAccountHandler(identity, s.logger)

	s.router.Route("/auth", func(r chi.Router) {
		r.Post("/register", accounts.HandleRegister)
		r.Post("/login", accounts.HandleLogin)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Get("/profile", accounts.HandleGetProfile)
			r.Put("/profile", accounts.HandleUpdateProfile)
			r.Put("/change-password", accounts.HandleChangePassword)
			r.Delete("/profile", accounts.HandleDeleteProfile)
			r.Post("/logout", accounts.HandleLogout)
		})
	})
}

// Start runs the HTTP and gRPC servers until SIGINT/SIGTERM, then drains
// in-flight requests (30s for HTTP, GracefulStop for gRPC) and closes the
// database.
func (s *Server) Start() error {
	defer s.db.Close()

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.HTTPPort),
		Handler:      s.router,
		ReadTimeout:  60 * time.Second, // generous: uploads can be large
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.GRPCPort))
	if err != nil {
		return fmt.Errorf("listening on gRPC port %d: %w", s.config.GRPCPort, err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 2)

	go func() {
		s.logger.Info("http server starting", slog.Int("port", s.config.HTTPPort))
		serverErrors <- httpSrv.ListenAndServe()
	}()

	go func() {
		s.logger.Info("grpc server starting", slog.Int("port", s.config.GRPCPort))
		serverErrors <- s.grpcServer.Serve(grpcListener)
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpSrv.Shutdown(ctx); err != nil {
			s.logger.Error("http shutdown failed", slog.String("error", err.Error()))
		}
		s.grpcServer.GracefulStop()
		s.logger.Info("servers stopped gracefully")
	}

	return nil
}

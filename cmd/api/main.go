package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Deepsoni5/kucash-sub001/internal/auth"
	"github.com/Deepsoni5/kucash-sub001/internal/cache"
	"github.com/Deepsoni5/kucash-sub001/internal/config"
	"github.com/Deepsoni5/kucash-sub001/internal/db"
	applicationdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/application"
	contactdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/contact"
	customerdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/customer"
	dashboarddomain "github.com/Deepsoni5/kucash-sub001/internal/domain/dashboard"
	postdomain "github.com/Deepsoni5/kucash-sub001/internal/domain/post"
	"github.com/Deepsoni5/kucash-sub001/internal/http/handlers"
	"github.com/Deepsoni5/kucash-sub001/internal/jobs"
	"github.com/Deepsoni5/kucash-sub001/internal/observability"
	postgresrepo "github.com/Deepsoni5/kucash-sub001/internal/repository/postgres"
	"github.com/Deepsoni5/kucash-sub001/internal/server"
	"github.com/Deepsoni5/kucash-sub001/internal/ws"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect postgres", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("redis unavailable, otp throttling disabled", "err", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	authRepo := db.NewAuthRepository(pool)
	otpRepo := db.NewOTPRepository(pool)
	outboxRepo := postgresrepo.NewOutboxRepository(pool)

	jwtManager := auth.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSigningKey)
	idpVerifier := auth.NewIDPTokenVerifier(cfg.IDPIssuer, cfg.IDPAudience, cfg.IDPVerificationKey, cfg.IDPJWKSURL)
	throttle := auth.NewResendThrottle(redisClient, cfg.OTPResendWindow)
	profileCache := cache.New[*db.User](cfg.ProfileCacheTTL)
	authService := auth.NewService(
		authRepo, otpRepo, jobs.NewOTPOutboxDispatcher(outboxRepo),
		jwtManager, idpVerifier, throttle, profileCache,
		auth.ServiceConfig{
			AccessTTL:      cfg.JWTAccessTTL,
			RefreshTTL:     cfg.JWTRefreshTTL,
			OTPTTL:         cfg.OTPTTL,
			OTPMaxAttempts: cfg.OTPMaxAttempts,
		},
	)
	cookieCfg := auth.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}
	authHandler := handlers.NewAuthHandler(authService, cookieCfg, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	applicationRepo := postgresrepo.NewApplicationRepository(pool)
	customerRepo := postgresrepo.NewCustomerRepository(pool)
	contactRepo := postgresrepo.NewContactRepository(pool)

	applicationService := applicationdomain.NewService(applicationRepo, outboxRepo)
	customerService := customerdomain.NewService(customerRepo)
	contactService := contactdomain.NewService(contactRepo)
	postService := postdomain.NewService(postgresrepo.NewPostRepository(pool))
	dashboardService := dashboarddomain.NewService(applicationRepo, customerRepo, contactRepo)

	hub := ws.NewHub()
	notifier := ws.NewNotifier(applicationRepo, hub, cfg.WSPollInterval)

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Pinger:             pool,
		AuthHandler:        authHandler,
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		ProfileHandler:     handlers.NewProfileHandler(customerService),
		PostHandler:        handlers.NewPostHandler(postService),
		ContactHandler:     handlers.NewContactHandler(contactService),
		AdminHandler:       handlers.NewAdminHandler(contactService, customerService, authRepo),
		WSHandler:          ws.NewHandler(hub),
		JWTManager:         jwtManager,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := notifier.Run(sigCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("realtime notifier failed", "err", err)
		}
	}()

	go func() {
		logger.Info("api server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("api server stopped")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tropicacao/leads-api/config"
	"github.com/tropicacao/leads-api/internal/handlers"
	"github.com/tropicacao/leads-api/internal/mailer"
	"github.com/tropicacao/leads-api/internal/middleware"
	"github.com/tropicacao/leads-api/internal/ratelimit"
	"github.com/tropicacao/leads-api/internal/services"
	"github.com/tropicacao/leads-api/pkg/httpclient"
	"github.com/tropicacao/leads-api/pkg/logger"
	"github.com/tropicacao/leads-api/pkg/metrics"
	"github.com/tropicacao/leads-api/pkg/profiling"
	"github.com/tropicacao/leads-api/pkg/recaptcha"
	"github.com/tropicacao/leads-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting leads API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceVersion,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize continuous profiling
	profilerStop, err := profiling.InitProfiler(profiling.Config{
		Enabled:               cfg.Profiling.Enabled,
		Endpoint:              cfg.Profiling.Endpoint,
		AppName:               cfg.Profiling.AppName,
		SampleTypes:           cfg.Profiling.SampleTypes,
		UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
	}, cfg.Observability.ServiceName, cfg.Observability.ServiceVersion, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// HTTP client shared by the captcha verifier and the email provider
	httpClient := httpclient.NewStandardClient()

	// Wire the submission pipeline
	verifier := recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)
	if !verifier.Enabled() {
		logger.Warn("reCAPTCHA secret not configured, captcha verification disabled")
	}
	provider := mailer.NewProvider(cfg.Email, httpClient)
	dispatcher := mailer.NewDispatcher(provider)
	leadService := services.NewLeadService(cfg, verifier, dispatcher)

	// Initialize handlers
	leadHandler := handlers.NewLeadHandler(leadService)
	eventsHandler := handlers.NewEventsHandler()
	healthHandler := handlers.NewHealthHandler(cfg.Observability.ServiceVersion)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the marketing site origins, plus localhost in development
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiting: hard fixed windows on the abuse-sensitive endpoints,
	// a token bucket everywhere else
	submitWindow := ratelimit.NewFixedWindow(cfg.RateLimit.SubmitMax, cfg.RateLimit.SubmitWindow)
	eventsWindow := ratelimit.NewFixedWindow(cfg.RateLimit.EventsMax, cfg.RateLimit.EventsWindow)
	generalRateLimiter := middleware.NewRateLimiter(100, 200)

	// API routes
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.POST("/leads", middleware.SubmitRateLimit("submit", submitWindow), middleware.BodySizeLimitMiddleware(64*1024), leadHandler.SubmitLead)
	v1.POST("/contact", middleware.SubmitRateLimit("submit", submitWindow), middleware.BodySizeLimitMiddleware(64*1024), leadHandler.SubmitLegacyContact)
	v1.POST("/events", middleware.SubmitRateLimit("events", eventsWindow), middleware.BodySizeLimitMiddleware(16*1024), eventsHandler.ReceiveEvent)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vishal1412/PropScan-sub000/internal/config"
	"github.com/vishal1412/PropScan-sub000/internal/handlers"
	"github.com/vishal1412/PropScan-sub000/internal/metrics"
	"github.com/vishal1412/PropScan-sub000/internal/services"
	"github.com/vishal1412/PropScan-sub000/internal/store"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second
)

func main() {
	// Initialize structured logging
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate critical configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s, mode=%s, storage=%s",
		cfg.App.Debug, cfg.App.Port, cfg.App.Host, cfg.App.Mode, cfg.Storage.Driver)

	// Initialize the record store
	log.Println("Initializing record store...")
	st, err := store.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	defer func() {
		log.Println("Closing record store...")
		if closeErr := st.Close(); closeErr != nil {
			log.Printf("Error closing record store: %v", closeErr)
		}
	}()

	// Create service instances
	log.Println("Initializing services...")
	emailSvc := services.NewEmailService(&cfg.Email)
	svcs := handlers.Services{
		Health:       services.NewHealthService(cfg.App.Name),
		Auth:         services.NewAuthService(&cfg.Auth),
		Catalog:      services.NewCatalogService(st),
		Leads:        services.NewLeadService(st, emailSvc, cfg.Email.AdminEmail),
		Testimonials: services.NewTestimonialService(st),
		Resale:       services.NewResaleService(st),
		Cities:       services.NewCityService(st),
	}

	// Create HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(securityHeaders(cfg))
	e.Use(corsMiddleware(cfg))
	e.Use(requestLogging)
	e.Use(echo.WrapMiddleware(metrics.PrometheusMiddleware))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Println("Mounting HTTP handlers...")
	handlers.RegisterRoutes(e, svcs)

	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = idleTimeout

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		if err == context.DeadlineExceeded {
			log.Println("Shutdown timeout exceeded, forcing close...")
			e.Close()
		}
	}

	log.Println("Server shutdown complete")
}

// validateConfig validates critical configuration values
func validateConfig(cfg *config.Config) error {
	if cfg.Auth.SecretKey == "" || cfg.Auth.SecretKey == "your-secret-key-change-in-production" {
		return fmt.Errorf("SECRET_KEY must be set and changed from default value")
	}
	if len(cfg.Auth.SecretKey) < 32 {
		return fmt.Errorf("SECRET_KEY must be at least 32 characters for security")
	}
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	return nil
}

// securityHeaders adds security headers to responses
func securityHeaders(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			h.Set("Server", "")

			// HSTS (only in production with HTTPS)
			if !cfg.App.Debug && c.Request().TLS != nil {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}

// corsMiddleware configures CORS based on environment
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Request-ID"},
		MaxAge:           cfg.CORS.MaxAge,
		AllowCredentials: true,
	})
}

// requestLogging logs all incoming requests and their responses
func requestLogging(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Skip logging for health checks to reduce noise
		path := c.Request().URL.Path
		if path == "/health" || path == "/metrics" {
			return next(c)
		}

		log.Printf("[REQUEST] %s %s from %s", c.Request().Method, path, c.RealIP())

		err := next(c)

		duration := time.Since(start)
		status := c.Response().Status
		statusText := "OK"
		if status >= 400 {
			statusText = "ERROR"
		}
		log.Printf("[RESPONSE] %s %s -> %d %s (%v)", c.Request().Method, path, status, statusText, duration)

		return err
	}
}

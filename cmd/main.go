// @title Mini Healthcare Platform API
// @version 1.0
// @description Health self-tracking backend: signup, login, daily dosha scoring, history

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/GargManasvini/mini-healthcare-platform/internal/auth"
	"github.com/GargManasvini/mini-healthcare-platform/internal/config"
	"github.com/GargManasvini/mini-healthcare-platform/internal/db"
	"github.com/GargManasvini/mini-healthcare-platform/internal/handlers"
	"github.com/GargManasvini/mini-healthcare-platform/internal/routes"
	"github.com/GargManasvini/mini-healthcare-platform/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	postgres, err := db.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up database")
	}
	defer postgres.Close()

	users := store.NewUserStore(postgres.Pool)
	records := store.NewHealthStore(postgres.Pool)
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	authHandler := handlers.NewAuthHandler(users, issuer, int(cfg.JWT.TokenTTL.Seconds()), cfg.IsProduction(), logger)
	healthHandler := handlers.NewHealthHandler(records, logger)
	statusHandler := handlers.NewStatusHandler(postgres.Pool)

	mux := routes.SetupRoutes(authHandler, healthHandler, statusHandler, issuer, users)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("Server stopped")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loginapp/internal/config"
	"loginapp/internal/handlers"
	"loginapp/internal/logger"
	"loginapp/internal/password"
	"loginapp/internal/repository"
	"loginapp/internal/server"
	"loginapp/internal/service"
	"loginapp/internal/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// open DB
	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	hasher, err := password.New(cfg.BcryptCost)
	if err != nil {
		log.Fatalw("invalid bcrypt cost", "err", err)
	}
	tokens, err := token.NewManager(cfg.SigningKey, cfg.TokenTTL)
	if err != nil {
		log.Fatalw("invalid token config", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(db)
	services := service.NewService(repos, hasher, tokens, log)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		log.Infow("starting server", "port", cfg.Port)
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

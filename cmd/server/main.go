package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fleshka4/saucerswap-normaliser/internal/app"
	"github.com/fleshka4/saucerswap-normaliser/internal/config"
	transport "github.com/fleshka4/saucerswap-normaliser/internal/transport/http"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("config.LoadDotEnv: %v", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("app.NewLogger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	svc, err := app.NewService(cfg, logger)
	if err != nil {
		logger.Fatal("app.NewService", zap.Error(err))
	}

	srv, err := transport.NewServer(svc, cfg, logger.Named("http"))
	if err != nil {
		logger.Fatal("transport.NewServer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.ListenAddr); err != nil {
		logger.Fatal("srv.Run", zap.Error(err))
	}
}

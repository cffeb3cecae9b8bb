package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/dd0wney/cluso-pathrace/pkg/api"
	"github.com/dd0wney/cluso-pathrace/pkg/config"
	"github.com/dd0wney/cluso-pathrace/pkg/logging"
	"github.com/dd0wney/cluso-pathrace/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.DefaultLogger().Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	logger.Info("pathrace server starting",
		logging.String("addr", cfg.ListenAddr),
		logging.Int("max_nodes", cfg.MaxNodes),
		logging.Int("max_edges", cfg.MaxEdges),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg, logger, metrics.DefaultRegistry())
	if err := server.Start(ctx); err != nil {
		logger.Error("server exited", logging.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payrun"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/config"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/rostersource"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env", slog.String("error", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := effectiveConfigPath(*configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("path", cfgPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	src, err := rostersource.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open roster", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer src.Close()

	payrunSvc := payrun.NewService(src.Repository, cfg.Payroll.Rates(), cfg.Payroll.Clock(), src.TxManager)
	grpcServer := server.New(cfg.Server.ListenAddr, payrunSvc, logger)

	if err := grpcServer.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/mirror-dash/internal/config"
	"github.com/rovshanmuradov/mirror-dash/internal/logger"
	"github.com/rovshanmuradov/mirror-dash/internal/state"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/dashboard"
)

var errNoTerminal = errors.New("stdout is not a terminal")

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	console, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		return fmt.Errorf("init console logger: %w", err)
	}
	defer func() {
		_ = console.Sync()
	}()

	if !isTerminal(os.Stdout) {
		console.Error("Cannot start dashboard", zap.Error(errNoTerminal))
		return errNoTerminal
	}

	fileCfg := logger.DefaultFileConfig()
	fileCfg.LogFile = cfg.LogFile
	fileCfg.Debug = cfg.DebugLogging
	fileLog, err := logger.NewFileLogger(fileCfg)
	if err != nil {
		return fmt.Errorf("init file logger: %w", err)
	}
	defer func() {
		_ = fileLog.Close()
	}()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := state.NewLoader(afero.NewOsFs(), fileLog.WithComponent("state"))
	model, err := dashboard.New(dashboard.Options{
		ExecutorFile: cfg.ExecutorFile,
		WatcherFile:  cfg.WatcherFile,
		Interval:     cfg.RefreshInterval,
		Layout:       cfg.Layout,
		StatsEvery:   cfg.StatsEvery,
	}, loader, fileLog.WithComponent("ui"))
	if err != nil {
		return err
	}

	console.Debug("Starting dashboard", zap.String("log_file", cfg.LogFile), zap.String("session_id", fileLog.SessionID))

	if err := dashboard.Run(rootCtx, model, fileLog.WithComponent("runner")); err != nil {
		console.Error("Dashboard failed", zap.Error(err))
		return err
	}

	fileLog.Info("Dashboard stopped", zap.Int("ticks", model.Ticks()))
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

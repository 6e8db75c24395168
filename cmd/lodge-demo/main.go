// Package main implements a small program that embeds the logger: it loads
// the logger configuration, installs the logger as the process default,
// logs a few lines and finishes with a fatal message.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/lodge/internal/config"
	"github.com/phrazzld/lodge/internal/platform/logger"
)

// main is the entry point for lodge-demo. An optional first argument names
// a YAML config file.
func main() {
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	l, err := initializeApp(configPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	run(l)
}

// initializeApp loads configuration and sets up the logger. The logger is
// installed as the package default and behind slog's default logger.
func initializeApp(configPath string) (*logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Initialize(cfg.Logger)
	logger.SetDefault(l)
	slog.SetDefault(slog.New(logger.NewHandler(l)))

	return l, nil
}

// run logs the startup lines and terminates through Fatalf.
func run(l *logger.Logger) {
	l.SetLevel(logger.LevelDebug)
	l.Infof("Application started")
	l.Debugf("Debugging value: %d", 100)
	slog.Info("logger ready", "path", l.Path(), "timestamp", l.TimestampEnabled())
	l.Fatalf("boom")
}

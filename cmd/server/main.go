package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/automotiveconsulting/site-api/internal/config"
	"github.com/automotiveconsulting/site-api/internal/logging"
	"github.com/automotiveconsulting/site-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode on port %s", cfg.Environment, cfg.Port)

	// Requests fail closed on missing secrets; warn at startup so the
	// operator sees it before the first submission does.
	if missing := cfg.MissingSubmissionSecrets(); len(missing) > 0 {
		logger.Warn("Submission credentials not configured: %s", strings.Join(missing, ", "))
	}

	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

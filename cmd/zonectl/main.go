package main

import (
	"log/slog"
	"os"

	"github.com/sanops/zonectl/internal/interfaces/cli"
	"github.com/sanops/zonectl/internal/logger"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("ZONECTL_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("ZONECTL_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("ZONECTL_DEBUG") != "",
	})

	cli.Execute()
}

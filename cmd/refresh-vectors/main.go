package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/culturematch/culturematch/internal/app"
	"github.com/culturematch/culturematch/internal/command"
	"github.com/culturematch/culturematch/internal/domain"
)

import _ "github.com/joho/godotenv/autoload"

func main() {
	ctx := context.Background()

	var logLevel slog.Level
	logLevelStr := app.MustGetEnvAsString(ctx, "LOG_LEVEL")
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		panic(fmt.Sprintf("unable to setup logger, LOG_LEVEL not recognised [%s]", logLevelStr))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	refreshCmd, err := app.SetupVectorRefresh(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup vector refresh", "error", err)
		os.Exit(1)
	}

	result, err := refreshCmd.Execute(ctx, command.RefreshAllVectorsRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "vector refresh failed", "error", err)
		os.Exit(1)
	}

	if result.FailCount > 0 {
		os.Exit(1)
	}
}

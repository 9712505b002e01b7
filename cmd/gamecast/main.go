package main

import (
	"context"
	"fmt"
	"os"

	"mlb-gamecast/internal/app"
	"mlb-gamecast/internal/constants"
	fxmodules "mlb-gamecast/internal/fx"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	var (
		gamecast *app.App
		logger   zerolog.Logger
	)

	fxApp := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Populate(&gamecast, &logger),
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "gamecast: %v\n", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		logger.Error().Err(err).Msg("failed to start")
		os.Exit(1)
	}

	runErr := gamecast.Run(context.Background(), os.Args[1:])

	stopCtx, stopCancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer stopCancel()
	if err := fxApp.Stop(stopCtx); err != nil {
		logger.Warn().Err(err).Msg("shutdown failed")
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

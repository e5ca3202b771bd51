// Package main provides the CLI entrypoint for the screenshot uploader.
// It loads configuration from the environment, initializes logging and wires
// the upload subcommand.
package main

import (
	"context"
	"log"
	"os"
	"uploader/internal/config"
	"uploader/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main loads configuration, sets up logging and executes the CLI. Missing
// credentials abort here, before any filesystem or network access.
func main() {
	rootCmd := &cobra.Command{
		Use:          "uploader",
		Short:        "Uploads screenshots to the microCMS media library",
		SilenceUsage: true,
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			os.Exit(1)
		}
	}()

	rootCmd.AddCommand(
		uploadCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

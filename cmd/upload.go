package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"uploader/internal/batch"
	"uploader/internal/config"
	"uploader/pkg/logger"
	"uploader/pkg/mediauploader/microcms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// httpTransport is overridden in tests to stub the media endpoint; nil means
// http.DefaultTransport.
var httpTransport http.RoundTripper

func uploadCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Scans the screenshot directory and uploads every PNG found",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if _, err := os.Stat(cfg.ScreenshotDir); err != nil {
				if os.IsNotExist(err) {
					// no screenshots were produced this run; nothing to do
					logger.Info(ctx, "screenshot directory does not exist, nothing to upload",
						zap.String("dir", cfg.ScreenshotDir))

					return nil
				}

				return fmt.Errorf("could not stat screenshot directory: %w", err)
			}

			uploader := microcms.New(
				&http.Client{Timeout: cfg.UploadTimeout, Transport: httpTransport},
				cfg.MicroCMS.ServiceDomain,
				cfg.MicroCMS.APIKey,
			)

			report, err := batch.New(uploader).Run(ctx, cfg.ScreenshotDir)
			if err != nil {
				return fmt.Errorf("could not run upload batch: %w", err)
			}

			failed := report.Failed()
			logger.Info(ctx, "upload batch finished",
				zap.Int("succeeded", len(report.Successful())),
				zap.Int("failed", len(failed)),
				zap.Int("total", report.Total()))

			if cfg.GithubActions {
				if err := batch.WriteCISummary(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d uploads failed", len(failed), report.Total())
			}

			return nil
		},
	}

	return cmd
}

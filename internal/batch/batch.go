// Package batch runs one upload pass over a screenshot directory and collects
// the per-file outcomes into a report.
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"uploader/internal/discover"
	"uploader/pkg/domain"
	"uploader/pkg/logger"
	"uploader/pkg/mediauploader"

	"go.uber.org/zap"
)

// Runner executes one sequential upload batch using the configured uploader.
type Runner struct {
	uploader mediauploader.Uploader
}

// New creates a Runner backed by the provided uploader.
func New(uploader mediauploader.Uploader) *Runner {
	return &Runner{uploader: uploader}
}

// Run discovers PNG files under root and uploads them one at a time in
// discovery order. A failed upload is recorded and the batch moves on to the
// next file; the report always holds exactly one result per discovered file.
// Run returns an error only when discovery itself fails.
func (r *Runner) Run(ctx context.Context, root string) (domain.Report, error) {
	targets, err := discover.PNGs(ctx, root)
	if err != nil {
		return domain.Report{}, fmt.Errorf("could not discover files: %w", err)
	}
	if len(targets) == 0 {
		logger.Info(ctx, "no png files found", zap.String("root", root))

		return domain.Report{}, nil
	}

	logger.Info(ctx, "uploading files", zap.String("root", root), zap.Int("count", len(targets)))

	report := domain.Report{Results: make([]domain.UploadResult, 0, len(targets))}
	for _, target := range targets {
		url, err := r.uploader.Upload(ctx, target.Path)
		if err != nil {
			logger.Error(ctx, "upload failed",
				zap.String("file", target.RelPath), zap.Error(err))
			report.Results = append(report.Results, domain.UploadResult{
				FileName: filepath.Base(target.Path),
				RelPath:  target.RelPath,
				Err:      err.Error(),
			})

			continue
		}

		logger.Info(ctx, "uploaded",
			zap.String("file", target.RelPath), zap.String("url", url))
		report.Results = append(report.Results, domain.UploadResult{
			FileName: filepath.Base(target.Path),
			RelPath:  target.RelPath,
			URL:      url,
		})
	}

	return report, nil
}

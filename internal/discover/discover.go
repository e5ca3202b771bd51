// Package discover locates screenshot files to upload under a root directory.
package discover

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"uploader/pkg/domain"
	"uploader/pkg/logger"

	"go.uber.org/zap"
)

// PNGs walks root recursively and returns one UploadTarget per regular file
// whose name ends in ".png" (case-insensitive), in directory-listing order.
// Unreadable subdirectories are logged and skipped; the walk continues with
// their siblings. An existing root with no matches yields an empty slice.
// Symbolic links are not followed.
func PNGs(ctx context.Context, root string) ([]domain.UploadTarget, error) {
	var targets []domain.UploadTarget

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// the root itself is unreadable or missing
				return err
			}
			logger.Warn(ctx, "could not read directory entry, skipping",
				zap.String("path", path), zap.Error(err))

			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".png") {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = d.Name()
		}
		targets = append(targets, domain.UploadTarget{Path: path, RelPath: rel})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", root, err)
	}

	return targets, nil
}

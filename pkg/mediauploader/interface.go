// Package mediauploader defines the abstraction for pushing local media files
// to a remote media library, along with the multipart form encoding shared by
// implementations.
package mediauploader

import "context"

// Uploader is the abstraction for media upload backends. Implementations
// send a local file to the remote media library and report its public URL.
//
//go:generate mockgen -package mockmediauploader -source=interface.go -destination=mock/mockmediauploader.go *
type Uploader interface {
	// Upload sends the file at filePath to the media endpoint and returns
	// the public URL assigned by the service.
	Upload(ctx context.Context, filePath string) (string, error)
}

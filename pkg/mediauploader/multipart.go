package mediauploader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"uploader/pkg/serrors"
)

// FormFile is a single file part of a multipart/form-data request body. It
// fully describes the payload so the exact wire bytes can be produced (and
// tested) without touching the network.
type FormFile struct {
	// FieldName is the form field name of the part.
	FieldName string
	// FileName is sent as the part's filename attribute.
	FileName string
	// ContentType is the media type of Body.
	ContentType string
	// Body holds the raw file bytes.
	Body []byte
}

// Boundary derives a multipart boundary from t with millisecond granularity.
// Two requests within the same millisecond share a boundary; with a single
// part per request the boundary never needs to be globally unique.
func Boundary(t time.Time) string {
	return "----FormBoundary" + strconv.FormatInt(t.UnixMilli(), 10)
}

// Encode serializes the part into the multipart/form-data byte sequence
// delimited by boundary, including the closing delimiter.
func (f FormFile) Encode(boundary string) []byte {
	var b bytes.Buffer
	b.WriteString("--" + boundary + "\r\n")
	fmt.Fprintf(&b, "Content-Disposition: form-data; name=%q; filename=%q\r\n", f.FieldName, f.FileName)
	fmt.Fprintf(&b, "Content-Type: %s\r\n\r\n", f.ContentType)
	b.Write(f.Body)
	b.WriteString("\r\n--" + boundary + "--\r\n")

	return b.Bytes()
}

// ContentTypeForExt maps a file path's extension to the content type the
// media service accepts. Unknown extensions yield ErrUnsupportedMediaType.
func ContentTypeForExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png", nil
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	default:
		return "", serrors.With(serrors.ErrUnsupportedMediaType,
			"unsupported file type: %s", filepath.Base(path))
	}
}

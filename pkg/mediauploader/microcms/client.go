// Package microcms provides a mediauploader.Uploader implementation backed by
// the microCMS media management API.
package microcms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"uploader/pkg/mediauploader"
	"uploader/pkg/serrors"
)

// Client talks to the microCMS media endpoint and fulfills the
// mediauploader.Uploader interface. It is safe for concurrent use.
type Client struct {
	httpClient    *http.Client // httpClient performs HTTP requests to microCMS
	serviceDomain string       // serviceDomain is the service subdomain of microcms-management.io
	apiKey        string       // apiKey authenticates media-management requests
}

// endpoint returns the media endpoint URL for the configured service domain.
func (c *Client) endpoint() string {
	return fmt.Sprintf("https://%s.microcms-management.io/api/v1/media", c.serviceDomain)
}

// Upload reads the file at filePath, wraps it in a single-part
// multipart/form-data body and POSTs it to the media endpoint.
// It returns the public URL assigned by microCMS.
func (c *Client) Upload(ctx context.Context, filePath string) (string, error) {
	// https://document.microcms.io/management-api/post-media
	contentType, err := mediauploader.ContentTypeForExt(filePath)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}

	boundary := mediauploader.Boundary(time.Now())
	body := mediauploader.FormFile{
		FieldName:   "file",
		FileName:    filepath.Base(filePath),
		ContentType: contentType,
		Body:        data,
	}.Encode(boundary)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("X-MICROCMS-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	req.ContentLength = int64(len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", serrors.With(serrors.ErrUploadFailed,
			"upload failed: %d %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// successful
	var uploadResp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(b, &uploadResp); err != nil {
		return "", serrors.Wrap(serrors.ErrBadResponse, err, "could not decode response")
	}

	return uploadResp.URL, nil
}

// Ensure Client conforms to the mediauploader.Uploader interface at compile time.
var _ mediauploader.Uploader = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and credentials
// to interact with the microCMS media API.
func New(httpClient *http.Client, serviceDomain, apiKey string) *Client {
	return &Client{
		httpClient:    httpClient,
		serviceDomain: serviceDomain,
		apiKey:        apiKey,
	}
}

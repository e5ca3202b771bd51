package main

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"uploader/internal/config"
	"uploader/pkg/logger"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// stubTransport routes the command's HTTP traffic through fn for the duration
// of the test and counts the requests made.
func stubTransport(t *testing.T, fn rtFunc) *int {
	t.Helper()
	var calls int
	httpTransport = rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++

		return fn(r)
	})
	t.Cleanup(func() {
		httpTransport = nil
	})

	return &calls
}

func testConfig(dir string) *config.Config {
	cfg := &config.Config{
		ScreenshotDir: dir,
		UploadTimeout: time.Minute,
	}
	cfg.MicroCMS.ServiceDomain = "myservice"
	cfg.MicroCMS.APIKey = "test-key"

	return cfg
}

func runUpload(t *testing.T, cfg *config.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := uploadCommand(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()

	return out.String(), err
}

func TestUploadCommand_directoryAbsent(t *testing.T) {
	calls := stubTransport(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	})

	cfg := testConfig(filepath.Join(t.TempDir(), "missing"))
	cfg.GithubActions = true

	out, err := runUpload(t, cfg)
	require.NoError(t, err, "an absent screenshot directory is not an error")
	require.Zero(t, *calls, "no upload attempts should be made")
	require.NotContains(t, out, "--- UPLOAD_RESULTS_JSON ---")
}

func TestUploadCommand_failureReturnsError(t *testing.T) {
	calls := stubTransport(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("media storage unavailable")),
		}, nil
	})

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.png"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.png"), []byte("x"), 0o600))

	out, err := runUpload(t, testConfig(root))
	require.Error(t, err)
	require.Contains(t, err.Error(), "uploads failed")
	require.Equal(t, 2, *calls, "a failed upload should not abort the batch")
	require.NotContains(t, out, "--- UPLOAD_RESULTS_JSON ---", "no JSON block outside CI")
}

func TestUploadCommand_ciSummaryBlock(t *testing.T) {
	stubTransport(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"url":"https://x/a.png"}`)),
		}, nil
	})

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.png"), []byte("x"), 0o600))

	cfg := testConfig(root)
	cfg.GithubActions = true

	out, err := runUpload(t, cfg)
	require.NoError(t, err)
	require.Contains(t, out, "--- UPLOAD_RESULTS_JSON ---")
	require.Contains(t, out, "--- END_UPLOAD_RESULTS_JSON ---")
	require.Contains(t, out, `"url": "https://x/a.png"`)
	require.Contains(t, out, `"total": 1`)
}

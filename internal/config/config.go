package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration. All values are sourced
// from the process environment exactly once at startup and treated as
// read-only afterwards; there is no configuration file.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// MicroCMS contains the credentials for the media-management API.
	MicroCMS struct {
		// ServiceDomain is the service subdomain of microcms-management.io
		ServiceDomain string `env:"MICROCMS_SERVICE_DOMAIN" env-required:"true"`
		// APIKey authenticates requests to the media endpoint
		APIKey string `env:"MICROCMS_API_KEY" env-required:"true"`
	}

	// ScreenshotDir is the directory scanned for PNG files. Its absence is
	// not an error; the run exits cleanly with nothing to do.
	ScreenshotDir string `env:"SCREENSHOT_DIR" env-default:"/tmp/playwright-mcp-output"`

	// GithubActions mirrors the flag GitHub Actions sets on its runners.
	// When true, the upload command prints a machine-readable JSON result
	// block for the calling pipeline to parse.
	GithubActions bool `env:"GITHUB_ACTIONS" env-default:"false"`

	// UploadTimeout bounds each individual upload request.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT" env-default:"1m"`
}

// Load reads configuration from the process environment and returns a filled
// Config struct. It fails when a required variable is unset.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Package rewriteprobe runs rewrite prompts against the Gemini generateContent API.
package rewriteprobe

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash-lite"
	// DefaultBaseURL is the public Gemini API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// TransportREST posts the request directly with the key in the URL.
	TransportREST = "rest"
	// TransportSDK sends the request through the genai SDK.
	TransportSDK = "sdk"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey    = "GEMINI_API_KEY"
	EnvModel     = "REWRITEPROBE_MODEL"
	EnvBaseURL   = "REWRITEPROBE_BASE_URL"
	EnvTransport = "REWRITEPROBE_TRANSPORT"
	EnvTimeout   = "REWRITEPROBE_TIMEOUT"
)

// Config describes how to reach the text-generation endpoint.
type Config struct {
	APIKey    string        `json:"-"`
	Model     string        `json:"model,omitempty"`
	BaseURL   string        `json:"base_url,omitempty"`
	Transport string        `json:"transport,omitempty"`
	Timeout   time.Duration `json:"timeout,omitempty"`
}

// DefaultConfig returns a config with every field but the API key filled in.
func DefaultConfig() Config {
	return Config{
		Model:     DefaultModel,
		BaseURL:   DefaultBaseURL,
		Transport: TransportREST,
	}
}

// Validate reports whether the config can be used to build a runner.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.APIKey) == "" {
		errs = append(errs, fmt.Errorf("%w: set %s", ErrMissingAPIKey, EnvAPIKey))
	}

	switch c.Transport {
	case TransportREST, TransportSDK:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative: %s", c.Timeout))
	}

	return errors.Join(errs...)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set are kept. A missing file is an error only
// when optional is false.
func LoadEnvFile(path string, optional bool) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("stat env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// ConfigFromEnv overlays environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv(EnvAPIKey)

	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv(EnvTransport); v != "" {
		cfg.Transport = v
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}

		cfg.Timeout = d
	}

	return cfg, nil
}

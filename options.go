package rewriteprobe

import (
	"net/http"

	"github.com/rs/zerolog"
)

//go:generate go tool options-gen -from-struct=RunnerOptions -out-filename=options_generated.go -defaults-from=func=defaultRunnerOptions

// RunnerOptions holds optional collaborators for a Runner.
type RunnerOptions struct {
	logger     zerolog.Logger
	httpClient *http.Client `validate:"required"`
	generator  Generator
}

// RunnerOption configures a Runner.
type RunnerOption = OptRunnerOptionsSetter

// WithHTTPClient sets the HTTP client used by the built-in transports.
func WithHTTPClient(client *http.Client) RunnerOption {
	return WithHttpClient(client)
}

func resolveRunnerOptions(opts []RunnerOption) (RunnerOptions, error) {
	out := NewRunnerOptions(opts...)
	if err := out.Validate(); err != nil {
		return RunnerOptions{}, err
	}

	return out, nil
}

func defaultRunnerOptions() RunnerOptions {
	return RunnerOptions{
		logger:     zerolog.Nop(),
		httpClient: &http.Client{},
	}
}

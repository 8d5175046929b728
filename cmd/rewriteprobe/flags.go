package main

import (
	"io"
	"time"

	"github.com/metalagman/rewriteprobe"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

type probeOptions struct {
	model     string
	baseURL   string
	transport string
	timeout   time.Duration
	envFile   string
	debug     bool
}

func addCommonFlags(cmd *cobra.Command, opts *probeOptions) {
	cmd.Flags().StringVar(&opts.model, "model", rewriteprobe.DefaultModel, "model identifier")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", rewriteprobe.DefaultBaseURL, "API base URL")
	cmd.Flags().StringVar(&opts.transport, "transport", rewriteprobe.TransportREST, "transport: rest or sdk")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-call timeout (0 uses the HTTP client default)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file to load before reading the environment")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log request details to stderr")
}

// resolveConfig layers the env file, the environment and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *probeOptions) (rewriteprobe.Config, error) {
	optional := !cmd.Flags().Changed("env-file")
	if err := rewriteprobe.LoadEnvFile(opts.envFile, optional); err != nil {
		return rewriteprobe.Config{}, err
	}

	cfg, err := rewriteprobe.ConfigFromEnv()
	if err != nil {
		return rewriteprobe.Config{}, err
	}

	if cmd.Flags().Changed("model") {
		cfg.Model = opts.model
	}

	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}

	if cmd.Flags().Changed("transport") {
		cfg.Transport = opts.transport
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = opts.timeout
	}

	return cfg, nil
}

func buildRunner(cmd *cobra.Command, opts *probeOptions) (*rewriteprobe.Runner, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.debug)
	logger.Debug().
		Str("model", cfg.Model).
		Str("base_url", cfg.BaseURL).
		Str("transport", cfg.Transport).
		Dur("timeout", cfg.Timeout).
		Msg("config resolved")

	return rewriteprobe.NewRunner(cmd.Context(), cfg, rewriteprobe.WithLogger(logger))
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

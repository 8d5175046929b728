package rewriteprobe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// NewGenerator returns the transport named by cfg.Transport.
func NewGenerator(ctx context.Context, cfg Config, client *http.Client, logger zerolog.Logger) (Generator, error) {
	switch cfg.Transport {
	case TransportREST:
		return NewRESTGenerator(cfg, client, logger), nil
	case TransportSDK:
		return NewSDKGenerator(ctx, cfg, client)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}

const redacted = "REDACTED"

// RedactURL hides the key query parameter of raw.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	if !q.Has("key") {
		return raw
	}

	q.Set("key", redacted)
	u.RawQuery = q.Encode()

	return u.String()
}

// redactErr hides the API key in URLs carried by err.
func redactErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}

	return err
}

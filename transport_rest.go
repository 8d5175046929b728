package rewriteprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// RESTGenerator posts to the generateContent endpoint with the key in the URL.
type RESTGenerator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     zerolog.Logger
}

// NewRESTGenerator builds a REST transport.
func NewRESTGenerator(cfg Config, client *http.Client, logger zerolog.Logger) *RESTGenerator {
	if client == nil {
		client = &http.Client{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &RESTGenerator{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		log:     logger,
	}
}

// Endpoint returns the request URL for model, including the API key.
func (g *RESTGenerator) Endpoint(model string) string {
	q := url.Values{}
	q.Set("key", g.apiKey)

	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", g.baseURL, url.PathEscape(model), q.Encode())
}

// Generate implements Generator.
func (g *RESTGenerator) Generate(ctx context.Context, model, prompt string) ([]byte, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := g.Endpoint(model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", redactErr(err))
	}

	req.Header.Set("Content-Type", "application/json")

	g.log.Debug().Str("url", RedactURL(endpoint)).Int("prompt_bytes", len(prompt)).Msg("posting prompt")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, redactErr(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return body, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	g.log.Debug().Int("status", resp.StatusCode).Int("body_bytes", len(body)).Msg("response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return body, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return body, nil
}

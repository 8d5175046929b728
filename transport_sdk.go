package rewriteprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const sdkAPIVersion = "v1beta"

// SDKGenerator sends prompts through the genai SDK. Responses are
// re-encoded as JSON so they are interpreted exactly like REST bodies.
type SDKGenerator struct {
	client *genai.Client
}

// NewSDKGenerator builds an SDK transport.
func NewSDKGenerator(ctx context.Context, cfg Config, client *http.Client) (*SDKGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: client,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: sdkAPIVersion,
		},
	}

	c, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &SDKGenerator{client: c}, nil
}

// Generate implements Generator.
func (g *SDKGenerator) Generate(ctx context.Context, model, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			body, _ := json.Marshal(map[string]any{"error": apiErr})

			return body, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, apiErr.Code, apiErr.Status)
		}

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: encode sdk response: %w", ErrInvalidResponse, err)
	}

	return body, nil
}

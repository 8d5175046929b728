package rewriteprobe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Generator sends a prompt to a model and returns the raw response body.
// For non-2xx responses it returns the body together with an error.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) ([]byte, error)
}

// CaseRunner runs a single case.
type CaseRunner interface {
	Run(ctx context.Context, c Case) Result
}

// Runner performs one generateContent call per case.
type Runner struct {
	gen     Generator
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewRunner constructs a runner for the given config.
func NewRunner(ctx context.Context, cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o, err := resolveRunnerOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	gen := o.generator
	if gen == nil {
		gen, err = NewGenerator(ctx, cfg, o.httpClient, o.logger)
		if err != nil {
			return nil, err
		}
	}

	return &Runner{
		gen:     gen,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     o.logger,
	}, nil
}

// Run sends the case to the model and classifies the outcome. It never
// returns an error directly; failures are carried in the result.
func (r *Runner) Run(ctx context.Context, c Case) Result {
	res := Result{Case: c}

	prompt, err := BuildPrompt(c)
	if err != nil {
		res.Err = fmt.Errorf("build prompt: %w", err)

		return res
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	body, err := r.gen.Generate(ctx, r.model, prompt)
	res.Payload = body

	if err != nil {
		res.Err = err
	} else {
		res = interpret(res, body)
	}

	r.log.Debug().
		Str("case", c.Name).
		Str("model", r.model).
		Stringer("outcome", res.Outcome).
		Int("body_bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Err(res.Err).
		Msg("case finished")

	return res
}

func interpret(res Result, body []byte) Result {
	if !gjson.ValidBytes(body) {
		res.Err = fmt.Errorf("%w: body is not valid JSON", ErrInvalidResponse)

		return res
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		res.Err = fmt.Errorf("%w: expected a JSON object", ErrInvalidResponse)

		return res
	}

	candidates := root.Get("candidates")

	switch {
	case !candidates.Exists(), candidates.Type == gjson.Null:
		res.Outcome = OutcomeNoCandidates

		return res
	case !candidates.IsArray():
		res.Err = fmt.Errorf("%w: candidates is not an array", ErrInvalidResponse)

		return res
	case len(candidates.Array()) == 0:
		res.Outcome = OutcomeNoCandidates

		return res
	}

	text, err := firstText(candidates.Array()[0])
	if err != nil {
		res.Err = err

		return res
	}

	res.Outcome = OutcomeSuccess
	res.Text = strings.TrimSpace(text)

	return res
}

// firstText reads content.parts[0].text of a candidate. Missing keys yield
// an empty string; keys present with the wrong type are an error.
func firstText(candidate gjson.Result) (string, error) {
	if !candidate.IsObject() {
		return "", fmt.Errorf("%w: candidate is not an object", ErrInvalidResponse)
	}

	content := candidate.Get("content")
	if !content.Exists() {
		return "", nil
	}

	if !content.IsObject() {
		return "", fmt.Errorf("%w: content is not an object", ErrInvalidResponse)
	}

	parts := content.Get("parts")
	if !parts.Exists() {
		return "", nil
	}

	if !parts.IsArray() {
		return "", fmt.Errorf("%w: parts is not an array", ErrInvalidResponse)
	}

	first := parts.Array()
	if len(first) == 0 {
		return "", fmt.Errorf("%w: parts is empty", ErrInvalidResponse)
	}

	if !first[0].IsObject() {
		return "", fmt.Errorf("%w: part is not an object", ErrInvalidResponse)
	}

	text := first[0].Get("text")
	switch {
	case !text.Exists():
		return "", nil
	case text.Type != gjson.String:
		return "", fmt.Errorf("%w: text is not a string", ErrInvalidResponse)
	}

	return text.Str, nil
}

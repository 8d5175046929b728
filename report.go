package rewriteprobe

import (
	"fmt"
	"io"
)

// Reporter writes human-readable result blocks.
type Reporter struct {
	out io.Writer
}

// NewReporter returns a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Start writes the block header for c.
func (r *Reporter) Start(c Case) {
	_, _ = fmt.Fprintf(r.out, "--- Running Test: %s ---\n", c.Name)
	_, _ = fmt.Fprintf(r.out, "Input: %s\n", c.Input)
}

// Finish writes the outcome lines for res and closes the block with a blank line.
func (r *Reporter) Finish(res Result) {
	switch res.Outcome {
	case OutcomeSuccess:
		_, _ = fmt.Fprintf(r.out, "✅ Result: %s\n", res.Text)
	case OutcomeNoCandidates:
		_, _ = fmt.Fprintln(r.out, "❌ No candidates returned.")
		_, _ = fmt.Fprintln(r.out, string(res.Payload))
	default:
		_, _ = fmt.Fprintf(r.out, "❌ Failed: %v\n", res.Err)
		if len(res.Payload) > 0 {
			_, _ = fmt.Fprintln(r.out, string(res.Payload))
		}
	}

	_, _ = fmt.Fprintln(r.out)
}

// Summary writes a one-line tally of results.
func (r *Reporter) Summary(results []Result) {
	t := Summarize(results)
	_, _ = fmt.Fprintf(r.out, "%d passed, %d without candidates, %d failed\n", t.Succeeded, t.NoCandidates, t.Failed)
}

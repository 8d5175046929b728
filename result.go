package rewriteprobe

// Outcome classifies the result of a single call.
type Outcome int

const (
	// OutcomeFailure covers transport errors, non-2xx statuses and undecodable bodies.
	OutcomeFailure Outcome = iota
	// OutcomeSuccess means the first candidate's text was extracted.
	OutcomeSuccess
	// OutcomeNoCandidates means the body parsed but held no candidates.
	OutcomeNoCandidates
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNoCandidates:
		return "no_candidates"
	default:
		return "failure"
	}
}

// Result is the outcome of running one case.
// Payload holds the raw response body whenever one was received.
type Result struct {
	Case    Case
	Outcome Outcome
	Text    string
	Payload []byte
	Err     error
}

// Error returns nil for a success, ErrNoCandidates when no candidates were
// returned and the failure cause otherwise.
func (r Result) Error() error {
	switch r.Outcome {
	case OutcomeSuccess:
		return nil
	case OutcomeNoCandidates:
		return ErrNoCandidates
	default:
		return r.Err
	}
}

// Tally counts results by outcome.
type Tally struct {
	Succeeded    int
	NoCandidates int
	Failed       int
}

// Summarize tallies results.
func Summarize(results []Result) Tally {
	var t Tally

	for _, r := range results {
		switch r.Outcome {
		case OutcomeSuccess:
			t.Succeeded++
		case OutcomeNoCandidates:
			t.NoCandidates++
		default:
			t.Failed++
		}
	}

	return t
}

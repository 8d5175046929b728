package rewriteprobe

import "context"

// Suite runs cases one after another and reports each as it completes.
type Suite struct {
	runner   CaseRunner
	reporter *Reporter
}

// NewSuite returns a suite. A nil reporter disables reporting.
func NewSuite(runner CaseRunner, reporter *Reporter) *Suite {
	return &Suite{runner: runner, reporter: reporter}
}

// Run executes cases in order and returns one result per case.
func (s *Suite) Run(ctx context.Context, cases []Case) []Result {
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		if s.reporter != nil {
			s.reporter.Start(c)
		}

		res := s.runner.Run(ctx, c)

		if s.reporter != nil {
			s.reporter.Finish(res)
		}

		results = append(results, res)
	}

	return results
}

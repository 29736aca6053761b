package pipeline

import "fmt"

// Stats aggregates one run. Skipped counts files left in place because the
// match was ambiguous or empty.
type Stats struct {
	Total     int
	Changed   int
	Unchanged int
	Skipped   int
	Failed    int
}

func (s *Stats) record(res Result) {
	s.Total++
	switch res.Outcome {
	case OutcomeChanged:
		s.Changed++
	case OutcomeUnchanged:
		s.Unchanged++
	case OutcomeAmbiguous, OutcomeNoMatch:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Summary renders the run counts as one line.
func (s Stats) Summary() string {
	return fmt.Sprintf("%d files: %d changed, %d unchanged, %d skipped, %d failed",
		s.Total, s.Changed, s.Unchanged, s.Skipped, s.Failed)
}

package pipeline

import (
	"os"
	"path/filepath"

	"github.com/tidyfile/tidyfile/internal/planner"
)

// Apply executes one plan. Dry-run invocations never reach the filesystem.
func (r *Runner) Apply(p planner.Plan) error {
	if p.NoOp || r.opts.DryRun {
		return nil
	}
	if p.Replaces != "" {
		if err := os.Remove(p.Replaces); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(p.Dest), 0o755); err != nil {
		return err
	}
	return os.Rename(p.Source, p.Dest)
}

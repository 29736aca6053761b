package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay gives writers a moment to finish before a new file is picked
// up.
const settleDelay = 250 * time.Millisecond

// Watch processes files as they appear in dir until ctx is cancelled. Only
// top-level creations are handled; the configured skip rules apply the same
// way they do during discovery.
func (r *Runner) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}

	r.log.Info("watching %s", dir)
	ignoreRe := r.opts.Settings.IgnoreRegexp()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if ignored(filepath.Base(ev.Name), r.opts.Settings, ignoreRe) {
				continue
			}
			time.Sleep(settleDelay)
			fi, err := os.Lstat(ev.Name)
			if err != nil || fi.IsDir() {
				continue
			}
			res := r.Process(ev.Name)
			if res.Outcome == OutcomeChanged {
				if err := r.Apply(res.Plan); err != nil {
					res.Outcome, res.Err = OutcomeFailed, err
				}
			}
			r.report(res)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Error("watch: %v", err)
		}
	}
}

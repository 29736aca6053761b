package planner

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/tidyfile/tidyfile/internal/config"
)

// Plan is the final output for one input file. NoOp plans must be
// distinguished from real changes so the caller can skip diffs and prompts.
type Plan struct {
	Source   string
	Dest     string
	NoOp     bool   // Dest equals Source.
	Suffixed bool   // A uniqueness suffix was appended.
	Replaces string // Existing file the executor may overwrite; empty otherwise.
}

// Allocator claims destination paths across one batch so two inputs that
// normalize to the same name never collide, even before either file exists
// on disk. All methods are goroutine-safe.
type Allocator struct {
	mu     sync.Mutex
	owners map[string]string // destination path → source path that claimed it
}

// NewAllocator creates a ready-to-use allocator.
func NewAllocator() *Allocator {
	return &Allocator{owners: map[string]string{}}
}

// Allocate resolves the destination for source given the rendered stem and
// extension. When the natural destination is taken, either by a file on disk
// or by an earlier claim in this batch, the smallest positive integer suffix
// that frees it is appended. With overwrite set, an on-disk regular file is
// instead reported in Replaces; directories are never overwritten.
func (a *Allocator) Allocate(source, dir, stem, ext string, sep config.Separator, overwrite bool) Plan {
	a.mu.Lock()
	defer a.mu.Unlock()

	dest := filepath.Join(dir, stem+ext)
	if dest == source {
		a.owners[dest] = source
		return Plan{Source: source, Dest: dest, NoOp: true}
	}

	for i := 0; ; i++ {
		candidate := dest
		if i > 0 {
			candidate = filepath.Join(dir, stem+sep.SuffixChar()+strconv.Itoa(i)+ext)
		}

		if owner, reserved := a.owners[candidate]; reserved && owner != source {
			continue
		}

		fi, err := os.Lstat(candidate)
		onDisk := err == nil && !sameFile(source, candidate)
		if onDisk {
			if overwrite && !fi.IsDir() {
				a.owners[candidate] = source
				return Plan{Source: source, Dest: candidate, Suffixed: i > 0, Replaces: candidate}
			}
			continue
		}

		a.owners[candidate] = source
		return Plan{Source: source, Dest: candidate, Suffixed: i > 0}
	}
}

// sameFile reports whether two paths refer to the same on-disk file, which
// covers case-only renames on case-insensitive filesystems.
func sameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidyfile/tidyfile/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestAllocateNoOp(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "notes.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, false)
	assert.True(t, p.NoOp)
	assert.Equal(t, source, p.Dest)
	assert.False(t, p.Suffixed)
}

func TestAllocatePlainRename(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "RAW NOTES.TXT")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, false)
	assert.False(t, p.NoOp)
	assert.Equal(t, filepath.Join(dir, "notes.txt"), p.Dest)
	assert.Empty(t, p.Replaces)
}

func TestAllocateSuffixOnDiskCollision(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))
	source := filepath.Join(dir, "meeting notes.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, false)
	assert.Equal(t, filepath.Join(dir, "notes_1.txt"), p.Dest)
	assert.True(t, p.Suffixed)
}

func TestAllocateSuffixScansUpward(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "notes_1.txt"))
	source := filepath.Join(dir, "old notes.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, false)
	assert.Equal(t, filepath.Join(dir, "notes_2.txt"), p.Dest)
}

func TestAllocateBatchCollision(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a meeting notes.txt")
	b := filepath.Join(dir, "b meeting notes.txt")
	touch(t, a)
	touch(t, b)

	alloc := NewAllocator()
	p1 := alloc.Allocate(a, dir, "notes", ".txt", config.SepIgnore, false)
	p2 := alloc.Allocate(b, dir, "notes", ".txt", config.SepIgnore, false)

	assert.Equal(t, filepath.Join(dir, "notes.txt"), p1.Dest)
	assert.Equal(t, filepath.Join(dir, "notes_1.txt"), p2.Dest)
	assert.True(t, p2.Suffixed)
}

func TestAllocateRepeatIsStable(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "raw.txt")
	touch(t, source)

	alloc := NewAllocator()
	p1 := alloc.Allocate(source, dir, "clean", ".txt", config.SepIgnore, false)
	p2 := alloc.Allocate(source, dir, "clean", ".txt", config.SepIgnore, false)
	assert.Equal(t, p1.Dest, p2.Dest)
	assert.False(t, p2.Suffixed)
}

func TestAllocateOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "notes.txt")
	touch(t, existing)
	source := filepath.Join(dir, "meeting notes.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, true)
	assert.Equal(t, existing, p.Dest)
	assert.Equal(t, existing, p.Replaces)
	assert.False(t, p.Suffixed)
}

func TestAllocateNeverOverwritesDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notes.txt"), 0o755))
	source := filepath.Join(dir, "meeting notes.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepIgnore, true)
	assert.Equal(t, filepath.Join(dir, "notes_1.txt"), p.Dest)
	assert.Empty(t, p.Replaces)
}

func TestAllocateSuffixSeparator(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes.txt"))
	source := filepath.Join(dir, "x.txt")
	touch(t, source)

	p := NewAllocator().Allocate(source, dir, "notes", ".txt", config.SepDash, false)
	assert.Equal(t, filepath.Join(dir, "notes-1.txt"), p.Dest)
}

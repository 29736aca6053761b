package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/logging"
	"github.com/tidyfile/tidyfile/internal/project"
	"github.com/tidyfile/tidyfile/internal/prompt"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	log, err := logging.New(logging.Options{})
	require.NoError(t, err)
	return log
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

// fixtureTree builds a small Johnny Decimal project with marker terms on the
// 11.01 folder.
func fixtureTree(t *testing.T) (*project.Tree, string) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{
		"10-19 Admin/11 Meetings/11.01 Meetings",
		"10-19 Admin/11 Meetings/11.02 Standups",
		"10-19 Admin/12 Taxes",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	marker := filepath.Join(root, "10-19 Admin/11 Meetings/11.01 Meetings", project.MarkerFile)
	require.NoError(t, os.WriteFile(marker, []byte("john\njane\n"), 0o644))

	tree, err := project.Build(&config.Project{Name: "docs", Path: root, Kind: config.KindJohnnyDecimal})
	require.NoError(t, err)
	return tree, root
}

func TestRunCleansDateAndCase(t *testing.T) {
	dir := t.TempDir()
	src := touch(t, filepath.Join(dir, "department 2023 financials and budget 08232002.xlsx"))

	s := config.DefaultSettings()
	s.FormatDates = true
	s.TransformCase = config.CaseTitle

	r := New(Options{Settings: s}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, filepath.Join(dir, "2002-08-23 Department Financials Budget.xlsx"))
	assert.NoFileExists(t, src)
}

func TestRunSpaceSeparatorWithDateFormat(t *testing.T) {
	dir := t.TempDir()
	src := touch(t, filepath.Join(dir, "Project_mockups(WIP)___sep92022.pdf"))

	s := config.DefaultSettings()
	s.Separator = config.SepSpace
	s.DateFormat = "%b, %Y"

	r := New(Options{Settings: s}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, filepath.Join(dir, "Sep, 2022 Project mockups WIP.pdf"))
}

func TestRunRoutesByMarkerTerms(t *testing.T) {
	tree, root := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "John&Jane-meeting-notes.txt"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	dest := filepath.Join(root, "10-19 Admin/11 Meetings/11.01 Meetings/John Jane-meeting-notes.txt")
	assert.FileExists(t, dest)
	assert.NoFileExists(t, src)
}

func TestRunSuffixesCollidingNames(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, filepath.Join(dir, "notes..txt"))
	b := touch(t, filepath.Join(dir, "notes_.txt"))

	r := New(Options{Settings: config.DefaultSettings()}, testLogger(t))
	stats := r.Run(context.Background(), []string{a, b})

	assert.Equal(t, 2, stats.Changed)
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "notes_1.txt"))
}

func TestRunByNumber(t *testing.T) {
	tree, root := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "receipt scan.pdf"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree, Number: "12"}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, filepath.Join(root, "10-19 Admin/12 Taxes/receipt scan.pdf"))
}

func TestRunRoutesByCodeInName(t *testing.T) {
	tree, root := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "report 11.01 draft.txt"))

	s := config.DefaultSettings()
	s.DateFormat = ""

	r := New(Options{Settings: s, Tree: tree}, testLogger(t))
	r.SetPicker(func(string, []prompt.Choice) (int, bool, error) {
		t.Fatal("code routing must not prompt")
		return 0, false, nil
	})
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, filepath.Join(root, "10-19 Admin/11 Meetings/11.01 Meetings/report draft.txt"))
}

func TestRunUnknownNumberFails(t *testing.T) {
	tree, _ := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "receipt.pdf"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree, Number: "99"}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Failed)
	assert.FileExists(t, src)
}

func TestRunNoMatchLeavesFileInPlace(t *testing.T) {
	tree, _ := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "unrelated-photo.jpg"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Skipped)
	assert.FileExists(t, src)
}

func TestRunAmbiguousUsesPicker(t *testing.T) {
	tree, root := fixtureTree(t)
	inbox := t.TempDir()
	// "standups meetings" hits both id folders through the area name.
	src := touch(t, filepath.Join(inbox, "meetings standups notes.txt"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree}, testLogger(t))

	var offered []prompt.Choice
	r.SetPicker(func(_ string, choices []prompt.Choice) (int, bool, error) {
		offered = choices
		return choices[len(choices)-1].Value, true, nil
	})
	stats := r.Run(context.Background(), []string{src})

	require.Len(t, offered, 2)
	// 11.02 scores on both tokens so it is offered first; the picker took
	// the second entry.
	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, filepath.Join(root, "10-19 Admin/11 Meetings/11.01 Meetings/meetings standups notes.txt"))
}

func TestRunAmbiguousSkipped(t *testing.T) {
	tree, _ := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "meetings standups notes.txt"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree}, testLogger(t))
	r.SetPicker(func(string, []prompt.Choice) (int, bool, error) { return 0, false, nil })
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Skipped)
	assert.FileExists(t, src)
}

func TestRunDryRunNeverPrompts(t *testing.T) {
	tree, _ := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "meetings standups notes.txt"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree, DryRun: true}, testLogger(t))
	r.SetPicker(func(string, []prompt.Choice) (int, bool, error) {
		t.Fatal("dry run must not prompt")
		return 0, false, nil
	})
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Skipped)
	assert.FileExists(t, src)
}

func TestRunForceTakesBestMatch(t *testing.T) {
	tree, root := fixtureTree(t)
	inbox := t.TempDir()
	src := touch(t, filepath.Join(inbox, "meetings standups notes.txt"))

	r := New(Options{Settings: config.DefaultSettings(), Tree: tree, Force: true}, testLogger(t))
	r.SetPicker(func(string, []prompt.Choice) (int, bool, error) {
		t.Fatal("picker must not run with force enabled")
		return 0, false, nil
	})
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	// 11.02 matches both "standups" and the inherited "meetings" term, so
	// it outranks 11.01.
	assert.FileExists(t, filepath.Join(root, "10-19 Admin/11 Meetings/11.02 Standups/meetings standups notes.txt"))
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	src := touch(t, filepath.Join(dir, "My___Messy  file.TXT"))

	s := config.DefaultSettings()
	r := New(Options{Settings: s, DryRun: true}, testLogger(t))
	stats := r.Run(context.Background(), []string{src})

	assert.Equal(t, 1, stats.Changed)
	assert.FileExists(t, src)
}

func TestProcessDotfileKeepsDot(t *testing.T) {
	dir := t.TempDir()
	src := touch(t, filepath.Join(dir, ".env_local"))

	r := New(Options{Settings: config.DefaultSettings()}, testLogger(t))
	res := r.Process(src)

	assert.Equal(t, ".env_local", filepath.Base(res.Plan.Dest))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, ".hidden"))
	touch(t, filepath.Join(dir, project.MarkerFile))
	touch(t, filepath.Join(dir, "skipme.log"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	touch(t, filepath.Join(dir, "sub", "c.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	touch(t, filepath.Join(dir, ".git", "config"))

	s := config.DefaultSettings()
	s.IgnoredFiles = []string{"skipme.log"}

	got, err := Discover([]string{dir}, s)
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "sub", "c.txt"),
	}
	assert.Equal(t, want, got)
}

func TestDiscoverExplicitFileBypassesIgnoreRules(t *testing.T) {
	dir := t.TempDir()
	hidden := touch(t, filepath.Join(dir, ".hidden"))

	got, err := Discover([]string{hidden}, config.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{hidden}, got)
}

func TestStatsSummary(t *testing.T) {
	s := Stats{Total: 4, Changed: 2, Unchanged: 1, Skipped: 1}
	assert.Equal(t, "4 files: 2 changed, 1 unchanged, 1 skipped, 0 failed", s.Summary())
}

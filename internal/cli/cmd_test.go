package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs the root command with args and returns its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeContentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"projects.yaml": "projects:\n" +
			"  - id: alpha\n    title: Alpha\n    status: ongoing\n    date: \"2024.03\"\n    tags: [R, Survey]\n" +
			"  - id: beta\n    title: Beta\n    status: completed\n    date: \"2023.11\"\n",
		"members.yaml":    "members:\n  - name: Kim\n",
		"department.yaml": "department:\n  title: Stats\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	return dir
}

func TestContentValidateEmbedded(t *testing.T) {
	t.Parallel()

	out, err := executeCmd(t, &App{}, "content", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "content ok")
	assert.Contains(t, out, "source=embedded projects=4 ongoing=2 completed=1 planned=1 members=4 professors=2")
}

func TestContentValidateReportsBrokenDir(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")
	_, err := executeCmd(t, &App{}, "--content-dir", missing, "content", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dir:")
}

func TestContentListFiltersProjects(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	out, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "list", "--filter", "ongoing")
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECTS: ONGOING")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "R, Survey")
	assert.NotContains(t, out, "beta")
}

func TestContentListUnknownFilterShowsAll(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	out, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "list", "--filter", "bogus")
	require.NoError(t, err)
	assert.Contains(t, out, "PROJECTS: ALL")
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "beta"))
}

func TestContentListEmptyFilter(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	out, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "list", "--filter", "planned")
	require.NoError(t, err)
	assert.Contains(t, out, "no projects")
}

func TestContentImportThenListFromDSN(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	dsn := filepath.Join(t.TempDir(), "content.db")

	out, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "import", "--dsn", dsn)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 projects and 1 members")

	out, err = executeCmd(t, &App{}, "--content-dsn", dsn, "content", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}

func TestContentImportRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := executeCmd(t, &App{}, "content", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dsn")
}

func TestContentShowRendersProject(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	out, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "show", "alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "2024.03")
	assert.Contains(t, out, "Survey")
	assert.NotContains(t, out, "Beta")
}

func TestContentShowUnknownProject(t *testing.T) {
	t.Parallel()

	dir := writeContentDir(t)
	_, err := executeCmd(t, &App{}, "--content-dir", dir, "content", "show", "gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "gamma" not found`)
}

func TestProjectMarkdown(t *testing.T) {
	t.Parallel()

	got := projectMarkdown(content.Project{
		Title:       "Alpha",
		Status:      content.StatusOngoing,
		Date:        "2024.03",
		Summary:     "Short",
		Description: "first\n\n second ",
		Tags:        []string{"R", "Survey"},
	})
	want := "# Alpha\n\n**Status:** ongoing | **Date:** 2024.03\n\n> Short\n\nfirst\n\nsecond\n\nTags: `R` `Survey`\n"
	assert.Equal(t, want, got)
}

func TestFieldSnapshotWritesSVG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frame.svg")
	out, err := executeCmd(t, &App{}, "field", "snapshot", "--out", path, "--particles", "5", "--width", "200", "--height", "100", "--steps", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote frame 3 (5 particles, 200x100)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestFieldSnapshotResizeKeepsParticles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frame.svg")
	out, err := executeCmd(t, &App{}, "field", "snapshot", "--out", path, "--particles", "5", "--width", "200", "--height", "100", "--resize", "50x40")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote frame 0 (5 particles, 50x40)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `viewBox="0 0 500 400"`)
	assert.Equal(t, 5, strings.Count(string(data), "<circle"))
}

func TestFieldSnapshotRejectsBadResize(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frame.svg")
	for _, value := range []string{"wide", "0x10", "10x-1", "nanx5", "infx5"} {
		_, err := executeCmd(t, &App{}, "field", "snapshot", "--out", path, "--resize", value)
		require.Error(t, err, value)
		assert.Contains(t, err.Error(), "--resize")
	}
}

func TestFieldSnapshotWritesPNG(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frame.png")
	_, err := executeCmd(t, &App{}, "field", "snapshot", "-o", path, "--particles", "3", "--width", "64", "--height", "48")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestFieldSnapshotRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := executeCmd(t, &App{}, "field", "snapshot", "--out", filepath.Join(t.TempDir(), "frame.gif"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output")
}

func TestCatalogCheckEmbedded(t *testing.T) {
	t.Parallel()

	out, err := executeCmd(t, &App{}, "catalog", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "CATALOGS")
	assert.Contains(t, out, "en-US")
	assert.Contains(t, out, "ko-KR")
	assert.Contains(t, out, "all locales complete")
}

package context

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestFile writes a source file into a temp dir.
func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestContextAddFile tests in-memory registration and deduplication
func TestContextAddFile(t *testing.T) {
	ctx := New(Options{})

	first := ctx.AddFile("a.dart", `Text("a")`)
	second := ctx.AddFile("a.dart", `Text("other")`)

	assert.Same(t, first, second, "re-adding a path returns the existing entry")
	assert.Len(t, ctx.Files, 1)
	assert.Equal(t, []string{"a.dart"}, ctx.FileOrder)
}

// TestContextLoadFile tests disk loading with absolute path registration
func TestContextLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := createTestFile(t, tmpDir, "main.dart", `Container(child: Text("hi"))`)

	ctx := New(Options{})
	file, err := ctx.LoadFile(path)
	require.NoError(t, err)

	absPath, _ := filepath.Abs(path)
	assert.Equal(t, absPath, file.Path)
	assert.Contains(t, file.Content, "Container")
}

// TestContextLoadFileNotFound tests the I/O error path
func TestContextLoadFileNotFound(t *testing.T) {
	ctx := New(Options{})

	_, err := ctx.LoadFile("/nonexistent/path/main.dart")
	assert.Error(t, err)
}

// TestContextRunAll tests running the pipeline over every registered file
// in registration order
func TestContextRunAll(t *testing.T) {
	ctx := New(Options{})
	ctx.AddFile("a.dart", `Text("a")`)
	ctx.AddFile("b.dart", `Column(children: [Text("b")])`)

	ctx.RunAll()

	files := ctx.GetAllFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "a.dart", files[0].Path)
	assert.Equal(t, "b.dart", files[1].Path)
	for _, file := range files {
		assert.True(t, file.Done)
		assert.True(t, file.Result.Success)
		assert.True(t, file.Result.Usable())
	}
	assert.False(t, ctx.HasErrors())
}

// TestContextHasErrors tests error aggregation across files
func TestContextHasErrors(t *testing.T) {
	ctx := New(Options{})
	ctx.AddFile("good.dart", `Text("ok")`)
	ctx.AddFile("bad.dart", `Container(child: Text("hi")`)

	ctx.RunAll()

	assert.True(t, ctx.HasErrors())
	files := ctx.GetAllFiles()
	assert.True(t, files[0].Result.Success)
	assert.False(t, files[1].Result.Success)
}

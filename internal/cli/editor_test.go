package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEditorScript creates an executable shell script to stand in for $EDITOR.
func writeEditorScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "editor.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestGetEditor(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "code --wait", getEditor())

	t.Setenv("VISUAL", "")
	assert.Equal(t, "vim", getEditor())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "", getEditor())
}

func TestEditInEditorNoEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	_, err := EditInEditor([]byte("test"), ".txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EDITOR not set")
}

func TestEditInEditorWithTrueCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")

	content := []byte("Read")
	result, err := EditInEditor(content, ".txt")
	require.NoError(t, err)
	assert.Equal(t, content, result)
}

func TestEditInEditorNonZeroExit(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	_, err := EditInEditor([]byte("test"), ".txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor exited with status")
}

func TestEditTitle(t *testing.T) {
	t.Run("unchanged title is returned", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "true")

		title, err := EditTitle("Read")
		require.NoError(t, err)
		assert.Equal(t, "Read", title)
	})

	t.Run("edited title is returned trimmed", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", writeEditorScript(t, `printf '# comment\n\n   Read 20 pages  \nignored\n' > "$1"`))

		title, err := EditTitle("Read")
		require.NoError(t, err)
		assert.Equal(t, "Read 20 pages", title)
	})

	t.Run("emptied file aborts", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", writeEditorScript(t, `printf '# only comments\n' > "$1"`))

		_, err := EditTitle("Read")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rename aborted")
	})
}

func TestRunEditorEmptyCommand(t *testing.T) {
	err := runEditor("", "/tmp/test.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty editor command")
}

func TestRunEditorNonExistentCommand(t *testing.T) {
	err := runEditor("nonexistent-editor-command-12345", "/tmp/test.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run editor")
}

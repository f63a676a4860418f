package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// titleTemplate is shown above the current title when renaming in $EDITOR.
const titleTemplate = `# Enter the new title for this streak.
# Lines starting with '#' are ignored; an empty title aborts.
`

// EditTitle opens title in $EDITOR and returns the first non-comment,
// non-blank line of the result.
func EditTitle(title string) (string, error) {
	edited, err := EditInEditor([]byte(titleTemplate+title+"\n"), ".txt")
	if err != nil {
		return "", err
	}
	return parseEditedTitle(string(edited))
}

func parseEditedTitle(content string) (string, error) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	return "", &ValidationError{Field: "title", Message: "must not be empty (rename aborted)"}
}

// EditInEditor writes content to a temporary file named with suffix, opens
// it in the user's editor, and returns the file's contents once the editor
// exits successfully.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or pass the new title as an argument")
	}

	dir, err := os.MkdirTemp("", "dundun-edit-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "TITLE"+suffix)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := runEditor(editor, path); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

// getEditor prefers $VISUAL over $EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor runs editor on path attached to the terminal. The editor
// string may carry arguments, as in "code --wait".
func runEditor(editor, path string) error {
	argv := strings.Fields(editor)
	if len(argv) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
	default:
		return fmt.Errorf("failed to run editor: %w", err)
	}
}

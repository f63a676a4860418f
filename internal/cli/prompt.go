package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive is returned by Confirm when there is no terminal to ask.
var ErrNotInteractive = errors.New("stdin is not a terminal (use --yes to skip confirmation)")

// Prompter asks yes/no questions.
type Prompter struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
}

// StdPrompter returns a Prompter on stdin and stdout.
// It is interactive only when stdin is a terminal.
func StdPrompter() *Prompter {
	return &Prompter{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// Confirm prints question with a [y/N] suffix and reads one line.
// Only "y" or "yes" (any case) confirms.
func (p *Prompter) Confirm(question string) (bool, error) {
	if !p.Interactive {
		return false, ErrNotInteractive
	}

	fmt.Fprintf(p.Out, "%s [y/N] ", question)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

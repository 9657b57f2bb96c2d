package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"jot.dev/jot/internal/engine"
)

var _ engine.ProgramLauncher = (*Launcher)(nil)

// Launcher starts the user's editor and pager on idea files, with the
// terminal attached.
type Launcher struct{}

// NewLauncher creates a Launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// OpenEditor opens path in the user's preferred editor and blocks until
// the editor exits.
func (l *Launcher) OpenEditor(path string) error {
	return runProgram(resolveProgram("EDITOR", "core.editor", "vi"), path)
}

// OpenPager shows path in the user's preferred pager and blocks until
// the pager exits.
func (l *Launcher) OpenPager(path string) error {
	return runProgram(resolveProgram("PAGER", "core.pager", "less"), path)
}

// resolveProgram picks a command string: the environment variable wins,
// then the git config key, then the fallback.
func resolveProgram(envVar, gitConfigKey, fallback string) string {
	if program := os.Getenv(envVar); program != "" {
		return program
	}

	// Try to get from git config
	output, err := exec.Command("git", "config", "--get", gitConfigKey).Output()
	if err == nil {
		if program := strings.TrimSpace(string(output)); program != "" {
			return program
		}
	}

	return fallback
}

// runProgram executes a command string, which may carry its own
// arguments, with path appended as the final argument.
func runProgram(program, path string) error {
	words, err := shellquote.Split(program)
	if err != nil {
		return fmt.Errorf("failed to parse command %q: %w", program, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.Command(words[0], append(words[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited with error: %w", words[0], err)
	}
	return nil
}

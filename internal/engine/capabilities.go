package engine

import (
	"context"

	"jot.dev/jot/internal/config"
)

// ConfigStore persists jot's settings. Read and Delete report
// errors.ErrKeyNotFound for keys that have no stored value.
type ConfigStore interface {
	Read(key config.Key) (string, error)
	Write(key config.Key, value string) error
	Delete(key config.Key) error
	DirExists() bool
	CreateDir() error
}

// Prompter writes jot's user-facing output.
type Prompter interface {
	// Banner prints the one-time welcome shown before first setup.
	Banner()
	// Line prints a plain status line.
	Line(text string)
	// InputHeader prints the header preceding an input prompt.
	InputHeader(text string)
}

// InputReader reads one line of user input at a time.
// An empty line is meaningful input, not an error.
type InputReader interface {
	ReadLine() (string, error)
}

// ProgramLauncher starts the user's editor or pager on a file and blocks
// until the program exits.
type ProgramLauncher interface {
	OpenEditor(path string) error
	OpenPager(path string) error
}

// GitService performs git operations against the idea repository.
type GitService interface {
	CheckoutBranch(ctx context.Context, branchName string) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, branchName string) error
}

// GitFactory opens a GitService for the repository at path.
type GitFactory func(path string) (GitService, error)

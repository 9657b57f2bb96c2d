// Package errors provides sentinel errors and custom error types for the jot application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrKeyNotFound indicates that a configuration key has no stored value
	ErrKeyNotFound = errors.New("config key not found")

	// ErrRepositoryNotFound indicates that a path does not contain a git repository
	ErrRepositoryNotFound = errors.New("repository not found")
)

// KeyNotFoundError represents an error when a configuration key has no value
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("config key %s is not set", e.Key)
}

// Is returns true if the target error is ErrKeyNotFound
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(key string) *KeyNotFoundError {
	return &KeyNotFoundError{Key: key}
}

// RepositoryNotFoundError represents an error when a path cannot be opened as a git repository
type RepositoryNotFoundError struct {
	Path string
	Err  error
}

func (e *RepositoryNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no git repository at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("no git repository at %s", e.Path)
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

func (e *RepositoryNotFoundError) Unwrap() error {
	return e.Err
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(path string, err error) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

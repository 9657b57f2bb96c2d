// Package git provides the Git operations jot performs on the idea repository.
//
// It wraps git command execution and go-git for:
//   - Opening and validating the configured repository
//   - Publishing ideas (checkout, stage, commit, push)
//   - Repo state queries used by diagnostics (branches, remotes)
//
// This package should be the only place where direct git commands are executed.
package git

// Package testhelpers provides test scaffolding: a scratch git repository
// builder and recording doubles for the engine's capabilities.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// GitRepo is a scratch git repository for tests.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a repository under a fresh temp directory with a
// test identity and the given initial branch. Tests are skipped when git
// is not installed.
func NewGitRepo(t *testing.T, branch string) *GitRepo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch="+branch, "init", dir, "-b", branch)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		t.Fatalf("failed to configure user.name: %v", err)
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		t.Fatalf("failed to configure user.email: %v", err)
	}

	return repo
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global git config.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// runGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFile writes a file relative to the repository root.
func (r *GitRepo) WriteFile(name, content string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CommitAll stages everything and commits it.
func (r *GitRepo) CommitAll(message string) error {
	if err := r.runGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.runGitCommandAndGetOutput("branch", "--show-current")
}

// CreateBareRemote creates a bare sibling repository and adds it as a
// remote. Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}

	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}

	return bareDir, nil
}

// IsClean reports whether the worktree has no staged or unstaged changes.
func (r *GitRepo) IsClean() (bool, error) {
	output, err := r.runGitCommandAndGetOutput("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return output == "", nil
}

// ListCommitMessages returns the commit subjects on the current branch,
// newest first.
func (r *GitRepo) ListCommitMessages() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// UpstreamOf returns the upstream tracking ref of a branch, like "origin/master".
func (r *GitRepo) UpstreamOf(branch string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", "--abbrev-ref", branch+"@{upstream}")
}

package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	joterrors "jot.dev/jot/internal/errors"
)

// Session is a handle on the idea repository, valid for one jot invocation.
// Opening a session proves the configured path is a real git repository
// before any mutation runs.
type Session struct {
	root   string
	remote string
	repo   *gogit.Repository
	runner *CommandRunner
}

// NewSession opens the git repository at path.
func NewSession(path string) (*Session, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, joterrors.NewRepositoryNotFoundError(absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	root := worktree.Filesystem.Root()

	return &Session{
		root:   root,
		remote: detectRemote(repo),
		repo:   repo,
		runner: NewCommandRunner(root),
	}, nil
}

// detectRemote picks the remote pushes go to: origin when configured,
// otherwise the first configured remote, otherwise "origin".
func detectRemote(repo *gogit.Repository) string {
	names := remoteNames(repo)
	if len(names) == 0 {
		return "origin"
	}
	for _, name := range names {
		if name == "origin" {
			return "origin"
		}
	}
	return names[0]
}

func remoteNames(repo *gogit.Repository) []string {
	remotes, err := repo.Remotes()
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(remotes))
	for _, r := range remotes {
		names = append(names, r.Config().Name)
	}
	sort.Strings(names)
	return names
}

// Root returns the repository root the session operates on.
func (s *Session) Root() string {
	return s.root
}

// Remote returns the remote pushes go to.
func (s *Session) Remote() string {
	return s.remote
}

// Remotes returns the names of all configured remotes.
func (s *Session) Remotes() []string {
	return remoteNames(s.repo)
}

// HasBranch reports whether a local branch exists.
func (s *Session) HasBranch(name string) bool {
	_, err := s.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	return err == nil
}

// CheckoutBranch checks out an existing branch
func (s *Session) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := s.runner.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func (s *Session) StageAll(ctx context.Context) error {
	_, err := s.runner.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message
func (s *Session) Commit(ctx context.Context, message string) error {
	_, err := s.runner.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Push publishes the branch to the session's remote and sets its upstream
func (s *Session) Push(ctx context.Context, branchName string) error {
	_, err := s.runner.Run(ctx, "push", "-u", s.remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

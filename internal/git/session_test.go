package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	joterrors "jot.dev/jot/internal/errors"
	"jot.dev/jot/internal/git"
	"jot.dev/jot/testhelpers"
)

// sameDir compares directories with symlinks resolved, since temp dirs
// are symlinked on some platforms.
func sameDir(t *testing.T, want, got string) {
	t.Helper()
	wantResolved, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, wantResolved, gotResolved)
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	t.Run("opens a repository at its root", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")

		session, err := git.NewSession(repo.Dir)

		require.NoError(t, err)
		sameDir(t, repo.Dir, session.Root())
	})

	t.Run("finds the root from a subdirectory", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		subdir := filepath.Join(repo.Dir, "notes", "deep")
		require.NoError(t, os.MkdirAll(subdir, 0750))

		session, err := git.NewSession(subdir)

		require.NoError(t, err)
		sameDir(t, repo.Dir, session.Root())
	})

	t.Run("fails on a directory that is not a repository", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		_, err := git.NewSession(dir)

		require.Error(t, err)
		require.ErrorIs(t, err, joterrors.ErrRepositoryNotFound)
	})
}

func TestSessionRemote(t *testing.T) {
	t.Parallel()

	t.Run("defaults to origin when no remote is configured", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")

		session, err := git.NewSession(repo.Dir)

		require.NoError(t, err)
		require.Equal(t, "origin", session.Remote())
		require.Empty(t, session.Remotes())
	})

	t.Run("uses the only configured remote", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		_, err := repo.CreateBareRemote("upstream")
		require.NoError(t, err)

		session, err := git.NewSession(repo.Dir)

		require.NoError(t, err)
		require.Equal(t, "upstream", session.Remote())
		require.Equal(t, []string{"upstream"}, session.Remotes())
	})

	t.Run("prefers origin over other remotes", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		_, err := repo.CreateBareRemote("upstream")
		require.NoError(t, err)
		_, err = repo.CreateBareRemote("origin")
		require.NoError(t, err)

		session, err := git.NewSession(repo.Dir)

		require.NoError(t, err)
		require.Equal(t, "origin", session.Remote())
		require.Equal(t, []string{"origin", "upstream"}, session.Remotes())
	})
}

func TestSessionHasBranch(t *testing.T) {
	t.Parallel()

	t.Run("reports existing and missing branches", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		require.True(t, session.HasBranch("master"))
		require.False(t, session.HasBranch("ideas"))

		require.NoError(t, repo.CreateBranch("ideas"))
		require.True(t, session.HasBranch("ideas"))
	})
}

func TestSessionMutations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("checkout stage and commit record an idea", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))
		require.NoError(t, repo.CreateBranch("ideas"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		require.NoError(t, session.CheckoutBranch(ctx, "ideas"))
		current, err := repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "ideas", current)

		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n\n- A brilliant one\n"))
		require.NoError(t, session.StageAll(ctx))
		require.NoError(t, session.Commit(ctx, "My brilliant idea"))

		messages, err := repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"My brilliant idea", "initial commit"}, messages)

		clean, err := repo.IsClean()
		require.NoError(t, err)
		require.True(t, clean)
	})

	t.Run("stage picks up untracked files", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		require.NoError(t, repo.WriteFile("notes.md", "scratch\n"))
		require.NoError(t, session.StageAll(ctx))
		require.NoError(t, session.Commit(ctx, "Add notes"))

		clean, err := repo.IsClean()
		require.NoError(t, err)
		require.True(t, clean)
	})

	t.Run("checkout of a missing branch fails", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		err = session.CheckoutBranch(ctx, "no-such-branch")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to checkout branch no-such-branch")
	})

	t.Run("commit with nothing staged fails", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		err = session.Commit(ctx, "Nothing to see")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to commit")
	})
}

func TestSessionPush(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("publishes the branch and sets its upstream", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))
		_, err := repo.CreateBareRemote("origin")
		require.NoError(t, err)

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		require.NoError(t, session.Push(ctx, "master"))

		upstream, err := repo.UpstreamOf("master")
		require.NoError(t, err)
		require.Equal(t, "origin/master", upstream)
	})

	t.Run("fails when no remote is configured", func(t *testing.T) {
		t.Parallel()
		repo := testhelpers.NewGitRepo(t, "master")
		require.NoError(t, repo.WriteFile("README.md", "# Ideas\n"))
		require.NoError(t, repo.CommitAll("initial commit"))

		session, err := git.NewSession(repo.Dir)
		require.NoError(t, err)

		err = session.Push(ctx, "master")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to push branch master")
	})
}

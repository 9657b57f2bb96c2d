package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jot.dev/jot/internal/config"
	"jot.dev/jot/internal/engine"
	"jot.dev/jot/internal/git"
	"jot.dev/jot/internal/tui"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your jot setup",
		Long: `Run diagnostic checks on your jot environment and idea repository.

The doctor command checks:
  - Environment: git installation
  - Configuration: stored repository path and branch name
  - Idea repository: the repository opens, the branch exists, a remote
    is configured, and the idea file is present`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer func() { _ = splog.Close() }()
			return runDoctor(cmd.Context(), config.NewFileStore(), splog)
		},
	}

	return cmd
}

func runDoctor(ctx context.Context, store *config.FileStore, splog *tui.Splog) error {
	splog.Info("Running jot doctor...")
	splog.Newline()

	var warnings []string
	var errors []string

	splog.Info("Environment:")
	warnings, errors = checkEnvironment(ctx, splog, warnings, errors)

	splog.Newline()

	splog.Info("Configuration:")
	repoPath, branch, warnings, errors := checkConfiguration(store, splog, warnings, errors)

	if repoPath != "" {
		splog.Newline()
		splog.Info("Idea repository:")
		warnings, errors = checkIdeaRepository(repoPath, branch, splog, warnings, errors)
	}

	splog.Newline()
	if len(errors) > 0 {
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
		for _, err := range errors {
			splog.Warn("  ❌ %s", err)
		}
		for _, warn := range warnings {
			splog.Warn("  ⚠️  %s", warn)
		}
		return fmt.Errorf("doctor found %d error(s)", len(errors))
	} else if len(warnings) > 0 {
		splog.Info("Doctor found %d warning(s). Your jot setup is mostly healthy.", len(warnings))
		for _, warn := range warnings {
			splog.Warn("  ⚠️  %s", warn)
		}
	} else {
		splog.Info("✅ All checks passed. Your jot setup is healthy.")
	}

	return nil
}

// checkEnvironment performs environment-related checks
func checkEnvironment(ctx context.Context, splog *tui.Splog, warnings []string, errors []string) ([]string, []string) {
	version, err := git.Output(ctx, "version")
	if err != nil {
		errors = append(errors, "git is not installed or not in PATH")
		splog.Warn("  ❌ git is not installed or not in PATH")
	} else {
		splog.Info("  ✅ %s", version)
	}

	return warnings, errors
}

// checkConfiguration performs checks on the stored configuration and
// returns the configured values it found.
func checkConfiguration(store *config.FileStore, splog *tui.Splog, warnings []string, errors []string) (string, string, []string, []string) {
	if !store.DirExists() {
		warnings = append(warnings, "config directory does not exist (run jot to set up)")
		splog.Warn("  ⚠️  config directory does not exist (run jot to set up)")
		return "", "", warnings, errors
	}

	repoPath, err := store.Read(config.KeyRepoPath)
	if err != nil {
		warnings = append(warnings, "repository path is not configured (run jot to set up)")
		splog.Warn("  ⚠️  repository path is not configured")
	} else {
		splog.Info("  ✅ repository path: %s", repoPath)
	}

	branch, err := store.Read(config.KeyBranchName)
	if err != nil {
		warnings = append(warnings, "branch name is not configured (run jot to set up)")
		splog.Warn("  ⚠️  branch name is not configured")
	} else {
		splog.Info("  ✅ branch name: %s", branch)
	}

	return repoPath, branch, warnings, errors
}

// checkIdeaRepository performs checks on the configured idea repository
func checkIdeaRepository(repoPath, branch string, splog *tui.Splog, warnings []string, errors []string) ([]string, []string) {
	session, err := git.NewSession(repoPath)
	if err != nil {
		errors = append(errors, fmt.Sprintf("idea repository cannot be opened: %s", repoPath))
		splog.Warn("  ❌ idea repository cannot be opened: %s", repoPath)
		return warnings, errors
	}
	splog.Info("  ✅ repository opens: %s", session.Root())

	if branch != "" {
		if session.HasBranch(branch) {
			splog.Info("  ✅ branch %s exists", branch)
		} else {
			errors = append(errors, fmt.Sprintf("branch %s does not exist in the idea repository", branch))
			splog.Warn("  ❌ branch %s does not exist", branch)
		}
	}

	if len(session.Remotes()) == 0 {
		errors = append(errors, "no remote is configured; pushing ideas will fail")
		splog.Warn("  ❌ no remote is configured")
	} else {
		splog.Info("  ✅ pushes go to remote %s", session.Remote())
	}

	ideaFile := engine.IdeaFile(session.Root())
	if _, err := os.Stat(ideaFile); err != nil {
		warnings = append(warnings, "idea file README.md not found (your editor creates it on first capture)")
		splog.Warn("  ⚠️  idea file README.md not found")
	} else {
		splog.Info("  ✅ idea file present: %s", ideaFile)
	}

	return warnings, errors
}

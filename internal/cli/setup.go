package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"jot.dev/jot/internal/config"
	"jot.dev/jot/internal/engine"
	"jot.dev/jot/internal/tui"
)

// newSetupCmd creates the setup command
func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure the idea repository and branch interactively",
		Long: `Configure where jot keeps your ideas.

jot stores two values: the absolute path to a git repository whose
README.md holds your ideas, and the branch ideas are committed to.
Running setup again lets you change them.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			splog := newSplog()
			defer func() { _ = splog.Close() }()
			return runSetup(config.NewFileStore(), splog)
		},
	}

	return cmd
}

func runSetup(store *config.FileStore, splog *tui.Splog) error {
	if !tui.IsTTY() {
		return fmt.Errorf("setup requires an interactive terminal")
	}

	if !store.DirExists() {
		if err := store.CreateDir(); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	currentRepo, repoErr := store.Read(config.KeyRepoPath)
	currentBranch, branchErr := store.Read(config.KeyBranchName)

	if repoErr == nil && branchErr == nil {
		overwrite := false
		prompt := &survey.Confirm{
			Message: "jot is already configured. Overwrite the existing configuration?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			splog.Line("Keeping the existing configuration.")
			return nil
		}
	}

	var repoPath string
	repoPrompt := &survey.Input{
		Message: "Absolute path to your idea repo:",
		Default: currentRepo,
		Help:    "A git repository whose README.md collects your ideas (e.g., /home/you/ideas)",
	}
	if err := survey.AskOne(repoPrompt, &repoPath, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	branchDefault := currentBranch
	if branchDefault == "" {
		branchDefault = engine.DefaultBranch
	}
	var branch string
	branchPrompt := &survey.Input{
		Message: "Name of branch:",
		Default: branchDefault,
		Help:    "The branch ideas are committed and pushed to",
	}
	if err := survey.AskOne(branchPrompt, &branch, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if err := store.Write(config.KeyRepoPath, repoPath); err != nil {
		return fmt.Errorf("failed to store repository path: %w", err)
	}
	if err := store.Write(config.KeyBranchName, branch); err != nil {
		return fmt.Errorf("failed to store branch name: %w", err)
	}

	splog.Info("Configuration saved to %s", store.Path())
	return nil
}

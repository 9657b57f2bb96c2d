// Package cli wires the jot commands to the engine and its capabilities.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jot.dev/jot/internal/config"
	"jot.dev/jot/internal/engine"
	"jot.dev/jot/internal/git"
	"jot.dev/jot/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var opts engine.Options

	rootCmd := &cobra.Command{
		Use:   "jot",
		Short: "jot is a command line tool for capturing ideas without losing focus",
		Long: `jot is a command line tool for capturing ideas without losing focus.

Run it with no arguments to jot an idea: you type a one-line summary,
your editor opens the idea file for the details, and jot commits and
pushes the result to your idea repository. The first run walks you
through a short setup.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog()
			defer func() { _ = splog.Close() }()

			store := config.NewFileStore()
			splog.Debug("using config file %s", store.Path())

			eng := engine.New(
				store,
				splog,
				tui.NewTerminalReader(),
				tui.NewLauncher(),
				newGitService,
			)
			return eng.Run(cmd.Context(), opts)
		},
	}

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("jot version {{.Version}} (commit %s, built %s)\n", commit, date))

	rootCmd.Flags().BoolVar(&opts.ClearRepo, "clear-repo", false, "Clear the stored idea repository path")
	rootCmd.Flags().BoolVar(&opts.ClearBranch, "clear-branch", false, "Clear the stored branch name")
	rootCmd.Flags().BoolVarP(&opts.View, "view", "v", false, "View your ideas with the pager")

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

// newGitService opens a git session on the idea repository.
func newGitService(path string) (engine.GitService, error) {
	return git.NewSession(path)
}

// newSplog builds the command output. Everything printed is also written
// to a rotating jot.log next to the configuration file.
func newSplog() *tui.Splog {
	dir := config.Dir()
	if dir == "" {
		return tui.NewSplog()
	}
	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.IsColorEnabled(), filepath.Join(dir, "jot.log"))
	if err != nil {
		return tui.NewSplog()
	}
	return splog
}

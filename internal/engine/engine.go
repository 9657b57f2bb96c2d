package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"jot.dev/jot/internal/config"
)

// IdeaFileName is the file ideas are captured in, at the repository root.
const IdeaFileName = "README.md"

// DefaultBranch is used when the user accepts the branch prompt's default.
const DefaultBranch = "master"

// IdeaFile returns the path of the idea file inside repoPath.
func IdeaFile(repoPath string) string {
	return filepath.Join(repoPath, IdeaFileName)
}

// Options selects what a single jot invocation does. Clear flags win over
// everything else; View runs before the normal capture flow.
type Options struct {
	ClearRepo   bool
	ClearBranch bool
	View        bool
}

// Engine runs the capture workflow against injected capabilities.
type Engine struct {
	store    ConfigStore
	prompter Prompter
	reader   InputReader
	launcher ProgramLauncher
	newGit   GitFactory

	// git is opened lazily, at most once per Run.
	git GitService
}

// New creates an Engine from its capabilities.
func New(store ConfigStore, prompter Prompter, reader InputReader, launcher ProgramLauncher, newGit GitFactory) *Engine {
	return &Engine{
		store:    store,
		prompter: prompter,
		reader:   reader,
		launcher: launcher,
		newGit:   newGit,
	}
}

// Run executes one jot invocation.
//
// Recoverable problems (missing config values, input and pager failures)
// are returned as errors. Failures that would lose a captured idea or
// leave the repository half-published panic instead; see capture.
func (e *Engine) Run(ctx context.Context, opts Options) error {
	if opts.ClearRepo || opts.ClearBranch {
		return e.clear(opts)
	}

	if opts.View {
		if err := e.view(); err != nil {
			return err
		}
	}

	if e.isConfigMissing() {
		return e.setup()
	}
	return e.capture(ctx)
}

// clear removes stored settings. Clearing a key that holds no value is an
// error, and a failed clear stops the remaining ones.
func (e *Engine) clear(opts Options) error {
	if opts.ClearRepo {
		if err := e.clearKey(config.KeyRepoPath); err != nil {
			return err
		}
	}
	if opts.ClearBranch {
		if err := e.clearKey(config.KeyBranchName); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) clearKey(key config.Key) error {
	if _, err := e.store.Read(key); err != nil {
		return err
	}
	return e.store.Delete(key)
}

// view opens the idea file in the user's pager.
func (e *Engine) view() error {
	repoPath, err := e.store.Read(config.KeyRepoPath)
	if err != nil {
		return err
	}
	return e.launcher.OpenPager(IdeaFile(repoPath))
}

// isConfigMissing reports whether setup still has to run. Completeness is
// derived from the stored values on every call, never cached.
func (e *Engine) isConfigMissing() bool {
	_, repoErr := e.store.Read(config.KeyRepoPath)
	_, branchErr := e.store.Read(config.KeyBranchName)
	return repoErr != nil || branchErr != nil
}

// setup interactively collects whichever settings are missing.
func (e *Engine) setup() error {
	if !e.store.DirExists() {
		if err := e.store.CreateDir(); err != nil {
			return err
		}
	}

	e.prompter.Banner()

	if _, err := e.store.Read(config.KeyRepoPath); err != nil {
		repoPath, err := e.readRequired("Absolute path to your idea repo")
		if err != nil {
			return err
		}
		if err := e.store.Write(config.KeyRepoPath, repoPath); err != nil {
			return err
		}
	}

	if _, err := e.store.Read(config.KeyBranchName); err != nil {
		e.prompter.InputHeader("Name of branch (default: master)")
		branch, err := e.reader.ReadLine()
		if err != nil {
			return err
		}
		if branch == "" {
			branch = DefaultBranch
		}
		if err := e.store.Write(config.KeyBranchName, branch); err != nil {
			return err
		}
	}

	e.prompter.Line("First time setup complete. Happy ideation!")
	return nil
}

// readRequired prompts until the user enters a non-empty line.
func (e *Engine) readRequired(header string) (string, error) {
	for {
		e.prompter.InputHeader(header)
		value, err := e.reader.ReadLine()
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
	}
}

// capture records one idea: ask for a summary, open the idea file in the
// editor, then publish the change.
//
// Once the summary is taken, anything that would strand the idea is a
// programming or environment failure the user cannot fix mid-flight, so
// this path panics rather than returning an error.
func (e *Engine) capture(ctx context.Context) error {
	e.prompter.InputHeader(">> Idea summary")
	summary, err := e.reader.ReadLine()
	if err != nil {
		return err
	}

	repoPath, err := e.store.Read(config.KeyRepoPath)
	if err != nil {
		panic(fmt.Sprintf("repo path is missing after setup: %v", err))
	}

	session := e.session(repoPath)

	if err := e.launcher.OpenEditor(IdeaFile(repoPath)); err != nil {
		panic(fmt.Sprintf("could not open editor: %v", err))
	}

	e.sync(ctx, session, summary)
	return nil
}

// session returns the git service, opening it on first use.
// Panics when the configured path cannot be opened as a repository.
func (e *Engine) session(repoPath string) GitService {
	if e.git == nil {
		git, err := e.newGit(repoPath)
		if err != nil {
			panic(fmt.Sprintf("could not open idea repository: %v", err))
		}
		e.git = git
	}
	return e.git
}

// sync publishes the captured idea: checkout, stage everything, commit
// with the summary as subject, push. Any git failure panics; partial
// state is left in the repository for manual inspection.
func (e *Engine) sync(ctx context.Context, session GitService, summary string) {
	branch, err := e.store.Read(config.KeyBranchName)
	if err != nil {
		panic(fmt.Sprintf("branch name is missing after setup: %v", err))
	}

	e.prompter.Line("Adding and committing your new idea..")
	if err := session.CheckoutBranch(ctx, branch); err != nil {
		panic(fmt.Sprintf("could not checkout branch %s: %v", branch, err))
	}
	if err := session.StageAll(ctx); err != nil {
		panic(fmt.Sprintf("could not stage changes: %v", err))
	}
	if err := session.Commit(ctx, summary); err != nil {
		panic(fmt.Sprintf("could not commit your idea: %v", err))
	}
	e.prompter.Line("Added and committed!")

	e.prompter.Line("Pushing your new idea..")
	if err := session.Push(ctx, branch); err != nil {
		panic(fmt.Sprintf("could not push your idea: %v", err))
	}
	e.prompter.Line("Pushed!")
}

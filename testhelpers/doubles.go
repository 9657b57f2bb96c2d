package testhelpers

import (
	"context"
	"io"

	"jot.dev/jot/internal/config"
	"jot.dev/jot/internal/engine"
	"jot.dev/jot/internal/errors"
)

// Compile-time checks that the doubles satisfy the engine's capabilities.
var (
	_ engine.ConfigStore     = (*MemStore)(nil)
	_ engine.Prompter        = (*RecordingPrompter)(nil)
	_ engine.InputReader     = (*ScriptReader)(nil)
	_ engine.ProgramLauncher = (*RecordingLauncher)(nil)
	_ engine.GitService      = (*FakeGit)(nil)
)

// MemStore is an in-memory ConfigStore that records every call.
type MemStore struct {
	Values map[config.Key]string

	// DirMissing reports the config directory as absent until CreateDir.
	DirMissing bool
	DirCreated bool

	WriteErr  error
	DeleteErr error
	CreateErr error

	Reads   []config.Key
	Writes  []config.Key
	Deletes []config.Key
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{Values: map[config.Key]string{}}
}

// NewCompleteMemStore returns a MemStore holding both settings.
func NewCompleteMemStore(repoPath, branch string) *MemStore {
	return &MemStore{Values: map[config.Key]string{
		config.KeyRepoPath:   repoPath,
		config.KeyBranchName: branch,
	}}
}

func (s *MemStore) Read(key config.Key) (string, error) {
	s.Reads = append(s.Reads, key)
	value, ok := s.Values[key]
	if !ok || value == "" {
		return "", errors.NewKeyNotFoundError(key.String())
	}
	return value, nil
}

func (s *MemStore) Write(key config.Key, value string) error {
	s.Writes = append(s.Writes, key)
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Values[key] = value
	return nil
}

func (s *MemStore) Delete(key config.Key) error {
	s.Deletes = append(s.Deletes, key)
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.Values[key]; !ok {
		return errors.NewKeyNotFoundError(key.String())
	}
	delete(s.Values, key)
	return nil
}

func (s *MemStore) DirExists() bool {
	return !s.DirMissing || s.DirCreated
}

func (s *MemStore) CreateDir() error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.DirCreated = true
	return nil
}

// ReadCount returns how many Read calls were made for key.
func (s *MemStore) ReadCount(key config.Key) int {
	count := 0
	for _, k := range s.Reads {
		if k == key {
			count++
		}
	}
	return count
}

// RecordingPrompter captures everything the engine prints.
type RecordingPrompter struct {
	Banners int
	Lines   []string
	Headers []string
}

func (p *RecordingPrompter) Banner() {
	p.Banners++
}

func (p *RecordingPrompter) Line(text string) {
	p.Lines = append(p.Lines, text)
}

func (p *RecordingPrompter) InputHeader(text string) {
	p.Headers = append(p.Headers, text)
}

// ScriptReader replays scripted input lines and counts reads. Once the
// script is exhausted it returns Err, or io.EOF when Err is unset.
type ScriptReader struct {
	Lines []string
	Err   error
	Reads int

	next int
}

func (r *ScriptReader) ReadLine() (string, error) {
	r.Reads++
	if r.next >= len(r.Lines) {
		if r.Err != nil {
			return "", r.Err
		}
		return "", io.EOF
	}
	line := r.Lines[r.next]
	r.next++
	return line, nil
}

// RecordingLauncher records editor and pager invocations.
type RecordingLauncher struct {
	EditorPaths []string
	PagerPaths  []string
	EditorErr   error
	PagerErr    error
}

func (l *RecordingLauncher) OpenEditor(path string) error {
	l.EditorPaths = append(l.EditorPaths, path)
	return l.EditorErr
}

func (l *RecordingLauncher) OpenPager(path string) error {
	l.PagerPaths = append(l.PagerPaths, path)
	return l.PagerErr
}

// FakeGit records the git operations the engine requests, in order.
type FakeGit struct {
	Ops []string

	CheckoutErr error
	StageErr    error
	CommitErr   error
	PushErr     error
}

func (g *FakeGit) CheckoutBranch(ctx context.Context, branchName string) error {
	g.Ops = append(g.Ops, "checkout "+branchName)
	return g.CheckoutErr
}

func (g *FakeGit) StageAll(ctx context.Context) error {
	g.Ops = append(g.Ops, "stage")
	return g.StageErr
}

func (g *FakeGit) Commit(ctx context.Context, message string) error {
	g.Ops = append(g.Ops, "commit "+message)
	return g.CommitErr
}

func (g *FakeGit) Push(ctx context.Context, branchName string) error {
	g.Ops = append(g.Ops, "push "+branchName)
	return g.PushErr
}

// FakeGitFactory hands out a FakeGit and records the paths it opened.
type FakeGitFactory struct {
	Git     *FakeGit
	OpenErr error
	Opened  []string
}

// NewFakeGitFactory returns a factory wrapping a fresh FakeGit.
func NewFakeGitFactory() *FakeGitFactory {
	return &FakeGitFactory{Git: &FakeGit{}}
}

// New is an engine.GitFactory.
func (f *FakeGitFactory) New(path string) (engine.GitService, error) {
	f.Opened = append(f.Opened, path)
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return f.Git, nil
}

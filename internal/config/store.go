package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"jot.dev/jot/internal/errors"
)

// ConfigFileName is the name of the settings file inside the config directory.
const ConfigFileName = "jot.toml"

// document is the on-disk TOML shape. Fields mirror the Key constants.
type document struct {
	RepoPath   string `toml:"repo_path,omitempty"`
	BranchName string `toml:"branch_name,omitempty"`
}

func (d *document) field(key Key) (*string, error) {
	switch key {
	case KeyRepoPath:
		return &d.RepoPath, nil
	case KeyBranchName:
		return &d.BranchName, nil
	default:
		return nil, fmt.Errorf("unknown config key %q", key)
	}
}

// FileStore persists settings in <dir>/jot.toml.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at the default configuration directory.
func NewFileStore() *FileStore {
	return &FileStore{dir: Dir()}
}

// NewFileStoreAt returns a store rooted at dir.
func NewFileStoreAt(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, ConfigFileName)
}

// Read returns the stored value for key. A missing file, a missing field
// and an empty field all report errors.ErrKeyNotFound.
func (s *FileStore) Read(key Key) (string, error) {
	doc, err := s.load()
	if err != nil {
		return "", err
	}

	f, err := doc.field(key)
	if err != nil {
		return "", err
	}
	if *f == "" {
		return "", errors.NewKeyNotFoundError(key.String())
	}
	return *f, nil
}

// Write stores value under key, creating the file if needed.
func (s *FileStore) Write(key Key, value string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	f, err := doc.field(key)
	if err != nil {
		return err
	}
	*f = value
	return s.save(doc)
}

// Delete removes the value stored under key. Deleting a key that has no
// value reports errors.ErrKeyNotFound and leaves the file untouched.
func (s *FileStore) Delete(key Key) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	f, err := doc.field(key)
	if err != nil {
		return err
	}
	if *f == "" {
		return errors.NewKeyNotFoundError(key.String())
	}
	*f = ""
	return s.save(doc)
}

// DirExists reports whether the configuration directory exists.
func (s *FileStore) DirExists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// CreateDir creates the configuration directory.
func (s *FileStore) CreateDir() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

func (s *FileStore) load() (*document, error) {
	var doc document
	if _, err := toml.DecodeFile(s.Path(), &doc); err != nil {
		if os.IsNotExist(err) {
			return &document{}, nil
		}
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &doc, nil
}

func (s *FileStore) save(doc *document) error {
	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

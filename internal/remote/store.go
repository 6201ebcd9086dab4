// Package remote implements remote synchronization (spec §4.7): a name ->
// path record for other on-disk repositories, and the push/fetch/pull
// operations that copy objects between this repository's object store and
// a remote's.
package remote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
)

// Store manages the remotes/ directory under a repository's .gitlet root:
// one file per remote, named after it, containing the path to the remote
// repository's root directory as given to Add, with its separators
// normalized. The path is not made absolute.
type Store struct {
	gitletRoot string
}

func New(gitletRoot string) *Store {
	return &Store{gitletRoot: gitletRoot}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.gitletRoot, constants.RemotesDir, name)
}

// normalizeSeparators rewrites any mix of "/" and "\" in path to the host's
// separator, per spec §4.7 add-remote.
func normalizeSeparators(path string) string {
	unified := strings.NewReplacer("\\", "/").Replace(path)
	return filepath.FromSlash(unified)
}

// Add records a new remote. Fails RemoteExists if name is already taken.
func (s *Store) Add(name, path string) error {
	if s.Exists(name) {
		return gitleterrors.ErrRemoteExists
	}
	if err := os.MkdirAll(filepath.Dir(s.path(name)), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create remotes directory: %w", err)
	}
	return os.WriteFile(s.path(name), []byte(normalizeSeparators(path)), constants.FilePerms)
}

// Remove deletes a remote record. Fails RemoteMissing if it does not exist.
func (s *Store) Remove(name string) error {
	if !s.Exists(name) {
		return gitleterrors.ErrRemoteMissing
	}
	return os.Remove(s.path(name))
}

// Get returns the recorded path for a remote.
func (s *Store) Get(name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", gitleterrors.ErrRemoteMissing
		}
		return "", fmt.Errorf("failed to read remote %s: %w", name, err)
	}
	return string(data), nil
}

// Exists reports whether a remote record exists.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

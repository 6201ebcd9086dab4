// Package workdir is the working-directory adapter (spec §4.5): reads and
// writes files relative to the user's working tree and enumerates
// tracked/untracked files, always skipping the repository's own .gitlet
// metadata directory.
package workdir

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mvargas/gitlet-go/internal/constants"
)

type WorkDir struct {
	root string // the working directory, parent of .gitlet
}

func New(root string) *WorkDir {
	return &WorkDir{root: root}
}

func (w *WorkDir) abs(path string) string {
	return filepath.Join(w.root, filepath.FromSlash(path))
}

// Exists reports whether path is present in the working directory.
func (w *WorkDir) Exists(path string) bool {
	_, err := os.Stat(w.abs(path))
	return err == nil
}

// Read returns the contents of path.
func (w *WorkDir) Read(path string) ([]byte, error) {
	return os.ReadFile(w.abs(path))
}

// Write creates or overwrites path with content, creating parent
// directories as needed.
func (w *WorkDir) Write(path string, content []byte) error {
	full := w.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), constants.DirPerms); err != nil {
		return err
	}
	return os.WriteFile(full, content, constants.FilePerms)
}

// Remove deletes path if present; a missing file is not an error (spec
// §4.5 rm: "never error on already-absent").
func (w *WorkDir) Remove(path string) error {
	err := os.Remove(w.abs(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ListFiles enumerates every regular file under the working directory,
// relative to root, excluding .gitlet itself.
func (w *WorkDir) ListFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if d.Name() == constants.GitletDir {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

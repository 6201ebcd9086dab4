// Package store implements the content-addressed object store (spec §4.2):
// write-once, read-many storage for blobs and commits, keyed by their
// SHA-1 OID. Following the reference program's ObjectStore
// (internal/objects/store.go in the teacher program), objects are
// zlib-compressed on disk and existence is checked before writing so
// repeated Put calls are no-ops.
package store

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/objects"
)

// ObjectStore manages the commits/ and blobs/ directories under a
// repository's .gitlet root.
type ObjectStore struct {
	gitletRoot string
}

func New(gitletRoot string) *ObjectStore {
	return &ObjectStore{gitletRoot: gitletRoot}
}

func (s *ObjectStore) blobPath(oid string) string {
	return filepath.Join(s.gitletRoot, constants.BlobsDir, oid)
}

func (s *ObjectStore) commitPath(oid string) string {
	return filepath.Join(s.gitletRoot, constants.CommitsDir, oid)
}

// PutBlob writes b to storage. A no-op if the object already exists.
func (s *ObjectStore) PutBlob(b *objects.Blob) error {
	return writeCompressed(s.blobPath(b.Hash()), b.Content())
}

// PutCommit writes c to storage. A no-op if the object already exists.
func (s *ObjectStore) PutCommit(c *objects.Commit) error {
	return writeCompressed(s.commitPath(c.Hash()), c.Encode())
}

func writeCompressed(path string, raw []byte) error {
	if _, err := os.Stat(path); err == nil {
		slog.Debug("object already exists, skipping write", "path", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to compress object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to compress object: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to write object file: %w", err)
	}
	return nil
}

func readCompressed(path string) ([]byte, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, gitleterrors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to read object file: %w", err)
	}

	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress object: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to decompress object: %w", err)
	}
	return buf.Bytes(), nil
}

// GetBlob reads and validates the blob stored under oid.
func (s *ObjectStore) GetBlob(oid string) (*objects.Blob, error) {
	raw, err := readCompressed(s.blobPath(oid))
	if err != nil {
		return nil, err
	}
	blob := objects.NewBlob(raw)
	if blob.Hash() != oid {
		return nil, fmt.Errorf("hash mismatch: expected %s, got %s", oid, blob.Hash())
	}
	return blob, nil
}

// GetCommit reads and validates the commit stored under oid.
func (s *ObjectStore) GetCommit(oid string) (*objects.Commit, error) {
	raw, err := readCompressed(s.commitPath(oid))
	if err != nil {
		return nil, err
	}
	commit, err := objects.DecodeCommit(raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt commit object %s: %w", oid, err)
	}
	if commit.Hash() != oid {
		return nil, fmt.Errorf("hash mismatch: expected %s, got %s", oid, commit.Hash())
	}
	return commit, nil
}

// HasBlob reports whether a blob with this OID is stored.
func (s *ObjectStore) HasBlob(oid string) bool {
	_, err := os.Stat(s.blobPath(oid))
	return err == nil
}

// HasCommit reports whether a commit with this OID is stored.
func (s *ObjectStore) HasCommit(oid string) bool {
	_, err := os.Stat(s.commitPath(oid))
	return err == nil
}

// Has reports whether any object (blob or commit) is stored under oid.
func (s *ObjectStore) Has(oid string) bool {
	return s.HasBlob(oid) || s.HasCommit(oid)
}

// IterCommits returns every commit in the store, unordered (spec §4.2).
func (s *ObjectStore) IterCommits() ([]*objects.Commit, error) {
	dir := filepath.Join(s.gitletRoot, constants.CommitsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	commits := make([]*objects.Commit, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		commit, err := s.GetCommit(entry.Name())
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// ResolvePrefix returns the OID of the unique commit whose id starts with
// prefix. Per spec §4.2 / §9, a genuinely ambiguous prefix is treated the
// same as "not found" (the documented, preserved source quirk): it returns
// ErrCommitNotFound, and ErrAmbiguous is never returned, so callers cannot
// tell the two cases apart.
func (s *ObjectStore) ResolvePrefix(prefix string) (string, error) {
	if len(prefix) == constants.HashHexLength {
		if s.HasCommit(prefix) {
			return prefix, nil
		}
		return "", gitleterrors.ErrCommitNotFound
	}

	dir := filepath.Join(s.gitletRoot, constants.CommitsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", gitleterrors.ErrCommitNotFound
		}
		return "", fmt.Errorf("failed to list commits: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(entry.Name()) >= len(prefix) && entry.Name()[:len(prefix)] == prefix {
			matches = append(matches, entry.Name())
		}
	}

	switch len(matches) {
	case 0:
		return "", gitleterrors.ErrCommitNotFound
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", gitleterrors.ErrCommitNotFound
	}
}

// Package refs implements the reference store (spec §4.3): branch name ->
// commit OID files under refs/, plus the HEAD pointer. Following spec §6,
// HEAD holds the absolute filesystem path of the currently active branch's
// ref file rather than a symbolic "refs/heads/<name>" string.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
)

type RefStore struct {
	gitletRoot string
}

func New(gitletRoot string) *RefStore {
	return &RefStore{gitletRoot: gitletRoot}
}

func (r *RefStore) refsDir() string {
	return filepath.Join(r.gitletRoot, constants.RefsDir)
}

// BranchPath returns the absolute path of the ref file for name. name may
// be a plain branch ("master") or a remote-tracking branch
// ("origin/master"); both are just path segments under refs/.
func (r *RefStore) BranchPath(name string) string {
	return filepath.Join(r.refsDir(), filepath.FromSlash(name))
}

func (r *RefStore) headPath() string {
	return filepath.Join(r.gitletRoot, constants.HeadFile)
}

// CreateBranch writes a new branch ref pointing at oid. Fails if it
// already exists.
func (r *RefStore) CreateBranch(name, oid string) error {
	path := r.BranchPath(name)
	if _, err := os.Stat(path); err == nil {
		return gitleterrors.ErrBranchExists
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create refs directory: %w", err)
	}
	return os.WriteFile(path, []byte(oid), constants.FilePerms)
}

// SetBranch moves an existing branch ref to oid, creating the ref file if
// it does not already exist (used by push/fetch to create tracking
// branches and by commit/reset to move the current branch).
func (r *RefStore) SetBranch(name, oid string) error {
	path := r.BranchPath(name)
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create refs directory: %w", err)
	}
	return os.WriteFile(path, []byte(oid), constants.FilePerms)
}

// GetBranch reads the commit OID a branch currently points at.
func (r *RefStore) GetBranch(name string) (string, error) {
	data, err := os.ReadFile(r.BranchPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", gitleterrors.ErrBranchMissing
		}
		return "", fmt.Errorf("failed to read branch %s: %w", name, err)
	}
	return string(data), nil
}

// BranchExists reports whether a branch ref file exists.
func (r *RefStore) BranchExists(name string) bool {
	_, err := os.Stat(r.BranchPath(name))
	return err == nil
}

// DeleteBranch removes a branch ref. Fails if it does not exist or is the
// current branch.
func (r *RefStore) DeleteBranch(name string) error {
	if !r.BranchExists(name) {
		return gitleterrors.ErrBranchMissing
	}
	current, err := r.GetHead()
	if err == nil && current == name {
		return gitleterrors.ErrCannotRemoveCurrent
	}
	return os.Remove(r.BranchPath(name))
}

// ListBranches returns the names of every local (non remote-tracking)
// branch: direct file entries under refs/, skipping subdirectories where
// remote-tracking branches live.
func (r *RefStore) ListBranches() ([]string, error) {
	entries, err := os.ReadDir(r.refsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// GetHead returns the name of the currently active branch, resolved from
// the absolute path stored in HEAD.
func (r *RefStore) GetHead() (string, error) {
	data, err := os.ReadFile(r.headPath())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	path := strings.TrimSpace(string(data))
	rel, err := filepath.Rel(r.refsDir(), path)
	if err != nil {
		return "", fmt.Errorf("HEAD does not point inside refs/: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// SetHead points HEAD at the named branch's ref file (does not require the
// branch to already exist on disk — init and checkout-branch both set HEAD
// as part of a larger sequence).
func (r *RefStore) SetHead(name string) error {
	return os.WriteFile(r.headPath(), []byte(r.BranchPath(name)), constants.FilePerms)
}

// HeadCommit is a convenience combining GetHead and GetBranch.
func (r *RefStore) HeadCommit() (string, error) {
	branch, err := r.GetHead()
	if err != nil {
		return "", err
	}
	return r.GetBranch(branch)
}

// Package repo implements the repository operations of spec §4.5: the
// public verbs a CLI front-end calls, wired together on top of the
// object store, reference store, staging area and working-directory
// adapter. Following the design notes in spec §9, every operation hangs
// off an explicit *Repository handle rather than a fixed relative path.
package repo

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/objects"
	"github.com/mvargas/gitlet-go/internal/refs"
	"github.com/mvargas/gitlet-go/internal/staging"
	"github.com/mvargas/gitlet-go/internal/store"
	"github.com/mvargas/gitlet-go/internal/workdir"
)

// Repository is a handle onto one .gitlet repository and its working
// directory.
type Repository struct {
	Root      string // working directory, parent of GitletDir
	GitletDir string
	Store     *store.ObjectStore
	Refs      *refs.RefStore
	Work      *workdir.WorkDir
}

// Open builds a handle for an already-initialized repository rooted at
// workDir (i.e. workDir/.gitlet exists).
func Open(workDir string) *Repository {
	gitletDir := filepath.Join(workDir, constants.GitletDir)
	return &Repository{
		Root:      workDir,
		GitletDir: gitletDir,
		Store:     store.New(gitletDir),
		Refs:      refs.New(gitletDir),
		Work:      workdir.New(workDir),
	}
}

// Discover walks upward from startDir looking for a .gitlet directory,
// mirroring the reference program's findRepoRoot helper.
func Discover(startDir string) (*Repository, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, constants.GitletDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return Open(dir), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, gitleterrors.ErrNotInitialized
		}
		dir = parent
	}
}

// Init creates a brand-new repository at workDir: the .gitlet layout, an
// empty staging area, an initial commit, a master branch pointing at it,
// and HEAD pointing at master.
func Init(workDir string) (*Repository, error) {
	gitletDir := filepath.Join(workDir, constants.GitletDir)
	if _, err := os.Stat(gitletDir); err == nil {
		return nil, gitleterrors.ErrAlreadyInitialized
	}

	success := false
	defer func() {
		if !success {
			os.RemoveAll(gitletDir)
		}
	}()

	dirs := []string{
		gitletDir,
		filepath.Join(gitletDir, constants.RefsDir),
		filepath.Join(gitletDir, constants.CommitsDir),
		filepath.Join(gitletDir, constants.BlobsDir),
		filepath.Join(gitletDir, constants.RemotesDir),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, constants.DirPerms); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	r := Open(workDir)

	nonce, err := randomNonce()
	if err != nil {
		return nil, err
	}
	initial := objects.NewCommit(constants.InitialCommitMessage, constants.InitialCommitTimestamp, nonce, nil, "", "")
	if err := r.Store.PutCommit(initial); err != nil {
		return nil, err
	}
	if err := r.Refs.CreateBranch(constants.DefaultBranch, initial.Hash()); err != nil {
		return nil, err
	}
	if err := r.Refs.SetHead(constants.DefaultBranch); err != nil {
		return nil, err
	}

	empty, err := staging.Load(r.indexPath())
	if err != nil {
		return nil, err
	}
	if err := empty.Save(); err != nil {
		return nil, err
	}

	success = true
	return r, nil
}

func (r *Repository) indexPath() string {
	return filepath.Join(r.GitletDir, constants.IndexFile)
}

// LoadStaging reads the repository's staging area. Exported so the merge
// package can inspect and mutate it directly (spec §4.6 requires an empty
// staging pre-check and stages conflict markers as it goes).
func (r *Repository) LoadStaging() (*staging.Staging, error) {
	return staging.Load(r.indexPath())
}

// HeadCommit returns the commit the currently active branch points at.
func (r *Repository) HeadCommit() (*objects.Commit, error) {
	oid, err := r.Refs.HeadCommit()
	if err != nil {
		return nil, err
	}
	return r.Store.GetCommit(oid)
}

// HeadBranch returns the name of the currently active branch.
func (r *Repository) HeadBranch() (string, error) {
	return r.Refs.GetHead()
}

func randomNonce() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate commit nonce: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func formatTimestamp(t time.Time) string {
	return t.Format(constants.TimestampLayout)
}

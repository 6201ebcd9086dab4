package repo

import (
	"time"

	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/objects"
)

// Add stages path per spec §4.5 add(path).
func (r *Repository) Add(path string) error {
	st, err := r.LoadStaging()
	if err != nil {
		return err
	}

	if st.ContainsRm(path) {
		st.UnstageRm(path)
		return st.Save()
	}

	if !r.Work.Exists(path) {
		return gitleterrors.ErrFileMissing
	}

	content, err := r.Work.Read(path)
	if err != nil {
		return err
	}
	blob := objects.NewBlob(content)

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	if trackedOID, tracked := head.Tree().Lookup(path); tracked && trackedOID == blob.Hash() {
		st.UnstageAdd(path)
		return st.Save()
	}

	if err := r.Store.PutBlob(blob); err != nil {
		return err
	}
	st.StageAdd(path, blob.Hash())
	return st.Save()
}

// Rm implements spec §4.5 rm(path).
func (r *Repository) Rm(path string) error {
	st, err := r.LoadStaging()
	if err != nil {
		return err
	}

	_, staged := st.ContainsAdd(path)

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	_, tracked := head.Tree().Lookup(path)

	if !staged && !tracked {
		return gitleterrors.ErrNothingToRemove
	}

	if staged {
		st.UnstageAdd(path)
	}
	if tracked {
		st.StageRm(path)
		if err := r.Work.Remove(path); err != nil {
			return err
		}
	}
	return st.Save()
}

// Commit implements spec §4.5 commit(message, second_parent?).
func (r *Repository) Commit(message string, secondParent string) (*objects.Commit, error) {
	if message == "" {
		return nil, gitleterrors.ErrEmptyMessage
	}

	st, err := r.LoadStaging()
	if err != nil {
		return nil, err
	}
	if st.IsEmpty() {
		return nil, gitleterrors.ErrNoChanges
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}

	tree := head.Tree().Map()
	for _, entry := range st.Additions() {
		tree[entry.Path] = entry.OID
	}
	for _, path := range st.Removals() {
		delete(tree, path)
	}

	nonce, err := randomNonce()
	if err != nil {
		return nil, err
	}
	newCommit := objects.NewCommit(message, formatTimestamp(time.Now()), nonce, objects.NewTree(tree), head.Hash(), secondParent)

	if err := r.Store.PutCommit(newCommit); err != nil {
		return nil, err
	}

	branch, err := r.HeadBranch()
	if err != nil {
		return nil, err
	}
	if err := r.Refs.SetBranch(branch, newCommit.Hash()); err != nil {
		return nil, err
	}

	st.Clear()
	if err := st.Save(); err != nil {
		return nil, err
	}

	return newCommit, nil
}

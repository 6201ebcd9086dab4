package repo

import (
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/objects"
)

// CheckoutFile overwrites path with HEAD's version of it (spec §4.5
// checkout-file).
func (r *Repository) CheckoutFile(path string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.checkoutFileFromCommit(head, path)
}

// CheckoutFileAt overwrites path with the version recorded in the commit
// named by commitPrefix (spec §4.5 checkout-file-at).
func (r *Repository) CheckoutFileAt(commitPrefix, path string) error {
	oid, err := r.Store.ResolvePrefix(commitPrefix)
	if err != nil {
		return err
	}
	commit, err := r.Store.GetCommit(oid)
	if err != nil {
		return err
	}
	return r.checkoutFileFromCommit(commit, path)
}

func (r *Repository) checkoutFileFromCommit(commit *objects.Commit, path string) error {
	oid, ok := commit.Tree().Lookup(path)
	if !ok {
		return gitleterrors.ErrFileNotInCommit
	}
	blob, err := r.Store.GetBlob(oid)
	if err != nil {
		return err
	}
	return r.Work.Write(path, blob.Content())
}

// CheckUntrackedOverwrite implements the safety check shared by
// checkout-branch, reset and merge (spec §4.5, §4.6): every file present
// in the working directory must either be tracked by the current head or
// staged for addition.
func (r *Repository) CheckUntrackedOverwrite() error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	st, err := r.LoadStaging()
	if err != nil {
		return err
	}

	files, err := r.Work.ListFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		if _, tracked := head.Tree().Lookup(f); tracked {
			continue
		}
		if _, staged := st.ContainsAdd(f); staged {
			continue
		}
		return gitleterrors.ErrUntrackedOverwrite
	}
	return nil
}

// replaceWorkdirWithTree writes every file of target's tree into the
// working directory, then deletes every working-directory file (as it
// stood before this call) that target's tree does not track.
func (r *Repository) replaceWorkdirWithTree(target *objects.Commit) error {
	before, err := r.Work.ListFiles()
	if err != nil {
		return err
	}

	targetTree := target.Tree()
	for _, entry := range targetTree {
		blob, err := r.Store.GetBlob(entry.OID)
		if err != nil {
			return err
		}
		if err := r.Work.Write(entry.Path, blob.Content()); err != nil {
			return err
		}
	}

	targetMap := targetTree.Map()
	for _, f := range before {
		if _, ok := targetMap[f]; !ok {
			if err := r.Work.Remove(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckoutBranch implements spec §4.5 checkout-branch.
func (r *Repository) CheckoutBranch(name string) error {
	current, err := r.HeadBranch()
	if err != nil {
		return err
	}
	if name == current {
		return gitleterrors.ErrAlreadyOnBranch
	}
	if !r.Refs.BranchExists(name) {
		return gitleterrors.ErrBranchMissing
	}

	if err := r.CheckUntrackedOverwrite(); err != nil {
		return err
	}

	targetOID, err := r.Refs.GetBranch(name)
	if err != nil {
		return err
	}
	target, err := r.Store.GetCommit(targetOID)
	if err != nil {
		return err
	}

	if err := r.replaceWorkdirWithTree(target); err != nil {
		return err
	}

	st, err := r.LoadStaging()
	if err != nil {
		return err
	}
	st.Clear()
	if err := st.Save(); err != nil {
		return err
	}

	return r.Refs.SetHead(name)
}

// Reset implements spec §4.5 reset(commit-prefix).
func (r *Repository) Reset(commitPrefix string) error {
	oid, err := r.Store.ResolvePrefix(commitPrefix)
	if err != nil {
		return err
	}
	target, err := r.Store.GetCommit(oid)
	if err != nil {
		return err
	}

	if err := r.CheckUntrackedOverwrite(); err != nil {
		return err
	}
	if err := r.replaceWorkdirWithTree(target); err != nil {
		return err
	}

	branch, err := r.HeadBranch()
	if err != nil {
		return err
	}
	if err := r.Refs.SetBranch(branch, target.Hash()); err != nil {
		return err
	}

	st, err := r.LoadStaging()
	if err != nil {
		return err
	}
	st.Clear()
	return st.Save()
}

package remote

import (
	"os"

	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/merge"
	"github.com/mvargas/gitlet-go/internal/repo"
	"github.com/mvargas/gitlet-go/internal/store"
)

// TrackingBranch returns the name of the local tracking branch fetch/pull
// create or move for a given remote and branch, e.g. "origin/master".
func TrackingBranch(remoteName, branch string) string {
	return remoteName + "/" + branch
}

func openRemote(remoteStore *Store, remoteName string) (*repo.Repository, error) {
	path, err := remoteStore.Get(remoteName)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return nil, gitleterrors.ErrRemoteDirNotFound
	}
	return repo.Open(path), nil
}

// copyAncestry copies oid and every ancestor reachable via parent and
// second_parent edges (following the source's ancestry the way spec §4.7
// describes for push: "following first parents, and second parents for
// merges"), plus every blob each copied commit's tree references, from src
// into dst. It stops at any OID already present in dst or listed in
// stopAt, so repeated pushes/fetches only copy what the destination is
// missing.
func copyAncestry(src, dst *store.ObjectStore, oid string, stopAt map[string]bool) error {
	if oid == "" || stopAt[oid] || dst.HasCommit(oid) {
		return nil
	}

	c, err := src.GetCommit(oid)
	if err != nil {
		return err
	}
	for _, e := range c.Tree() {
		if dst.HasBlob(e.OID) {
			continue
		}
		blob, err := src.GetBlob(e.OID)
		if err != nil {
			return err
		}
		if err := dst.PutBlob(blob); err != nil {
			return err
		}
	}
	if err := dst.PutCommit(c); err != nil {
		return err
	}

	if parent, ok := c.Parent(); ok {
		if err := copyAncestry(src, dst, parent, stopAt); err != nil {
			return err
		}
	}
	if second, ok := c.SecondParent(); ok {
		if err := copyAncestry(src, dst, second, stopAt); err != nil {
			return err
		}
	}
	return nil
}

// Push implements spec §4.7 push(remote, branch): the "intended" semantics
// documented in §9, where push does copy commits and blobs (the source's
// push only moves the ref; that omission is not reproduced here).
func Push(local *repo.Repository, remoteStore *Store, remoteName, branch string) error {
	remoteRepo, err := openRemote(remoteStore, remoteName)
	if err != nil {
		return err
	}

	head, err := local.HeadCommit()
	if err != nil {
		return err
	}

	if !remoteRepo.Refs.BranchExists(branch) {
		if err := copyAncestry(local.Store, remoteRepo.Store, head.Hash(), nil); err != nil {
			return err
		}
		return remoteRepo.Refs.CreateBranch(branch, head.Hash())
	}

	remoteHead, err := remoteRepo.Refs.GetBranch(branch)
	if err != nil {
		return err
	}

	found := false
	for cur := head; ; {
		if cur.Hash() == remoteHead {
			found = true
			break
		}
		parentOID, ok := cur.Parent()
		if !ok {
			break
		}
		cur, err = local.Store.GetCommit(parentOID)
		if err != nil {
			return err
		}
	}
	if !found {
		return gitleterrors.ErrRemoteAhead
	}

	stopAt := map[string]bool{remoteHead: true}
	if err := copyAncestry(local.Store, remoteRepo.Store, head.Hash(), stopAt); err != nil {
		return err
	}
	return remoteRepo.Refs.SetBranch(branch, head.Hash())
}

// Fetch implements spec §4.7 fetch(remote, branch), with the "intended"
// semantics from §9: fail RemoteMissing when the remote record itself does
// not exist (the source checks the wrong branch of that condition).
func Fetch(local *repo.Repository, remoteStore *Store, remoteName, branch string) error {
	remoteRepo, err := openRemote(remoteStore, remoteName)
	if err != nil {
		return err
	}
	if !remoteRepo.Refs.BranchExists(branch) {
		return gitleterrors.ErrBranchMissing
	}

	head, err := remoteRepo.Refs.GetBranch(branch)
	if err != nil {
		return err
	}
	if err := copyAncestry(remoteRepo.Store, local.Store, head, nil); err != nil {
		return err
	}
	return local.Refs.SetBranch(TrackingBranch(remoteName, branch), head)
}

// Pull implements spec §4.7 pull(remote, branch): fetch followed by a
// merge of the resulting tracking branch into the current branch.
func Pull(local *repo.Repository, remoteStore *Store, remoteName, branch string) (*merge.Result, error) {
	if err := Fetch(local, remoteStore, remoteName, branch); err != nil {
		return nil, err
	}
	return merge.Run(local, TrackingBranch(remoteName, branch))
}

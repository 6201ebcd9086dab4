package repo

import (
	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/internal/objects"
)

// Log walks from HEAD along parent links only (ignoring second parents),
// newest first, per spec §4.5 log.
func (r *Repository) Log() ([]*objects.Commit, error) {
	oid, err := r.Refs.HeadCommit()
	if err != nil {
		return nil, err
	}

	var commits []*objects.Commit
	for {
		commit, err := r.Store.GetCommit(oid)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)

		parent, ok := commit.Parent()
		if !ok {
			break
		}
		oid = parent
	}
	return commits, nil
}

// GlobalLog returns every commit in the object store, unspecified order,
// per spec §4.5 global-log.
func (r *Repository) GlobalLog() ([]*objects.Commit, error) {
	return r.Store.IterCommits()
}

// Find returns the OIDs of every commit whose message equals message.
func (r *Repository) Find(message string) ([]string, error) {
	commits, err := r.Store.IterCommits()
	if err != nil {
		return nil, err
	}

	var oids []string
	for _, c := range commits {
		if c.Message() == message {
			oids = append(oids, c.Hash())
		}
	}
	if len(oids) == 0 {
		return nil, gitleterrors.ErrNoMatch
	}
	return oids, nil
}

package merge

import (
	"log/slog"

	"github.com/mvargas/gitlet-go/internal/objects"
	"github.com/mvargas/gitlet-go/internal/repo"
	"github.com/mvargas/gitlet-go/internal/staging"
)

// applyThreeWay classifies every path appearing in S, H, or G's trees per
// the spec §4.6 table and mutates the working directory and staging area
// accordingly. It reports whether any conflict was hit.
func applyThreeWay(r *repo.Repository, st *staging.Staging, S, H, G *objects.Commit) (bool, error) {
	paths := make(map[string]bool)
	for _, e := range S.Tree() {
		paths[e.Path] = true
	}
	for _, e := range H.Tree() {
		paths[e.Path] = true
	}
	for _, e := range G.Tree() {
		paths[e.Path] = true
	}

	conflicted := false

	for path := range paths {
		sOID, sok := S.Tree().Lookup(path)
		hOID, hok := H.Tree().Lookup(path)
		gOID, gok := G.Tree().Lookup(path)

		action, useOID := classify(sOID, sok, hOID, hok, gOID, gok)

		switch action {
		case actionNoop:
			continue

		case actionWriteG:
			if err := writeAndStage(r, st, path, useOID); err != nil {
				return conflicted, err
			}

		case actionRemove:
			if err := r.Work.Remove(path); err != nil {
				return conflicted, err
			}
			st.StageRm(path)

		case actionConflict:
			if !conflicted {
				slog.Warn("merge conflict encountered", "path", path)
			}
			conflicted = true
			if err := writeConflict(r, st, path, hOID, hok, gOID, gok); err != nil {
				return conflicted, err
			}
		}
	}

	if err := st.Save(); err != nil {
		return conflicted, err
	}
	return conflicted, nil
}

type mergeAction int

const (
	actionNoop mergeAction = iota
	actionWriteG
	actionRemove
	actionConflict
)

// classify implements the spec §4.6 three-way table for one path. Where
// the table leaves a combination unstated (both sides agree, or one side
// is unchanged and the other already deleted), it resolves to no-op:
// nothing in the table ever requires touching a path both sides already
// agree on, so filling those gaps with no-op keeps every explicit row's
// verdict intact.
func classify(sOID string, sok bool, hOID string, hok bool, gOID string, gok bool) (mergeAction, string) {
	if !sok {
		switch {
		case !hok && gok:
			return actionWriteG, gOID
		case hok && !gok:
			return actionNoop, ""
		case hok && gok:
			if hOID == gOID {
				return actionNoop, ""
			}
			return actionConflict, ""
		default:
			return actionNoop, ""
		}
	}

	// sok == true: the path existed at the split point.
	switch {
	case hok && hOID == sOID:
		// H unchanged since the split.
		switch {
		case !gok:
			return actionRemove, ""
		case gOID == sOID:
			return actionNoop, ""
		default:
			return actionWriteG, gOID
		}

	case hok && hOID != sOID:
		// H changed since the split.
		switch {
		case !gok:
			return actionConflict, ""
		case gOID == sOID:
			return actionNoop, ""
		case gOID == hOID:
			return actionNoop, ""
		default:
			return actionConflict, ""
		}

	default:
		// H deleted the path since the split.
		switch {
		case !gok:
			return actionNoop, ""
		case gOID == sOID:
			return actionNoop, ""
		default:
			return actionConflict, ""
		}
	}
}

func writeAndStage(r *repo.Repository, st *staging.Staging, path, oid string) error {
	blob, err := r.Store.GetBlob(oid)
	if err != nil {
		return err
	}
	if err := r.Work.Write(path, blob.Content()); err != nil {
		return err
	}
	st.StageAdd(path, oid)
	return nil
}

// writeConflict writes the conflict-marker block to path and stages the
// result, per spec §4.6: "<<<<<<< HEAD" / H's contents / "=======" / G's
// contents / ">>>>>>>", trailing newline, contents spliced in exactly as
// stored (grounded on the reference implementation's createConflictFile).
func writeConflict(r *repo.Repository, st *staging.Staging, path, hOID string, hok bool, gOID string, gok bool) error {
	content := "<<<<<<< HEAD\n"
	if hok {
		blob, err := r.Store.GetBlob(hOID)
		if err != nil {
			return err
		}
		content += string(blob.Content())
	}
	content += "=======\n"
	if gok {
		blob, err := r.Store.GetBlob(gOID)
		if err != nil {
			return err
		}
		content += string(blob.Content())
	}
	content += ">>>>>>>\n"

	data := []byte(content)
	if err := r.Work.Write(path, data); err != nil {
		return err
	}

	blob := objects.NewBlob(data)
	if err := r.Store.PutBlob(blob); err != nil {
		return err
	}
	st.StageAdd(path, blob.Hash())
	return nil
}

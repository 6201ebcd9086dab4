package repo

import (
	"sort"
	"strings"

	"github.com/mvargas/gitlet-go/internal/objects"
)

// StatusReport is the data behind spec §4.5 status's five sections. The
// core produces this structure; pretty-printing the "=== ... ===" headers
// is the CLI's job (spec §1 puts output formatting out of scope for the
// core).
type StatusReport struct {
	Branches          []BranchEntry
	Staged            []string
	Removed           []string
	ModifiedNotStaged []string
	Untracked         []string
}

type BranchEntry struct {
	Name    string
	Current bool
}

// caseInsensitiveSort sorts s lexicographically, case-insensitively, per
// spec §4.5 / §8 ("status output is lexicographically ordered
// case-insensitively in every section").
func caseInsensitiveSort(s []string) {
	sort.Slice(s, func(i, j int) bool {
		return strings.ToLower(s[i]) < strings.ToLower(s[j])
	})
}

// Status computes the five status sections.
func (r *Repository) Status() (*StatusReport, error) {
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	currentBranch, err := r.HeadBranch()
	if err != nil {
		return nil, err
	}
	branchNames, err := r.Refs.ListBranches()
	if err != nil {
		return nil, err
	}
	st, err := r.LoadStaging()
	if err != nil {
		return nil, err
	}
	workFiles, err := r.Work.ListFiles()
	if err != nil {
		return nil, err
	}

	report := &StatusReport{}

	for _, name := range branchNames {
		report.Branches = append(report.Branches, BranchEntry{Name: name, Current: name == currentBranch})
	}
	sort.Slice(report.Branches, func(i, j int) bool {
		return strings.ToLower(report.Branches[i].Name) < strings.ToLower(report.Branches[j].Name)
	})

	for _, e := range st.Additions() {
		report.Staged = append(report.Staged, e.Path)
	}
	caseInsensitiveSort(report.Staged)

	report.Removed = append(report.Removed, st.Removals()...)
	caseInsensitiveSort(report.Removed)

	blobHashCache := make(map[string]string, len(workFiles))
	workSet := make(map[string]bool, len(workFiles))
	for _, f := range workFiles {
		workSet[f] = true
	}

	diskBlobHash := func(path string) (string, bool) {
		if h, ok := blobHashCache[path]; ok {
			return h, true
		}
		if !workSet[path] {
			return "", false
		}
		data, err := r.Work.Read(path)
		if err != nil {
			return "", false
		}
		h := objects.NewBlob(data).Hash()
		blobHashCache[path] = h
		return h, true
	}

	removedSet := make(map[string]bool, len(report.Removed))
	for _, p := range report.Removed {
		removedSet[p] = true
	}

	candidates := make(map[string]bool)
	for _, e := range st.Additions() {
		candidates[e.Path] = true
	}
	for _, e := range head.Tree() {
		if !removedSet[e.Path] {
			candidates[e.Path] = true
		}
	}

	for path := range candidates {
		addOID, added := st.ContainsAdd(path)
		headOID, tracked := head.Tree().Lookup(path)
		diskOID, onDisk := diskBlobHash(path)

		var status string
		switch {
		case added && !onDisk:
			status = "deleted"
		case added && onDisk && diskOID != addOID:
			status = "modified"
		case !added && tracked && !removedSet[path] && !onDisk:
			status = "deleted"
		case !added && tracked && !removedSet[path] && onDisk && diskOID != headOID:
			status = "modified"
		}
		if status != "" {
			report.ModifiedNotStaged = append(report.ModifiedNotStaged, path+" ("+status+")")
		}
	}
	caseInsensitiveSort(report.ModifiedNotStaged)

	for _, f := range workFiles {
		_, tracked := head.Tree().Lookup(f)
		_, added := st.ContainsAdd(f)
		if !tracked && !added {
			report.Untracked = append(report.Untracked, f)
		}
	}
	caseInsensitiveSort(report.Untracked)

	return report, nil
}

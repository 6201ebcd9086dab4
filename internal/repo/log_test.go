package repo_test

import (
	"testing"

	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/testutils"
)

func TestLog_WalksFirstParentChainOnly(t *testing.T) {
	r := testutils.InitTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "add a")
	commitFile(t, r, "a.txt", "v2", "update a")

	commits, err := r.Log()
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("expected 3 commits (initial + 2), got %d", len(commits))
	}
	if commits[0].Message() != "update a" {
		t.Fatalf("expected newest-first order, got %q first", commits[0].Message())
	}
	if commits[2].Message() != "initial commit" {
		t.Fatalf("expected initial commit last, got %q", commits[2].Message())
	}
}

func TestGlobalLog_IncludesBranchedCommits(t *testing.T) {
	r := testutils.InitTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "add a")
	if err := r.Branch("feature"); err != nil {
		t.Fatalf("Branch failed: %v", err)
	}
	if err := r.CheckoutBranch("feature"); err != nil {
		t.Fatalf("CheckoutBranch failed: %v", err)
	}
	commitFile(t, r, "b.txt", "v1", "add b on feature")

	commits, err := r.GlobalLog()
	if err != nil {
		t.Fatalf("GlobalLog failed: %v", err)
	}
	if len(commits) != 3 {
		t.Fatalf("expected 3 commits total, got %d", len(commits))
	}
}

func TestFind_ReturnsMatchingOIDs(t *testing.T) {
	r := testutils.InitTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "shared message")
	first, err := r.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit failed: %v", err)
	}
	commitFile(t, r, "a.txt", "v2", "shared message")
	second, err := r.HeadCommit()
	if err != nil {
		t.Fatalf("HeadCommit failed: %v", err)
	}

	oids, err := r.Find("shared message")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(oids) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(oids))
	}
	got := map[string]bool{oids[0]: true, oids[1]: true}
	if !got[first.Hash()] || !got[second.Hash()] {
		t.Fatalf("expected both commits in result, got %v", oids)
	}
}

func TestFind_NoMatch(t *testing.T) {
	r := testutils.InitTestRepo(t)
	if _, err := r.Find("nothing matches this"); err != gitleterrors.ErrNoMatch {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

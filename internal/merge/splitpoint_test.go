package merge

import (
	"testing"

	"github.com/mvargas/gitlet-go/internal/objects"
	"github.com/mvargas/gitlet-go/internal/store"
)

func putCommit(t *testing.T, s *store.ObjectStore, message, parent, secondParent string) *objects.Commit {
	t.Helper()
	c := objects.NewCommit(message, "ts", message, nil, parent, secondParent)
	if err := s.PutCommit(c); err != nil {
		t.Fatalf("PutCommit failed: %v", err)
	}
	return c
}

func TestSplitPoint_LinearHistory(t *testing.T) {
	s := store.New(t.TempDir())
	root := putCommit(t, s, "root", "", "")
	a := putCommit(t, s, "a", root.Hash(), "")
	b := putCommit(t, s, "b", a.Hash(), "")

	got, err := splitPoint(s, b.Hash(), a.Hash())
	if err != nil {
		t.Fatalf("splitPoint failed: %v", err)
	}
	if got != a.Hash() {
		t.Fatalf("expected split point %s (a is ancestor of b), got %s", a.Hash(), got)
	}
}

func TestSplitPoint_Diamond(t *testing.T) {
	s := store.New(t.TempDir())
	root := putCommit(t, s, "root", "", "")
	left := putCommit(t, s, "left", root.Hash(), "")
	right := putCommit(t, s, "right", root.Hash(), "")
	h := putCommit(t, s, "h", left.Hash(), "")
	g := putCommit(t, s, "g", right.Hash(), "")

	got, err := splitPoint(s, h.Hash(), g.Hash())
	if err != nil {
		t.Fatalf("splitPoint failed: %v", err)
	}
	if got != root.Hash() {
		t.Fatalf("expected split point %s, got %s", root.Hash(), got)
	}
}

func TestSplitPoint_MergeCommitAncestry(t *testing.T) {
	s := store.New(t.TempDir())
	root := putCommit(t, s, "root", "", "")
	left := putCommit(t, s, "left", root.Hash(), "")
	right := putCommit(t, s, "right", root.Hash(), "")
	merged := putCommit(t, s, "merged", left.Hash(), right.Hash())
	h := putCommit(t, s, "h", merged.Hash(), "")
	g := putCommit(t, s, "g", right.Hash(), "")

	got, err := splitPoint(s, h.Hash(), g.Hash())
	if err != nil {
		t.Fatalf("splitPoint failed: %v", err)
	}
	if got != right.Hash() {
		t.Fatalf("expected split point %s (right is the closer common ancestor), got %s", right.Hash(), got)
	}
}

func TestDistancesFrom_LinearHistory(t *testing.T) {
	s := store.New(t.TempDir())
	root := putCommit(t, s, "root", "", "")
	a := putCommit(t, s, "a", root.Hash(), "")
	b := putCommit(t, s, "b", a.Hash(), "")

	dist, err := distancesFrom(s, b.Hash())
	if err != nil {
		t.Fatalf("distancesFrom failed: %v", err)
	}
	if dist[b.Hash()] != 0 {
		t.Fatalf("expected distance 0 to self, got %d", dist[b.Hash()])
	}
	if dist[a.Hash()] != 1 {
		t.Fatalf("expected distance 1 to a, got %d", dist[a.Hash()])
	}
	if dist[root.Hash()] != 2 {
		t.Fatalf("expected distance 2 to root, got %d", dist[root.Hash()])
	}
}

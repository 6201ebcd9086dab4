package repo_test

import (
	"testing"

	"github.com/mvargas/gitlet-go/internal/gitleterrors"
	"github.com/mvargas/gitlet-go/testutils"
)

func TestAdd_StagesNewFile(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("hello"))

	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	st, err := r.LoadStaging()
	if err != nil {
		t.Fatalf("LoadStaging failed: %v", err)
	}
	if _, ok := st.ContainsAdd("a.txt"); !ok {
		t.Fatal("expected a.txt to be staged for addition")
	}
}

func TestAdd_MissingFile(t *testing.T) {
	r := testutils.InitTestRepo(t)
	if err := r.Add("missing.txt"); err != gitleterrors.ErrFileMissing {
		t.Fatalf("expected ErrFileMissing, got %v", err)
	}
}

func TestAdd_SameAsHeadUnstages(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Commit("add a", ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v2"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add v2 failed: %v", err)
	}
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add back to v1 failed: %v", err)
	}

	st, err := r.LoadStaging()
	if err != nil {
		t.Fatalf("LoadStaging failed: %v", err)
	}
	if _, ok := st.ContainsAdd("a.txt"); ok {
		t.Fatal("expected a.txt to be unstaged once it matches HEAD again")
	}
}

func TestRm_NothingToRemove(t *testing.T) {
	r := testutils.InitTestRepo(t)
	if err := r.Rm("nope.txt"); err != gitleterrors.ErrNothingToRemove {
		t.Fatalf("expected ErrNothingToRemove, got %v", err)
	}
}

func TestRm_TrackedFileDeletesFromWorkdir(t *testing.T) {
	r := testutils.InitTestRepo(t)
	path := testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Commit("add a", ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if err := r.Rm("a.txt"); err != nil {
		t.Fatalf("Rm failed: %v", err)
	}
	testutils.AssertFileNotExists(t, path)

	st, err := r.LoadStaging()
	if err != nil {
		t.Fatalf("LoadStaging failed: %v", err)
	}
	if !st.ContainsRm("a.txt") {
		t.Fatal("expected a.txt to be staged for removal")
	}
}

func TestCommit_EmptyMessage(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Commit("", ""); err != gitleterrors.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestCommit_NoChanges(t *testing.T) {
	r := testutils.InitTestRepo(t)
	if _, err := r.Commit("nothing changed", ""); err != gitleterrors.ErrNoChanges {
		t.Fatalf("expected ErrNoChanges, got %v", err)
	}
}

func TestCommit_BuildsTreeFromParentPlusStaging(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	c1, err := r.Commit("add a", "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, ok := c1.Tree().Lookup("a.txt"); !ok {
		t.Fatal("expected a.txt in first commit's tree")
	}

	testutils.CreateTestFile(t, r.Root, "b.txt", []byte("v1"))
	if err := r.Add("b.txt"); err != nil {
		t.Fatalf("Add b failed: %v", err)
	}
	c2, err := r.Commit("add b", "")
	if err != nil {
		t.Fatalf("second Commit failed: %v", err)
	}
	if _, ok := c2.Tree().Lookup("a.txt"); !ok {
		t.Fatal("expected a.txt to survive into second commit's tree")
	}
	if _, ok := c2.Tree().Lookup("b.txt"); !ok {
		t.Fatal("expected b.txt in second commit's tree")
	}
	parent, ok := c2.Parent()
	if !ok || parent != c1.Hash() {
		t.Fatalf("expected second commit's parent to be %s, got %s", c1.Hash(), parent)
	}
}

func TestCommit_ClearsStaging(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Commit("add a", ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	st, err := r.LoadStaging()
	if err != nil {
		t.Fatalf("LoadStaging failed: %v", err)
	}
	if !st.IsEmpty() {
		t.Fatal("expected staging area to be empty after commit")
	}
}

func TestCommit_MovesBranchRef(t *testing.T) {
	r := testutils.InitTestRepo(t)
	testutils.CreateTestFile(t, r.Root, "a.txt", []byte("v1"))
	if err := r.Add("a.txt"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	c, err := r.Commit("add a", "")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	oid, err := r.Refs.GetBranch("master")
	if err != nil {
		t.Fatalf("GetBranch failed: %v", err)
	}
	if oid != c.Hash() {
		t.Fatalf("expected master to point at %s, got %s", c.Hash(), oid)
	}
}

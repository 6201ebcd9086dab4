package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStageAdd_RemovesFromRemovals(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "index"))
	s.StageRm("a.txt")

	s.StageAdd("a.txt", "deadbeef")

	if s.ContainsRm("a.txt") {
		t.Fatal("expected a.txt to no longer be staged for removal")
	}
	if _, ok := s.ContainsAdd("a.txt"); ok {
		t.Fatal("re-adding after rm should just cancel the rm, not stage an addition")
	}
}

func TestStageAdd_Overwrite(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "index"))
	s.StageAdd("a.txt", "hash1")
	s.StageAdd("a.txt", "hash2")

	oid, ok := s.ContainsAdd("a.txt")
	if !ok || oid != "hash2" {
		t.Fatalf("expected a.txt -> hash2, got %s, %v", oid, ok)
	}
}

func TestStageRm_DropsExistingAddition(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "index"))
	s.StageAdd("a.txt", "hash1")
	s.StageRm("a.txt")

	if _, ok := s.ContainsAdd("a.txt"); ok {
		t.Fatal("expected addition to be dropped once staged for removal")
	}
	if !s.ContainsRm("a.txt") {
		t.Fatal("expected a.txt to be staged for removal")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index")
	s, _ := Load(path)
	s.StageAdd("b.txt", "hash-b")
	s.StageAdd("a.txt", "hash-a")
	s.StageRm("c.txt")

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	additions := reloaded.Additions()
	if len(additions) != 2 || additions[0].Path != "a.txt" || additions[1].Path != "b.txt" {
		t.Fatalf("expected sorted [a.txt, b.txt], got %+v", additions)
	}
	if !reloaded.ContainsRm("c.txt") {
		t.Fatal("expected c.txt to survive round trip as a removal")
	}
}

func TestIsEmpty(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "index"))
	if !s.IsEmpty() {
		t.Fatal("freshly loaded staging area should be empty")
	}
	s.StageAdd("a.txt", "hash")
	if s.IsEmpty() {
		t.Fatal("staging area with an addition should not be empty")
	}
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("staging area should be empty after Clear")
	}
}

// TestSave_WritesReadableYAMLRecord verifies the on-disk file is the plain
// human-diffable YAML record described in the package doc, not an opaque
// encoding — a config-file promise worth checking directly against the
// bytes, the way the reference corpus's config package checks its own
// YAML shape.
func TestSave_WritesReadableYAMLRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index")
	s, err := Load(path)
	require.NoError(t, err)
	s.StageAdd("a.txt", "hash-a")
	s.StageRm("b.txt")
	require.NoError(t, s.Save())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec record
	require.NoError(t, yaml.Unmarshal(raw, &rec))
	require.Len(t, rec.Additions, 1)
	require.Equal(t, "a.txt", rec.Additions[0].Path)
	require.Equal(t, "hash-a", rec.Additions[0].OID)
	require.Equal(t, []string{"b.txt"}, rec.Removals)
}

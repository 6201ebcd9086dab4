// Package testutils holds small helpers shared across this module's test
// files: random OID-shaped strings, scratch repository setup, and
// filesystem assertions, in the style of the reference program's own
// testutils package.
package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/repo"
)

// RandomString generates a random hex string of n bytes.
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1-shaped string, useful
// for tests that need an OID-looking value without computing a real hash.
func RandomHash() string {
	return RandomString(constants.HashHexLength / 2)
}

// InitTestRepo creates a fresh, fully initialized repository in a
// temporary directory and returns its handle.
func InitTestRepo(t *testing.T) *repo.Repository {
	t.Helper()

	dir := t.TempDir()
	r, err := repo.Init(dir)
	if err != nil {
		t.Fatalf("failed to init test repository: %v", err)
	}
	return r
}

// CreateTestFile creates a file with given content in the specified
// directory. Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.MkdirAll(filepath.Dir(filePath), constants.DirPerms); err != nil {
		t.Fatalf("failed to create parent directory for %s: %v", filename, err)
	}
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("failed to create test file %s: %v", filename, err)
	}
	return filePath
}

// AssertFileExists checks that a file exists at the given path.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to NOT exist at %s", path)
	}
}

// AssertDirExists checks that a directory exists at the given path.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it's a file", path)
	}
}

// AssertRepositoryStructure validates the complete .gitlet directory
// layout: refs/, commits/, blobs/, remotes/ and HEAD all exist.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gitletDir := filepath.Join(repoPath, constants.GitletDir)
	AssertDirExists(t, gitletDir)

	expectedDirs := []string{
		constants.RefsDir,
		constants.CommitsDir,
		constants.BlobsDir,
		constants.RemotesDir,
	}
	for _, dir := range expectedDirs {
		AssertDirExists(t, filepath.Join(gitletDir, dir))
	}

	AssertFileExists(t, filepath.Join(gitletDir, constants.HeadFile))
	AssertFileExists(t, filepath.Join(gitletDir, constants.RefsDir, constants.DefaultBranch))
	AssertFileExists(t, filepath.Join(gitletDir, constants.IndexFile))
}

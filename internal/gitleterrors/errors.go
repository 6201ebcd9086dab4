// Package gitleterrors centralizes the closed error taxonomy of spec §7.
// Every sentinel's Error() text is the exact canonical message a caller
// should show the user; operations that wrap an underlying I/O failure do
// so with %w so errors.Is still matches the sentinel.
package gitleterrors

import "errors"

var (
	ErrAlreadyInitialized = errors.New("A Gitlet version-control system already exists in the current directory.")
	ErrFileMissing        = errors.New("File does not exist.")
	ErrNothingToRemove    = errors.New("No reason to remove the file.")
	ErrEmptyMessage       = errors.New("Please enter a commit message.")
	ErrNoChanges          = errors.New("No changes added to the commit.")
	ErrCommitNotFound     = errors.New("No commit with that id exists.")
	ErrFileNotInCommit    = errors.New("File does not exist in that commit.")
	ErrBranchMissing      = errors.New("A branch with that name does not exist.")
	ErrBranchExists       = errors.New("A branch with that name already exists.")
	ErrAlreadyOnBranch    = errors.New("No need to checkout the current branch.")
	ErrCannotRemoveCurrent = errors.New("Cannot remove the current branch.")
	ErrUntrackedOverwrite  = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrNoMatch             = errors.New("Found no commit with that message.")
	ErrUncommittedChanges  = errors.New("You have uncommitted changes.")
	ErrSelfMerge           = errors.New("Cannot merge a branch with itself.")
	ErrAlreadyUpToDate     = errors.New("Given branch is an ancestor of the current branch.")
	ErrFastForwarded       = errors.New("Current branch fast-forwarded.")
	ErrMergeConflict       = errors.New("Encountered a merge conflict.")
	ErrRemoteExists        = errors.New("A remote with that name already exists.")
	ErrRemoteMissing       = errors.New("A remote with that name does not exist.")
	ErrRemoteDirNotFound   = errors.New("Remote directory not found.")
	ErrRemoteAhead         = errors.New("Please pull down remote changes before pushing.")
	ErrObjectNotFound      = errors.New("object not found")
	ErrAmbiguous           = errors.New("ambiguous commit id")
	ErrNotInitialized      = errors.New("Not in an initialized Gitlet directory.")
)

package cmd

import (
	"io"

	"github.com/mvargas/gitlet-go/internal/constants"
	"github.com/mvargas/gitlet-go/internal/objects"
	"github.com/mvargas/gitlet-go/internal/repo"
)

// printCommitBlock writes one log/global-log block, per spec §4.5: a "==="
// separator before every block (including the first), the commit header
// lines, and a trailing blank line after every block (including the
// last).
func printCommitBlock(w io.Writer, c *objects.Commit) {
	io.WriteString(w, "===\n")
	io.WriteString(w, "commit "+c.Hash()+"\n")
	if second, ok := c.SecondParent(); ok {
		parent, _ := c.Parent()
		io.WriteString(w, "Merge: "+parent[:7]+" "+second[:7]+"\n")
	}
	io.WriteString(w, "Date: "+c.Timestamp()+" "+constants.TimezoneSuffix+"\n")
	io.WriteString(w, c.Message()+"\n")
	io.WriteString(w, "\n")
}

// printStatus renders the five fixed status sections in spec §4.5's exact
// order and header text.
func printStatus(w io.Writer, report *repo.StatusReport) {
	io.WriteString(w, "=== Branches ===\n")
	for _, b := range report.Branches {
		if b.Current {
			io.WriteString(w, "*"+b.Name+"\n")
		} else {
			io.WriteString(w, b.Name+"\n")
		}
	}
	io.WriteString(w, "\n=== Staged Files ===\n")
	for _, p := range report.Staged {
		io.WriteString(w, p+"\n")
	}
	io.WriteString(w, "\n=== Removed Files ===\n")
	for _, p := range report.Removed {
		io.WriteString(w, p+"\n")
	}
	io.WriteString(w, "\n=== Modifications Not Staged For Commit ===\n")
	for _, p := range report.ModifiedNotStaged {
		io.WriteString(w, p+"\n")
	}
	io.WriteString(w, "\n=== Untracked Files ===\n")
	for _, p := range report.Untracked {
		io.WriteString(w, p+"\n")
	}
}

package constants

import "os"

// Repository directory and file names define the on-disk .gitlet layout (see
// spec §6). All paths are relative to the repository root unless noted.
const (
	// GitletDir is the repository metadata directory.
	GitletDir = ".gitlet"

	// IndexFile holds the serialized staging area.
	IndexFile = "index"

	// HeadFile holds the absolute path of the active branch's ref file.
	HeadFile = "HEAD"

	// RefsDir holds one file per branch, named after the branch (nested for
	// remote-tracking branches: refs/<remote>/<branch>).
	RefsDir = "refs"

	// CommitsDir holds one file per commit, named by commit OID.
	CommitsDir = "commits"

	// BlobsDir holds one file per blob, named by blob OID.
	BlobsDir = "blobs"

	// RemotesDir holds one file per remote, named after the remote.
	RemotesDir = "remotes"
)

// DefaultBranch is the branch created by init and pointed to by HEAD.
const DefaultBranch = "master"

// InitialCommitMessage is the message of the commit created by init.
const InitialCommitMessage = "initial commit"

// InitialCommitTimestamp is the fixed epoch timestamp used only by the
// commit created by init (spec §3).
const InitialCommitTimestamp = "Thu Jan 01 00:00:00 1970"

// TimestampLayout is the Go reference-time layout matching spec §3's
// "E MMM dd HH:mm:ss yyyy" pattern.
const TimestampLayout = "Mon Jan 02 15:04:05 2006"

// TimezoneSuffix is appended (never computed from the actual offset) when a
// timestamp is displayed, per spec §3 and §4.5.
const TimezoneSuffix = "-0800"

// File system permissions for created files and directories.
const (
	DirPerms  os.FileMode = 0755
	FilePerms os.FileMode = 0644
)

// HashHexLength is the length in hex characters of a SHA-1 OID.
const HashHexLength = 40

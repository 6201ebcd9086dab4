package objects

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"sort"
)

// TreeEntry is one path -> blob OID mapping inside a commit's tree.
type TreeEntry struct {
	Path string
	OID  string
}

// Tree is a commit's ordered path->OID mapping (spec §3). Unlike Git, this
// VCS has no separate, independently-hashed tree object: the tree is just
// part of the commit's own encoding, always kept sorted by path.
type Tree []TreeEntry

// NewTree builds a Tree from an unordered map, sorted lexicographically by
// path so the encoding (and therefore the commit hash) is stable.
func NewTree(entries map[string]string) Tree {
	t := make(Tree, 0, len(entries))
	for path, oid := range entries {
		t = append(t, TreeEntry{Path: path, OID: oid})
	}
	sort.Slice(t, func(i, j int) bool { return t[i].Path < t[j].Path })
	return t
}

// Lookup returns the OID tracked at path, if any.
func (t Tree) Lookup(path string) (string, bool) {
	for _, e := range t {
		if e.Path == path {
			return e.OID, true
		}
	}
	return "", false
}

// Map returns the tree as a plain map, discarding order.
func (t Tree) Map() map[string]string {
	m := make(map[string]string, len(t))
	for _, e := range t {
		m[e.Path] = e.OID
	}
	return m
}

// Commit is an immutable snapshot (spec §3). parent and secondParent are
// empty strings when absent.
type Commit struct {
	hash         string
	message      string
	timestamp    string
	nonce        string
	tree         Tree
	parent       string
	secondParent string
}

// NewCommit constructs a commit and computes its hash. secondParent may be
// "" for a non-merge commit. Per spec §3, the hash input deliberately
// excludes secondParent — only message, timestamp, nonce, tree and parent
// participate in the digest.
func NewCommit(message, timestamp, nonce string, tree Tree, parent, secondParent string) *Commit {
	sorted := make(Tree, len(tree))
	copy(sorted, tree)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	return &Commit{
		hash:         computeCommitHash(message, timestamp, nonce, sorted, parent),
		message:      message,
		timestamp:    timestamp,
		nonce:        nonce,
		tree:         sorted,
		parent:       parent,
		secondParent: secondParent,
	}
}

func computeCommitHash(message, timestamp, nonce string, tree Tree, parent string) string {
	var buf bytes.Buffer
	writeString(&buf, message)
	writeString(&buf, timestamp)
	writeString(&buf, nonce)
	writeUint32(&buf, uint32(len(tree)))
	for _, e := range tree {
		writeString(&buf, e.Path)
		writeString(&buf, e.OID)
	}
	writeString(&buf, parent)

	sum := sha1.Sum(buf.Bytes())
	return fmt.Sprintf("%x", sum)
}

func (c *Commit) Hash() string      { return c.hash }
func (c *Commit) Message() string   { return c.message }
func (c *Commit) Timestamp() string { return c.timestamp }
func (c *Commit) Nonce() string     { return c.nonce }
func (c *Commit) Tree() Tree        { return c.tree }

// Parent returns the parent OID and whether one exists.
func (c *Commit) Parent() (string, bool) {
	if c.parent == "" {
		return "", false
	}
	return c.parent, true
}

// SecondParent returns the second parent OID and whether this is a merge
// commit.
func (c *Commit) SecondParent() (string, bool) {
	if c.secondParent == "" {
		return "", false
	}
	return c.secondParent, true
}

func (c *Commit) IsInitial() bool { return c.parent == "" }
func (c *Commit) IsMerge() bool   { return c.secondParent != "" }

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{hash: %s, message: %q, parent: %s, secondParent: %s}",
		c.hash, c.message, c.parent, c.secondParent)
}

// Encode serializes the full commit record (including secondParent, which
// the hash input omits) for on-disk storage. Spec §6 calls this the
// commit-file format: a binary encoding that round-trips within one
// repository's lifetime.
func (c *Commit) Encode() []byte {
	var buf bytes.Buffer
	writeString(&buf, c.message)
	writeString(&buf, c.timestamp)
	writeString(&buf, c.nonce)
	writeUint32(&buf, uint32(len(c.tree)))
	for _, e := range c.tree {
		writeString(&buf, e.Path)
		writeString(&buf, e.OID)
	}
	writeString(&buf, c.parent)
	writeString(&buf, c.secondParent)
	return buf.Bytes()
}

// DecodeCommit reconstructs a Commit from Encode's output and recomputes
// its hash, so a corrupted or tampered record is caught by the caller
// comparing the result's Hash() to the OID it was read under.
func DecodeCommit(data []byte) (*Commit, error) {
	r := bytes.NewReader(data)

	message, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit message: %w", err)
	}
	timestamp, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit timestamp: %w", err)
	}
	nonce, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit nonce: %w", err)
	}
	entryCount, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit tree size: %w", err)
	}

	tree := make(Tree, 0, entryCount)
	for i := uint32(0); i < entryCount; i++ {
		path, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tree entry path: %w", err)
		}
		oid, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tree entry oid: %w", err)
		}
		tree = append(tree, TreeEntry{Path: path, OID: oid})
	}

	parent, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit parent: %w", err)
	}
	secondParent, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode commit second parent: %w", err)
	}

	return NewCommit(message, timestamp, nonce, tree, parent, secondParent), nil
}

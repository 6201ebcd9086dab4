package objects

import (
	"crypto/sha1"
	"fmt"
)

// Blob is an immutable, uninterpreted byte sequence. Its OID is the SHA-1
// of its raw bytes only — unlike the commit encoder, the blob encoder adds
// no header (spec §3, §4.1).
type Blob struct {
	content []byte
	hash    string
}

// NewBlob computes a blob's OID from its content.
func NewBlob(content []byte) *Blob {
	sum := sha1.Sum(content)
	return &Blob{
		content: content,
		hash:    fmt.Sprintf("%x", sum),
	}
}

func (b *Blob) Hash() string    { return b.hash }
func (b *Blob) Content() []byte { return b.content }
func (b *Blob) Size() int       { return len(b.content) }

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.hash, b.Size())
}

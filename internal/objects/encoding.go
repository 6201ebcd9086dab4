package objects

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// writeString writes a length-prefixed UTF-8 string: a big-endian uint32
// byte count followed by the raw bytes. Used by both the commit hash-input
// encoder and the full commit storage encoder so that fields with embedded
// separators (newlines in a commit message, for instance) never corrupt
// the framing.
func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.BigEndian, uint32(len(s)))
	buf.WriteString(s)
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

func writeUint32(buf *bytes.Buffer, n uint32) {
	binary.Write(buf, binary.BigEndian, n)
}

func readUint32(r io.Reader) (uint32, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, fmt.Errorf("failed to read length prefix: %w", err)
	}
	return n, nil
}

package header

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel terminates the ASCII header.
const Sentinel = "#End Of ASCII Header\r\n"

// MaxRaw bounds how much header text is retained in Header.Raw.  Scanning
// itself is not bounded.
const MaxRaw = 64 << 10

const versionPrefix = "#!AER-DAT"

// Header describes the ASCII header of an AER data file.
type Header struct {
	// Raw is the header text preceding the sentinel, truncated to MaxRaw bytes.
	Raw []byte
	// Size is the number of bytes up to and including the sentinel, which
	// is the offset of the first record.
	Size int64
}

// Scan reads from r until just past the header sentinel.  If r is
// exhausted first, the returned error wraps ErrNotFound.
func Scan(r io.ByteReader) (*Header, error) {
	m := newMatcher(Sentinel)
	h := &Header{}
	var raw []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w after %d bytes", ErrNotFound, h.Size)
			}
			return nil, err
		}
		h.Size++
		if len(raw) < MaxRaw {
			raw = append(raw, c)
		}
		if m.feed(c) {
			break
		}
	}
	h.Raw = raw[:min(int64(len(raw)), h.Size-int64(len(Sentinel)))]
	return h, nil
}

// Lines returns the header text split into lines, without line terminators.
func (h *Header) Lines() []string {
	text := strings.TrimRight(string(h.Raw), "\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// Version returns the format version declared by a leading "#!AER-DAT"
// line, or "" if there is none.
func (h *Header) Version() string {
	lines := h.Lines()
	if len(lines) == 0 || !strings.HasPrefix(lines[0], versionPrefix) {
		return ""
	}
	return strings.TrimSpace(lines[0][len(versionPrefix):])
}

package header

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scanString(t *testing.T, s string) (*Header, *bufio.Reader, error) {
	t.Helper()
	br := bufio.NewReader(strings.NewReader(s))
	h, err := Scan(br)
	return h, br, err
}

func TestScan(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"plain", "#!AER-DAT2.0\r\n# This is a raw AE data file\r\n"},
		{"partial before", "# junk #End Of ASCII Head"},
		{"double hash", "##"},
		{"partial then restart", "#End Of ASCII Header\r#End Of ASCII"},
		{"binary", "\x00\xff#E#En#End\r\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, br, err := scanString(t, c.header+Sentinel+"\x01\x02")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := int64(len(c.header) + len(Sentinel))
			if h.Size != want {
				t.Errorf("expected size %d, got %d", want, h.Size)
			}
			if string(h.Raw) != c.header {
				t.Errorf("expected raw %q, got %q", c.header, h.Raw)
			}
			rest, _ := io.ReadAll(br)
			if string(rest) != "\x01\x02" {
				t.Errorf("expected cursor at first record, remaining %q", rest)
			}
		})
	}
}

func TestScanFirstSentinelWins(t *testing.T) {
	h, br, err := scanString(t, "#a\r\n"+Sentinel+Sentinel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Size != int64(4+len(Sentinel)) {
		t.Errorf("expected first sentinel, got size %d", h.Size)
	}
	rest, _ := io.ReadAll(br)
	if string(rest) != Sentinel {
		t.Errorf("expected second sentinel left unread, got %q", rest)
	}
}

func TestScanNotFound(t *testing.T) {
	for _, s := range []string{"", "#End Of ASCII Header\n", "#End Of ASCII Header\r"} {
		_, _, err := scanString(t, s)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%q: expected ErrNotFound, got %v", s, err)
		}
	}
}

type failReader struct{ err error }

func (f failReader) ReadByte() (byte, error) { return 0, f.err }

func TestScanReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Scan(failReader{boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected read error, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("read error should not be reported as ErrNotFound")
	}
}

func TestScanRawTruncated(t *testing.T) {
	text := strings.Repeat("#", MaxRaw+10)
	h, _, err := scanString(t, text+Sentinel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Raw) != MaxRaw {
		t.Errorf("expected %d raw bytes, got %d", MaxRaw, len(h.Raw))
	}
	if h.Size != int64(len(text)+len(Sentinel)) {
		t.Errorf("unexpected size %d", h.Size)
	}
}

func TestLinesAndVersion(t *testing.T) {
	h, _, err := scanString(t, "#!AER-DAT2.0\r\n# created by jAER\r\n#\r\n"+Sentinel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"#!AER-DAT2.0", "# created by jAER", "#"}
	if diff := cmp.Diff(want, h.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if v := h.Version(); v != "2.0" {
		t.Errorf("expected version 2.0, got %q", v)
	}

	h = &Header{Raw: []byte("# no version\n")}
	if v := h.Version(); v != "" {
		t.Errorf("expected no version, got %q", v)
	}
	if n := len((&Header{}).Lines()); n != 0 {
		t.Errorf("expected no lines, got %d", n)
	}
}

func TestMatcherFallback(t *testing.T) {
	m := newMatcher("aab")
	hits := 0
	for _, c := range []byte("aaab") {
		if m.feed(c) {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("expected overlapping prefix to match once, got %d", hits)
	}
}

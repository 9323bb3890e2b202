package format

import (
	"bytes"
	"errors"
	"testing"
)

type report struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestString(t *testing.T) {
	for f, want := range map[Format]string{TextFormat: "text", YAMLFormat: "yaml", JSONFormat: "json", Format(9): "<format 9>"} {
		if got := f.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestEncode(t *testing.T) {
	r := report{Name: "rec", Count: 3}
	var buf bytes.Buffer
	if err := Encode(&buf, r, JSONFormat); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\n  \"name\": \"rec\",\n  \"count\": 3\n}\n" {
		t.Errorf("unexpected json %q", got)
	}
	buf.Reset()
	if err := Encode(&buf, r, YAMLFormat); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "name: rec\ncount: 3\n" {
		t.Errorf("unexpected yaml %q", got)
	}
	if err := Encode(&buf, r, TextFormat); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat for text, got %v", err)
	}
}

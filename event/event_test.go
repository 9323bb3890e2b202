package event_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/internal/aertest"
)

func TestDecodeAddressRoundTrip(t *testing.T) {
	xs := []uint16{0, 1, 239, 512, 1023}
	ys := []uint16{0, 1, 179, 256, 511}
	for _, x := range xs {
		for _, y := range ys {
			for _, special := range []bool{false, true} {
				for _, pol := range []bool{false, true} {
					got, err := event.DecodeAddress(aertest.Address(special, pol, x, y))
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					want := event.Event{Special: special, Polarity: pol, X: x, Y: y}
					if got != want {
						t.Errorf("expected %+v, got %+v", want, got)
					}
				}
			}
		}
	}
}

func TestDecodeUnsupportedType(t *testing.T) {
	addr := uint32(1<<31) | aertest.Address(false, true, 3, 4)
	_, err := event.Decode(aertest.Record(addr, 10), event.Signed)
	if !errors.Is(err, event.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	var te *event.TypeError
	if !errors.As(err, &te) || te.Addr != addr {
		t.Errorf("expected TypeError with address %#x, got %v", addr, err)
	}
}

func TestDecodeTimestampMode(t *testing.T) {
	rec := aertest.Record(0, 0xfffffffe)
	ev, err := event.Decode(rec, event.Signed)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Timestamp != -2 {
		t.Errorf("signed: expected -2, got %d", ev.Timestamp)
	}
	ev, err = event.Decode(rec, event.Unsigned)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Timestamp != 0xfffffffe {
		t.Errorf("unsigned: expected %d, got %d", uint32(0xfffffffe), ev.Timestamp)
	}
}

func TestParseTimestampMode(t *testing.T) {
	for in, want := range map[string]event.TimestampMode{"signed": event.Signed, "u": event.Unsigned} {
		got, err := event.ParseTimestampMode(in)
		if err != nil || got != want {
			t.Errorf("%q: expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := event.ParseTimestampMode("float"); !errors.Is(err, event.ErrBadTimestampMode) {
		t.Errorf("expected ErrBadTimestampMode, got %v", err)
	}
}

func TestDecoder(t *testing.T) {
	want := []event.Event{
		{Timestamp: 1, Polarity: true, X: 10, Y: 20},
		{Timestamp: 2, Special: true},
		{Timestamp: 3, X: 1023, Y: 511},
	}
	var buf bytes.Buffer
	for _, e := range want {
		buf.Write(aertest.Record(aertest.Address(e.Special, e.Polarity, e.X, e.Y), uint32(e.Timestamp)))
	}
	dec := event.NewDecoder(&buf)
	var got []event.Event
	for {
		e, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, e)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderShortRead(t *testing.T) {
	rec := aertest.Record(aertest.Address(false, true, 1, 1), 5)
	for n := 1; n < event.RecordSize; n++ {
		dec := event.NewDecoder(bytes.NewReader(rec[:n]))
		_, err := dec.Decode()
		if !errors.Is(err, event.ErrShortRead) {
			t.Errorf("%d bytes: expected ErrShortRead, got %v", n, err)
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Errorf("%d bytes: expected ErrShortRead to wrap io.ErrUnexpectedEOF", n)
		}
	}
}

func TestDecoderContinuesAfterTypeError(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(aertest.Record(1<<31, 1))
	buf.Write(aertest.Record(aertest.Address(false, true, 7, 8), 2))
	dec := event.NewDecoder(&buf, event.DecodeTimestamps(event.Unsigned))
	if dec.Mode() != event.Unsigned {
		t.Errorf("expected unsigned mode, got %v", dec.Mode())
	}
	if _, err := dec.Decode(); !errors.Is(err, event.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	e, err := dec.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.X != 7 || e.Y != 8 || e.Timestamp != 2 {
		t.Errorf("unexpected event %v", e)
	}
}

func TestPredicates(t *testing.T) {
	special := event.Event{Special: true}
	on := event.Event{Polarity: true}
	off := event.Event{}
	cases := []struct {
		name string
		p    event.Predicate
		want [3]bool
	}{
		{"special", event.IsSpecial, [3]bool{true, false, false}},
		{"addressed", event.IsAddressed, [3]bool{false, true, true}},
		{"on", event.IsOn, [3]bool{false, true, false}},
		{"off", event.IsOff, [3]bool{true, false, true}},
		{"addressed on", event.And(event.IsAddressed, event.IsOn), [3]bool{false, true, false}},
		{"special or on", event.Or(event.IsSpecial, event.IsOn), [3]bool{true, true, false}},
		{"not special", event.Not(event.IsSpecial), [3]bool{false, true, true}},
	}
	for _, c := range cases {
		got := [3]bool{c.p(special), c.p(on), c.p(off)}
		if got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestEventString(t *testing.T) {
	e := event.Event{Timestamp: 42, Polarity: true, X: 3, Y: 4}
	if s := e.String(); s != "42 on (3,4)" {
		t.Errorf("unexpected %q", s)
	}
}

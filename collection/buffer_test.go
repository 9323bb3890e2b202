package collection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBufferAppendGrows(t *testing.T) {
	b := NewBuffer(0)
	if b.Cap() != 0 {
		t.Fatalf("expected capacity 0, got %d", b.Cap())
	}
	es := seq(0, 3000)
	caps := map[int]bool{}
	for _, e := range es {
		b.Append(e)
		caps[b.Cap()] = true
		checkLockstep(t, b.cols)
	}
	if diff := cmp.Diff(map[int]bool{1024: true, 2048: true, 4096: true}, caps); diff != "" {
		t.Errorf("unexpected growth sequence (-want +got):\n%s", diff)
	}
	if b.Len() != len(es) {
		t.Fatalf("expected len %d, got %d", len(es), b.Len())
	}
	c := b.Events()
	checkLockstep(t, c)
	if c.Len() != len(es) {
		t.Errorf("expected fitted length %d, got %d", len(es), c.Len())
	}
	if diff := cmp.Diff(es, c.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if b.Len() != 0 || b.Cap() != 0 {
		t.Errorf("expected buffer emptied after Events, got len %d cap %d", b.Len(), b.Cap())
	}
}

func TestBufferDoubles(t *testing.T) {
	b := NewBuffer(3)
	for _, e := range seq(0, 4) {
		b.Append(e)
	}
	if b.Cap() != minGrow {
		t.Errorf("expected small capacity to grow to %d, got %d", minGrow, b.Cap())
	}
	b = NewBuffer(2000)
	for _, e := range seq(0, 2001) {
		b.Append(e)
	}
	if b.Cap() != 4000 {
		t.Errorf("expected doubled capacity 4000, got %d", b.Cap())
	}
}

func TestBufferSet(t *testing.T) {
	b := NewBuffer(2)
	es := seq(0, 3)
	b.Set(1, es[1])
	if b.Len() != 2 {
		t.Errorf("expected len 2, got %d", b.Len())
	}
	b.Set(0, es[0])
	if b.Len() != 2 {
		t.Errorf("expected len to stay 2, got %d", b.Len())
	}
	b.Set(2, es[2])
	if b.Len() != 3 || b.Cap() < 3 {
		t.Errorf("expected growth at capacity, got len %d cap %d", b.Len(), b.Cap())
	}
	if diff := cmp.Diff(es, b.Events().Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestBufferSetBeyondCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewBuffer(2).Set(3, seq(0, 1)[0])
}

func TestBufferFit(t *testing.T) {
	b := NewBuffer(100)
	for _, e := range seq(0, 10) {
		b.Append(e)
	}
	b.Fit(4)
	if b.Len() != 4 || b.Cap() != 4 {
		t.Fatalf("expected len and cap 4, got %d and %d", b.Len(), b.Cap())
	}
	checkLockstep(t, b.cols)
	if diff := cmp.Diff(seq(0, 4), b.Events().Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBufferDefault(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates the default capacity")
	}
	if c := NewBuffer(-1).Cap(); c != DefaultCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultCapacity, c)
	}
}

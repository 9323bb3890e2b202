// Package filter compiles event predicates from expressions.
//
// Expressions are evaluated with github.com/expr-lang/expr against one
// event, with the variables
//
//	t        timestamp in ticks
//	special  special marker event
//	on, off  polarity of the event
//	x, y     pixel coordinates
//
// and the functions ms(n) and sec(n), which convert to ticks.  For
// example
//
//	special && t > sec(2)
//	!special && on && x < 120
package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/aedat/event"
)

var ErrFilter = errors.New("filter error")

// Env is the evaluation environment of an expression.
type Env struct {
	T       int64 `expr:"t"`
	Special bool  `expr:"special"`
	On      bool  `expr:"on"`
	Off     bool  `expr:"off"`
	X       int   `expr:"x"`
	Y       int   `expr:"y"`
}

func envOf(e event.Event) Env {
	return Env{
		T:       e.Timestamp,
		Special: e.Special,
		On:      e.Polarity,
		Off:     !e.Polarity,
		X:       int(e.X),
		Y:       int(e.Y),
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("ms", func(params ...any) (any, error) {
			return params[0].(int) * event.TicksPerMillisecond, nil
		},
			new(func(int) int)),
		expr.Function("sec", func(params ...any) (any, error) {
			return params[0].(int) * event.TicksPerSecond, nil
		},
			new(func(int) int)),
	}
}

// Filter is a compiled expression.  Match is not safe for concurrent use;
// each predicate from Predicate carries its own evaluation state.
type Filter struct {
	src  string
	prog *vm.Program
	vm   vm.VM
}

// Compile compiles src.  Errors wrap ErrFilter.
func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates the expression on e.
func (f *Filter) Match(e event.Event) (bool, error) {
	return f.match(&f.vm, e)
}

func (f *Filter) match(m *vm.VM, e event.Event) (bool, error) {
	out, err := m.Run(f.prog, envOf(e))
	if err != nil {
		return false, fmt.Errorf("%w: %q at %v: %w", ErrFilter, f.src, e, err)
	}
	return out.(bool), nil
}

// Predicate adapts f to an event.Predicate.  The returned error func
// reports the first evaluation error; after one, the predicate is false
// for every event.  f is left untouched, so predicates from one Filter
// are independent.
func (f *Filter) Predicate() (event.Predicate, func() error) {
	var (
		m   vm.VM
		err error
	)
	p := func(e event.Event) bool {
		if err != nil {
			return false
		}
		ok, mErr := f.match(&m, e)
		if mErr != nil {
			err = mErr
			return false
		}
		return ok
	}
	return p, func() error { return err }
}

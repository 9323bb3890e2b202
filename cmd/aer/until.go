package main

import (
	"fmt"

	"github.com/signadot/aedat"
	"github.com/signadot/aedat/filter"
	"github.com/signadot/aedat/format"

	"github.com/scott-cotton/cli"
)

func until(cfg *UntilConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Until.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: until requires 1 file, got %v", cli.ErrUsage, args)
	}
	if cfg.Interval < 0 {
		return fmt.Errorf("%w: -interval must not be negative", cli.ErrUsage)
	}
	when := cfg.When
	if when == "" {
		when = "special"
	}
	flt, err := filter.Compile(when)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := args[0]
	src, err := aedat.Open(file, cfg.sourceOpts()...)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer src.Close()

	pred, perr := flt.Predicate()
	status, evs, err := src.ReadUntil(pred, cfg.ticks())
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	if err := perr(); err != nil {
		return fmt.Errorf("error evaluating -when on %s: %w", file, err)
	}
	r := &untilReport{
		File:    file,
		Status:  status.String(),
		Events:  evs.Len(),
		Elapsed: evs.Stats().Duration,
	}
	if status == aedat.Triggered {
		rec := recordOf(evs.At(evs.Len() - 1))
		r.Trigger = &rec
	}

	f := cfg.format()
	if !f.IsText() {
		return format.Encode(cc.Out, r, f)
	}
	p := newPainter(cfg.colors(cc.Out))
	if cfg.Events {
		if err := writeEvents(cc.Out, evs, p); err != nil {
			return err
		}
	}
	return writeUntil(cc.Out, r, p)
}

package main

import (
	"fmt"
	"io"

	"github.com/signadot/aedat"
	"github.com/signadot/aedat/collection"
	"github.com/signadot/aedat/filter"
	"github.com/signadot/aedat/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: dump requires at least one file", cli.ErrUsage)
	}
	if cfg.N < 0 {
		return fmt.Errorf("%w: -n must not be negative", cli.ErrUsage)
	}
	var flt *filter.Filter
	if cfg.Where != "" {
		flt, err = filter.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc.Out, file, flt); err != nil {
			return err
		}
	}
	return nil
}

// readEvents reads all events of src, or at most n if n > 0.
func readEvents(src *aedat.Source, n int) (*collection.Events, error) {
	if n == 0 {
		return src.ReadAll()
	}
	_, evs, err := src.ReadN(n)
	return evs, err
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string, flt *filter.Filter) error {
	src, err := aedat.Open(file, cfg.sourceOpts()...)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer src.Close()
	evs, err := readEvents(src, cfg.N)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	if flt != nil {
		p, perr := flt.Predicate()
		evs = evs.Filter(p)
		if err := perr(); err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
	}
	f := cfg.format()
	if !f.IsText() {
		return format.Encode(w, records(evs), f)
	}
	return writeEvents(w, evs, newPainter(cfg.colors(w)))
}

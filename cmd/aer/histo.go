package main

import (
	"fmt"

	"github.com/signadot/aedat"
	"github.com/signadot/aedat/format"
	"github.com/signadot/aedat/histogram"

	"github.com/scott-cotton/cli"
)

func histo(cfg *HistoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Histo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: histo requires 1 file, got %v", cli.ErrUsage, args)
	}
	xdim, ydim := cfg.XDim, cfg.YDim
	if xdim == 0 {
		xdim = histogram.DefaultXDim
	}
	if ydim == 0 {
		ydim = histogram.DefaultYDim
	}
	on, off := cfg.On, cfg.Off
	if !on && !off {
		on, off = true, true
	}
	var hOpts []histogram.Option
	if cfg.Drop {
		hOpts = append(hOpts, histogram.DropOutOfRange())
	}

	file := args[0]
	_, evs, err := aedat.ReadFile(file, cfg.sourceOpts()...)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	g, err := histogram.Compute(evs, xdim, ydim, on, off, hOpts...)
	if err != nil {
		return fmt.Errorf("error computing histogram of %s: %w", file, err)
	}
	f := cfg.format()
	if !f.IsText() {
		return format.Encode(cc.Out, histoReportOf(g), f)
	}
	return writeGrid(cc.Out, g)
}

package main

import (
	"fmt"

	"github.com/signadot/aedat"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 files, got %v", cli.ErrUsage, args)
	}
	var texts [2]string
	for i, file := range args {
		_, evs, err := aedat.ReadFile(file, cfg.sourceOpts()...)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		texts[i] = listing(evs)
	}
	changed, err := writeDiff(cc.Out, diffListings(texts[0], texts[1]), newPainter(cfg.colors(cc.Out)))
	if err != nil {
		return err
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/signadot/aedat"
	"github.com/signadot/aedat/format"

	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info requires at least one file", cli.ErrUsage)
	}
	reports := make([]*infoReport, 0, len(args))
	for _, file := range args {
		r, err := infoFile(cfg, file)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}
	f := cfg.format()
	if !f.IsText() {
		return format.Encode(cc.Out, reports, f)
	}
	p := newPainter(cfg.colors(cc.Out))
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := writeInfo(cc.Out, r, p); err != nil {
			return err
		}
	}
	return nil
}

func infoFile(cfg *InfoConfig, file string) (*infoReport, error) {
	src, err := aedat.Open(file, cfg.sourceOpts()...)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer src.Close()
	evs, err := src.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	h := src.Header()
	r := &infoReport{
		File:       file,
		Version:    h.Version(),
		HeaderSize: h.Size,
		Skipped:    src.Skipped(),
		Events:     evs.Stats(),
	}
	if cfg.Lines {
		r.Header = h.Lines()
	}
	return r, nil
}

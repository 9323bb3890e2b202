package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "aer").
		WithSynopsis("aer [opts] command [opts]").
		WithDescription("aer inspects AER data files recorded by event-based vision sensors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return aerMain(cfg, cc, args)
		}).
		WithSubs(
			InfoCommand(cfg),
			DumpCommand(cfg),
			UntilCommand(cfg),
			HistoCommand(cfg),
			DiffCommand(cfg))
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info [-l] files").
		WithDescription("summarize the header and events of files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-n count] [-where expr] files").
		WithDescription("list the events of files, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func UntilCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UntilConfig{MainConfig: mainCfg, Interval: time.Second}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "interval",
		Description: "debounce interval (default 1s)",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkInterval()), "(duration)"),
	})
	return cli.NewCommandAt(&cfg.Until, "until").
		WithAliases("u").
		WithSynopsis("until [-when expr] [-interval dur] file").
		WithDescription("read a file until an event matching -when occurs at least -interval after the previous match").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return until(cfg, cc, args)
		})
}

func HistoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HistoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Histo, "histo").
		WithAliases("h").
		WithSynopsis("histo [-xdim n] [-ydim n] [-on] [-off] [-drop] file").
		WithDescription("count addressed events per pixel; without -on or -off both are counted").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return histo(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff file1 file2").
		WithDescription("compare the events of two files, exiting 1 if they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

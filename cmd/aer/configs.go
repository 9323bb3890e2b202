package main

import (
	"io"
	"os"
	"time"

	"github.com/signadot/aedat"
	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='color text output'"`
	J        bool `cli:"name=j aliases=json desc='output json'"`
	Y        bool `cli:"name=y aliases=yaml desc='output yaml'"`
	Unsigned bool `cli:"name=unsigned desc='decode timestamps as unsigned'"`
	Skip     bool `cli:"name=skip desc='skip records of unsupported event types'"`
	Gops     bool `cli:"name=gops desc='run a gops diagnostics agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) format() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	default:
		return format.TextFormat
	}
}

func (cfg *MainConfig) sourceOpts() []aedat.Option {
	res := []aedat.Option{}
	if cfg.Unsigned {
		res = append(res, aedat.WithTimestampMode(event.Unsigned))
	}
	if cfg.Skip {
		res = append(res, aedat.SkipUnsupported())
	}
	return res
}

// colors reports whether text written to w should be colored: as
// requested by -color, or else when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type InfoConfig struct {
	*MainConfig
	Lines bool `cli:"name=l aliases=lines desc='include header lines'"`

	Info *cli.Command
}

type DumpConfig struct {
	*MainConfig
	N     int    `cli:"name=n desc='read at most n events per file'"`
	Where string `cli:"name=where desc='only show events matching an expression'"`

	Dump *cli.Command
}

type UntilConfig struct {
	*MainConfig
	When     string `cli:"name=when desc='trigger expression' default=special"`
	Events   bool   `cli:"name=e desc='list the events read'"`
	Interval time.Duration

	Until *cli.Command
}

func (cfg *UntilConfig) mkInterval() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Interval = d
		return d, nil
	}
}

// ticks converts the interval to sensor ticks.
func (cfg *UntilConfig) ticks() int64 {
	return int64(cfg.Interval / (time.Second / event.TicksPerSecond))
}

type HistoConfig struct {
	*MainConfig
	XDim int  `cli:"name=xdim desc='grid width (default 240)'"`
	YDim int  `cli:"name=ydim desc='grid height (default 180)'"`
	On   bool `cli:"name=on desc='count ON events'"`
	Off  bool `cli:"name=off desc='count OFF events'"`
	Drop bool `cli:"name=drop desc='drop events outside the grid'"`

	Histo *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

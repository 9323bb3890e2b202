package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/aedat/collection"
	"github.com/signadot/aedat/event"
	"github.com/signadot/aedat/histogram"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type painter struct {
	on, off, special, label func(a ...any) string
}

func newPainter(enabled bool) *painter {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		if !enabled {
			return fmt.Sprint
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return &painter{
		on:      mk(color.FgGreen),
		off:     mk(color.FgRed),
		special: mk(color.FgYellow, color.Bold),
		label:   mk(color.FgCyan),
	}
}

type eventRecord struct {
	T       int64  `json:"t"`
	Special bool   `json:"special,omitempty"`
	On      bool   `json:"on"`
	X       uint16 `json:"x"`
	Y       uint16 `json:"y"`
}

func recordOf(e event.Event) eventRecord {
	return eventRecord{T: e.Timestamp, Special: e.Special, On: e.Polarity, X: e.X, Y: e.Y}
}

func records(evs *collection.Events) []eventRecord {
	res := make([]eventRecord, evs.Len())
	for i := range res {
		res[i] = recordOf(evs.At(i))
	}
	return res
}

func writeEvent(w io.Writer, e event.Event, p *painter) error {
	var kind string
	switch {
	case e.Special:
		kind = p.special("special")
	case e.Polarity:
		kind = p.on("on")
	default:
		kind = p.off("off")
	}
	_, err := fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", e.Timestamp, kind, e.X, e.Y)
	return err
}

func writeEvents(w io.Writer, evs *collection.Events, p *painter) error {
	bw := bufio.NewWriter(w)
	for i := range evs.Len() {
		if err := writeEvent(bw, evs.At(i), p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func listing(evs *collection.Events) string {
	var sb strings.Builder
	writeEvents(&sb, evs, newPainter(false))
	return sb.String()
}

func seconds(ticks int64) float64 {
	return float64(ticks) / event.TicksPerSecond
}

type infoReport struct {
	File       string           `json:"file"`
	Version    string           `json:"version,omitempty"`
	HeaderSize int64            `json:"headerSize"`
	Header     []string         `json:"header,omitempty"`
	Skipped    int              `json:"skipped,omitempty"`
	Events     collection.Stats `json:"events"`
}

func writeInfo(w io.Writer, r *infoReport, p *painter) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", p.label("file:   "), r.File)
	if r.Version != "" {
		fmt.Fprintf(bw, "%s %s\n", p.label("version:"), r.Version)
	}
	fmt.Fprintf(bw, "%s %d bytes\n", p.label("header: "), r.HeaderSize)
	for _, ln := range r.Header {
		fmt.Fprintf(bw, "         %s\n", ln)
	}
	s := r.Events
	fmt.Fprintf(bw, "%s %d (%s %d, %s %d, %s %d)\n", p.label("events: "), s.Count,
		p.special("special"), s.Special, p.on("on"), s.On, p.off("off"), s.Off)
	if s.Count > 0 {
		fmt.Fprintf(bw, "%s %d .. %d (%.6fs)\n", p.label("time:   "), s.First, s.Last, seconds(s.Duration))
	}
	if r.Skipped > 0 {
		fmt.Fprintf(bw, "%s %d\n", p.label("skipped:"), r.Skipped)
	}
	return bw.Flush()
}

type untilReport struct {
	File    string       `json:"file"`
	Status  string       `json:"status"`
	Events  int          `json:"events"`
	Trigger *eventRecord `json:"trigger,omitempty"`
	// Elapsed is the span of the events read, in ticks.
	Elapsed int64 `json:"elapsed"`
}

func writeUntil(w io.Writer, r *untilReport, p *painter) error {
	_, err := fmt.Fprintf(w, "%s: %s after %d events (%.6fs)\n", r.File, p.label(r.Status), r.Events, seconds(r.Elapsed))
	if err != nil || r.Trigger == nil {
		return err
	}
	t := r.Trigger
	_, err = fmt.Fprintf(w, "%s ", p.label("trigger:"))
	if err != nil {
		return err
	}
	return writeEvent(w, event.Event{Timestamp: t.T, Special: t.Special, Polarity: t.On, X: t.X, Y: t.Y}, p)
}

type histoReport struct {
	XDim    int     `json:"xdim"`
	YDim    int     `json:"ydim"`
	Sum     int     `json:"sum"`
	Dropped int     `json:"dropped,omitempty"`
	Counts  [][]int `json:"counts"`
}

func histoReportOf(g *histogram.Grid) *histoReport {
	return &histoReport{XDim: g.XDim, YDim: g.YDim, Sum: g.Sum(), Dropped: g.Dropped, Counts: g.Rows()}
}

// writeGrid writes one line per y, each with XDim counts.
func writeGrid(w io.Writer, g *histogram.Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.YDim; y++ {
		for x := 0; x < g.XDim; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d", g.At(x, y))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func diffListings(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(s string) []string {
	return strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
}

// writeDiff writes changed lines prefixed with - or +, summarizing runs
// of equal lines.  It reports whether there were any changes.
func writeDiff(w io.Writer, diffs []diffpatch.Diff, p *painter) (bool, error) {
	bw := bufio.NewWriter(w)
	changed := false
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		lines := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			fmt.Fprintf(bw, "%s\n", p.label(fmt.Sprintf("@@ %d equal", len(lines))))
		case diffpatch.DiffDelete:
			changed = true
			for _, ln := range lines {
				fmt.Fprint(bw, p.off("- "+strings.TrimSuffix(ln, "\n")), "\n")
			}
		case diffpatch.DiffInsert:
			changed = true
			for _, ln := range lines {
				fmt.Fprint(bw, p.on("+ "+strings.TrimSuffix(ln, "\n")), "\n")
			}
		}
	}
	return changed, bw.Flush()
}

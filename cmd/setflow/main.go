package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/lorypota/setflow/gallery"
	"github.com/lorypota/setflow/report"
	"github.com/lorypota/setflow/set"
)

type cli struct {
	Dump      dumpCmd      `cmd:"" help:"Load a catalogue CSV and print its canonical textual form."`
	Union     unionCmd     `cmd:"" help:"Union of two catalogues."`
	Intersect intersectCmd `cmd:"" help:"Intersection of two catalogues."`
	Filter    filterCmd    `cmd:"" help:"Keep only the records matching a column value."`
	Report    reportCmd    `cmd:"" help:"Chart-ready counts grouped by a column."`
}

type dumpCmd struct {
	File string `arg:"" help:"Catalogue CSV." type:"existingfile"`
	Save string `help:"Also write the textual form to this file." type:"path"`
}

func (c *dumpCmd) Run() error {
	s, err := gallery.LoadFile(c.File)
	if err != nil {
		return err
	}

	fmt.Println(s.String())
	if c.Save != "" {
		set.Save(s, c.Save)
	}
	return nil
}

type unionCmd struct {
	A    string `arg:"" help:"First catalogue CSV." type:"existingfile"`
	B    string `arg:"" help:"Second catalogue CSV." type:"existingfile"`
	Save string `help:"Write the textual form to this file." type:"path"`
}

func (c *unionCmd) Run() error {
	a, err := gallery.LoadFile(c.A)
	if err != nil {
		return err
	}
	b, err := gallery.LoadFile(c.B)
	if err != nil {
		return err
	}

	u, err := set.Union(a, b)
	if err != nil {
		return err
	}

	fmt.Println(u.String())
	if c.Save != "" {
		set.Save(u, c.Save)
	}
	return nil
}

type intersectCmd struct {
	A    string `arg:"" help:"First catalogue CSV." type:"existingfile"`
	B    string `arg:"" help:"Second catalogue CSV." type:"existingfile"`
	Save string `help:"Write the textual form to this file." type:"path"`
}

func (c *intersectCmd) Run() error {
	a, err := gallery.LoadFile(c.A)
	if err != nil {
		return err
	}
	b, err := gallery.LoadFile(c.B)
	if err != nil {
		return err
	}

	i, err := set.Intersect(a, b)
	if err != nil {
		return err
	}

	fmt.Println(i.String())
	if c.Save != "" {
		set.Save(i, c.Save)
	}
	return nil
}

type filterCmd struct {
	File   string `arg:"" help:"Catalogue CSV." type:"existingfile"`
	Column string `default:"school" enum:"school,author,subject,date,room" help:"Column to match."`
	Value  string `required:"" help:"Value the column must equal."`
	Save   string `help:"Write the textual form to this file." type:"path"`
}

func (c *filterCmd) Run() error {
	s, err := gallery.LoadFile(c.File)
	if err != nil {
		return err
	}

	key, err := gallery.Key(c.Column)
	if err != nil {
		return err
	}

	out, err := set.Filter(s, func(p gallery.Painting) bool {
		return key(p) == c.Value
	})
	if err != nil {
		return err
	}

	fmt.Println(out.String())
	if c.Save != "" {
		set.Save(out, c.Save)
	}
	return nil
}

type reportCmd struct {
	File   string   `arg:"" help:"Catalogue CSV." type:"existingfile"`
	By     string   `default:"school" enum:"school,author,subject,date,room" help:"Column to group by."`
	Chart  string   `default:"pie" enum:"pie,bar" help:"Projection to print."`
	Config []string `help:"Report config files (JSON or HCL)." type:"path"`
}

func (c *reportCmd) Run() error {
	s, err := gallery.LoadFile(c.File)
	if err != nil {
		return err
	}

	key, err := gallery.Key(c.By)
	if err != nil {
		return err
	}

	cfg, err := report.LoadConfig(c.Config...)
	if err != nil {
		return err
	}

	tally := report.CountBy(s.Values(), key)
	slog.Info("catalogue grouped", "records", s.Len(), "by", c.By, "groups", tally.Len())

	switch c.Chart {
	case "pie":
		for _, sl := range report.Pie(tally.Counts(), cfg) {
			fmt.Printf("%-28s %6d  %5.1f%%  %s\n", sl.Label, sl.Count, sl.Percent, sl.Color)
		}
	case "bar":
		bars := report.Bars(tally.Counts())
		if c.By == "date" {
			var interval, skipped int
			bars, interval, skipped = report.BarsByYear(tally.Counts(), len(cfg.Palette))
			if skipped > 0 {
				slog.Warn("records without a plausible year skipped", "count", skipped)
			}
			if interval > 0 {
				fmt.Printf("grouped every %d years\n", interval)
			}
		}
		for _, b := range bars {
			fmt.Printf("%-28s %6d\n", b.Label, b.Value)
		}
	}
	return nil
}

func main() {
	tintOpts := &tint.Options{
		Level:      new(slog.LevelVar),
		TimeFormat: time.TimeOnly,
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, tintOpts)))

	var flags cli
	ctx := kong.Parse(&flags,
		kong.Name("setflow"),
		kong.Description("Set operations and chart projections over catalogue CSVs."),
	)

	if err := ctx.Run(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/grindlemire/go-flex/internal/fixture"
	"github.com/grindlemire/go-flex/internal/layout"
)

// runCompute implements the compute subcommand.
// It builds the fixture's tree, computes it and writes the rects as TOML.
func runCompute(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("compute", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	width := fs.Float64("w", -1, "available width")
	height := fs.Float64("h", -1, "available height")
	configPath := fs.String("config", "", "engine config file")
	twice := fs.Bool("twice", false, "compute twice")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("compute needs exactly one fixture path")
	}

	f, err := fixture.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	var opts []layout.Option
	if *configPath != "" {
		cfg, err := layout.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		opts = append(opts, layout.WithConfig(cfg))
	}

	tree, err := f.Build(opts...)
	if err != nil {
		return err
	}

	w, h := f.Width, f.Height
	if *width >= 0 {
		w = float32(*width)
	}
	if *height >= 0 {
		h = float32(*height)
	}

	res, err := tree.Compute(w, h)
	if err != nil {
		return err
	}
	if *twice {
		if res, err = tree.Compute(w, h); err != nil {
			return err
		}
	}

	data, err := res.Marshal()
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = out.Write(data)
	return err
}

package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/soypat/filterer"
	"github.com/soypat/filterer/filters"
	"github.com/urfave/cli/v2"
)

// Filters registered on top of the defaults.
const (
	nameGradedRed = "graded red"
	nameGrayscale = "grayscale"
	nameInvert    = "invert"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "filterer:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var verbose bool
	return &cli.App{
		Name:  "filterer",
		Usage: "apply named RGBA filters to an image",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log pipeline stages to stderr",
				Destination: &verbose,
			},
		},
		Before: func(c *cli.Context) error {
			if verbose {
				l := logrus.New()
				l.SetOutput(c.App.ErrWriter)
				l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
				l.SetLevel(logrus.DebugLevel)
				filterer.SetLogger(l)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list available filters and their parameters",
				Action: func(c *cli.Context) error {
					return listFilters(c.App.Writer, newRegistry())
				},
			},
			{
				Name:  "apply",
				Usage: "run filters over an image in the order given",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "in",
						Aliases:  []string{"i"},
						Usage:    "input image (png or jpeg)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "output png path",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "filter",
						Aliases: []string{"f"},
						Usage:   "filter name, may be repeated",
					},
				},
				Action: func(c *cli.Context) error {
					return applyFilters(c.String("in"), c.String("out"), c.StringSlice("filter"))
				},
			},
		},
	}
}

func newRegistry() *filters.Registry {
	reg := filters.NewDefaultRegistry()
	reg.Register(nameGradedRed, filters.NewGradedRedBoost())
	reg.Register(nameGrayscale, filters.NewGrayscale(filters.GrayscaleLuminance))
	reg.Register(nameInvert, filters.NewInvert())
	return reg
}

func listFilters(w io.Writer, reg *filters.Registry) error {
	for _, name := range reg.Names() {
		f, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		var params []string
		for _, ctrl := range f.Controls() {
			label, _ := ctrl.Describe()
			params = append(params, fmt.Sprintf("%s=%v", label, ctrl.ActualValue()))
		}
		if len(params) == 0 {
			fmt.Fprintf(w, "%q\n", name)
		} else {
			fmt.Fprintf(w, "%q\t%s\n", name, strings.Join(params, " "))
		}
	}
	return nil
}

func applyFilters(inPath, outPath string, names []string) error {
	if len(names) == 0 {
		return errors.New("no filters given, use --filter")
	}
	pipeline := filters.NewPipeline(newRegistry())
	for _, name := range names {
		if err := pipeline.AddFilter(name); err != nil {
			return err
		}
	}
	src, err := loadImage(inPath)
	if err != nil {
		return err
	}
	dst, err := pipeline.Apply(src)
	if err != nil {
		return err
	}
	return saveImage(outPath, dst)
}

func loadImage(path string) (*filterer.Buffer, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	img, _, err := image.Decode(fp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return filterer.FromStdImage(img)
}

func saveImage(path string, b *filterer.Buffer) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(fp, b.NRGBA())
	if closeErr := fp.Close(); err == nil {
		err = closeErr
	}
	return err
}

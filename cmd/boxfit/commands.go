// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/tkgui/boxkit/future"
	"github.com/tkgui/boxkit/geom"
	"github.com/tkgui/boxkit/imagefit"
	"github.com/tkgui/boxkit/loop"
	"github.com/tkgui/boxkit/screen"
	"github.com/tkgui/boxkit/textsize"
)

func commands(cfg *config) []cli.Command {
	ignoreRatio := cli.BoolFlag{
		Name:  "ignore-ratio",
		Usage: "size each axis independently",
	}
	sizeCmd := func(mode imagefit.Mode, usage string) cli.Command {
		return cli.Command{
			Name:      mode.String(),
			Usage:     usage,
			ArgsUsage: "SRC BOX",
			Flags:     []cli.Flag{ignoreRatio},
			Action: func(c *cli.Context) error {
				return sizeAction(c, mode)
			},
		}
	}
	return []cli.Command{
		{
			Name:      "ratio",
			Usage:     "reduce an aspect ratio",
			ArgsUsage: "W:H",
			Action:    ratioAction,
		},
		sizeCmd(imagefit.Fit, "shrink SRC to fit inside BOX"),
		sizeCmd(imagefit.Fill, "fit SRC inside BOX, enlarging it if smaller"),
		sizeCmd(imagefit.Scale, "scale SRC toward BOX"),
		{
			Name:      "crop",
			Usage:     "center crop a box of SIZE to RATIO",
			ArgsUsage: "SIZE RATIO",
			Action:    cropAction,
		},
		{
			Name:      "measure",
			Usage:     "measure TEXT in the default font",
			ArgsUsage: "TEXT",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "pad", Usage: "padding on every side"},
			},
			Action: measureAction,
		},
		{
			Name:      "place",
			Usage:     "center WINDOW on its monitor or on a parent window",
			ArgsUsage: "WINDOW",
			Flags: []cli.Flag{
				cli.StringSliceFlag{Name: "monitor, m", Usage: "monitor `GEOMETRY`; the first is primary"},
				cli.StringFlag{Name: "parent, p", Usage: "parent window `GEOMETRY`"},
			},
			Action: func(c *cli.Context) error {
				return placeAction(c, cfg)
			},
		},
		{
			Name:      "resize",
			Usage:     "write resized PNG variants of IMAGE",
			ArgsUsage: "IMAGE",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "o", Value: ".", Usage: "output `DIR`"},
				cli.StringSliceFlag{Name: "variant", Usage: "output variant `name=WxH[:mode]`"},
			},
			Action: func(c *cli.Context) error {
				return resizeAction(c, cfg)
			},
		},
	}
}

func args(c *cli.Context, n int) error {
	if c.NArg() != n {
		return fmt.Errorf("%s: want %d arguments, got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

func ratioAction(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}
	r, err := geom.ParseAspectRatio(c.Args().Get(0))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.App.Writer, "%v %.4f\n", r, r.Float64())
	return err
}

func sizeAction(c *cli.Context, mode imagefit.Mode) error {
	if err := args(c, 2); err != nil {
		return err
	}
	src, err := geom.ParseSize(c.Args().Get(0))
	if err != nil {
		return err
	}
	box, err := geom.ParseSize(c.Args().Get(1))
	if err != nil {
		return err
	}
	sz, err := imagefit.TargetSize(src, box, mode, !c.Bool("ignore-ratio"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, sz)
	return err
}

func cropAction(c *cli.Context) error {
	if err := args(c, 2); err != nil {
		return err
	}
	sz, err := geom.ParseSize(c.Args().Get(0))
	if err != nil {
		return err
	}
	r, err := geom.ParseAspectRatio(c.Args().Get(1))
	if err != nil {
		return err
	}
	b, err := geom.FromSized(sz).CropToAspectRatio(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, b)
	return err
}

func measureAction(c *cli.Context) error {
	if err := args(c, 1); err != nil {
		return err
	}
	pad := c.Int("pad")
	if pad < 0 {
		return fmt.Errorf("measure: negative padding %d", pad)
	}
	l := textsize.Label{Text: c.Args().Get(0), Pad: geom.UniformPadding(pad)}
	_, err := fmt.Fprintln(c.App.Writer, l.Size())
	return err
}

func placeAction(c *cli.Context, cfg *config) error {
	if err := args(c, 1); err != nil {
		return err
	}
	mons, err := parseMonitors(c.StringSlice("monitor"))
	if err != nil {
		return err
	}
	if len(mons) == 0 {
		if mons, err = cfg.monitors(); err != nil {
			return err
		}
	}
	if len(mons) == 0 {
		return errors.New("place: no monitors; pass --monitor or list them in the config")
	}
	win, err := geom.ParseGeometry(c.Args().Get(0))
	if err != nil {
		return err
	}
	var parent *geom.BBox
	if p := c.String("parent"); p != "" {
		b, err := geom.ParseGeometry(p)
		if err != nil {
			return err
		}
		parent = &b
	}
	pos, ok := screen.Place(mons, win, parent)
	if !ok {
		return fmt.Errorf("place: no monitor at %v", win.Position())
	}
	_, err = fmt.Fprintln(c.App.Writer, win.WithPos(pos.X, pos.Y).Geometry())
	return err
}

func resizeAction(c *cli.Context, cfg *config) error {
	if err := args(c, 1); err != nil {
		return err
	}
	variants, err := parseVariants(c.StringSlice("variant"))
	if err != nil {
		return err
	}
	if len(variants) == 0 {
		if variants, err = cfg.variants(); err != nil {
			return err
		}
	}
	if len(variants) == 0 {
		return errors.New("resize: no variants; pass --variant or list them in the config")
	}
	img, err := decodeImage(c.Args().Get(0))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scaled, err := imagefit.ResizeAll(ctx, img, variants)
	if err != nil {
		return err
	}
	dir := c.String("o")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// The loop owns the output; writers hand their report lines to it.
	ui := loop.New()
	runErr := make(chan error, 1)
	go func() {
		runErr <- ui.Run(ctx)
	}()
	writes := make([]future.Waiter, len(scaled))
	for i, img := range scaled {
		v := variants[i]
		writes[i] = future.Go(func() (string, error) {
			path := filepath.Join(dir, v.Name+".png")
			if err := writePNG(path, img); err != nil {
				return "", err
			}
			report := future.Submit(ui, 0, func() (struct{}, error) {
				_, err := fmt.Fprintf(c.App.Writer, "%s\t%v\n", path, geom.Sz(img.Bounds().Dx(), img.Bounds().Dy()))
				return struct{}{}, err
			})
			return path, report.Wait(ctx)
		})
	}
	err = future.Gather(ctx, writes...)
	ui.Stop()
	if rerr := <-runErr; err == nil {
		err = rerr
	}
	return err
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

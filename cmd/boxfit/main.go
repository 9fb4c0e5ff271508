// SPDX-License-Identifier: Unlicense OR MIT

// Command boxfit computes and applies the boxkit sizing policies from the
// command line.
//
// Usage:
//
//	boxfit [-v] [-c FILE] ratio W:H
//	boxfit fit|fill|scale [--ignore-ratio] SRC BOX
//	boxfit crop SIZE RATIO
//	boxfit measure [--pad N] TEXT
//	boxfit place [--monitor GEOMETRY]... [--parent GEOMETRY] WINDOW
//	boxfit resize -o DIR [--variant name=WxH[:mode]]... IMAGE
//
// Sizes are written "WxH" and geometries "WxH+X+Y". The optional TOML
// configuration file may list default variants and monitors:
//
//	[resize]
//	variants = ["thumb=200x200", "hero=1920x1080:fill"]
//
//	[screen]
//	monitors = ["2560x1440+0+0", "1920x1080+-1920+0"]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/tkgui/boxkit"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "boxfit: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	cfg := new(config)
	app := cli.NewApp()
	app.Name = "boxfit"
	app.Usage = "compute window and image sizes"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log debug output to stderr",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load defaults from the TOML `FILE`",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			boxkit.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return cfg.load(c.String("config"))
	}
	app.Commands = commands(cfg)
	return app
}

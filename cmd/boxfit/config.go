// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tkgui/boxkit/geom"
	"github.com/tkgui/boxkit/imagefit"
	"github.com/tkgui/boxkit/screen"
)

// config holds the defaults read from the configuration file.
type config struct {
	v *viper.Viper
}

func (c *config) load(path string) error {
	c.v = viper.New()
	if path == "" {
		return nil
	}
	c.v.SetConfigType("toml")
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// variants returns the resize variants listed in the configuration.
func (c *config) variants() ([]imagefit.Variant, error) {
	return parseVariants(c.v.GetStringSlice("resize.variants"))
}

// monitors returns the monitors listed in the configuration. The first one
// is the primary monitor.
func (c *config) monitors() (screen.Set, error) {
	return parseMonitors(c.v.GetStringSlice("screen.monitors"))
}

func parseVariants(specs []string) ([]imagefit.Variant, error) {
	var vs []imagefit.Variant
	for _, s := range specs {
		v, err := imagefit.ParseVariant(s)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func parseMonitors(geoms []string) (screen.Set, error) {
	var set screen.Set
	for i, g := range geoms {
		b, err := geom.ParseGeometry(g)
		if err != nil {
			return nil, err
		}
		set = append(set, screen.Monitor{
			Name:    fmt.Sprintf("monitor%d", i),
			Primary: i == 0,
			Full:    b,
		})
	}
	return set, nil
}

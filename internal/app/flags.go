package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	IntervalMS int
	Seed       int64
	Size       int
	Banner     string
	Gridlines  bool
	Sound      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ambient", Scale: 6, IntervalMS: 100, Seed: 42, Banner: "LIFE", Gridlines: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (ambient, life)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "step interval in milliseconds")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Size, "size", c.Size, "grid side length (0 uses the sim default)")
	fs.StringVar(&c.Banner, "banner", c.Banner, "word stamped on ambient resets")
	fs.BoolVar(&c.Gridlines, "gridlines", c.Gridlines, "draw the gridline overlay")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a blip on ripple clicks")
}

// SimOptions builds the string map handed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"seed":   strconv.FormatInt(c.Seed, 10),
		"banner": c.Banner,
	}
	if c.Size > 0 {
		opts["size"] = strconv.Itoa(c.Size)
	}
	return opts
}

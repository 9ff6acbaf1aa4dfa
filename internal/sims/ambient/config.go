package ambient

import (
	"strconv"

	"lifegrid/internal/ripple"
	"lifegrid/internal/sims/life"
)

// Config controls the ambient show.
type Config struct {
	Width  int
	Height int

	Seed int64

	// ResetEvery is the number of ticks between full reseeds; zero disables
	// the periodic reset.
	ResetEvery int
	// Scatter is the number of random shapes stamped per reseed.
	Scatter int
	// MaxAge is the ripple lifetime in ticks.
	MaxAge int
	// Banner is the word stamped across the board on every reseed.
	Banner string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      96,
		Height:     96,
		Seed:       1337,
		ResetEvery: 400,
		Scatter:    8,
		MaxAge:     ripple.DefaultMaxAge,
		Banner:     "LIFE",
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). "size" and its alias "w" set the side length; the board is always
// square.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for _, key := range []string{"w", "size"} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && life.ValidSize(parsed) {
				c.Width = parsed
				c.Height = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["reset_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ResetEvery = parsed
		}
	}
	if v, ok := cfg["scatter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Scatter = parsed
		}
	}
	if v, ok := cfg["max_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxAge = parsed
		}
	}
	if v, ok := cfg["banner"]; ok && v != "" {
		c.Banner = v
	}
	return c
}

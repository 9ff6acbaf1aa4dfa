package life

import "strconv"

// Config holds the side length for a plain life board. Boards are always
// square.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map. "size" and its alias "w" both
// set the side length; both dimensions always come out equal.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	for _, key := range []string{"w", "size"} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && ValidSize(parsed) {
				c.Width = parsed
				c.Height = parsed
			}
		}
	}
	return c
}

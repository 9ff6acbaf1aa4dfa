// Package pattern holds fixed cell bitmaps and stamps them onto a life
// board. Stamping is additive: pattern cells marked alive are forced alive,
// everything else is left untouched.
package pattern

import "lifegrid/internal/core"

// Surface is the part of a life board a stamp writes to.
type Surface interface {
	Size() core.Size
	Set(x, y int, alive bool)
}

// Pattern is an immutable bitmap. Rows use '#' for alive cells; any other
// rune is dead.
type Pattern struct {
	Name string
	Rows []string
}

// Width returns the length of the longest row.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p.Rows) }

// Stamp overlays the pattern onto the surface with its top-left corner at
// (ox, oy). Cells falling outside the grid are clipped silently.
func Stamp(surface Surface, p Pattern, ox, oy int) {
	for dy, row := range p.Rows {
		for dx := 0; dx < len(row); dx++ {
			if row[dx] != '#' {
				continue
			}
			surface.Set(ox+dx, oy+dy, true)
		}
	}
}

// StampWord stamps the glyphs for s left to right starting at (ox, oy), with
// a one-cell gap between letters. Runes without a glyph are skipped.
func StampWord(surface Surface, s string, ox, oy int) {
	x := ox
	for _, g := range Word(s) {
		Stamp(surface, g, x, oy)
		x += g.Width() + 1
	}
}

// Word returns the glyph sequence for s, skipping unknown runes.
func Word(s string) []Pattern {
	var glyphs []Pattern
	for _, r := range s {
		if g, ok := letters[r]; ok {
			glyphs = append(glyphs, g)
		}
	}
	return glyphs
}

// Shapes returns the built-in still lifes, oscillators and spaceships used
// for random scattering.
func Shapes() []Pattern { return shapes }

// ShapeByName looks up a shape by its name.
func ShapeByName(name string) (Pattern, bool) {
	for _, p := range shapes {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

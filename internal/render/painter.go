//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data and
// overlays cached gridlines.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	lines     *ebiten.Image
	lineBuf   []byte
	lineScale int
	lineColor color.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridlines overlays the uniform gridline grid. The line image is rebuilt
// only when the scale or color changes.
func (gp *GridPainter) DrawGridlines(dst *ebiten.Image, line color.Color, scale int) {
	if scale < 2 {
		return
	}
	if gp.lines == nil || gp.lineScale != scale || gp.lineColor != line {
		pw, ph := gp.w*scale, gp.h*scale
		gp.lines = ebiten.NewImage(pw, ph)
		gp.lineBuf = make([]byte, 4*pw*ph)
		fillGridlineRGBA(gp.lineBuf, gp.w, gp.h, scale, line)
		gp.lines.WritePixels(gp.lineBuf)
		gp.lineScale = scale
		gp.lineColor = line
	}
	dst.DrawImage(gp.lines, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillGridlineRGBA paints a uniform gridline overlay into buf, which holds a
// (w*scale) x (h*scale) RGBA image. Pixels on a cell boundary get the line
// color, everything else stays transparent.
func fillGridlineRGBA(buf []byte, w, h, scale int, line color.Color) {
	if scale < 2 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	r, g, b, a := line.RGBA()
	lr, lg, lb, la := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	pw := w * scale
	ph := h * scale
	for py := 0; py < ph; py++ {
		onRow := py%scale == 0
		for px := 0; px < pw; px++ {
			base := (py*pw + px) * 4
			if onRow || px%scale == 0 {
				buf[base+0] = lr
				buf[base+1] = lg
				buf[base+2] = lb
				buf[base+3] = la
				continue
			}
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
	}
}

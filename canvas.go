package sprout

// Canvas is a software pixel buffer. Each pixel is a packed 0x00RRGGBB
// value; the top byte is ignored. Pixels are stored row-major with the
// origin at the top-left.
//
// The Canvas is exclusively borrowed by the animator for the duration of one
// frame: [Square.Draw] fills it, the host presents it, and the next frame
// overwrites it in full. Nothing is retained between frames.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint32

	rgba []byte // reused by RGBA between frames
}

// NewCanvas creates a canvas with the given dimensions. Dimensions below
// 1 are raised to 1.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts the canvas to the given dimensions, reallocating backing
// storage only when it has to grow. Dimensions below 1 are raised to 1.
// Pixel contents after a resize are unspecified.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	c.Width = width
	c.Height = height
	if n := width * height; cap(c.Pix) < n {
		c.Pix = make([]uint32, n)
	} else {
		c.Pix = c.Pix[:n]
	}
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(color uint32) {
	for i := range c.Pix {
		c.Pix[i] = color
	}
}

// FillRect fills an axis-aligned rectangle with the given color. The
// rectangle is intersected with the canvas bounds first, so callers may pass
// coordinates that hang off any edge, including negative ones.
func (c *Canvas) FillRect(x, y, w, h int, color uint32) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, c.Width)
	y1 := min(y+h, c.Height)

	for py := y0; py < y1; py++ {
		row := c.Pix[py*c.Width : py*c.Width+c.Width]
		for px := x0; px < x1; px++ {
			row[px] = color
		}
	}
}

// At returns the color at (x, y), or 0 for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0
	}
	return c.Pix[y*c.Width+x]
}

// RGBA expands the packed pixels into an RGBA byte slice suitable for
// ebiten.Image.WritePixels. Alpha is always 0xff. The returned slice is
// owned by the canvas and reused across calls.
func (c *Canvas) RGBA() []byte {
	if n := c.Width * c.Height * 4; cap(c.rgba) < n {
		c.rgba = make([]byte, n)
	} else {
		c.rgba = c.rgba[:n]
	}
	for i, p := range c.Pix {
		off := i * 4
		c.rgba[off+0] = byte(p >> 16)
		c.rgba[off+1] = byte(p >> 8)
		c.rgba[off+2] = byte(p)
		c.rgba[off+3] = 0xff
	}
	return c.rgba
}

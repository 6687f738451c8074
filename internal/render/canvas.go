package render

// Canvas receives rendered pixels.
type Canvas interface {
	// SetPixel stores one packed pixel (see RGB).
	SetPixel(x, y int, rgb uint32)
	// FlushRow makes written pixels visible. msHint is how long the canvas
	// may take to do so, in milliseconds.
	FlushRow(msHint int)
}

// Framebuffer is an in-memory Canvas.
type Framebuffer struct {
	Width   int
	Height  int
	Pix     []uint32
	Flushes int
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

func (f *Framebuffer) SetPixel(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = rgb
}

func (f *Framebuffer) FlushRow(int) {
	f.Flushes++
}

func (f *Framebuffer) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

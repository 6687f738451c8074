package render

import (
	"kray/internal/geometry"
	"kray/internal/scene"
	"kray/internal/vecmath"
)

const (
	Width  = 512
	Height = 384

	// MaxBounces is the number of reflection rays traced after a primary hit.
	MaxBounces = 3

	// DefaultFlushHint is the per-row flush hint in milliseconds.
	DefaultFlushHint = 100
)

// Eye is the camera position. The camera looks down -z.
var Eye = vecmath.New(0, 2, 6)

type Renderer struct {
	Scene *scene.Scene

	// FlushHint is passed to Canvas.FlushRow after every row.
	FlushHint int

	// PreviewBlock enables a coarse first pass that shades one pixel per
	// PreviewBlock x PreviewBlock block and fills the block with it. Zero
	// disables it.
	PreviewBlock int

	// RowDone fires with the row index after each row of the full pass.
	RowDone Event[int]

	hit geometry.Hit
}

func New(sc *scene.Scene) *Renderer {
	return &Renderer{
		Scene:     sc,
		FlushHint: DefaultFlushHint,
	}
}

// PrimaryRay returns the unit direction from Eye through pixel (ix, iy). Row 0
// is the top of the image.
func PrimaryRay(ix, iy int) vecmath.Vec {
	x := float64(ix)*(1.0/256.0) - 1.0
	y := float64(Height-iy)*(1.0/256.0) - 1.0
	return vecmath.New(x, y, -1).Normalize()
}

// Trace shades a primary ray leaving Eye along dir. It returns the color and
// the number of reflection bounces that hit something.
//
// A primary miss returns the sky gradient dir.y. After a primary hit each
// bounce tints the accumulated reflection by the surface it reaches; a bounce
// that misses ends the loop and adds nothing.
func (r *Renderer) Trace(dir vecmath.Vec) (vecmath.Vec, int) {
	h := &r.hit
	r.Scene.Intersect(Eye, dir, h)
	if !h.Ok() {
		return vecmath.Splat(dir.Y()), 0
	}

	dest := h.Color
	temp := h.Color
	bounces := 0
	for bounces < MaxBounces {
		dir = vecmath.Reflect(dir, h.Normal)
		r.Scene.Intersect(h.Point, dir, h)
		if !h.Ok() {
			break
		}
		temp = temp.Hadamard(h.Color)
		dest = dest.Add(temp)
		bounces++
	}
	return dest, bounces
}

// Pixel returns the packed color of pixel (ix, iy).
func (r *Renderer) Pixel(ix, iy int) uint32 {
	c, _ := r.Trace(PrimaryRay(ix, iy))
	return RGB(c)
}

// Render draws the whole image into c, row by row from the top, left to
// right within a row, flushing after every row.
func (r *Renderer) Render(c Canvas) {
	if r.PreviewBlock > 0 {
		r.preview(c)
	}
	for iy := 0; iy < Height; iy++ {
		for ix := 0; ix < Width; ix++ {
			c.SetPixel(ix, iy, r.Pixel(ix, iy))
		}
		c.FlushRow(r.FlushHint)
		r.RowDone.Invoke(iy)
	}
}

func (r *Renderer) preview(c Canvas) {
	n := r.PreviewBlock
	for by := 0; by < Height; by += n {
		for bx := 0; bx < Width; bx += n {
			rgb := r.Pixel(bx, by)
			for y := by; y < by+n && y < Height; y++ {
				for x := bx; x < bx+n && x < Width; x++ {
					c.SetPixel(x, y, rgb)
				}
			}
		}
		c.FlushRow(r.FlushHint)
	}
}

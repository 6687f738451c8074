package geometry

import (
	"math"

	"kray/internal/vecmath"
)

const (
	parallelThreshold = 1.0e-30
	checkerShade      = 0.5
	fogSlope          = 0.04
)

// Plane is an infinite plane through Point with unit Normal. It is shaded
// with a two-unit checker in x/z and fades to black with |z|.
type Plane struct {
	Point  vecmath.Vec
	Normal vecmath.Vec
	Color  vecmath.Vec
}

func NewPlane(point, normal, color vecmath.Vec) *Plane {
	return &Plane{Point: point, Normal: normal, Color: color}
}

func (p *Plane) Kind() Kind { return KindPlane }

func (p *Plane) Intersect(origin, dir, light vecmath.Vec, h *Hit) {
	d := -p.Point.Dot(p.Normal)
	v := dir.Dot(p.Normal)
	if v*v < parallelThreshold {
		return
	}

	t := -(origin.Dot(p.Normal) + d) / v
	if !h.accepts(t) {
		return
	}

	h.Point = origin.Add(dir.Scale(t))
	h.Normal = p.Normal
	h.Color = p.Color.Scale(p.Shade(light, h.Point))
	h.Distance = t
}

// Shade returns the scalar factor applied to the plane color at point.
func (p *Plane) Shade(light, point vecmath.Vec) float64 {
	f := Lambert(light, p.Normal)
	if Checker(point) {
		f *= checkerShade
	}
	return f * Fog(point)
}

// Checker reports whether point lies on a darkened square of the x/z checker.
func Checker(point vecmath.Vec) bool {
	return (Mod2(point.X())-1)*(Mod2(point.Z())-1) > 0
}

// Fog is the attenuation for a hit at point: 1 at z=0, falling linearly to 0
// at |z| = 25.
func Fog(point vecmath.Vec) float64 {
	return 1 - vecmath.Clamp(math.Abs(point.Z())*fogSlope, 0, 1)
}

// Mod2 maps t into [0, 2).
func Mod2(t float64) float64 {
	t -= math.Trunc(t/2) * 2
	if t < 0 {
		t += 2
	}
	return t
}

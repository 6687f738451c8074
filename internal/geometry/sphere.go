package geometry

import (
	"math"

	"kray/internal/vecmath"
)

type Sphere struct {
	Center vecmath.Vec
	Radius float64
	Color  vecmath.Vec
}

func NewSphere(center vecmath.Vec, radius float64, color vecmath.Vec) *Sphere {
	return &Sphere{Center: center, Radius: radius, Color: color}
}

func (s *Sphere) Kind() Kind { return KindSphere }

// Intersect tests the near root only; rays are expected to start outside.
func (s *Sphere) Intersect(origin, dir, light vecmath.Vec, h *Hit) {
	rs := origin.Sub(s.Center)
	b := rs.Dot(dir)
	c := rs.Dot(rs) - s.Radius*s.Radius
	d := b*b - c
	if d < 0 {
		return
	}

	t := -b - math.Sqrt(d)
	if !h.accepts(t) {
		return
	}

	h.Point = origin.Add(dir.Scale(t))
	h.Normal = h.Point.Sub(s.Center).Normalize()
	h.Color = s.Color.Scale(Lambert(light, h.Normal))
	h.Distance = t
}

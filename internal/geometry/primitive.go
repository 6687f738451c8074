package geometry

import "kray/internal/vecmath"

type Kind int

const (
	KindSphere Kind = iota
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Primitive is a surface a ray can hit. Intersect updates h only when it finds
// a hit strictly closer than h.Distance, so calling it for every primitive in
// turn leaves the nearest hit in h.
type Primitive interface {
	Kind() Kind
	Intersect(origin, dir, light vecmath.Vec, h *Hit)
}

package geometry

import "kray/internal/vecmath"

const (
	// Epsilon keeps a ray leaving a surface from hitting that surface again.
	Epsilon = 1.0e-4
	// Miss is the distance of an empty hit record.
	Miss = 1.0e+30
	// AmbientFloor is the lowest Lambert factor a lit surface receives.
	AmbientFloor = 0.1
)

// Hit is the nearest intersection found so far along one ray. Point, Normal
// and Color are only meaningful when Ok reports true.
type Hit struct {
	Point    vecmath.Vec
	Normal   vecmath.Vec
	Color    vecmath.Vec
	Distance float64
}

// Reset empties the record before a new scene-wide test.
func (h *Hit) Reset() {
	h.Distance = Miss
}

func (h *Hit) Ok() bool {
	return h.Distance < Miss
}

// accepts reports whether t is past the self-hit guard and strictly closer
// than the current hit.
func (h *Hit) accepts(t float64) bool {
	return t >= Epsilon && t < h.Distance
}

// Lambert is the diffuse factor for a unit normal lit from direction light,
// floored at AmbientFloor so back faces stay dim instead of black.
func Lambert(light, normal vecmath.Vec) float64 {
	return vecmath.Clamp(light.Dot(normal), AmbientFloor, 1.0)
}

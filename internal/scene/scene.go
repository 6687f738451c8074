package scene

import (
	"fmt"
	"math"
	"strings"

	"kray/internal/geometry"
	"kray/internal/vecmath"
)

// Scene is a directional light and an ordered list of primitives. It is not
// modified after construction.
type Scene struct {
	// Light is the unit direction toward the light.
	Light      vecmath.Vec
	Primitives []geometry.Primitive
}

func New(light vecmath.Vec, primitives ...geometry.Primitive) *Scene {
	return &Scene{
		Light:      light,
		Primitives: primitives,
	}
}

// Default builds the fixed demo scene: three colored spheres over a white
// checkered floor, lit from the upper right front.
func Default() *Scene {
	return New(
		vecmath.New(0.577, 0.577, 0.577),
		geometry.NewSphere(vecmath.New(0, -0.5, 0), 0.5, vecmath.New(1, 0, 0)),
		geometry.NewSphere(vecmath.New(2, 0, math.Cos(6.66)), 1.0, vecmath.New(0, 1, 0)),
		geometry.NewSphere(vecmath.New(-2, 0.5, math.Cos(3.33)), 1.5, vecmath.New(0, 0, 1)),
		geometry.NewPlane(vecmath.New(0, -1, 0), vecmath.New(0, 1, 0), vecmath.New(1, 1, 1)),
	)
}

// Intersect resets h and tests every primitive in order, leaving the nearest
// hit in h. On equal distances the earlier primitive wins.
func (s *Scene) Intersect(origin, dir vecmath.Vec, h *geometry.Hit) {
	h.Reset()
	for _, p := range s.Primitives {
		p.Intersect(origin, dir, s.Light, h)
	}
}

// Summary describes the scene contents for logging, e.g. "3 spheres, 1 plane".
func (s *Scene) Summary() string {
	counts := make(map[geometry.Kind]int)
	var order []geometry.Kind
	for _, p := range s.Primitives {
		k := p.Kind()
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}

	parts := make([]string, 0, len(order))
	for _, k := range order {
		n := counts[k]
		name := k.String()
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, ", ")
}

package vecmath

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// NormalizeThreshold is the length at or below which Normalize leaves a vector unchanged.
const NormalizeThreshold = 1.0e-17

// Vec is a double-precision 3-tuple used for points, directions, normals and
// linear RGB colors. Values are never mutated in place.
type Vec vec3.T

func New(x, y, z float64) Vec { return Vec{x, y, z} }

// Splat returns (t, t, t).
func Splat(t float64) Vec { return Vec{t, t, t} }

func (a Vec) X() float64 { return a[0] }
func (a Vec) Y() float64 { return a[1] }
func (a Vec) Z() float64 { return a[2] }

func (a Vec) t() *vec3.T { return (*vec3.T)(&a) }

func (a Vec) Add(b Vec) Vec { return Vec(vec3.Add(a.t(), b.t())) }
func (a Vec) Sub(b Vec) Vec { return Vec(vec3.Sub(a.t(), b.t())) }

// Scale multiplies every component by t.
func (a Vec) Scale(t float64) Vec { return Vec{a[0] * t, a[1] * t, a[2] * t} }

// Hadamard is the componentwise product, used to tint reflected colors.
func (a Vec) Hadamard(b Vec) Vec { return Vec(vec3.Mul(a.t(), b.t())) }

func (a Vec) Dot(b Vec) float64 { return vec3.Dot(a.t(), b.t()) }

func (a Vec) Length() float64 { return math.Sqrt(a.Dot(a)) }

// Normalize scales a to unit length. Vectors no longer than
// NormalizeThreshold are returned as they are.
func (a Vec) Normalize() Vec {
	l := a.Length()
	if l <= NormalizeThreshold {
		return a
	}
	return a.Scale(1.0 / l)
}

// Reflect mirrors v about n. n must be unit length.
func Reflect(v, n Vec) Vec {
	return v.Sub(n.Scale(2 * n.Dot(v)))
}

// IsFinite reports whether no component is NaN or infinite.
func (a Vec) IsFinite() bool {
	for _, c := range a {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Clamp clips t into [lo, hi].
func Clamp(t, lo, hi float64) float64 {
	if t < lo {
		t = lo
	}
	if t > hi {
		t = hi
	}
	return t
}

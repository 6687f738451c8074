package vecmath

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	if got := a.Add(b); got != New(5, -3, 9) {
		t.Errorf("Expected Add (5,-3,9), got %v", got)
	}
	if got := a.Sub(b); got != New(-3, 7, -3) {
		t.Errorf("Expected Sub (-3,7,-3), got %v", got)
	}
	if got := a.Scale(2); got != New(2, 4, 6) {
		t.Errorf("Expected Scale (2,4,6), got %v", got)
	}
	if got := a.Hadamard(b); got != New(4, -10, 18) {
		t.Errorf("Expected Hadamard (4,-10,18), got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected Dot 12, got %v", got)
	}
	if got := New(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected Length 5, got %v", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	vs := []Vec{
		New(1, 0, 0),
		New(3, 4, 12),
		New(-1e-10, 2e-10, 5e-11),
		New(1e20, -3e19, 7e18),
		New(-1, 0.5, -1),
	}
	for _, v := range vs {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > 1e-12 {
			t.Errorf("Normalize(%v): expected unit length, got %v", v, n.Length())
		}
		if math.Abs(n.Dot(n)-1) > 1e-12 {
			t.Errorf("Normalize(%v): expected dot(n,n)=1, got %v", v, n.Dot(n))
		}
		if nn := n.Normalize(); math.Abs(nn.Sub(n).Length()) > 1e-15 {
			t.Errorf("Normalize should be idempotent, got %v then %v", n, nn)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	zero := Vec{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Expected zero vector unchanged, got %v", got)
	}

	tiny := New(1e-18, 0, 0)
	if got := tiny.Normalize(); got != tiny {
		t.Errorf("Expected tiny vector unchanged, got %v", got)
	}
	if !tiny.Normalize().IsFinite() {
		t.Error("Normalize of a tiny vector should stay finite")
	}
}

func TestReflectPreservesLength(t *testing.T) {
	normals := []Vec{
		New(0, 1, 0),
		New(1, 1, 1).Normalize(),
		New(-0.3, 0.2, 0.9).Normalize(),
	}
	vs := []Vec{New(1, -1, 0), New(0.5, 2, -3), New(-7, 0.1, 0.2)}

	for _, n := range normals {
		for _, v := range vs {
			r := Reflect(v, n)
			if math.Abs(r.Length()-v.Length()) > 1e-12 {
				t.Errorf("Reflect(%v, %v): expected length %v, got %v", v, n, v.Length(), r.Length())
			}
		}
	}

	if got := Reflect(New(1, -1, 0), New(0, 1, 0)); got != New(1, 1, 0) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		t, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.25, 0, 1, 0.25},
		{7, 0, 1, 1},
		{0.05, 0.1, 1, 0.1},
	}
	for _, tt := range tests {
		got := Clamp(tt.t, tt.lo, tt.hi)
		if got != tt.want {
			t.Errorf("Clamp(%v, %v, %v): expected %v, got %v", tt.t, tt.lo, tt.hi, tt.want, got)
		}
		if again := Clamp(got, tt.lo, tt.hi); again != got {
			t.Errorf("Clamp should be idempotent: %v then %v", got, again)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !New(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if New(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if New(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

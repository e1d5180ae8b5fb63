package nxcube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable 3-component vector.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns a Vector3 with the given components.
func Vec(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func fromMgl(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Add returns v + u.
func (v Vector3) Add(u Vector3) Vector3 {
	return fromMgl(v.mgl().Add(u.mgl()))
}

// Sub returns v - u.
func (v Vector3) Sub(u Vector3) Vector3 {
	return fromMgl(v.mgl().Sub(u.mgl()))
}

// Scale returns v * s.
func (v Vector3) Scale(s float64) Vector3 {
	return fromMgl(v.mgl().Mul(s))
}

// Dot returns the dot product of v and u.
func (v Vector3) Dot(u Vector3) float64 {
	return v.mgl().Dot(u.mgl())
}

// Cross returns the cross product v × u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return fromMgl(v.mgl().Cross(u.mgl()))
}

// Len returns the Euclidean length of v.
func (v Vector3) Len() float64 {
	return v.mgl().Len()
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector3) Normalized() Vector3 {
	if v.Len() == 0 {
		return v
	}
	return fromMgl(v.mgl().Normalize())
}

// Component returns the coordinate of v along the given axis.
func (v Vector3) Component(a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Rounded snaps each component to the nearest multiple of unit.
func (v Vector3) Rounded(unit float64) Vector3 {
	snap := func(c float64) float64 {
		r := math.Round(c/unit) * unit
		if r == 0 {
			return 0 // drop negative zero
		}
		return r
	}
	return Vector3{X: snap(v.X), Y: snap(v.Y), Z: snap(v.Z)}
}

// ApproxEqual reports whether every component of v and u differs by at most eps.
func (v Vector3) ApproxEqual(u Vector3, eps float64) bool {
	return math.Abs(v.X-u.X) <= eps &&
		math.Abs(v.Y-u.Y) <= eps &&
		math.Abs(v.Z-u.Z) <= eps
}

// String returns a compact representation such as (1, -0.5, 0).
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

package nxcube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix3 is a 3x3 matrix. Rows and columns are addressed with At(row, col)
// regardless of the column-major storage of the backing mgl64.Mat3.
type Matrix3 struct {
	m mgl64.Mat3
}

// Identity returns the 3x3 identity matrix.
func Identity() Matrix3 {
	return Matrix3{m: mgl64.Ident3()}
}

// NewMatrix3 builds a matrix from its three rows.
func NewMatrix3(row0, row1, row2 Vector3) Matrix3 {
	return Matrix3{m: mgl64.Mat3FromRows(row0.mgl(), row1.mgl(), row2.mgl())}
}

// RotationX returns the right-handed rotation by angle radians about the x axis.
func RotationX(angle float64) Matrix3 {
	return Matrix3{m: mgl64.Rotate3DX(angle)}
}

// RotationY returns the right-handed rotation by angle radians about the y axis.
func RotationY(angle float64) Matrix3 {
	return Matrix3{m: mgl64.Rotate3DY(angle)}
}

// RotationZ returns the right-handed rotation by angle radians about the z axis.
func RotationZ(angle float64) Matrix3 {
	return Matrix3{m: mgl64.Rotate3DZ(angle)}
}

// Rotation returns the rotation by angle radians about the given axis.
func Rotation(a Axis, angle float64) Matrix3 {
	switch a {
	case AxisX:
		return RotationX(angle)
	case AxisY:
		return RotationY(angle)
	default:
		return RotationZ(angle)
	}
}

// At returns the element at the given row and column.
func (a Matrix3) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Mul returns a × b. Applied to a vector, b acts first.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	return Matrix3{m: a.m.Mul3(b.m)}
}

// MulVec returns a × v.
func (a Matrix3) MulVec(v Vector3) Vector3 {
	return fromMgl(a.m.Mul3x1(v.mgl()))
}

// Det returns the determinant.
func (a Matrix3) Det() float64 {
	return a.m.Det()
}

// Transpose returns the transposed matrix.
func (a Matrix3) Transpose() Matrix3 {
	return Matrix3{m: a.m.Transpose()}
}

// Rounded snaps every element to the nearest integer. Quarter-turn rotations
// built from floating point sines are exact after rounding.
func (a Matrix3) Rounded() Matrix3 {
	var r mgl64.Mat3
	for i, v := range a.m {
		r[i] = math.Round(v)
		if r[i] == 0 {
			r[i] = 0 // -0
		}
	}
	return Matrix3{m: r}
}

// ApproxEqual reports whether all elements of a and b differ by at most eps.
// The comparison is absolute, so near-zero entries of opposite sign match.
func (a Matrix3) ApproxEqual(b Matrix3, eps float64) bool {
	for i := range a.m {
		if math.Abs(a.m[i]-b.m[i]) > eps {
			return false
		}
	}
	return true
}

// IsRotation reports whether a is orthonormal with determinant +1.
func (a Matrix3) IsRotation(eps float64) bool {
	if math.Abs(a.Det()-1) > eps {
		return false
	}
	return a.Mul(a.Transpose()).ApproxEqual(Identity(), eps)
}

package nxcube

// Face is a move label: one of the six outer faces, or one of the three
// cube axes used for whole-cube rotations.
type Face string

const (
	FaceF Face = "F" // Front, +z
	FaceB Face = "B" // Back, -z
	FaceL Face = "L" // Left, -x
	FaceR Face = "R" // Right, +x
	FaceU Face = "U" // Up, +y
	FaceD Face = "D" // Down, -y

	FaceX Face = "x" // Whole cube about x
	FaceY Face = "y" // Whole cube about y
	FaceZ Face = "z" // Whole cube about z
)

// Faces lists the six outer faces in display order.
var Faces = []Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

// Axis identifies a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// crease maps a label to the axis it turns about and the quarter-turn count
// that one canonical turn of it represents (1 = +90 degrees, 3 = -90 degrees).
type crease struct {
	axis     Axis
	quarters int
}

var creases = map[Face]crease{
	FaceF: {AxisZ, 1},
	FaceB: {AxisZ, 3},
	FaceL: {AxisX, 1},
	FaceR: {AxisX, 3},
	FaceU: {AxisY, 1},
	FaceD: {AxisY, 3},
	FaceX: {AxisX, 1},
	FaceY: {AxisY, 1},
	FaceZ: {AxisZ, 1},
}

// placement locates a face on the lattice: the axis it lies on and the sign
// of its outward normal along that axis. Used only to select layers.
type placement struct {
	axis Axis
	sign int
}

var placements = map[Face]placement{
	FaceF: {AxisZ, 1},
	FaceB: {AxisZ, -1},
	FaceL: {AxisX, -1},
	FaceR: {AxisX, 1},
	FaceU: {AxisY, 1},
	FaceD: {AxisY, -1},
}

// Valid reports whether f is a known face or axis label.
func (f Face) Valid() bool {
	_, ok := creases[f]
	return ok
}

// IsAxis reports whether f names a whole-cube rotation.
func (f Face) IsAxis() bool {
	return f == FaceX || f == FaceY || f == FaceZ
}

// Axis returns the axis f turns about.
func (f Face) Axis() Axis {
	return creases[f].axis
}

// Normal returns the outward unit normal of an outer face in the solved
// orientation. Axis labels return the positive direction of their axis.
func (f Face) Normal() Vector3 {
	if p, ok := placements[f]; ok {
		return axisVector(p.axis, float64(p.sign))
	}
	return axisVector(f.Axis(), 1)
}

func axisVector(a Axis, s float64) Vector3 {
	switch a {
	case AxisX:
		return Vector3{X: s}
	case AxisY:
		return Vector3{Y: s}
	default:
		return Vector3{Z: s}
	}
}

// axisLabel returns the whole-cube label that turns about a.
func axisLabel(a Axis) Face {
	switch a {
	case AxisX:
		return FaceX
	case AxisY:
		return FaceY
	default:
		return FaceZ
	}
}

package nxcube

// Predefined outer-layer moves and whole-cube rotations.
//
// Example:
//
//	cube.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
var (
	// Outer face moves
	F, FPrime, FDouble = outer(FaceF)
	B, BPrime, BDouble = outer(FaceB)
	L, LPrime, LDouble = outer(FaceL)
	R, RPrime, RDouble = outer(FaceR)
	U, UPrime, UDouble = outer(FaceU)
	D, DPrime, DDouble = outer(FaceD)

	// Whole-cube rotations
	X, XPrime, XDouble = outer(FaceX)
	Y, YPrime, YDouble = outer(FaceY)
	Z, ZPrime, ZDouble = outer(FaceZ)
)

func outer(f Face) (quarter, reverse, half Move) {
	return Move{Face: f, Turns: 1, Layers: 1},
		Move{Face: f, Turns: 3, Layers: 1},
		Move{Face: f, Turns: 2, Layers: 1}
}

// Slice returns the move turning face over the outer layers slices.
func Slice(face Face, turns, layers int) Move {
	return Move{Face: face, Turns: turns, Layers: layers}
}

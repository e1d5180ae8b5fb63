// Package nxcube provides a move engine for NxNxN twisty cube puzzles.
//
// A Cube is a set of pieces on the lattice points of its outer shell. Each
// piece tracks its position and, for every face label it carries, the
// outward direction that label currently points in. Moves rotate the
// pieces of one or more layers, or of the whole cube, about an axis.
//
// # Features
//
//   - Any dimension from 1 upward, odd or even
//   - Face, multi-layer and whole-cube moves
//   - Stepped turns for animation, advanced in lockstep across pieces
//   - Move notation parsing and rendering
//   - Sticker view of each face
//
// # Quick Start
//
//	cube, err := nxcube.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply moves using predefined constants
//	cube.Apply(nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime)
//
//	// Or from notation: face, layer count, optional ' or *2
//	if err := cube.ApplyNotation("F1 R2 U1' x1*2"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(cube)
//
// # Animated Turns
//
// Begin returns a Turn that a renderer advances one increment at a time:
//
//	turn, err := cube.Begin(nxcube.Slice(nxcube.FaceR, 1, 2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for turn.Step() {
//	    draw(cube.Pieces())
//	    time.Sleep(nxcube.DefaultTick)
//	}
//
// # Turn Direction
//
// Each label has a canonical positive direction: F, L, U and x, y, z turn
// +90 degrees about their axis, B, R and D turn -90 degrees. A turn count
// of 3 is a reverse quarter turn, animated the short way round.
package nxcube

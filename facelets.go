package nxcube

import (
	"fmt"
	"math"
	"strings"
)

// view orients a face for display: its outward normal plus the directions
// of increasing column and of the top row as seen from outside the cube.
type view struct {
	normal, right, up Vector3
}

var views = map[Face]view{
	FaceF: {normal: Vec(0, 0, 1), right: Vec(1, 0, 0), up: Vec(0, 1, 0)},
	FaceB: {normal: Vec(0, 0, -1), right: Vec(-1, 0, 0), up: Vec(0, 1, 0)},
	FaceR: {normal: Vec(1, 0, 0), right: Vec(0, 0, -1), up: Vec(0, 1, 0)},
	FaceL: {normal: Vec(-1, 0, 0), right: Vec(0, 0, 1), up: Vec(0, 1, 0)},
	FaceU: {normal: Vec(0, 1, 0), right: Vec(1, 0, 0), up: Vec(0, 0, -1)},
	FaceD: {normal: Vec(0, -1, 0), right: Vec(1, 0, 0), up: Vec(0, 0, 1)},
}

type latticeKey [3]int

func keyOf(v Vector3) latticeKey {
	return latticeKey{
		int(math.Round(2 * v.X)),
		int(math.Round(2 * v.Y)),
		int(math.Round(2 * v.Z)),
	}
}

// Facelets returns the sticker labels showing on face, row by row from the
// top as seen from outside. Each entry is the original face label of the
// sticker now facing that way. A turn in progress is ignored: the grid
// shows the cube as of the last completed move.
func (c *Cube) Facelets(face Face) ([][]Face, error) {
	if _, ok := views[face]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFace, string(face))
	}

	c.mu.Lock()
	states := c.stableStates()
	c.mu.Unlock()

	return facelets(c.dimensions, indexStates(states), face), nil
}

func indexStates(states []PieceState) map[latticeKey]PieceState {
	byPos := make(map[latticeKey]PieceState, len(states))
	for _, st := range states {
		byPos[keyOf(st.Position)] = st
	}
	return byPos
}

func facelets(d int, byPos map[latticeKey]PieceState, face Face) [][]Face {
	v := views[face]
	h := float64(d-1) / 2

	grid := make([][]Face, d)
	for row := 0; row < d; row++ {
		grid[row] = make([]Face, d)
		for col := 0; col < d; col++ {
			pos := v.normal.Scale(h).
				Add(v.right.Scale(float64(col) - h)).
				Add(v.up.Scale(h - float64(row)))
			grid[row][col] = stickerLabel(byPos[keyOf(pos)], v.normal)
		}
	}
	return grid
}

// stickerLabel returns the label of st pointing along normal, or "" if none.
func stickerLabel(st PieceState, normal Vector3) Face {
	for label, dir := range st.Direction {
		if dir.ApproxEqual(normal, 1e-6) {
			return label
		}
	}
	return ""
}

// IsSolved reports whether every face shows a single label.
func (c *Cube) IsSolved() bool {
	c.mu.Lock()
	byPos := indexStates(c.stableStates())
	c.mu.Unlock()

	for _, face := range Faces {
		grid := facelets(c.dimensions, byPos, face)
		want := grid[0][0]
		for _, row := range grid {
			for _, label := range row {
				if label != want {
					return false
				}
			}
		}
	}
	return true
}

// Net returns all six faces keyed by face.
func (c *Cube) Net() map[Face][][]Face {
	c.mu.Lock()
	byPos := indexStates(c.stableStates())
	c.mu.Unlock()

	net := make(map[Face][][]Face, len(Faces))
	for _, face := range Faces {
		net[face] = facelets(c.dimensions, byPos, face)
	}
	return net
}

// String returns the unfolded net:
//
//	  U
//	L F R B
//	  D
func (c *Cube) String() string {
	net := c.Net()
	d := c.dimensions
	indent := strings.Repeat(" ", 2*d)

	var b strings.Builder
	writeRow := func(face Face, row int) {
		for _, label := range net[face][row] {
			b.WriteString(labelString(label))
			b.WriteByte(' ')
		}
	}

	for row := 0; row < d; row++ {
		b.WriteString(indent)
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < d; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < d; row++ {
		b.WriteString(indent)
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}
	return b.String()
}

func labelString(f Face) string {
	if f == "" {
		return "?"
	}
	return string(f)
}

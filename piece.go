package nxcube

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultSteps is the number of equal increments a single turn is split into.
	DefaultSteps = 10

	// DefaultTick is the pause between increments used by animated drivers.
	DefaultTick = 20 * time.Millisecond
)

// PieceState is a read-only copy of a piece: its lattice position and the
// outward vector currently carried by each of its face labels.
type PieceState struct {
	Position  Vector3          `json:"position"`
	Direction map[Face]Vector3 `json:"direction"`
}

// Labels returns the face labels of the piece in display order.
func (s PieceState) Labels() []Face {
	labels := make([]Face, 0, len(s.Direction))
	for _, f := range Faces {
		if _, ok := s.Direction[f]; ok {
			labels = append(labels, f)
		}
	}
	return labels
}

func (s PieceState) clone() PieceState {
	dir := make(map[Face]Vector3, len(s.Direction))
	for k, v := range s.Direction {
		dir[k] = v
	}
	return PieceState{Position: s.Position, Direction: dir}
}

// Piece is a single cell of the cube. It owns its position and its mapping
// from face label to outward direction; the set of labels never changes
// after construction.
type Piece struct {
	dimensions int
	position   Vector3
	direction  map[Face]Vector3
}

// NewPiece creates a piece of a cube with the given dimension. The direction
// map is copied.
func NewPiece(dimensions int, position Vector3, direction map[Face]Vector3) *Piece {
	st := PieceState{Position: position, Direction: direction}.clone()
	return &Piece{
		dimensions: dimensions,
		position:   st.Position,
		direction:  st.Direction,
	}
}

// Dimensions returns the size of the parent cube.
func (p *Piece) Dimensions() int {
	return p.dimensions
}

// Position returns the current position of the piece.
func (p *Piece) Position() Vector3 {
	return p.position
}

// Direction returns the outward vector currently carried by face.
func (p *Piece) Direction(face Face) (Vector3, bool) {
	v, ok := p.direction[face]
	return v, ok
}

// State returns a copy of the piece.
func (p *Piece) State() PieceState {
	return PieceState{Position: p.position, Direction: p.direction}.clone()
}

// Identify reports whether the piece carries the face label at all,
// regardless of where that label currently points.
func (p *Piece) Identify(face Face) bool {
	_, ok := p.direction[face]
	return ok
}

// IsOnLayer reports whether coord, the piece's coordinate along a face's
// axis, lies within the outer layers slices counted inward from that face:
//
//	(d+1)/2 - layers <= coord*sign < (d+1)/2
//
// Both sides are doubled so half-integer lattices of even cubes compare
// exactly.
func (p *Piece) IsOnLayer(coord float64, layers, sign int) bool {
	twice := int(math.Round(2 * coord * float64(sign)))
	return p.dimensions+1-2*layers <= twice && twice < p.dimensions+1
}

// selected reports whether a move of face over layers slices carries this
// piece. Whole-cube labels carry every piece.
func (p *Piece) selected(face Face, layers int) bool {
	pl, ok := placements[face]
	if !ok {
		return true
	}
	return p.IsOnLayer(p.position.Component(pl.axis), layers, pl.sign)
}

// ApplyRotationStep rotates the piece by theta radians about the axis face
// turns about, left-multiplying the position and every direction. An
// unknown label leaves the piece untouched.
func (p *Piece) ApplyRotationStep(face Face, theta float64) error {
	c, ok := creases[face]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFace, face)
	}
	p.transform(Rotation(c.axis, theta))
	return nil
}

func (p *Piece) transform(m Matrix3) {
	p.position = m.MulVec(p.position)
	for k, v := range p.direction {
		p.direction[k] = m.MulVec(v)
	}
}

// settle places the piece on the exact image of start under m, discarding
// the floating point drift accumulated by intermediate steps.
func (p *Piece) settle(start PieceState, m Matrix3) {
	p.position = m.MulVec(start.Position).Rounded(0.5)
	for k, v := range start.Direction {
		p.direction[k] = m.MulVec(v).Rounded(1)
	}
}

// MakeMove turns the piece if it lies on the selected layers of face.
// turns is 1, 2 or 3 (3 is a reverse quarter turn) and layers counts slices
// from the face inward. The rotation is applied in DefaultSteps increments.
func (p *Piece) MakeMove(face Face, turns, layers int) error {
	rot, err := resolve(face, turns, layers, p.dimensions)
	if err != nil {
		return err
	}
	if !p.selected(face, layers) || rot.quarters == 0 {
		return nil
	}

	start := p.State()
	label, theta := axisLabel(rot.axis), rot.angle()/DefaultSteps
	for i := 1; i < DefaultSteps; i++ {
		_ = p.ApplyRotationStep(label, theta)
	}
	p.settle(start, rot.exact())
	return nil
}

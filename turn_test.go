package nxcube

import (
	"errors"
	"math"
	"testing"
)

func TestTurnSteps(t *testing.T) {
	c := mustNew(t, 3)
	turn, err := c.Begin(F)
	if err != nil {
		t.Fatal(err)
	}

	more := 0
	for turn.Step() {
		more++
	}
	if more != DefaultSteps-1 {
		t.Errorf("Step reported more work %d times, want %d", more, DefaultSteps-1)
	}
	if !turn.Done() || c.Busy() {
		t.Error("turn should be finished")
	}
	if turn.Step() {
		t.Error("Step after the last increment should report false")
	}

	want := mustNew(t, 3)
	if err := want.Apply(F); err != nil {
		t.Fatal(err)
	}
	if !sameSnapshot(c.Pieces(), want.Pieces()) {
		t.Error("stepped turn differs from Apply")
	}
}

func TestTurnHalfway(t *testing.T) {
	c := mustNew(t, 3)
	turn, err := c.Begin(F)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < DefaultSteps/2; i++ {
		turn.Step()
	}

	if step, total := turn.Progress(); step != DefaultSteps/2 || total != DefaultSteps {
		t.Errorf("Progress = %d/%d", step, total)
	}
	if math.Abs(turn.Angle()-math.Pi/2) > eps {
		t.Errorf("Angle = %v, want pi/2", turn.Angle())
	}

	// the (1, 1, 1) corner is generated last; 45 degrees about z puts it on the y axis
	pieces := c.Pieces()
	corner := pieces[len(pieces)-1]
	if want := Vec(0, math.Sqrt2, 1); !corner.Position.ApproxEqual(want, 1e-9) {
		t.Errorf("corner at %v, want %v", corner.Position, want)
	}

	// stickers still read the last completed move
	if !c.IsSolved() {
		t.Error("a cube mid-turn should read as its pre-turn state")
	}
	grid, err := c.Facelets(FaceU)
	if err != nil {
		t.Fatal(err)
	}
	if grid[2][2] != FaceU {
		t.Errorf("U facelet mid-turn = %s", grid[2][2])
	}

	turn.Finish()
	if c.IsSolved() {
		t.Error("F should scramble the cube once finished")
	}
}

func TestTurnBlocksOtherMoves(t *testing.T) {
	c := mustNew(t, 3)
	turn, err := c.Begin(Slice(FaceR, 3, 2))
	if err != nil {
		t.Fatal(err)
	}
	turn.Step()

	if !c.Busy() {
		t.Error("cube should be busy")
	}
	if err := c.Apply(U); !errors.Is(err, ErrMoveInProgress) {
		t.Errorf("Apply: got %v, want ErrMoveInProgress", err)
	}
	if _, err := c.Begin(U); !errors.Is(err, ErrMoveInProgress) {
		t.Errorf("Begin: got %v, want ErrMoveInProgress", err)
	}
	if err := c.Reset(); !errors.Is(err, ErrMoveInProgress) {
		t.Errorf("Reset: got %v, want ErrMoveInProgress", err)
	}

	turn.Finish()
	if err := c.Apply(U); err != nil {
		t.Errorf("Apply after finish: %v", err)
	}
}

func TestTurnReverseAngle(t *testing.T) {
	c := mustNew(t, 3)
	tests := []struct {
		move Move
		want float64
	}{
		{F, math.Pi / 2},
		{B, -math.Pi / 2},
		{BPrime, math.Pi / 2},
		{RDouble, math.Pi},
		{XPrime, -math.Pi / 2},
	}
	for _, tt := range tests {
		turn, err := c.Begin(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(turn.Angle()-tt.want) > eps {
			t.Errorf("%s: angle %v, want %v", tt.move, turn.Angle(), tt.want)
		}
		if turn.Move() != tt.move {
			t.Errorf("Move() = %v, want %v", turn.Move(), tt.move)
		}
		turn.Finish()
	}
}

func TestBeginRejectsInvalidMove(t *testing.T) {
	c := mustNew(t, 2)
	if _, err := c.Begin(Slice(FaceL, 1, 3)); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("got %v, want ErrInvalidLayer", err)
	}
	if c.Busy() {
		t.Error("a rejected move must not leave the cube busy")
	}
}

func TestSingleStepTurn(t *testing.T) {
	c := mustNew(t, 3, WithSteps(1))
	turn, err := c.Begin(U)
	if err != nil {
		t.Fatal(err)
	}
	if turn.Step() {
		t.Error("a one-step turn finishes on its first step")
	}

	want := mustNew(t, 3)
	if err := want.Apply(U); err != nil {
		t.Fatal(err)
	}
	if !sameSnapshot(c.Pieces(), want.Pieces()) {
		t.Error("step count must not change the result")
	}
}

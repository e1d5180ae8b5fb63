package nxcube

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// rotation is a move translated to the axis level: a number of positive
// quarter turns about one axis.
type rotation struct {
	axis     Axis
	quarters int // 0..3; 3 is applied as -90 degrees
}

// resolve validates a move against a cube of dimension dim and translates
// the face-level request to an axis rotation.
func resolve(face Face, turns, layers, dim int) (rotation, error) {
	c, ok := creases[face]
	if !ok {
		return rotation{}, fmt.Errorf("%w: %q", ErrInvalidFace, string(face))
	}
	if turns < 1 || turns > 3 {
		return rotation{}, fmt.Errorf("%w: %d", ErrInvalidTurns, turns)
	}
	if layers < 1 || layers > dim {
		return rotation{}, fmt.Errorf("%w: %d (cube is %dx%dx%d)", ErrInvalidLayer, layers, dim, dim, dim)
	}
	return rotation{axis: c.axis, quarters: turns * c.quarters % 4}, nil
}

// angle returns the signed angle of the whole rotation. Three quarters is
// taken the short way round.
func (r rotation) angle() float64 {
	if r.quarters == 3 {
		return -math.Pi / 2
	}
	return float64(r.quarters) * math.Pi / 2
}

// exact returns the rotation matrix with integer entries.
func (r rotation) exact() Matrix3 {
	return Rotation(r.axis, r.angle()).Rounded()
}

// Turn is a move in progress. It advances every selected piece one
// increment per Step, so all pieces move in lockstep; the cube accepts no
// other move until the turn has finished.
type Turn struct {
	cube  *Cube
	move  Move
	rot   rotation
	label Face
	theta float64
	exact Matrix3

	steps int
	step  int

	index  []int // positions of the selected pieces in cube.pieces
	starts []PieceState
}

// Move returns the move being performed.
func (t *Turn) Move() Move {
	return t.move
}

// Angle returns the signed total angle of the turn in radians.
func (t *Turn) Angle() float64 {
	return t.rot.angle()
}

// Progress returns the number of completed steps and the total.
func (t *Turn) Progress() (step, total int) {
	t.cube.mu.Lock()
	defer t.cube.mu.Unlock()
	return t.step, t.steps
}

// Done reports whether every step has been applied.
func (t *Turn) Done() bool {
	t.cube.mu.Lock()
	defer t.cube.mu.Unlock()
	return t.step >= t.steps
}

// Step applies the next increment to every selected piece and reports
// whether more steps remain. The last step leaves each piece on its exact
// lattice position.
func (t *Turn) Step() bool {
	t.cube.mu.Lock()
	defer t.cube.mu.Unlock()
	return t.advance()
}

// Finish applies all remaining steps.
func (t *Turn) Finish() {
	t.cube.mu.Lock()
	defer t.cube.mu.Unlock()
	for t.advance() {
	}
}

// advance must be called with cube.mu held.
func (t *Turn) advance() bool {
	if t.step >= t.steps {
		return false
	}
	t.step++

	c := t.cube
	if t.step < t.steps {
		c.fanOut(len(t.index), func(i int) {
			_ = c.pieces[t.index[i]].ApplyRotationStep(t.label, t.theta)
		})
		return true
	}

	c.fanOut(len(t.index), func(i int) {
		c.pieces[t.index[i]].settle(t.starts[i], t.exact)
	})
	c.active = nil
	c.cfg.logger.Debug("turn finished",
		zap.String("move", t.move.Notation()),
		zap.Int("pieces", len(t.index)),
		zap.Int("steps", t.steps),
	)
	return false
}

// newTurn validates m and captures the pieces it selects. It must be called
// with c.mu held and mutates nothing.
func (c *Cube) newTurn(m Move) (*Turn, error) {
	rot, err := resolve(m.Face, m.Turns, m.Layers, c.dimensions)
	if err != nil {
		return nil, err
	}

	t := &Turn{
		cube:  c,
		move:  m,
		rot:   rot,
		label: axisLabel(rot.axis),
		theta: rot.angle() / float64(c.cfg.steps),
		exact: rot.exact(),
		steps: c.cfg.steps,
	}
	if rot.quarters == 0 {
		return t, nil
	}
	for i, p := range c.pieces {
		if p.selected(m.Face, m.Layers) {
			t.index = append(t.index, i)
			t.starts = append(t.starts, p.State())
		}
	}
	return t, nil
}

// fanOut calls fn for every index in [0, n). With parallelism above one the
// range is split across a bounded group of goroutines; fanOut returns only
// once every call has completed.
func (c *Cube) fanOut(n int, fn func(i int)) {
	workers := c.cfg.parallelism
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
}

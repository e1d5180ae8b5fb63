package nxcube

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Snapshot is a read-only copy of a whole cube, as handed to renderers.
type Snapshot struct {
	Dimensions int          `json:"dimensions"`
	Seed       int64        `json:"seed"`
	Pieces     []PieceState `json:"pieces"`
}

// Cube is an NxNxN twisty cube made of the pieces on its outer shell.
// All methods are safe for concurrent use. While a Turn is active the cube
// rejects other moves and resets with ErrMoveInProgress.
type Cube struct {
	cfg        *config
	dimensions int

	mu     sync.Mutex
	pieces []*Piece
	active *Turn
}

// New creates a solved cube of the given dimension.
func New(dimensions int, opts ...Option) (*Cube, error) {
	if dimensions < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dimensions)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		cfg:        cfg,
		dimensions: dimensions,
		pieces:     initializePieces(dimensions),
	}
	cfg.logger.Debug("cube created",
		zap.Int("dimensions", dimensions),
		zap.Int("pieces", len(c.pieces)),
		zap.Int64("seed", cfg.seed),
	)
	return c, nil
}

// initializePieces builds the solved shell of a cube of dimension d.
// Coordinates along each axis are i-(d-1)/2 for i in [0, d); a point is on
// the shell when any coordinate reaches the extremum (d-1)/2. Work is done
// in doubled coordinates so even cubes stay integral.
func initializePieces(d int) []*Piece {
	h := d - 1 // doubled extremum
	pieces := make([]*Piece, 0, shellSize(d))

	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			for k := 0; k < d; k++ {
				x, y, z := 2*i-h, 2*j-h, 2*k-h
				if abs(x) != h && abs(y) != h && abs(z) != h {
					continue
				}

				direction := make(map[Face]Vector3, 3)
				if z == h {
					direction[FaceF] = Vec(0, 0, 1)
				}
				if z == -h {
					direction[FaceB] = Vec(0, 0, -1)
				}
				if x == -h {
					direction[FaceL] = Vec(-1, 0, 0)
				}
				if x == h {
					direction[FaceR] = Vec(1, 0, 0)
				}
				if y == h {
					direction[FaceU] = Vec(0, 1, 0)
				}
				if y == -h {
					direction[FaceD] = Vec(0, -1, 0)
				}

				pos := Vec(float64(x)/2, float64(y)/2, float64(z)/2)
				pieces = append(pieces, &Piece{dimensions: d, position: pos, direction: direction})
			}
		}
	}
	return pieces
}

// shellSize returns d^3 - max(d-2, 0)^3.
func shellSize(d int) int {
	inner := max(d-2, 0)
	return d*d*d - inner*inner*inner
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Dimensions returns the cube size.
func (c *Cube) Dimensions() int {
	return c.dimensions
}

// Seed returns the seed the cube was created with.
func (c *Cube) Seed() int64 {
	return c.cfg.seed
}

// Pieces returns a copy of every piece in generation order. During a turn
// the copy reflects the latest step.
func (c *Cube) Pieces() []PieceState {
	c.mu.Lock()
	defer c.mu.Unlock()

	states := make([]PieceState, len(c.pieces))
	for i, p := range c.pieces {
		states[i] = p.State()
	}
	return states
}

// Snapshot returns a copy of the cube.
func (c *Cube) Snapshot() Snapshot {
	return Snapshot{
		Dimensions: c.dimensions,
		Seed:       c.cfg.seed,
		Pieces:     c.Pieces(),
	}
}

// stableStates returns the pieces as of the last completed move: pieces
// taking part in an active turn report their pre-turn state.
// Must be called with c.mu held.
func (c *Cube) stableStates() []PieceState {
	states := make([]PieceState, len(c.pieces))
	for i, p := range c.pieces {
		states[i] = p.State()
	}
	if t := c.active; t != nil {
		for n, i := range t.index {
			states[i] = t.starts[n].clone()
		}
	}
	return states
}

// MakeMove turns face by turns quarter turns (3 is a reverse quarter turn)
// over the outer layers slices, running every step to completion.
func (c *Cube) MakeMove(face Face, turns, layers int) error {
	return c.Apply(Move{Face: face, Turns: turns, Layers: layers})
}

// Apply performs moves in order. The whole list is validated before any
// piece is touched, so on error the cube is unchanged.
func (c *Cube) Apply(moves ...Move) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return ErrMoveInProgress
	}
	if err := c.validate(moves); err != nil {
		return err
	}

	for _, m := range moves {
		t, err := c.newTurn(m)
		if err != nil {
			return err
		}
		c.active = t
		for t.advance() {
		}
	}
	return nil
}

// Validate checks moves against the cube without turning anything. It
// returns the error Apply would return for the first bad move.
func (c *Cube) Validate(moves ...Move) error {
	return c.validate(moves)
}

func (c *Cube) validate(moves []Move) error {
	for _, m := range moves {
		if _, err := resolve(m.Face, m.Turns, m.Layers, c.dimensions); err != nil {
			return fmt.Errorf("move %s: %w", m.Notation(), err)
		}
	}
	return nil
}

// ApplyNotation parses a space-separated move list and applies it. Any
// malformed token rejects the whole list.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// Begin starts m as an animated turn. The caller advances it with
// Turn.Step; no other move is accepted until it is done.
func (c *Cube) Begin(m Move) (*Turn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return nil, ErrMoveInProgress
	}
	t, err := c.newTurn(m)
	if err != nil {
		return nil, err
	}
	c.active = t
	c.cfg.logger.Debug("turn started",
		zap.String("move", m.Notation()),
		zap.Int("pieces", len(t.index)),
	)
	return t, nil
}

// Busy reports whether a turn is in progress.
func (c *Cube) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

// Reset discards every piece and rebuilds the solved cube.
func (c *Cube) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return ErrMoveInProgress
	}
	c.pieces = initializePieces(c.dimensions)
	c.cfg.logger.Debug("cube reset", zap.Int("dimensions", c.dimensions))
	return nil
}

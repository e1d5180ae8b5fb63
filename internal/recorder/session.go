package recorder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/handle"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// ErrNoCube is returned when a session is used before a cube is opened.
var ErrNoCube = errors.New("recorder: no cube open")

// Session keeps one live cube in step with its stored move list. The cube
// is held in a handle registry under the stored cube's ID.
type Session struct {
	registry *handle.Registry
	logger   *zap.Logger

	cubeRepo *storage.CubeRepository
	moveRepo *storage.MoveRepository

	mu     sync.RWMutex
	record *storage.CubeRecord
	handle uuid.UUID
}

// NewSession creates a session over db. Cubes are built through registry.
func NewSession(db *storage.DB, registry *handle.Registry, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		registry: registry,
		logger:   logger,
		cubeRepo: storage.NewCubeRepository(db),
		moveRepo: storage.NewMoveRepository(db),
	}
}

// Create stores a new solved cube and opens it.
func (s *Session) Create(dimensions int, seed int64, notes string) (string, error) {
	if dimensions < 1 {
		return "", fmt.Errorf("%w: %d", nxcube.ErrInvalidDimension, dimensions)
	}

	id, err := s.cubeRepo.Create(dimensions, seed, notes)
	if err != nil {
		return "", err
	}
	if err := s.Open(id); err != nil {
		return "", err
	}
	return id, nil
}

// Open loads a stored cube and replays its move list into a fresh cube.
// The cube is registered only after the replay succeeds, so a failed Open
// leaves the session as it was.
func (s *Session) Open(cubeID string) error {
	rec, err := s.cubeRepo.Get(cubeID)
	if err != nil {
		return err
	}
	h, err := uuid.Parse(rec.CubeID)
	if err != nil {
		return fmt.Errorf("invalid cube id %q: %w", rec.CubeID, err)
	}

	records, err := s.moveRepo.GetByCube(rec.CubeID)
	if err != nil {
		return err
	}

	cube, err := s.registry.Build(rec.Dimensions, rec.Seed)
	if err != nil {
		return err
	}
	if err := cube.Apply(storage.ToMoves(records)...); err != nil {
		return fmt.Errorf("failed to replay cube %s: %w", rec.CubeID, err)
	}

	s.mu.Lock()
	s.registry.Adopt(h, cube)
	if s.record != nil && s.handle != h {
		s.release()
	}
	s.record = rec
	s.handle = h
	s.mu.Unlock()

	s.logger.Info("cube opened",
		zap.String("cube_id", rec.CubeID),
		zap.Int("dimensions", rec.Dimensions),
		zap.Int("moves", len(records)),
	)
	return nil
}

// release destroys the current handle. Must be called with s.mu held.
func (s *Session) release() {
	if s.record == nil {
		return
	}
	_ = s.registry.Destroy(s.handle)
	s.record = nil
	s.handle = uuid.Nil
}

// Close releases the open cube.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release()
}

// CubeID returns the ID of the open cube, or "" if none.
func (s *Session) CubeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return ""
	}
	return s.record.CubeID
}

// Record returns the stored metadata of the open cube.
func (s *Session) Record() (storage.CubeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return storage.CubeRecord{}, ErrNoCube
	}
	return *s.record, nil
}

// Cube returns the live cube.
func (s *Session) Cube() (*nxcube.Cube, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return nil, ErrNoCube
	}
	return s.registry.Get(s.handle)
}

// Apply parses a space-separated move list, applies it to the cube and
// appends it to the stored list. Nothing is stored if any move is rejected.
func (s *Session) Apply(notation string) ([]nxcube.Move, error) {
	moves, err := nxcube.ParseMoves(notation)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, ErrNoCube
	}

	cube, err := s.registry.Get(s.handle)
	if err != nil {
		return nil, err
	}
	if err := cube.Apply(moves...); err != nil {
		return nil, err
	}

	start, err := s.moveRepo.Append(s.record.CubeID, moves)
	if err != nil {
		// the live cube is ahead of the store; rebuild it from what was kept
		if rerr := s.rebuild(cube); rerr != nil {
			s.logger.Error("failed to rebuild cube", zap.String("cube_id", s.record.CubeID), zap.Error(rerr))
		}
		return nil, err
	}

	s.logger.Debug("moves recorded",
		zap.String("cube_id", s.record.CubeID),
		zap.Int("first_index", start),
		zap.String("moves", nxcube.FormatMoves(moves)),
	)
	return moves, nil
}

// rebuild resets cube and replays the stored list. Must be called with s.mu
// held.
func (s *Session) rebuild(cube *nxcube.Cube) error {
	records, err := s.moveRepo.GetByCube(s.record.CubeID)
	if err != nil {
		return err
	}
	if err := cube.Reset(); err != nil {
		return err
	}
	return cube.Apply(storage.ToMoves(records)...)
}

// History returns the stored move list of the open cube.
func (s *Session) History() ([]nxcube.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return nil, ErrNoCube
	}

	records, err := s.moveRepo.GetByCube(s.record.CubeID)
	if err != nil {
		return nil, err
	}
	return storage.ToMoves(records), nil
}

// Reset solves the cube and clears its stored move list.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return ErrNoCube
	}

	if err := s.moveRepo.Clear(s.record.CubeID); err != nil {
		return err
	}
	if err := s.registry.Reset(s.handle); err != nil {
		return err
	}
	s.logger.Info("cube reset", zap.String("cube_id", s.record.CubeID))
	return nil
}

// Delete removes the open cube from storage and releases it.
func (s *Session) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return ErrNoCube
	}

	if err := s.cubeRepo.Delete(s.record.CubeID); err != nil {
		return err
	}
	s.logger.Info("cube deleted", zap.String("cube_id", s.record.CubeID))
	s.release()
	return nil
}

// Package handle hands out opaque identifiers for live cubes so callers
// outside the process boundary never hold a cube pointer.
package handle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube"
)

// ErrUnknownHandle is returned for a handle that was never issued or has
// been destroyed.
var ErrUnknownHandle = errors.New("handle: unknown cube handle")

// Registry owns every cube it has issued a handle for.
type Registry struct {
	opts   []nxcube.Option
	logger *zap.Logger

	mu    sync.RWMutex
	cubes map[uuid.UUID]*nxcube.Cube
}

// NewRegistry creates an empty registry. opts are passed to every cube it
// creates.
func NewRegistry(logger *zap.Logger, opts ...nxcube.Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		opts:   opts,
		logger: logger,
		cubes:  make(map[uuid.UUID]*nxcube.Cube),
	}
}

// Create builds a solved cube and returns its handle.
func (r *Registry) Create(dimensions int, seed int64) (uuid.UUID, error) {
	id := uuid.New()
	if _, err := r.CreateAt(id, dimensions, seed); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateAt builds a solved cube under a caller-chosen handle, such as the
// ID of a stored cube being reopened.
func (r *Registry) CreateAt(id uuid.UUID, dimensions int, seed int64) (*nxcube.Cube, error) {
	cube, err := r.Build(dimensions, seed)
	if err != nil {
		return nil, err
	}
	r.Adopt(id, cube)
	return cube, nil
}

// Build makes a solved cube with the registry's options without issuing a
// handle for it. Adopt registers it once it is ready.
func (r *Registry) Build(dimensions int, seed int64) (*nxcube.Cube, error) {
	opts := append([]nxcube.Option{nxcube.WithLogger(r.logger)}, r.opts...)
	opts = append(opts, nxcube.WithSeed(seed))
	return nxcube.New(dimensions, opts...)
}

// Adopt registers an existing cube under id, replacing any cube already
// held there.
func (r *Registry) Adopt(id uuid.UUID, cube *nxcube.Cube) {
	r.mu.Lock()
	r.cubes[id] = cube
	r.mu.Unlock()

	r.logger.Debug("handle issued",
		zap.String("handle", id.String()),
		zap.Int("dimensions", cube.Dimensions()),
	)
}

// Get returns the cube behind id.
func (r *Registry) Get(id uuid.UUID) (*nxcube.Cube, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cube, ok := r.cubes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, id)
	}
	return cube, nil
}

// MakeMove applies m to the cube behind id.
func (r *Registry) MakeMove(id uuid.UUID, m nxcube.Move) error {
	cube, err := r.Get(id)
	if err != nil {
		return err
	}
	return cube.Apply(m)
}

// Reset returns the cube behind id to the solved state.
func (r *Registry) Reset(id uuid.UUID) error {
	cube, err := r.Get(id)
	if err != nil {
		return err
	}
	return cube.Reset()
}

// Snapshot returns a copy of the cube behind id.
func (r *Registry) Snapshot(id uuid.UUID) (nxcube.Snapshot, error) {
	cube, err := r.Get(id)
	if err != nil {
		return nxcube.Snapshot{}, err
	}
	return cube.Snapshot(), nil
}

// Destroy releases the cube behind id. The handle is invalid afterwards.
func (r *Registry) Destroy(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cubes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownHandle, id)
	}
	delete(r.cubes, id)
	r.logger.Debug("handle destroyed", zap.String("handle", id.String()))
	return nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cubes)
}

package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube/internal/handle"
	"github.com/SeamusWaldron/nxcube/internal/recorder"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var errNoActiveCube = errors.New(`no active cube; create one with "nxcube cube new" or pick one with "nxcube cube use"`)

// workspace bundles what the stored-cube commands share.
type workspace struct {
	state   *recorder.StateFile
	db      *storage.DB
	session *recorder.Session
	logger  *zap.Logger
}

func loadState() (*recorder.StateFile, error) {
	if statePath != "" {
		return recorder.NewStateFile(statePath)
	}
	return recorder.NewDefaultStateFile()
}

// resolveDBPath picks the --db flag, then the state file, then the default.
func resolveDBPath(state *recorder.StateFile) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if p := state.DBPath(); p != "" {
		return p, nil
	}
	return storage.DefaultDBPath()
}

func openWorkspace() (*workspace, error) {
	state, err := loadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	path, err := resolveDBPath(state)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if state.DBPath() != path {
		if err := state.SetDBPath(path); err != nil {
			db.Close()
			return nil, err
		}
	}

	logger := newLogger()
	registry := handle.NewRegistry(logger)
	return &workspace{
		state:   state,
		db:      db,
		session: recorder.NewSession(db, registry, logger),
		logger:  logger,
	}, nil
}

// openActive opens the cube named in the state file.
func (w *workspace) openActive() error {
	if !w.state.HasActiveCube() {
		return errNoActiveCube
	}
	if err := w.session.Open(w.state.ActiveCubeID()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_ = w.state.ClearActiveCube()
			return errNoActiveCube
		}
		return err
	}
	return nil
}

func (w *workspace) Close() {
	w.session.Close()
	w.db.Close()
	_ = w.logger.Sync()
}

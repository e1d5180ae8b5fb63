// Package recorder binds live cubes to their stored move lists.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// AppState represents the persistent CLI state.
type AppState struct {
	DBPath       string `json:"db_path"`
	ActiveCubeID string `json:"active_cube_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	dir, err := storage.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading any existing state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetActiveCube sets the cube that commands act on by default.
func (sf *StateFile) SetActiveCube(cubeID string) error {
	sf.state.ActiveCubeID = cubeID
	return sf.Save()
}

// ClearActiveCube clears the active cube ID.
func (sf *StateFile) ClearActiveCube() error {
	sf.state.ActiveCubeID = ""
	return sf.Save()
}

// HasActiveCube returns true if a cube is selected.
func (sf *StateFile) HasActiveCube() bool {
	return sf.state.ActiveCubeID != ""
}

// ActiveCubeID returns the active cube ID.
func (sf *StateFile) ActiveCubeID() string {
	return sf.state.ActiveCubeID
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}

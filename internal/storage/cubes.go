package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a cube does not exist.
var ErrNotFound = errors.New("storage: not found")

// CubeRecord represents a stored cube.
type CubeRecord struct {
	CubeID     string
	Dimensions int
	Seed       int64
	CreatedAt  time.Time
	Notes      *string
}

// CubeRepository provides CRUD operations for cubes.
type CubeRepository struct {
	db *DB
}

// NewCubeRepository creates a new cube repository.
func NewCubeRepository(db *DB) *CubeRepository {
	return &CubeRepository{db: db}
}

// Create stores a new cube and returns its ID.
func (r *CubeRepository) Create(dimensions int, seed int64, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO cubes (cube_id, dimensions, seed, created_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, dimensions, seed, createdAt.Format(time.RFC3339), notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create cube: %w", err)
	}

	return id, nil
}

// Get retrieves a cube by ID.
func (r *CubeRepository) Get(cubeID string) (*CubeRecord, error) {
	row := r.db.QueryRow(`
		SELECT cube_id, dimensions, seed, created_at, notes
		FROM cubes WHERE cube_id = ?
	`, cubeID)

	c, err := scanCube(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: cube %s", ErrNotFound, cubeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cube: %w", err)
	}
	return c, nil
}

// List returns every cube, oldest first.
func (r *CubeRepository) List() ([]CubeRecord, error) {
	rows, err := r.db.Query(`
		SELECT cube_id, dimensions, seed, created_at, notes
		FROM cubes
		ORDER BY created_at, cube_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cubes: %w", err)
	}
	defer rows.Close()

	var cubes []CubeRecord
	for rows.Next() {
		c, err := scanCube(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cube: %w", err)
		}
		cubes = append(cubes, *c)
	}
	return cubes, rows.Err()
}

// Delete removes a cube and, through the foreign key, its moves.
func (r *CubeRepository) Delete(cubeID string) error {
	result, err := r.db.Exec("DELETE FROM cubes WHERE cube_id = ?", cubeID)
	if err != nil {
		return fmt.Errorf("failed to delete cube: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete cube: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: cube %s", ErrNotFound, cubeID)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCube(s scanner) (*CubeRecord, error) {
	var c CubeRecord
	var createdAt string
	if err := s.Scan(&c.CubeID, &c.Dimensions, &c.Seed, &createdAt, &c.Notes); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	c.CreatedAt = t
	return &c, nil
}

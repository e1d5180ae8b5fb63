package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// MoveRecord represents a stored move.
type MoveRecord struct {
	MoveID    int64
	CubeID    string
	MoveIndex int
	Face      string
	Turns     int
	Layers    int
	Notation  string
	CreatedAt time.Time
}

// Move converts the record back to a move.
func (m MoveRecord) Move() nxcube.Move {
	return nxcube.Move{Face: nxcube.Face(m.Face), Turns: m.Turns, Layers: m.Layers}
}

// MoveRepository provides operations on a cube's move list.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Append stores moves after the cube's last move in a single transaction
// and returns the index of the first one.
func (r *MoveRepository) Append(cubeID string, moves []nxcube.Move) (int, error) {
	var start int
	err := r.db.Transaction(func(tx *sql.Tx) error {
		err := tx.QueryRow(`
			SELECT COALESCE(MAX(move_index), -1) + 1 FROM moves WHERE cube_id = ?
		`, cubeID).Scan(&start)
		if err != nil {
			return fmt.Errorf("failed to get next move index: %w", err)
		}

		createdAt := time.Now().UTC().Format(time.RFC3339)
		for i, m := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (cube_id, move_index, face, turns, layers, notation, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, cubeID, start+i, string(m.Face), m.Turns, m.Layers, m.Notation(), createdAt)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", start+i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return start, nil
}

// GetByCube retrieves all moves for a cube in order.
func (r *MoveRepository) GetByCube(cubeID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, cube_id, move_index, face, turns, layers, notation, created_at
		FROM moves
		WHERE cube_id = ?
		ORDER BY move_index
	`, cubeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var createdAt string
		err := rows.Scan(&m.MoveID, &m.CubeID, &m.MoveIndex, &m.Face, &m.Turns, &m.Layers, &m.Notation, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// NextIndex returns the next move index for a cube.
func (r *MoveRepository) NextIndex(cubeID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE cube_id = ?
	`, cubeID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a cube.
func (r *MoveRepository) Count(cubeID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE cube_id = ?", cubeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Clear deletes every move of a cube.
func (r *MoveRepository) Clear(cubeID string) error {
	if _, err := r.db.Exec("DELETE FROM moves WHERE cube_id = ?", cubeID); err != nil {
		return fmt.Errorf("failed to clear moves: %w", err)
	}
	return nil
}

// ToMoves converts MoveRecords to a move list.
func ToMoves(records []MoveRecord) []nxcube.Move {
	moves := make([]nxcube.Move, len(records))
	for i, r := range records {
		moves[i] = r.Move()
	}
	return moves
}

package nxcube

import "errors"

// Sentinel errors for the nxcube package.
var (
	// Move validation errors
	ErrInvalidFace  = errors.New("nxcube: invalid face")
	ErrInvalidTurns = errors.New("nxcube: invalid turn count")
	ErrInvalidLayer = errors.New("nxcube: invalid layer count")

	// Construction errors
	ErrInvalidDimension = errors.New("nxcube: invalid dimension")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")

	// State errors
	ErrMoveInProgress = errors.New("nxcube: move in progress")
)

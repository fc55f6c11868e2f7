package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Placement errors
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid board cell")
	ErrTileNotInHand    = errors.New("tile is not in the current player's hand")
	ErrBlankNeedsLetter = errors.New("blank tile needs a designated letter")
	ErrInvalidLetter    = errors.New("invalid letter")

	// Validation errors
	ErrNoTilesPlaced     = errors.New("no tiles placed")
	ErrNotInLine         = errors.New("placed tiles are not in a single row or column")
	ErrMissingCenterCell = errors.New("first word must cover the center cell")
	ErrFirstWordTooShort = errors.New("first word must be at least two letters")
	ErrTilesNotAdjacent  = errors.New("placed tiles are not adjacent")
	ErrGapInWord         = errors.New("word has a gap")
	ErrWordNotFound      = errors.New("word not found")
	ErrWordNotConnected  = errors.New("word does not connect to existing tiles")

	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrBagEmpty           = errors.New("tile bag is empty")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)

// WordNotFoundError reports the word that the dictionary rejected.
// It matches ErrWordNotFound with errors.Is.
type WordNotFoundError struct {
	Word string
}

func (e *WordNotFoundError) Error() string {
	return fmt.Sprintf("word not found: %s", e.Word)
}

func (e *WordNotFoundError) Is(target error) bool {
	return target == ErrWordNotFound
}

// IsValidationError returns true if err is a rejection of a submitted move
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrNoTilesPlaced,
		ErrNotInLine,
		ErrMissingCenterCell,
		ErrFirstWordTooShort,
		ErrTilesNotAdjacent,
		ErrGapInWord,
		ErrWordNotFound,
		ErrWordNotConnected,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

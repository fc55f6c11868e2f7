package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordtiles/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Word is set when a submitted word is not in the dictionary
	Word string `json:"word,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeInvalidCell         = "INVALID_CELL"
	CodeInvalidLetter       = "INVALID_LETTER"
	CodeInvalidPlayerCount  = "INVALID_PLAYER_COUNT"
	CodeCellOccupied        = "CELL_OCCUPIED"
	CodeTileNotInHand       = "TILE_NOT_IN_HAND"
	CodeBlankNeedsLetter    = "BLANK_NEEDS_LETTER"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeGameOver            = "GAME_OVER"
	CodeNoTilesPlaced       = "NO_TILES_PLACED"
	CodeNotInLine           = "NOT_IN_LINE"
	CodeMissingCenterCell   = "MISSING_CENTER_CELL"
	CodeFirstWordTooShort   = "FIRST_WORD_TOO_SHORT"
	CodeTilesNotAdjacent    = "TILES_NOT_ADJACENT"
	CodeGapInWord           = "GAP_IN_WORD"
	CodeWordNotFound        = "WORD_NOT_FOUND"
	CodeWordNotConnected    = "WORD_NOT_CONNECTED"
	CodeDictionaryNotLoaded = "DICTIONARY_NOT_LOADED"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error is reported with
func Status(err error) int {
	return toHTTPError(err).status
}

// validationCodes maps rejected submissions to their codes
var validationCodes = []struct {
	err  error
	code string
}{
	{model.ErrNoTilesPlaced, CodeNoTilesPlaced},
	{model.ErrNotInLine, CodeNotInLine},
	{model.ErrMissingCenterCell, CodeMissingCenterCell},
	{model.ErrFirstWordTooShort, CodeFirstWordTooShort},
	{model.ErrTilesNotAdjacent, CodeTilesNotAdjacent},
	{model.ErrGapInWord, CodeGapInWord},
	{model.ErrWordNotFound, CodeWordNotFound},
	{model.ErrWordNotConnected, CodeWordNotConnected},
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Rejected submissions
	for _, v := range validationCodes {
		if errors.Is(err, v.err) {
			apiError := APIError{Code: v.code, Message: err.Error()}
			var notFound *model.WordNotFoundError
			if errors.As(err, &notFound) {
				apiError.Word = notFound.Word
			}
			return &httpError{http.StatusUnprocessableEntity, apiError}
		}
	}

	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameOver, Message: "Game is over"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{Code: CodeCellOccupied, Message: "Cell is already occupied"}}
	case errors.Is(err, model.ErrInvalidCell):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidCell, Message: "Cell is outside the board"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidLetter, Message: "Letter must be A-Z"}}
	case errors.Is(err, model.ErrTileNotInHand):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeTileNotInHand, Message: "Tile is not in the current player's hand"}}
	case errors.Is(err, model.ErrBlankNeedsLetter):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeBlankNeedsLetter, Message: "A blank tile needs a letter"}}
	case errors.Is(err, model.ErrInvalidPlayerCount):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidPlayerCount, Message: "A game needs 2 to 4 players"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeDictionaryNotLoaded, Message: "Dictionary not loaded"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}

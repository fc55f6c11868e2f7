package board

import (
	"strings"
	"unicode"

	"github.com/mcoot/wordtiles/internal/model"
)

// EmptyCell is how Rows shows a cell without a tile
const EmptyCell = '.'

// Service validates placements and builds read-only board views
type Service struct{}

// New creates a new board Service
func New() *Service {
	return &Service{}
}

// ValidatePlacement checks if a position is on the board and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !pos.IsValid() {
		return model.ErrInvalidCell
	}
	if !board.IsEmpty(pos.Index()) {
		return model.ErrCellOccupied
	}
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	if !model.IsValidLetter(letter) {
		return model.ErrInvalidLetter
	}
	return nil
}

// PrepareTile readies a hand tile for the board. Blanks take the designated
// letter, which is required; lettered tiles ignore it.
func (s *Service) PrepareTile(tile model.Tile, letter rune) (model.Tile, error) {
	if !tile.IsBlank() {
		tile.Designated = 0
		return tile, nil
	}
	if letter == 0 {
		return model.Tile{}, model.ErrBlankNeedsLetter
	}
	if err := ValidateLetter(letter); err != nil {
		return model.Tile{}, err
	}
	tile.Designated = unicode.ToUpper(letter)
	return tile, nil
}

// Rows renders the board one string per row. Blanks show their letter in
// lower case.
func (s *Service) Rows(board *model.Board) []string {
	rows := make([]string, model.BoardSize)
	for row := range model.BoardSize {
		var sb strings.Builder
		for col := range model.BoardSize {
			tile, ok := board.TileAt(model.CellAt(row, col))
			switch {
			case !ok:
				sb.WriteRune(EmptyCell)
			case tile.IsBlank():
				sb.WriteRune(unicode.ToLower(tile.Face()))
			default:
				sb.WriteRune(tile.Face())
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// Premium is a cell with a multiplier above 1
type Premium struct {
	Position    model.Position
	LetterBonus int
	WordBonus   int
}

// Label returns the conventional short name of the premium, e.g. "TW"
func (p Premium) Label() string {
	switch {
	case p.WordBonus == 3:
		return "TW"
	case p.WordBonus == 2:
		return "DW"
	case p.LetterBonus == 3:
		return "TL"
	case p.LetterBonus == 2:
		return "DL"
	}
	return ""
}

// Premiums lists the cells of a layout that carry a multiplier
func (s *Service) Premiums(layout model.Layout) []Premium {
	var premiums []Premium
	for i := range model.CellCount {
		if layout.LetterBonus[i] == 1 && layout.WordBonus[i] == 1 {
			continue
		}
		premiums = append(premiums, Premium{
			Position:    model.CellIndex(i).Position(),
			LetterBonus: layout.LetterBonus[i],
			WordBonus:   layout.WordBonus[i],
		})
	}
	return premiums
}

// Interface for dependency injection
type ServiceInterface interface {
	ValidatePlacement(board *model.Board, pos model.Position) error
	PrepareTile(tile model.Tile, letter rune) (model.Tile, error)
	Rows(board *model.Board) []string
	Premiums(layout model.Layout) []Premium
}

var _ ServiceInterface = (*Service)(nil)

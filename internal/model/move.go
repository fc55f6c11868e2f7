package model

import "strings"

// BingoBonus is awarded when a full hand of tiles is placed in one turn
const BingoBonus = 50

// Orientation is the axis a word runs along
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Perpendicular returns the other axis
func (o Orientation) Perpendicular() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// Backward and Forward return the directions of travel along the axis
func (o Orientation) Backward() Direction {
	if o == Vertical {
		return Up
	}
	return Left
}

func (o Orientation) Forward() Direction {
	if o == Vertical {
		return Down
	}
	return Right
}

// WordTile is one letter of a formed word
type WordTile struct {
	Cell   CellIndex
	Letter rune
	Points int
	IsNew  bool // placed this turn
}

// Word is a run of letters formed by a move
type Word struct {
	Tiles       []WordTile
	Orientation Orientation
	IsMain      bool
	Unverified  bool // accepted without a dictionary lookup
}

func (w Word) String() string {
	var sb strings.Builder
	for _, t := range w.Tiles {
		sb.WriteRune(t.Letter)
	}
	return sb.String()
}

// Start returns the first cell of the word
func (w Word) Start() CellIndex {
	if len(w.Tiles) == 0 {
		return 0
	}
	return w.Tiles[0].Cell
}

// Len returns the number of letters in the word
func (w Word) Len() int {
	return len(w.Tiles)
}

// TouchesExisting returns true if any letter was already on the board
func (w Word) TouchesExisting() bool {
	for _, t := range w.Tiles {
		if !t.IsNew {
			return true
		}
	}
	return false
}

// ScoredWord is a validated word and its score
type ScoredWord struct {
	Word        string
	Score       int
	Start       CellIndex
	Orientation Orientation
	Main        bool
	Unverified  bool // accepted without a dictionary lookup
}

// MoveResult is the outcome of validating and scoring a placement
type MoveResult struct {
	Orientation Orientation
	Words       []ScoredWord
	TilesPlaced int
	Bingo       bool
	Total       int
	Warnings    []string
}

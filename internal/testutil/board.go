package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/model"
)

// existingTileID is the first ID given to tiles placed directly on a board
const existingTileID = 1000

// Tiles builds tiles for letters with IDs from firstID. '?x' is a blank
// designated as x.
func Tiles(firstID model.TileID, letters string) []model.Tile {
	var tiles []model.Tile
	runes := []rune(letters)
	for i := 0; i < len(runes); i++ {
		tile := model.Tile{ID: firstID + model.TileID(len(tiles)), Letter: runes[i]}
		if runes[i] == model.BlankLetter && i+1 < len(runes) {
			i++
			tile.Designated = runes[i]
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// Placements lays letters out from start along the orientation, one cell
// per tile. Tile IDs start at 1.
func Placements(start model.Position, o model.Orientation, letters string) []model.Placement {
	tiles := Tiles(1, letters)
	placements := make([]model.Placement, len(tiles))
	for i, t := range tiles {
		pos := start
		if o == model.Vertical {
			pos.Row += i
		} else {
			pos.Col += i
		}
		placements[i] = model.Placement{Cell: pos.Index(), Tile: t}
	}
	return placements
}

// At builds a single placement
func At(row, col int, letter rune, id model.TileID) model.Placement {
	return model.Placement{Cell: model.CellAt(row, col), Tile: model.Tile{ID: id, Letter: letter}}
}

// PlaceAll puts every placement's tile on the board
func PlaceAll(t *testing.T, board *model.Board, placements []model.Placement) {
	t.Helper()
	for _, p := range placements {
		require.NoError(t, board.Place(p.Cell, p.Tile))
	}
}

// PlaceWord puts a word on the board as tiles from an earlier turn
func PlaceWord(t *testing.T, board *model.Board, start model.Position, o model.Orientation, letters string) {
	t.Helper()
	placements := Placements(start, o, letters)
	for i := range placements {
		placements[i].Tile.ID += existingTileID + model.TileID(board.OccupiedCount())
	}
	PlaceAll(t, board, placements)
}

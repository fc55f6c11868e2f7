package move

import (
	"log/slog"
	"slices"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/scoring"
)

// WordOracle answers whether a string is a legal word, ignoring case
type WordOracle interface {
	Contains(word string) bool
}

// Service validates the tiles placed in a turn and scores the words they form
type Service struct {
	oracle  WordOracle
	scoring scoring.ServiceInterface
	logger  *slog.Logger
}

// New creates a new move Service
func New(oracle WordOracle, scoring scoring.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		oracle:  oracle,
		scoring: scoring,
		logger:  logger,
	}
}

// Evaluate checks a turn's placements against the board and returns the
// scored words. The board is expected to already hold the placed tiles; any
// occupied cell not among the placements counts as a pre-existing tile.
// Evaluate never modifies the board.
func (s *Service) Evaluate(board *model.Board, placements []model.Placement, firstTurn bool) (*model.MoveResult, error) {
	if len(placements) == 0 {
		return nil, model.ErrNoTilesPlaced
	}

	m := newPlay(board, placements)

	orientation, err := m.orientation()
	if err != nil {
		return nil, err
	}

	if firstTurn {
		if _, ok := m.placed[model.CenterCell]; !ok {
			return nil, model.ErrMissingCenterCell
		}
		if len(placements) == 1 {
			return nil, model.ErrFirstWordTooShort
		}
	}

	var main model.Word
	if firstTurn {
		main, err = m.placedWord(orientation)
	} else {
		main, err = m.mainWord(orientation)
	}
	if err != nil {
		return nil, err
	}

	var warnings []string
	if main.Len() == 1 && !firstTurn {
		main.Unverified = true
		warnings = append(warnings, "single letter main word accepted without a dictionary lookup")
		s.logger.Warn("unverified single letter play", "cell", main.Start())
	} else if !s.oracle.Contains(main.String()) {
		return nil, &model.WordNotFoundError{Word: main.String()}
	}

	crossWords := m.crossWords(orientation)
	for _, w := range crossWords {
		if !s.oracle.Contains(w.String()) {
			return nil, &model.WordNotFoundError{Word: w.String()}
		}
	}

	if !firstTurn && !m.touchedExisting {
		return nil, model.ErrWordNotConnected
	}

	result := s.scoring.ScoreMove(board, append([]model.Word{main}, crossWords...), len(placements))
	result.Orientation = orientation
	result.Warnings = warnings

	s.logger.Debug("move evaluated",
		"word", main.String(),
		"orientation", orientation.String(),
		"tiles", len(placements),
		"total", result.Total,
	)
	return result, nil
}

// play holds the working state for one evaluation
type play struct {
	board  *model.Board
	placed map[model.CellIndex]model.Tile
	cells  []model.CellIndex // sorted ascending

	// touchedExisting records whether any formed word includes a tile that
	// was on the board before this turn
	touchedExisting bool
}

func newPlay(board *model.Board, placements []model.Placement) *play {
	m := &play{
		board:  board,
		placed: make(map[model.CellIndex]model.Tile, len(placements)),
		cells:  make([]model.CellIndex, 0, len(placements)),
	}
	for _, p := range placements {
		m.placed[p.Cell] = p.Tile
		m.cells = append(m.cells, p.Cell)
	}
	slices.Sort(m.cells)
	return m
}

func (m *play) isNew(idx model.CellIndex) bool {
	_, ok := m.placed[idx]
	return ok
}

// isExisting returns true for cells holding a tile from an earlier turn
func (m *play) isExisting(idx model.CellIndex) bool {
	return !m.isNew(idx) && !m.board.IsEmpty(idx)
}

func (m *play) wordTile(idx model.CellIndex) model.WordTile {
	tile, isNew := m.placed[idx]
	if !isNew {
		tile, _ = m.board.TileAt(idx)
	}
	return model.WordTile{
		Cell:   idx,
		Letter: tile.Face(),
		Points: tile.Points(),
		IsNew:  isNew,
	}
}

// orientation decides the main axis. A lone tile runs along whichever axis
// has an adjacent tile, preferring horizontal.
func (m *play) orientation() (model.Orientation, error) {
	if len(m.cells) == 1 {
		if m.hasExistingNeighbor(m.cells[0], model.Horizontal) {
			return model.Horizontal, nil
		}
		if m.hasExistingNeighbor(m.cells[0], model.Vertical) {
			return model.Vertical, nil
		}
		return model.Horizontal, nil
	}

	sameRow, sameCol := true, true
	first := m.cells[0]
	for _, c := range m.cells[1:] {
		sameRow = sameRow && c.Row() == first.Row()
		sameCol = sameCol && c.Col() == first.Col()
	}
	switch {
	case sameRow:
		return model.Horizontal, nil
	case sameCol:
		return model.Vertical, nil
	}
	return model.Horizontal, model.ErrNotInLine
}

func (m *play) hasExistingNeighbor(idx model.CellIndex, o model.Orientation) bool {
	for _, dir := range []model.Direction{o.Backward(), o.Forward()} {
		if n, ok := idx.Neighbor(dir); ok && m.isExisting(n) {
			return true
		}
	}
	return false
}

// placedWord forms a word from the placed tiles alone. Used on the first
// turn, where the tiles must sit side by side.
func (m *play) placedWord(o model.Orientation) (model.Word, error) {
	word := model.Word{Orientation: o, IsMain: true}
	for i, c := range m.cells {
		if i > 0 {
			if next, ok := m.cells[i-1].Neighbor(o.Forward()); !ok || next != c {
				return model.Word{}, model.ErrTilesNotAdjacent
			}
		}
		word.Tiles = append(word.Tiles, m.wordTile(c))
	}
	return word, nil
}

// mainWord forms the word along the axis: existing tiles before the first
// placed tile, placed tiles with any existing tiles filling the gaps between
// them, then existing tiles after the last placed tile.
func (m *play) mainWord(o model.Orientation) (model.Word, error) {
	first, last := m.cells[0], m.cells[len(m.cells)-1]

	before := m.collect(first, o.Backward())
	slices.Reverse(before)

	word := model.Word{Orientation: o, IsMain: true}
	word.Tiles = append(word.Tiles, before...)

	for cur := first; ; {
		word.Tiles = append(word.Tiles, m.wordTile(cur))
		if cur == last {
			break
		}
		next, ok := cur.Neighbor(o.Forward())
		if !ok {
			return model.Word{}, model.ErrGapInWord
		}
		if !m.isNew(next) {
			if !m.isExisting(next) {
				return model.Word{}, model.ErrGapInWord
			}
			m.touchedExisting = true
		}
		cur = next
	}

	word.Tiles = append(word.Tiles, m.collect(last, o.Forward())...)
	return word, nil
}

// collect walks from idx in dir gathering contiguous existing tiles
func (m *play) collect(idx model.CellIndex, dir model.Direction) []model.WordTile {
	var tiles []model.WordTile
	for {
		next, ok := idx.Neighbor(dir)
		if !ok || !m.isExisting(next) {
			return tiles
		}
		tiles = append(tiles, m.wordTile(next))
		m.touchedExisting = true
		idx = next
	}
}

// crossWords finds, for each placed tile, the word formed perpendicular to
// the main axis with the existing tiles directly around it
func (m *play) crossWords(o model.Orientation) []model.Word {
	cross := o.Perpendicular()
	var words []model.Word
	for _, c := range m.cells {
		before := m.collect(c, cross.Backward())
		after := m.collect(c, cross.Forward())
		if len(before) == 0 && len(after) == 0 {
			continue
		}
		slices.Reverse(before)

		w := model.Word{Orientation: cross}
		w.Tiles = append(w.Tiles, before...)
		w.Tiles = append(w.Tiles, m.wordTile(c))
		w.Tiles = append(w.Tiles, after...)
		words = append(words, w)
	}
	return words
}

// ServiceInterface defines the move validation operations
type ServiceInterface interface {
	Evaluate(board *model.Board, placements []model.Placement, firstTurn bool) (*model.MoveResult, error)
}

var _ ServiceInterface = (*Service)(nil)

package model

const (
	// BoardSize is the number of rows and columns on the board
	BoardSize = 15
	// CellCount is the number of cells on the board
	CellCount = BoardSize * BoardSize
	// CenterCell is the index of the cell at row 7, column 7
	CenterCell CellIndex = 112
)

// CellIndex identifies a cell in row-major order, 0..224
type CellIndex int

// Position identifies a cell by row and column
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// CellAt returns the index of the cell at row, col
func CellAt(row, col int) CellIndex {
	return CellIndex(row*BoardSize + col)
}

// IsValid returns true if the index is on the board
func (c CellIndex) IsValid() bool {
	return c >= 0 && c < CellCount
}

func (c CellIndex) Row() int { return int(c) / BoardSize }
func (c CellIndex) Col() int { return int(c) % BoardSize }

// Position returns the row and column of the cell
func (c CellIndex) Position() Position {
	return Position{Row: c.Row(), Col: c.Col()}
}

// IsValid returns true if the position is within bounds
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Index returns the cell index of the position
func (p Position) Index() CellIndex {
	return CellAt(p.Row, p.Col)
}

// Direction is one of the four grid directions
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Neighbor returns the adjacent cell in the given direction. The second
// return value is false at the edge of the board.
func (c CellIndex) Neighbor(dir Direction) (CellIndex, bool) {
	if !c.IsValid() {
		return 0, false
	}
	switch dir {
	case Left:
		if c.Col() == 0 {
			return 0, false
		}
		return c - 1, true
	case Right:
		if c.Col() == BoardSize-1 {
			return 0, false
		}
		return c + 1, true
	case Up:
		if c < BoardSize {
			return 0, false
		}
		return c - BoardSize, true
	case Down:
		if c >= CellCount-BoardSize {
			return 0, false
		}
		return c + BoardSize, true
	}
	return 0, false
}

// Cell is a read-only view of one board position
type Cell struct {
	Index       CellIndex
	LetterBonus int
	WordBonus   int
	Tile        *Tile // nil when empty
}

// IsEmpty returns true if no tile occupies the cell
func (c Cell) IsEmpty() bool {
	return c.Tile == nil
}

// Board is the 15x15 grid. Bonuses come from the layout fixed at
// construction; occupancy is the only thing that changes.
type Board struct {
	Layout Layout
	Tiles  [CellCount]*Tile
}

// NewBoard creates an empty board with the given bonus layout
func NewBoard(layout Layout) *Board {
	return &Board{Layout: layout}
}

// CellAt returns a view of the cell at the given index
func (b *Board) CellAt(idx CellIndex) (Cell, error) {
	if !idx.IsValid() {
		return Cell{}, ErrInvalidCell
	}
	cell := Cell{
		Index:       idx,
		LetterBonus: b.Layout.LetterBonus[idx],
		WordBonus:   b.Layout.WordBonus[idx],
	}
	if t := b.Tiles[idx]; t != nil {
		tile := *t
		cell.Tile = &tile
	}
	return cell, nil
}

// TileAt returns the tile at the given index, if any
func (b *Board) TileAt(idx CellIndex) (Tile, bool) {
	if !idx.IsValid() || b.Tiles[idx] == nil {
		return Tile{}, false
	}
	return *b.Tiles[idx], true
}

// IsEmpty returns true if the cell at the given index holds no tile
func (b *Board) IsEmpty(idx CellIndex) bool {
	return idx.IsValid() && b.Tiles[idx] == nil
}

// Place puts a tile in an empty cell
func (b *Board) Place(idx CellIndex, tile Tile) error {
	if !idx.IsValid() {
		return ErrInvalidCell
	}
	if b.Tiles[idx] != nil {
		return ErrCellOccupied
	}
	b.Tiles[idx] = &tile
	return nil
}

// Remove takes the tile out of a cell and returns it
func (b *Board) Remove(idx CellIndex) (Tile, bool) {
	tile, ok := b.TileAt(idx)
	if ok {
		b.Tiles[idx] = nil
	}
	return tile, ok
}

// LetterBonus returns the printed letter multiplier of a cell
func (b *Board) LetterBonus(idx CellIndex) int {
	if !idx.IsValid() {
		return 1
	}
	return b.Layout.LetterBonus[idx]
}

// WordBonus returns the printed word multiplier of a cell
func (b *Board) WordBonus(idx CellIndex) int {
	if !idx.IsValid() {
		return 1
	}
	return b.Layout.WordBonus[idx]
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for _, t := range b.Tiles {
		if t != nil {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	clone := &Board{Layout: b.Layout}
	for i, t := range b.Tiles {
		if t != nil {
			tile := *t
			clone.Tiles[i] = &tile
		}
	}
	return clone
}

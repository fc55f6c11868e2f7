package model

// Layout holds the printed letter and word multipliers of every cell
type Layout struct {
	LetterBonus [CellCount]int
	WordBonus   [CellCount]int
}

var (
	tripleWordCells   = []CellIndex{0, 7, 14, 105, 119, 210, 217, 224}
	doubleWordCells   = []CellIndex{16, 28, 32, 42, 48, 56, 64, 70, 112, 154, 160, 168, 176, 182, 192, 196, 208}
	tripleLetterCells = []CellIndex{20, 24, 76, 80, 84, 88, 136, 140, 144, 148, 200, 204}
	doubleLetterCells = []CellIndex{
		3, 11, 36, 38, 45, 52, 59, 92, 96, 98, 102, 108,
		116, 122, 126, 128, 132, 165, 172, 179, 186, 188, 213, 221,
	}
)

// PlainLayout returns a layout where every multiplier is 1
func PlainLayout() Layout {
	var l Layout
	for i := range CellCount {
		l.LetterBonus[i] = 1
		l.WordBonus[i] = 1
	}
	return l
}

// StandardLayout returns the classic bonus square arrangement
func StandardLayout() Layout {
	l := PlainLayout()
	for _, idx := range tripleWordCells {
		l.WordBonus[idx] = 3
	}
	for _, idx := range doubleWordCells {
		l.WordBonus[idx] = 2
	}
	for _, idx := range tripleLetterCells {
		l.LetterBonus[idx] = 3
	}
	for _, idx := range doubleLetterCells {
		l.LetterBonus[idx] = 2
	}
	return l
}

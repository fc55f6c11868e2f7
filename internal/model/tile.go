package model

import "unicode"

// BlankLetter marks a wildcard tile that has no fixed letter
const BlankLetter = '?'

// TileID uniquely identifies a physical tile within a game
type TileID int

// Tile is a single lettered piece. Blank tiles take the letter the player
// designates when placing them and are always worth zero points.
type Tile struct {
	ID         TileID
	Letter     rune // 'A'-'Z' or BlankLetter
	Designated rune // letter chosen for a placed blank, 0 otherwise
}

// letterPoints holds the point value for 'A' through 'Z'
var letterPoints = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// LetterPoints returns the point value of a letter, 0 for blanks and anything
// outside A-Z
func LetterPoints(letter rune) int {
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return letterPoints[letter-'A']
}

// IsValidLetter returns true for the letters a tile may show on the board
func IsValidLetter(letter rune) bool {
	letter = unicode.ToUpper(letter)
	return letter >= 'A' && letter <= 'Z'
}

// IsBlank returns true for wildcard tiles
func (t Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// Face returns the letter the tile shows, the designated letter for blanks
func (t Tile) Face() rune {
	if t.IsBlank() {
		return t.Designated
	}
	return t.Letter
}

// Points returns the tile's point value
func (t Tile) Points() int {
	if t.IsBlank() {
		return 0
	}
	return LetterPoints(t.Letter)
}

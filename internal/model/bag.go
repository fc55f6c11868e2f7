package model

import "slices"

// LetterCount is the number of tiles of one letter in a distribution
type LetterCount struct {
	Letter rune
	Count  int
}

// Distribution describes the tiles a bag is seeded with, in seeding order
type Distribution []LetterCount

// Total returns the number of tiles in the distribution
func (d Distribution) Total() int {
	total := 0
	for _, lc := range d {
		total += lc.Count
	}
	return total
}

// StandardDistribution returns the 100 tile English set: 98 lettered tiles
// and 2 blanks
func StandardDistribution() Distribution {
	counts := []int{9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1}
	dist := make(Distribution, 0, len(counts)+1)
	for i, count := range counts {
		dist = append(dist, LetterCount{Letter: rune('A' + i), Count: count})
	}
	return append(dist, LetterCount{Letter: BlankLetter, Count: 2})
}

// RandomSource picks an index in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// Bag is the multiset of undrawn tiles. It is seeded once and never refilled.
type Bag struct {
	Tiles []Tile
}

// NewBag creates a bag holding every tile of the distribution. Tile IDs are
// assigned from 1 in distribution order.
func NewBag(dist Distribution) *Bag {
	tiles := make([]Tile, 0, dist.Total())
	id := TileID(1)
	for _, lc := range dist {
		for range lc.Count {
			tiles = append(tiles, Tile{ID: id, Letter: lc.Letter})
			id++
		}
	}
	return &Bag{Tiles: tiles}
}

// Draw removes and returns a uniformly random remaining tile. The second
// return value is false when the bag is empty.
func (b *Bag) Draw(rnd RandomSource) (Tile, bool) {
	if len(b.Tiles) == 0 {
		return Tile{}, false
	}
	idx := rnd.Intn(len(b.Tiles))
	tile := b.Tiles[idx]
	b.Tiles = slices.Delete(b.Tiles, idx, idx+1)
	return tile, true
}

// Remaining returns the number of tiles left in the bag
func (b *Bag) Remaining() int {
	return len(b.Tiles)
}

// IsEmpty returns true if no tiles remain
func (b *Bag) IsEmpty() bool {
	return len(b.Tiles) == 0
}

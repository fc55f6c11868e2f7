package model

import "slices"

// HandSize is the number of tiles a player holds after refilling
const HandSize = 7

// Player is a seat in a game, identified by turn order
type Player struct {
	Number int    // 1-based turn order
	Hand   []Tile // display order only
	Score  int
}

// HasTile returns true if the tile is in the player's hand
func (p *Player) HasTile(id TileID) bool {
	return slices.ContainsFunc(p.Hand, func(t Tile) bool { return t.ID == id })
}

// TakeTile removes a tile from the hand and returns it
func (p *Player) TakeTile(id TileID) (Tile, error) {
	idx := slices.IndexFunc(p.Hand, func(t Tile) bool { return t.ID == id })
	if idx < 0 {
		return Tile{}, ErrTileNotInHand
	}
	tile := p.Hand[idx]
	p.Hand = slices.Delete(p.Hand, idx, idx+1)
	return tile, nil
}

// ReturnTiles puts tiles back in the hand. Blank designations are cleared.
func (p *Player) ReturnTiles(tiles ...Tile) {
	for _, t := range tiles {
		t.Designated = 0
		p.Hand = append(p.Hand, t)
	}
}

// Refill draws from the bag until the hand is full or the bag is empty
func (p *Player) Refill(bag *Bag, rnd RandomSource) int {
	drawn := 0
	for len(p.Hand) < HandSize {
		tile, ok := bag.Draw(rnd)
		if !ok {
			break
		}
		p.Hand = append(p.Hand, tile)
		drawn++
	}
	return drawn
}

// AddToScore adds points to the player's score. Negative amounts are ignored.
func (p *Player) AddToScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

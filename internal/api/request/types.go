package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Players   int  `json:"players"`
	SkipLimit int  `json:"skip_limit,omitempty"`
	Plain     bool `json:"plain,omitempty"` // board without bonus squares
}

// PlaceRequest is the request body for placing a tile
type PlaceRequest struct {
	TileID int    `json:"tile_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter,omitempty"` // designated letter for a blank
}

package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
)

// Health is the response for the health endpoint
type Health struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary_words"`
}

// Tile represents a tile in a hand or on the board
type Tile struct {
	ID         int    `json:"id"`
	Letter     string `json:"letter"`
	Blank      bool   `json:"blank,omitempty"`
	Designated string `json:"designated,omitempty"`
	Points     int    `json:"points"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t model.Tile) Tile {
	tile := Tile{
		ID:     int(t.ID),
		Letter: string(t.Letter),
		Blank:  t.IsBlank(),
		Points: t.Points(),
	}
	if t.Designated != 0 {
		tile.Designated = string(t.Designated)
	}
	return tile
}

// Player represents a seat in a game
type Player struct {
	Number int    `json:"number"`
	Score  int    `json:"score"`
	Hand   []Tile `json:"hand"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Number: p.Number,
		Score:  p.Score,
		Hand:   lo.Map(p.Hand, func(t model.Tile, _ int) Tile { return TileFromModel(t) }),
	}
}

// Placement is a tile placed on the board this turn
type Placement struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Tile Tile `json:"tile"`
}

// PlacementFromModel converts a model.Placement
func PlacementFromModel(p model.Placement) Placement {
	return Placement{
		Row:  p.Cell.Row(),
		Col:  p.Cell.Col(),
		Tile: TileFromModel(p.Tile),
	}
}

// Placements converts a list of pending placements
func Placements(ps []model.Placement) []Placement {
	return lo.Map(ps, func(p model.Placement, _ int) Placement { return PlacementFromModel(p) })
}

// Board represents the grid. Rows use '.' for empty cells and lower case
// for blanks.
type Board struct {
	Rows []string `json:"rows"`
}

// ScoredWord represents a word formed by a move
type ScoredWord struct {
	Word        string `json:"word"`
	Score       int    `json:"score"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
	Main        bool   `json:"main"`
	Unverified  bool   `json:"unverified,omitempty"`
}

// ScoredWordFromModel converts a model.ScoredWord
func ScoredWordFromModel(w model.ScoredWord) ScoredWord {
	return ScoredWord{
		Word:        w.Word,
		Score:       w.Score,
		Row:         w.Start.Row(),
		Col:         w.Start.Col(),
		Orientation: w.Orientation.String(),
		Main:        w.Main,
		Unverified:  w.Unverified,
	}
}

func scoredWords(words []model.ScoredWord) []ScoredWord {
	return lo.Map(words, func(w model.ScoredWord, _ int) ScoredWord { return ScoredWordFromModel(w) })
}

// Ranking is a player's standing
type Ranking struct {
	Place  int `json:"place"`
	Player int `json:"player"`
	Score  int `json:"score"`
}

// Rankings converts model rankings
func Rankings(rs []model.Ranking) []Ranking {
	return lo.Map(rs, func(r model.Ranking, _ int) Ranking {
		return Ranking{Place: r.Place, Player: r.Player, Score: r.Score}
	})
}

// RankingsResponse is the response for the rankings endpoint
type RankingsResponse struct {
	Final    bool      `json:"final"`
	Rankings []Ranking `json:"rankings"`
}

// TurnRecord is an entry in the game history
type TurnRecord struct {
	ID     string       `json:"id"`
	Number int          `json:"number"`
	Kind   string       `json:"kind"`
	Player int          `json:"player"`
	Words  []ScoredWord `json:"words,omitempty"`
	Score  int          `json:"score"`
	Bingo  bool         `json:"bingo,omitempty"`
	At     time.Time    `json:"at"`
}

// TurnRecordFromModel converts a model.TurnRecord
func TurnRecordFromModel(r model.TurnRecord) TurnRecord {
	return TurnRecord{
		ID:     r.ID,
		Number: r.Number,
		Kind:   string(r.Kind),
		Player: r.Player,
		Words:  scoredWords(r.Words),
		Score:  r.Score,
		Bingo:  r.Bingo,
		At:     r.At,
	}
}

// Game represents the full state of a game
type Game struct {
	ID               string       `json:"id"`
	Status           string       `json:"status"`
	TurnNumber       int          `json:"turn_number"`
	CurrentPlayer    int          `json:"current_player"`
	IsFirstTurn      bool         `json:"is_first_turn"`
	ConsecutiveSkips int          `json:"consecutive_skips"`
	SkipLimit        int          `json:"skip_limit"`
	BagRemaining     int          `json:"bag_remaining"`
	Players          []Player     `json:"players"`
	Board            Board        `json:"board"`
	Pending          []Placement  `json:"pending"`
	History          []TurnRecord `json:"history,omitempty"`
	Rankings         []Ranking    `json:"rankings,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// GameFromModel converts a model.Game. rows is the rendered board.
func GameFromModel(g *model.Game, rows []string) Game {
	return Game{
		ID:               string(g.ID),
		Status:           string(g.Status),
		TurnNumber:       g.TurnNumber,
		CurrentPlayer:    g.ActivePlayer().Number,
		IsFirstTurn:      g.IsFirstTurn,
		ConsecutiveSkips: g.ConsecutiveSkips,
		SkipLimit:        g.SkipLimit,
		BagRemaining:     g.Bag.Remaining(),
		Players:          lo.Map(g.Players, func(p model.Player, _ int) Player { return PlayerFromModel(p) }),
		Board:            Board{Rows: rows},
		Pending:          Placements(g.Pending),
		History:          lo.Map(g.History, func(r model.TurnRecord, _ int) TurnRecord { return TurnRecordFromModel(r) }),
		Rankings:         Rankings(g.Rankings),
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// GameList is the response for listing games
type GameList struct {
	Games []string `json:"games"`
}

// GameListFromModel converts game IDs
func GameListFromModel(ids []model.GameID) GameList {
	return GameList{Games: lo.Map(ids, func(id model.GameID, _ int) string { return string(id) })}
}

// TurnResult is the outcome of a submit or skip
type TurnResult struct {
	Kind       string       `json:"kind"`
	Player     int          `json:"player"`
	Words      []ScoredWord `json:"words,omitempty"`
	Score      int          `json:"score"`
	Bingo      bool         `json:"bingo,omitempty"`
	Drawn      int          `json:"drawn"`
	NextPlayer int          `json:"next_player"`
	GameOver   bool         `json:"game_over"`
	Rankings   []Ranking    `json:"rankings,omitempty"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// TurnResultFromModel converts a model.TurnResult
func TurnResultFromModel(r model.TurnResult) TurnResult {
	return TurnResult{
		Kind:       string(r.Kind),
		Player:     r.Player,
		Words:      scoredWords(r.Words),
		Score:      r.Score,
		Bingo:      r.Bingo,
		Drawn:      r.Drawn,
		NextPlayer: r.NextPlayer,
		GameOver:   r.GameOver,
		Rankings:   Rankings(r.Rankings),
		Warnings:   r.Warnings,
	}
}

// Premium is a bonus square
type Premium struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Label       string `json:"label"`
	LetterBonus int    `json:"letter_bonus"`
	WordBonus   int    `json:"word_bonus"`
}

// Cell is a board coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Layout lists the bonus squares of a board
type Layout struct {
	Size     int       `json:"size"`
	Center   Cell      `json:"center"`
	Premiums []Premium `json:"premiums"`
}

// LayoutFromPremiums converts the bonus squares of a layout
func LayoutFromPremiums(premiums []board.Premium) Layout {
	center := model.CenterCell.Position()
	return Layout{
		Size:     model.BoardSize,
		Center:   Cell{Row: center.Row, Col: center.Col},
		Premiums: lo.Map(premiums, func(p board.Premium, _ int) Premium { return premiumFromService(p) }),
	}
}

func premiumFromService(p board.Premium) Premium {
	return Premium{
		Row:         p.Position.Row,
		Col:         p.Position.Col,
		Label:       p.Label(),
		LetterBonus: p.LetterBonus,
		WordBonus:   p.WordBonus,
	}
}

// WordCheck is the response for a dictionary lookup
type WordCheck struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

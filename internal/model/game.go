package model

import (
	"slices"
	"time"
)

// DefaultSkipLimit is the number of consecutive skips that ends a game.
// It does not scale with the number of players.
const DefaultSkipLimit = 4

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// GameID uniquely identifies a game session
type GameID string

// GameStatus represents the lifecycle phase of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusOver       GameStatus = "over"
)

// GameConfig describes a new game. Zero values select the standard rules.
type GameConfig struct {
	Players      int
	Layout       *Layout
	Distribution Distribution
	SkipLimit    int
}

// Placement is a tile put on the board this turn but not yet committed
type Placement struct {
	Cell CellIndex
	Tile Tile
}

// Game is the complete state of one session
type Game struct {
	ID     GameID
	Status GameStatus

	Board   *Board
	Bag     *Bag
	Players []Player

	// Turn management
	CurrentPlayer    int // index into Players
	TurnNumber       int // 1-based, counts commits and skips
	IsFirstTurn      bool
	ConsecutiveSkips int
	SkipLimit        int

	// Tiles placed by the current player this turn
	Pending []Placement

	History  []TurnRecord
	Rankings []Ranking // set when the game is over

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return &g.Players[g.CurrentPlayer]
}

// IsOver returns true once the game has ended
func (g *Game) IsOver() bool {
	return g.Status == GameStatusOver
}

// AdvanceTurn passes play to the next player in turn order
func (g *Game) AdvanceTurn() {
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
	g.TurnNumber++
}

// PendingAt returns the pending placement on a cell, if any
func (g *Game) PendingAt(idx CellIndex) (Placement, bool) {
	i := slices.IndexFunc(g.Pending, func(p Placement) bool { return p.Cell == idx })
	if i < 0 {
		return Placement{}, false
	}
	return g.Pending[i], true
}

// ComputeRankings orders players by score descending. Ties keep turn order.
func (g *Game) ComputeRankings() []Ranking {
	players := slices.Clone(g.Players)
	slices.SortStableFunc(players, func(a, b Player) int {
		return b.Score - a.Score
	})
	rankings := make([]Ranking, len(players))
	for i, p := range players {
		rankings[i] = Ranking{Place: i + 1, Player: p.Number, Score: p.Score}
	}
	return rankings
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	if g.Bag != nil {
		clone.Bag = &Bag{Tiles: slices.Clone(g.Bag.Tiles)}
	}
	clone.Players = slices.Clone(g.Players)
	for i := range clone.Players {
		clone.Players[i].Hand = slices.Clone(clone.Players[i].Hand)
	}
	clone.Pending = slices.Clone(g.Pending)
	clone.History = slices.Clone(g.History)
	for i := range clone.History {
		clone.History[i].Words = slices.Clone(clone.History[i].Words)
	}
	clone.Rankings = slices.Clone(g.Rankings)
	return &clone
}

// Ranking is one player's final standing
type Ranking struct {
	Place  int
	Player int
	Score  int
}

// TurnKind identifies how a turn ended
type TurnKind string

const (
	TurnKindCommit TurnKind = "commit"
	TurnKindSkip   TurnKind = "skip"
)

// TurnRecord is an entry in a game's history
type TurnRecord struct {
	ID     string
	Number int
	Kind   TurnKind
	Player int
	Words  []ScoredWord
	Score  int
	Bingo  bool
	At     time.Time
}

// TurnResult reports the outcome of a committed or skipped turn
type TurnResult struct {
	Kind       TurnKind
	Player     int
	Words      []ScoredWord
	Score      int
	Bingo      bool
	Drawn      int
	NextPlayer int
	GameOver   bool
	Rankings   []Ranking
	Warnings   []string
}

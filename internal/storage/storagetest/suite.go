// Package storagetest holds the behaviour every storage.Storage
// implementation must share. Each backend runs Suite from its own tests.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/storage"
)

// Suite exercises a storage implementation created fresh for each test
type Suite struct {
	suite.Suite
	NewStorage func() storage.Storage

	storage storage.Storage
	ctx     context.Context
}

func (s *Suite) SetupTest() {
	s.storage = s.NewStorage()
	s.ctx = context.Background()
}

// Storage returns the implementation under test
func (s *Suite) Storage() storage.Storage {
	return s.storage
}

// NewGame returns a small game with tiles on the board, in hands and pending
func NewGame(id model.GameID) *model.Game {
	board := model.NewBoard(model.StandardLayout())
	_ = board.Place(model.CenterCell, model.Tile{ID: 1, Letter: 'C'})
	_ = board.Place(model.CenterCell+1, model.Tile{ID: 2, Letter: model.BlankLetter, Designated: 'A'})

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:     id,
		Status: model.GameStatusInProgress,
		Board:  board,
		Bag:    model.NewBag(model.Distribution{{Letter: 'Z', Count: 3}}),
		Players: []model.Player{
			{Number: 1, Hand: []model.Tile{{ID: 10, Letter: 'E'}}, Score: 8},
			{Number: 2, Hand: []model.Tile{{ID: 11, Letter: 'R'}}},
		},
		CurrentPlayer:    1,
		TurnNumber:       2,
		ConsecutiveSkips: 1,
		SkipLimit:        model.DefaultSkipLimit,
		Pending:          []model.Placement{{Cell: 0, Tile: model.Tile{ID: 11, Letter: 'R'}}},
		History: []model.TurnRecord{{
			ID:     "turn-1",
			Number: 1,
			Kind:   model.TurnKindCommit,
			Player: 1,
			Words:  []model.ScoredWord{{Word: "CA", Score: 8, Start: model.CenterCell, Main: true}},
			Score:  8,
			At:     created,
		}},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Game tests

func (s *Suite) TestSaveAndGetGame() {
	game := NewGame("game-1")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game, retrieved)
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSaveGameOverwrites() {
	game := NewGame("game-1")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game.Players[0].Score = 42
	game.Status = model.GameStatusOver
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(42, retrieved.Players[0].Score)
	s.Equal(model.GameStatusOver, retrieved.Status)
}

func (s *Suite) TestRetrievedGameIsDetached() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, NewGame("game-1")))

	first, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	first.Players[0].Hand = nil
	_, _ = first.Board.Remove(model.CenterCell)

	second, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Len(second.Players[0].Hand, 1)
	s.False(second.Board.IsEmpty(model.CenterCell))
}

func (s *Suite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, NewGame("game-1")))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game-1"))

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	s.NoError(s.storage.DeleteGame(s.ctx, "never-existed"))
}

func (s *Suite) TestListGames() {
	ids, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.storage.SaveGame(s.ctx, NewGame("game-b")))
	s.Require().NoError(s.storage.SaveGame(s.ctx, NewGame("game-a")))
	s.Require().NoError(s.storage.SaveGame(s.ctx, NewGame("game-c")))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game-c"))

	ids, err = s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameID{"game-a", "game-b"}, ids)
}

// Dictionary tests

func (s *Suite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, words))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *Suite) TestSaveDictionaryWordsReplaces() {
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"old", "words"}))
	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"new"}))

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, retrieved)
}

func (s *Suite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

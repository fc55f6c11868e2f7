package scoring

import (
	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
)

// Service scores the words formed by a move
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScoreWord scores one word against the board's printed bonuses. Only cells
// placed this turn apply their letter and word multipliers; each word gets
// its own multiplier accumulator.
func (s *Service) ScoreWord(board *model.Board, word model.Word) int {
	letterSum := 0
	wordMultiplier := 1
	for _, t := range word.Tiles {
		letterBonus := 1
		if t.IsNew {
			letterBonus = board.LetterBonus(t.Cell)
			wordMultiplier *= board.WordBonus(t.Cell)
		}
		letterSum += t.Points * letterBonus
	}
	return letterSum * wordMultiplier
}

// ScoreLetters sums face values with no multipliers
func (s *Service) ScoreLetters(word model.Word) int {
	return lo.SumBy(word.Tiles, func(t model.WordTile) int { return t.Points })
}

// ScoreMove scores every word of a move and totals them, adding the bingo
// bonus when a full hand was placed. Unverified words score face value only.
func (s *Service) ScoreMove(board *model.Board, words []model.Word, tilesPlaced int) *model.MoveResult {
	result := &model.MoveResult{
		Words:       make([]model.ScoredWord, 0, len(words)),
		TilesPlaced: tilesPlaced,
	}

	for _, w := range words {
		score := s.ScoreWord(board, w)
		if w.Unverified {
			score = s.ScoreLetters(w)
		}
		result.Words = append(result.Words, model.ScoredWord{
			Word:        w.String(),
			Score:       score,
			Start:       w.Start(),
			Orientation: w.Orientation,
			Main:        w.IsMain,
			Unverified:  w.Unverified,
		})
	}

	result.Total = lo.SumBy(result.Words, func(w model.ScoredWord) int { return w.Score })
	if tilesPlaced == model.HandSize {
		result.Bingo = true
		result.Total += model.BingoBonus
	}
	return result
}

// ServiceInterface defines the scoring operations
type ServiceInterface interface {
	ScoreWord(board *model.Board, word model.Word) int
	ScoreLetters(word model.Word) int
	ScoreMove(board *model.Board, words []model.Word, tilesPlaced int) *model.MoveResult
}

var _ ServiceInterface = (*Service)(nil)

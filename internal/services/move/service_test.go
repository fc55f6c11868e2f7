package move

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/scoring"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// wordList is a WordOracle that records every query
type wordList struct {
	words   map[string]bool
	queries []string
}

func newWordList(words ...string) *wordList {
	w := &wordList{words: make(map[string]bool)}
	for _, word := range words {
		w.words[strings.ToLower(word)] = true
	}
	return w
}

func (w *wordList) Contains(word string) bool {
	w.queries = append(w.queries, word)
	return w.words[strings.ToLower(word)]
}

type ServiceSuite struct {
	suite.Suite
	oracle  *wordList
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.oracle = newWordList("cat", "cats", "at", "to", "dog", "ba", "ta", "players", "bat", "zag")
	s.service = New(s.oracle, scoring.New(), testutil.NopLogger())
	s.board = model.NewBoard(model.PlainLayout())
}

// play puts the placements on the board and evaluates them
func (s *ServiceSuite) play(placements []model.Placement, firstTurn bool) (*model.MoveResult, error) {
	testutil.PlaceAll(s.T(), s.board, placements)
	return s.service.Evaluate(s.board, placements, firstTurn)
}

func (s *ServiceSuite) center(o model.Orientation, letters string) []model.Placement {
	return testutil.Placements(model.Position{Row: 7, Col: 7}, o, letters)
}

func (s *ServiceSuite) words(result *model.MoveResult) []string {
	var words []string
	for _, w := range result.Words {
		words = append(words, w.Word)
	}
	return words
}

// Structural rejections

func (s *ServiceSuite) TestNoTilesPlaced() {
	_, err := s.service.Evaluate(s.board, nil, true)
	s.ErrorIs(err, model.ErrNoTilesPlaced)
}

func (s *ServiceSuite) TestNotInLine() {
	_, err := s.play([]model.Placement{
		testutil.At(7, 7, 'C', 1),
		testutil.At(8, 8, 'A', 2),
	}, true)
	s.ErrorIs(err, model.ErrNotInLine)
}

func (s *ServiceSuite) TestFirstTurnMissingCenter() {
	_, err := s.play(testutil.Placements(model.Position{Row: 0, Col: 0}, model.Horizontal, "CAT"), true)
	s.ErrorIs(err, model.ErrMissingCenterCell)
	s.Empty(s.oracle.queries)
}

func (s *ServiceSuite) TestFirstTurnMissingCenterEvenForUnknownWord() {
	_, err := s.play(testutil.Placements(model.Position{Row: 3, Col: 2}, model.Vertical, "QXZ"), true)
	s.ErrorIs(err, model.ErrMissingCenterCell)
}

func (s *ServiceSuite) TestFirstTurnSingleTile() {
	_, err := s.play(s.center(model.Horizontal, "A"), true)
	s.ErrorIs(err, model.ErrFirstWordTooShort)
	s.Empty(s.oracle.queries)
}

func (s *ServiceSuite) TestFirstTurnTilesNotAdjacent() {
	_, err := s.play([]model.Placement{
		testutil.At(7, 7, 'A', 1),
		testutil.At(7, 9, 'T', 2),
	}, true)
	s.ErrorIs(err, model.ErrTilesNotAdjacent)
}

func (s *ServiceSuite) TestGapInWord() {
	// A skip can end the first turn with the board still empty
	_, err := s.play([]model.Placement{
		testutil.At(7, 7, 'A', 1),
		testutil.At(7, 9, 'T', 2),
	}, false)
	s.ErrorIs(err, model.ErrGapInWord)
}

func (s *ServiceSuite) TestGapInWordVertical() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")
	_, err := s.play([]model.Placement{
		testutil.At(8, 7, 'A', 1),
		testutil.At(10, 7, 'T', 2),
	}, false)
	s.ErrorIs(err, model.ErrGapInWord)
}

// First turn

func (s *ServiceSuite) TestFirstTurnCatPlainBoard() {
	result, err := s.play(s.center(model.Horizontal, "CAT"), true)
	s.Require().NoError(err)

	s.Equal(model.Horizontal, result.Orientation)
	s.Equal([]string{"CAT"}, s.words(result))
	s.Equal(5, result.Total)
	s.Equal(3, result.TilesPlaced)
	s.False(result.Bingo)
	s.True(result.Words[0].Main)
	s.Equal(model.CenterCell, result.Words[0].Start)
}

func (s *ServiceSuite) TestFirstTurnCatStandardBoard() {
	s.board = model.NewBoard(model.StandardLayout())
	result, err := s.play(s.center(model.Horizontal, "CAT"), true)
	s.Require().NoError(err)
	s.Equal(10, result.Total)
}

func (s *ServiceSuite) TestFirstTurnVerticalEndingOnCenter() {
	result, err := s.play(testutil.Placements(model.Position{Row: 5, Col: 7}, model.Vertical, "CAT"), true)
	s.Require().NoError(err)
	s.Equal(model.Vertical, result.Orientation)
	s.Equal([]string{"CAT"}, s.words(result))
}

func (s *ServiceSuite) TestFirstTurnPlacementOrderDoesNotMatter() {
	placements := s.center(model.Horizontal, "CAT")
	placements[0], placements[2] = placements[2], placements[0]

	result, err := s.play(placements, true)
	s.Require().NoError(err)
	s.Equal([]string{"CAT"}, s.words(result))
}

func (s *ServiceSuite) TestFirstTurnUnknownWord() {
	_, err := s.play(s.center(model.Horizontal, "TAC"), true)

	var notFound *model.WordNotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("TAC", notFound.Word)
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *ServiceSuite) TestBingo() {
	result, err := s.play(testutil.Placements(model.Position{Row: 7, Col: 4}, model.Horizontal, "PLAYERS"), true)
	s.Require().NoError(err)
	s.True(result.Bingo)
	s.Equal(12+model.BingoBonus, result.Total)
}

func (s *ServiceSuite) TestBlankUsesDesignatedLetter() {
	result, err := s.play(s.center(model.Horizontal, "?CAT"), true)
	s.Require().NoError(err)
	s.Equal([]string{"CAT"}, s.words(result))
	s.Equal(2, result.Total)
}

// Later turns

func (s *ServiceSuite) TestExtendWithSuffix() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	result, err := s.play([]model.Placement{testutil.At(7, 10, 'S', 1)}, false)
	s.Require().NoError(err)
	s.Equal([]string{"CATS"}, s.words(result))
	s.Equal(6, result.Total)
	s.Empty(result.Warnings)
}

func (s *ServiceSuite) TestExtendExistingPrefix() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "C")

	result, err := s.play(testutil.Placements(model.Position{Row: 7, Col: 8}, model.Horizontal, "AT"), false)
	s.Require().NoError(err)
	s.Equal([]string{"CAT"}, s.words(result))
	s.Equal(model.CenterCell, result.Words[0].Start)
}

func (s *ServiceSuite) TestExtendExistingSuffix() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 10}, model.Horizontal, "S")

	result, err := s.play(s.center(model.Horizontal, "CAT"), false)
	s.Require().NoError(err)
	s.Equal([]string{"CATS"}, s.words(result))
	s.Equal(6, result.Total)
}

func (s *ServiceSuite) TestSpliceExistingTilesIntoGap() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 6, Col: 8}, model.Vertical, "TA")

	result, err := s.play([]model.Placement{testutil.At(7, 7, 'C', 1), testutil.At(7, 9, 'T', 2)}, false)
	s.Require().NoError(err)
	s.Equal([]string{"CAT"}, s.words(result))
	s.Equal(5, result.Total)
}

func (s *ServiceSuite) TestSingleTileRunsAlongOccupiedAxis() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "AT")

	result, err := s.play([]model.Placement{testutil.At(6, 7, 'B', 1)}, false)
	s.Require().NoError(err)
	s.Equal(model.Vertical, result.Orientation)
	s.Equal([]string{"BA"}, s.words(result))
	s.Equal(4, result.Total)
}

func (s *ServiceSuite) TestSingleTileFormingTwoWords() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 8}, model.Horizontal, "AT")
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 8, Col: 7}, model.Vertical, "AT")

	result, err := s.play([]model.Placement{testutil.At(7, 7, 'C', 1)}, false)
	s.Require().NoError(err)
	s.Equal(model.Horizontal, result.Orientation)
	s.Equal([]string{"CAT", "CAT"}, s.words(result))
	s.Equal(model.Vertical, result.Words[1].Orientation)
	s.Equal(10, result.Total)
}

func (s *ServiceSuite) TestCrossWords() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	result, err := s.play(testutil.Placements(model.Position{Row: 8, Col: 8}, model.Horizontal, "TO"), false)
	s.Require().NoError(err)
	s.Equal([]string{"TO", "AT", "TO"}, s.words(result))
	s.True(result.Words[0].Main)
	s.False(result.Words[1].Main)
	s.Equal(6, result.Total)
}

func (s *ServiceSuite) TestCrossWordNotFound() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	// The main word AT is fine, the cross word AA is not
	_, err := s.play(testutil.Placements(model.Position{Row: 8, Col: 8}, model.Horizontal, "AT"), false)

	var notFound *model.WordNotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("AA", notFound.Word)
}

func (s *ServiceSuite) TestCrossWordsCheckedAfterMainWord() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	_, err := s.play(testutil.Placements(model.Position{Row: 8, Col: 8}, model.Horizontal, "QQ"), false)

	var notFound *model.WordNotFoundError
	s.Require().ErrorAs(err, &notFound)
	s.Equal("QQ", notFound.Word)
	s.Equal([]string{"QQ"}, s.oracle.queries)
}

func (s *ServiceSuite) TestWordNotConnected() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	_, err := s.play(testutil.Placements(model.Position{Row: 0, Col: 0}, model.Horizontal, "DOG"), false)
	s.ErrorIs(err, model.ErrWordNotConnected)
}

func (s *ServiceSuite) TestIsolatedSingleTileNotConnected() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	_, err := s.play([]model.Placement{testutil.At(0, 0, 'A', 1)}, false)
	s.ErrorIs(err, model.ErrWordNotConnected)
	s.Empty(s.oracle.queries)
}

func (s *ServiceSuite) TestDiagonalTouchIsNotConnected() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")

	_, err := s.play(testutil.Placements(model.Position{Row: 8, Col: 10}, model.Horizontal, "AT"), false)
	s.ErrorIs(err, model.ErrWordNotConnected)
}

func (s *ServiceSuite) TestEvaluateDoesNotChangeBoard() {
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 7}, model.Horizontal, "CAT")
	placements := testutil.Placements(model.Position{Row: 8, Col: 8}, model.Horizontal, "TX")
	testutil.PlaceAll(s.T(), s.board, placements)
	before := s.board.Clone()

	_, err := s.service.Evaluate(s.board, placements, false)
	s.Require().Error(err)
	s.Equal(before, s.board)
}

func (s *ServiceSuite) TestStandardBonusesApplyOnlyToNewTiles() {
	s.board = model.NewBoard(model.StandardLayout())
	// B sits on the triple word square at (7,0) from an earlier turn
	testutil.PlaceWord(s.T(), s.board, model.Position{Row: 7, Col: 0}, model.Horizontal, "BA")

	result, err := s.play([]model.Placement{testutil.At(7, 2, 'T', 1)}, false)
	s.Require().NoError(err)
	s.Equal([]string{"BAT"}, s.words(result))
	s.Equal(3+1+1, result.Total)
}

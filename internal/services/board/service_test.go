package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.board = model.NewBoard(model.StandardLayout())
}

func (s *ServiceSuite) TestValidatePlacement() {
	s.NoError(s.service.ValidatePlacement(s.board, model.Position{Row: 7, Col: 7}))
	s.ErrorIs(s.service.ValidatePlacement(s.board, model.Position{Row: 15, Col: 0}), model.ErrInvalidCell)
	s.ErrorIs(s.service.ValidatePlacement(s.board, model.Position{Row: 0, Col: -1}), model.ErrInvalidCell)

	s.Require().NoError(s.board.Place(model.CenterCell, model.Tile{ID: 1, Letter: 'A'}))
	s.ErrorIs(s.service.ValidatePlacement(s.board, model.Position{Row: 7, Col: 7}), model.ErrCellOccupied)
}

func (s *ServiceSuite) TestValidateLetter() {
	s.NoError(ValidateLetter('a'))
	s.NoError(ValidateLetter('Z'))
	s.ErrorIs(ValidateLetter('1'), model.ErrInvalidLetter)
	s.ErrorIs(ValidateLetter(model.BlankLetter), model.ErrInvalidLetter)
}

func (s *ServiceSuite) TestPrepareTile() {
	tile, err := s.service.PrepareTile(model.Tile{ID: 1, Letter: 'K'}, 'x')
	s.Require().NoError(err)
	s.Equal(model.Tile{ID: 1, Letter: 'K'}, tile)

	blank := model.Tile{ID: 2, Letter: model.BlankLetter}
	_, err = s.service.PrepareTile(blank, 0)
	s.ErrorIs(err, model.ErrBlankNeedsLetter)

	_, err = s.service.PrepareTile(blank, '!')
	s.ErrorIs(err, model.ErrInvalidLetter)

	tile, err = s.service.PrepareTile(blank, 'e')
	s.Require().NoError(err)
	s.Equal('E', tile.Face())
}

func (s *ServiceSuite) TestRows() {
	testutil.PlaceAll(s.T(), s.board, testutil.Placements(model.Position{Row: 7, Col: 7}, model.Horizontal, "C?AT"))

	rows := s.service.Rows(s.board)
	s.Len(rows, model.BoardSize)
	s.Equal(strings.Repeat(".", 15), rows[0])
	s.Equal(".......CaT.....", rows[7])
}

func (s *ServiceSuite) TestPremiums() {
	premiums := s.service.Premiums(model.StandardLayout())
	s.Len(premiums, 8+17+12+24)

	labels := map[string]int{}
	for _, p := range premiums {
		labels[p.Label()]++
	}
	s.Equal(map[string]int{"TW": 8, "DW": 17, "TL": 12, "DL": 24}, labels)

	s.Equal(Premium{Position: model.Position{Row: 0, Col: 0}, LetterBonus: 1, WordBonus: 3}, premiums[0])
	s.Empty(s.service.Premiums(model.PlainLayout()))
}

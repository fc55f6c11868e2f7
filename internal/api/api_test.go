package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/api"
	"github.com/mcoot/wordtiles/internal/api/apierr"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

// newTestServer wires the router to a test app. With the mocked random
// source every draw takes the first tile of the standard bag, so player 1
// holds tiles 1-7 (all A) and player 2 holds tiles 8-14 (A A B B C C D).
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())
	t.Cleanup(func() { _ = app.Close() })

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		BoardService:   app.BoardService,
		Oracle:         app.Oracle,
		HubManager:     app.HubManager,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func createGame(t *testing.T, ts *testServer, players int) response.Game {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"players": players})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Game](t, rr)
}

func place(t *testing.T, ts *testServer, gameID string, tileID, row, col int) *httptest.ResponseRecorder {
	t.Helper()
	body := map[string]int{"tile_id": tileID, "row": row, "col": col}
	return ts.request(http.MethodPost, "/api/v1/games/"+gameID+"/placements", body)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Health](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.Positive(t, resp.Dictionary)
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	g := createGame(t, ts, 2)

	assert.Equal(t, "game-1", g.ID)
	assert.Equal(t, "in_progress", g.Status)
	assert.True(t, g.IsFirstTurn)
	assert.Equal(t, 1, g.CurrentPlayer)
	assert.Equal(t, 86, g.BagRemaining)
	require.Len(t, g.Players, 2)
	assert.Len(t, g.Players[0].Hand, 7)
	assert.Equal(t, "A", g.Players[0].Hand[0].Letter)
	assert.Equal(t, 1, g.Players[0].Hand[0].Points)
	require.Len(t, g.Board.Rows, 15)
	assert.Equal(t, "...............", g.Board.Rows[7])
}

func TestCreateGameRejectsPlayerCount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]int{"players": 5})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidPlayerCount, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetListAndDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{g.ID}, decode[response.GameList](t, rr).Games)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+g.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestPlaceAndReset(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	rr := place(t, ts, g.ID, 1, 7, 7)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	g = decode[response.Game](t, rr)
	assert.Len(t, g.Pending, 1)
	assert.Len(t, g.Players[0].Hand, 6)
	assert.Equal(t, ".......A.......", g.Board.Rows[7])

	rr = place(t, ts, g.ID, 2, 7, 7)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeCellOccupied, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = place(t, ts, g.ID, 8, 7, 8)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeTileNotInHand, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = place(t, ts, g.ID, 2, 15, 0)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidCell, decode[apierr.ErrorResponse](t, rr).Error.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+g.ID+"/placements", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	g = decode[response.Game](t, rr)
	assert.Empty(t, g.Pending)
	assert.Len(t, g.Players[0].Hand, 7)
}

func TestSubmitRejections(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeNoTilesPlaced, decode[apierr.ErrorResponse](t, rr).Error.Code)

	require.Equal(t, http.StatusOK, place(t, ts, g.ID, 1, 7, 7).Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeFirstWordTooShort, decode[apierr.ErrorResponse](t, rr).Error.Code)

	for i := range 3 {
		require.Equal(t, http.StatusOK, place(t, ts, g.ID, i+1, 7, 6+i).Code)
	}
	rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	apiErr := decode[apierr.ErrorResponse](t, rr).Error
	assert.Equal(t, apierr.CodeWordNotFound, apiErr.Code)
	assert.Equal(t, "AAA", apiErr.Word)

	// Rejections hand the tiles back and keep the turn
	rr = ts.request(http.MethodGet, "/api/v1/games/"+g.ID, nil)
	g = decode[response.Game](t, rr)
	assert.True(t, g.IsFirstTurn)
	assert.Equal(t, 1, g.CurrentPlayer)
	assert.Len(t, g.Players[0].Hand, 7)
	assert.Empty(t, g.Pending)
}

func TestSubmitAndSkipToGameOver(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	// AA across the centre double word square
	require.Equal(t, http.StatusOK, place(t, ts, g.ID, 1, 7, 7).Code)
	require.Equal(t, http.StatusOK, place(t, ts, g.ID, 2, 7, 8).Code)
	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/submit", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	result := decode[response.TurnResult](t, rr)
	assert.Equal(t, "commit", result.Kind)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 2, result.Drawn)
	assert.Equal(t, 2, result.NextPlayer)
	require.Len(t, result.Words, 1)
	assert.Equal(t, "AA", result.Words[0].Word)
	assert.Equal(t, "horizontal", result.Words[0].Orientation)

	for i := range 4 {
		rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/skip", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		result = decode[response.TurnResult](t, rr)
		assert.Equal(t, i == 3, result.GameOver, "skip %d", i+1)
	}

	rr = ts.request(http.MethodGet, "/api/v1/games/"+g.ID+"/rankings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rankings := decode[response.RankingsResponse](t, rr)
	assert.True(t, rankings.Final)
	assert.Equal(t, []response.Ranking{
		{Place: 1, Player: 1, Score: 4},
		{Place: 2, Player: 2, Score: 0},
	}, rankings.Rankings)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/skip", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameOver, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestBlankPlacementNeedsLetter(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+g.ID+"/placements",
		map[string]any{"tile_id": 1, "row": 7, "col": 7, "letter": "AB"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestBoardLayout(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/board/layout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	layout := decode[response.Layout](t, rr)
	assert.Equal(t, 15, layout.Size)
	assert.Equal(t, response.Cell{Row: 7, Col: 7}, layout.Center)
	assert.Contains(t, layout.Premiums, response.Premium{Row: 0, Col: 0, Label: "TW", LetterBonus: 1, WordBonus: 3})
	assert.Contains(t, layout.Premiums, response.Premium{Row: 7, Col: 7, Label: "DW", LetterBonus: 1, WordBonus: 2})
}

func TestCheckWord(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/words/Cat", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, response.WordCheck{Word: "Cat", Valid: true}, decode[response.WordCheck](t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/words/tac", nil)
	assert.False(t, decode[response.WordCheck](t, rr).Valid)
}

func TestEventsForMissingGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/missing/events", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEventStream(t *testing.T) {
	ts := newTestServer(t)
	g := createGame(t, ts, 2)

	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/games/"+g.ID+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	hub := ts.app.HubManager.GetHub(model.GameID(g.ID))
	require.NotNil(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)

	rr := place(t, ts, g.ID, 1, 7, 7)
	require.Equal(t, http.StatusOK, rr.Code)

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: placement_changed") {
			break
		}
	}
	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, `"pending":[{"row":7,"col":7`)
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	boardService   board.ServiceInterface
	hubManager     *events.HubManager
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler. hubManager may be nil, which
// disables event streams.
func NewGameHandler(
	gameController game.ControllerInterface,
	boardService board.ServiceInterface,
	hubManager *events.HubManager,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
		hubManager:     hubManager,
		logger:         logger,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func (h *GameHandler) writeGame(w http.ResponseWriter, status int, g *model.Game) {
	response.JSON(w, status, response.GameFromModel(g, h.boardService.Rows(g.Board)))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	cfg := model.GameConfig{Players: req.Players, SkipLimit: req.SkipLimit}
	if req.Plain {
		layout := model.PlainLayout()
		cfg.Layout = &layout
	}

	g, err := h.gameController.CreateGame(r.Context(), cfg)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.writeGame(w, http.StatusCreated, g)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameListFromModel(ids))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK, g)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if h.hubManager != nil {
		h.hubManager.RemoveHub(id)
	}
	response.NoContent(w)
}

// Place handles POST /api/v1/games/{id}/placements
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, NewInvalidRequestError("invalid request body"))
		return
	}

	var letter rune
	if req.Letter != "" {
		if utf8.RuneCountInString(req.Letter) != 1 {
			writeError(w, h.logger, NewInvalidRequestError("letter must be a single character"))
			return
		}
		letter, _ = utf8.DecodeRuneInString(req.Letter)
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	g, err := h.gameController.ProposePlacement(r.Context(), gameID(r), model.TileID(req.TileID), pos, letter)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.writeGame(w, http.StatusOK, g)
}

// Reset handles DELETE /api/v1/games/{id}/placements
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.ResetPendingPlacements(r.Context(), gameID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.writeGame(w, http.StatusOK, g)
}

// Submit handles POST /api/v1/games/{id}/submit. A rejected move is
// reported as 422 with the rejection code.
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.SubmitTurn(r.Context(), gameID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnResultFromModel(*result))
}

// Skip handles POST /api/v1/games/{id}/skip
func (h *GameHandler) Skip(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.SkipTurn(r.Context(), gameID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnResultFromModel(*result))
}

// Rankings handles GET /api/v1/games/{id}/rankings
func (h *GameHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	rankings, err := h.gameController.Rankings(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, response.RankingsResponse{
		Final:    g.IsOver(),
		Rankings: response.Rankings(rankings),
	})
}

// Events handles GET /api/v1/games/{id}/events as a server-sent event stream
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hubManager == nil {
		writeError(w, h.logger, NewInvalidRequestError("event streams are disabled"))
		return
	}

	id := gameID(r)
	if _, err := h.gameController.GetGame(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	h.logger.Debug("sse stream opened",
		slog.String("game_id", string(id)),
		slog.String("remote_addr", r.RemoteAddr),
		slog.Int("watchers", hub.ClientCount()+1),
	)
	events.ServeSSE(w, r, hub)
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
)

// WordOracle answers dictionary lookups
type WordOracle interface {
	Contains(word string) bool
}

// wordCounter is implemented by oracles that hold their word list locally
type wordCounter interface {
	WordCount() int
}

// MetaHandler handles endpoints that do not belong to a game
type MetaHandler struct {
	oracle       WordOracle
	boardService board.ServiceInterface
	logger       *slog.Logger
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(oracle WordOracle, boardService board.ServiceInterface, logger *slog.Logger) *MetaHandler {
	return &MetaHandler{
		oracle:       oracle,
		boardService: boardService,
		logger:       logger,
	}
}

// Health handles GET /api/v1/health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := response.Health{Status: "ok"}
	if wc, ok := h.oracle.(wordCounter); ok {
		resp.Dictionary = wc.WordCount()
	}
	response.JSON(w, http.StatusOK, resp)
}

// Layout handles GET /api/v1/board/layout
func (h *MetaHandler) Layout(w http.ResponseWriter, r *http.Request) {
	premiums := h.boardService.Premiums(model.StandardLayout())
	response.JSON(w, http.StatusOK, response.LayoutFromPremiums(premiums))
}

// CheckWord handles GET /api/v1/words/{word}
func (h *MetaHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	response.JSON(w, http.StatusOK, response.WordCheck{
		Word:  word,
		Valid: h.oracle.Contains(word),
	})
}

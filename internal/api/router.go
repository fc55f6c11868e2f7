package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/handler"
	"github.com/mcoot/wordtiles/internal/api/middleware"
	"github.com/mcoot/wordtiles/internal/events"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	BoardService   board.ServiceInterface
	Oracle         handler.WordOracle
	HubManager     *events.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService, cfg.HubManager, cfg.Logger)
	metaHandler := handler.NewMetaHandler(cfg.Oracle, cfg.BoardService, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", metaHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/board/layout", metaHandler.Layout).Methods(http.MethodGet)
	api.HandleFunc("/words/{word}", metaHandler.CheckWord).Methods(http.MethodGet)

	games := api.PathPrefix("/games").Subrouter()
	games.HandleFunc("", gameHandler.Create).Methods(http.MethodPost)
	games.HandleFunc("", gameHandler.List).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/placements", gameHandler.Place).Methods(http.MethodPost)
	games.HandleFunc("/{id}/placements", gameHandler.Reset).Methods(http.MethodDelete)
	games.HandleFunc("/{id}/submit", gameHandler.Submit).Methods(http.MethodPost)
	games.HandleFunc("/{id}/skip", gameHandler.Skip).Methods(http.MethodPost)
	games.HandleFunc("/{id}/rankings", gameHandler.Rankings).Methods(http.MethodGet)
	games.HandleFunc("/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	return r
}

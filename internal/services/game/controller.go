package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordtiles/internal/dependencies/clock"
	"github.com/mcoot/wordtiles/internal/dependencies/ids"
	"github.com/mcoot/wordtiles/internal/dependencies/random"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/move"
	"github.com/mcoot/wordtiles/internal/storage"
)

// EventPublisher receives game events after each state change
type EventPublisher interface {
	Publish(event model.Event)
}

// Config holds rule settings applied to new games
type Config struct {
	// SkipLimit is the number of consecutive skips that ends a game
	SkipLimit int
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{SkipLimit: model.DefaultSkipLimit}
}

// Controller manages the turn state machine of every game session.
// Operations on one game are serialised; different games run independently.
type Controller struct {
	storage      storage.Storage
	boardService board.ServiceInterface
	moveService  move.ServiceInterface
	clock        clock.Clock
	random       random.Random
	ids          ids.Generator
	events       EventPublisher
	cfg          Config
	logger       *slog.Logger

	locks sessionLocks
}

// NewController creates a new game Controller. events may be nil.
func NewController(
	storage storage.Storage,
	boardService board.ServiceInterface,
	moveService move.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	ids ids.Generator,
	events EventPublisher,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	if cfg.SkipLimit <= 0 {
		cfg.SkipLimit = model.DefaultSkipLimit
	}
	return &Controller{
		storage:      storage,
		boardService: boardService,
		moveService:  moveService,
		clock:        clock,
		random:       random,
		ids:          ids,
		events:       events,
		cfg:          cfg,
		logger:       logger,
		locks:        newSessionLocks(),
	}
}

// CreateGame starts a game and deals a full hand to each player in turn order
func (c *Controller) CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, error) {
	if cfg.Players < model.MinPlayers || cfg.Players > model.MaxPlayers {
		return nil, model.ErrInvalidPlayerCount
	}

	layout := model.StandardLayout()
	if cfg.Layout != nil {
		layout = *cfg.Layout
	}
	dist := cfg.Distribution
	if dist == nil {
		dist = model.StandardDistribution()
	}
	skipLimit := cfg.SkipLimit
	if skipLimit <= 0 {
		skipLimit = c.cfg.SkipLimit
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.ids.NewID()),
		Status:      model.GameStatusInProgress,
		Board:       model.NewBoard(layout),
		Bag:         model.NewBag(dist),
		Players:     make([]model.Player, cfg.Players),
		TurnNumber:  1,
		IsFirstTurn: true,
		SkipLimit:   skipLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := range game.Players {
		game.Players[i].Number = i + 1
		game.Players[i].Refill(game.Bag, c.random)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", cfg.Players),
		slog.Int("bag_remaining", game.Bag.Remaining()),
	)
	c.publish(game, model.EventGameCreated, nil)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the IDs of all stored games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.locks.lock(gameID)
	defer unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.locks.forget(gameID)

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// Rankings returns the players ordered by score, final once the game is over
func (c *Controller) Rankings(ctx context.Context, gameID model.GameID) ([]model.Ranking, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return game.Rankings, nil
	}
	return game.ComputeRankings(), nil
}

// ProposePlacement moves a tile from the active player's hand onto an empty
// cell as part of this turn. letter designates the face of a blank tile.
func (c *Controller) ProposePlacement(ctx context.Context, gameID model.GameID, tileID model.TileID, pos model.Position, letter rune) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := c.boardService.ValidatePlacement(game.Board, pos); err != nil {
		return nil, err
	}

	player := game.ActivePlayer()
	if !player.HasTile(tileID) {
		return nil, model.ErrTileNotInHand
	}
	tile, err := player.TakeTile(tileID)
	if err != nil {
		return nil, err
	}
	tile, err = c.boardService.PrepareTile(tile, letter)
	if err != nil {
		return nil, err
	}
	if err := game.Board.Place(pos.Index(), tile); err != nil {
		return nil, err
	}
	game.Pending = append(game.Pending, model.Placement{Cell: pos.Index(), Tile: tile})

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Debug("placement proposed",
		slog.String("game_id", string(gameID)),
		slog.Int("player", player.Number),
		slog.Int("tile_id", int(tileID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)
	c.publish(game, model.EventPlacementChanged, model.PlacementChangedPayload{Pending: game.Pending})

	return game, nil
}

// ResetPendingPlacements returns every tile placed this turn to the active
// player's hand
func (c *Controller) ResetPendingPlacements(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	returned := c.returnPending(game)
	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Debug("placements reset",
		slog.String("game_id", string(gameID)),
		slog.Int("returned", returned),
	)
	c.publish(game, model.EventPlacementChanged, model.PlacementChangedPayload{Pending: game.Pending})

	return game, nil
}

// SubmitTurn validates the tiles placed this turn. On success the score is
// applied, the hand refilled and play passes on. On a validation error every
// placed tile goes back to the hand and the turn is not consumed.
func (c *Controller) SubmitTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.ActivePlayer()
	moveResult, err := c.moveService.Evaluate(game.Board, game.Pending, game.IsFirstTurn)
	if err != nil {
		if !model.IsValidationError(err) {
			return nil, err
		}
		return nil, c.reject(ctx, game, err)
	}

	player.AddToScore(moveResult.Total)
	game.Pending = nil
	drawn := player.Refill(game.Bag, c.random)

	record := c.record(game, model.TurnKindCommit)
	record.Words = moveResult.Words
	record.Score = moveResult.Total
	record.Bingo = moveResult.Bingo
	game.History = append(game.History, record)

	over := len(player.Hand) == 0
	game.AdvanceTurn()
	game.IsFirstTurn = false
	game.ConsecutiveSkips = 0
	if over {
		c.finish(game)
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	result := &model.TurnResult{
		Kind:       model.TurnKindCommit,
		Player:     player.Number,
		Words:      moveResult.Words,
		Score:      moveResult.Total,
		Bingo:      moveResult.Bingo,
		Drawn:      drawn,
		NextPlayer: game.ActivePlayer().Number,
		GameOver:   game.IsOver(),
		Rankings:   game.Rankings,
		Warnings:   moveResult.Warnings,
	}

	c.logger.Info("turn committed",
		slog.String("game_id", string(gameID)),
		slog.Int("player", player.Number),
		slog.Int("score", moveResult.Total),
		slog.Int("words", len(moveResult.Words)),
		slog.Bool("bingo", moveResult.Bingo),
		slog.Bool("game_over", result.GameOver),
	)
	c.publish(game, model.EventTurnCommitted, model.TurnPayload{Result: *result})
	if result.GameOver {
		c.publish(game, model.EventGameOver, model.GameOverPayload{Rankings: game.Rankings})
	}

	return result, nil
}

// SkipTurn passes play to the next player without scoring. Any tiles placed
// this turn go back to the hand.
func (c *Controller) SkipTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	player := game.ActivePlayer()
	c.returnPending(game)
	game.History = append(game.History, c.record(game, model.TurnKindSkip))

	game.AdvanceTurn()
	game.ConsecutiveSkips++
	game.IsFirstTurn = false

	if len(game.ActivePlayer().Hand) == 0 || game.ConsecutiveSkips >= game.SkipLimit {
		c.finish(game)
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	result := &model.TurnResult{
		Kind:       model.TurnKindSkip,
		Player:     player.Number,
		NextPlayer: game.ActivePlayer().Number,
		GameOver:   game.IsOver(),
		Rankings:   game.Rankings,
	}

	c.logger.Info("turn skipped",
		slog.String("game_id", string(gameID)),
		slog.Int("player", player.Number),
		slog.Int("consecutive_skips", game.ConsecutiveSkips),
		slog.Bool("game_over", result.GameOver),
	)
	c.publish(game, model.EventTurnSkipped, model.TurnPayload{Result: *result})
	if result.GameOver {
		c.publish(game, model.EventGameOver, model.GameOverPayload{Rankings: game.Rankings})
	}

	return result, nil
}

// reject undoes the pending placements after a failed validation and
// returns the validation error
func (c *Controller) reject(ctx context.Context, game *model.Game, reason error) error {
	player := game.ActivePlayer()
	c.returnPending(game)

	if err := c.save(ctx, game); err != nil {
		return err
	}

	c.logger.Info("turn rejected",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", player.Number),
		slog.String("reason", reason.Error()),
	)
	c.publish(game, model.EventTurnRejected, model.TurnRejectedPayload{Reason: reason.Error()})
	return reason
}

// returnPending lifts this turn's tiles off the board back into the active
// player's hand, in the order they were placed
func (c *Controller) returnPending(game *model.Game) int {
	player := game.ActivePlayer()
	for _, p := range game.Pending {
		if tile, ok := game.Board.Remove(p.Cell); ok {
			player.ReturnTiles(tile)
		}
	}
	returned := len(game.Pending)
	game.Pending = nil
	return returned
}

func (c *Controller) record(game *model.Game, kind model.TurnKind) model.TurnRecord {
	return model.TurnRecord{
		ID:     c.ids.NewID(),
		Number: game.TurnNumber,
		Kind:   kind,
		Player: game.ActivePlayer().Number,
		At:     c.clock.Now(),
	}
}

// finish ends the game and fixes the final standings
func (c *Controller) finish(game *model.Game) {
	game.Status = model.GameStatusOver
	game.Rankings = game.ComputeRankings()

	c.logger.Info("game over",
		slog.String("game_id", string(game.ID)),
		slog.Int("winner", game.Rankings[0].Player),
		slog.Int("winning_score", game.Rankings[0].Score),
	)
}

// loadActive loads a game that is still being played
func (c *Controller) loadActive(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	return game, nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (c *Controller) publish(game *model.Game, eventType model.EventType, payload any) {
	if c.events == nil {
		return
	}
	player := 0
	if p := game.ActivePlayer(); p != nil {
		player = p.Number
	}
	c.events.Publish(model.Event{
		Type:      eventType,
		Timestamp: c.clock.Now(),
		GameID:    game.ID,
		Player:    player,
		Payload:   payload,
	})
}

// ControllerInterface defines the game operations exposed to the API
type ControllerInterface interface {
	CreateGame(ctx context.Context, cfg model.GameConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]model.GameID, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	Rankings(ctx context.Context, gameID model.GameID) ([]model.Ranking, error)
	ProposePlacement(ctx context.Context, gameID model.GameID, tileID model.TileID, pos model.Position, letter rune) (*model.Game, error)
	ResetPendingPlacements(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error)
	SkipTurn(ctx context.Context, gameID model.GameID) (*model.TurnResult, error)
}

var _ ControllerInterface = (*Controller)(nil)

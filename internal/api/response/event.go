package response

import (
	"time"

	"github.com/mcoot/wordtiles/internal/model"
)

// Event is a game event as streamed to SSE clients
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    string    `json:"game_id"`
	Player    int       `json:"player"`
	Payload   any       `json:"payload,omitempty"`
}

// PlacementChanged carries the pending placements after a change
type PlacementChanged struct {
	Pending []Placement `json:"pending"`
}

// TurnRejected carries the reason a submission was rejected
type TurnRejected struct {
	Reason string `json:"reason"`
}

// GameOver carries the final standings
type GameOver struct {
	Rankings []Ranking `json:"rankings"`
}

// EventFromModel converts a model.Event and its payload
func EventFromModel(e model.Event) Event {
	event := Event{
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		GameID:    string(e.GameID),
		Player:    e.Player,
	}

	switch p := e.Payload.(type) {
	case model.PlacementChangedPayload:
		event.Payload = PlacementChanged{Pending: Placements(p.Pending)}
	case model.TurnRejectedPayload:
		event.Payload = TurnRejected{Reason: p.Reason}
	case model.TurnPayload:
		event.Payload = TurnResultFromModel(p.Result)
	case model.GameOverPayload:
		event.Payload = GameOver{Rankings: Rankings(p.Rankings)}
	}

	return event
}

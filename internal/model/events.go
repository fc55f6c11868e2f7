package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated      EventType = "game_created"
	EventPlacementChanged EventType = "placement_changed"
	EventTurnCommitted    EventType = "turn_committed"
	EventTurnRejected     EventType = "turn_rejected"
	EventTurnSkipped      EventType = "turn_skipped"
	EventGameOver         EventType = "game_over"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Player    int // the player who triggered the event
	Payload   any // type-specific data
}

// PlacementChangedPayload contains the pending placements after a change
type PlacementChangedPayload struct {
	Pending []Placement
}

// TurnRejectedPayload contains the reason a submission was rejected
type TurnRejectedPayload struct {
	Reason string
}

// TurnPayload contains the result of a committed or skipped turn
type TurnPayload struct {
	Result TurnResult
}

// GameOverPayload contains the final standings
type GameOverPayload struct {
	Rankings []Ranking
}

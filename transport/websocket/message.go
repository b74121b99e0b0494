package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	actionNewGame = "game:new"
	actionGetGame = "game:get"
	actionPlace   = "game:place"
	actionClick   = "game:click"
	actionReset   = "game:reset"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the arguments of every action; each action reads its own fields.
type RequestPayload struct {
	GameID string   `json:"game_id,omitempty"`
	Row    *int     `json:"row,omitempty"`
	Col    *int     `json:"col,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

type ResponsePayload struct {
	Game    *entity.Game    `json:"game,omitempty"`
	Outcome *entity.Outcome `json:"outcome,omitempty"`
	Notice  string          `json:"notice,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func newMovePayload(game *entity.Game, outcome entity.Outcome) ResponsePayload {
	payload := ResponsePayload{
		Game:    game,
		Outcome: &outcome,
	}

	if outcome.IsWin() {
		payload.Notice = outcome.Winner.WinNotice()
	}

	return payload
}

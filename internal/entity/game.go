package entity

import (
	"time"
)

// Game is the stored snapshot of one game session. Moves is the source of truth,
// the other fields are derived from it and kept for readers.
type Game struct {
	ID        string    `json:"id"`
	Board     Board     `json:"board"`
	Turn      Color     `json:"player_turn"`
	Status    string    `json:"status"`
	Winner    Color     `json:"winner"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(id string, now time.Time) *Game {
	return &Game{
		ID:        id,
		Turn:      Black,
		Status:    StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// Notice - returns the user-facing win message, or an empty string while the game goes on.
func (that *Game) Notice() string {
	if !that.IsFinished() {
		return ""
	}

	return that.Winner.WinNotice()
}

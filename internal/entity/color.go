package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownColor = errors.New("unknown color")

// Color is the content of a board cell, or the side to move.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

const (
	labelBlack = "黑方"
	labelWhite = "白方"
	winSuffix  = "获胜！"
)

// Opponent - returns the other side. Empty has no opponent.
func (that Color) Opponent() Color {
	switch that {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Label - returns the player name shown to users.
func (that Color) Label() string {
	switch that {
	case Black:
		return labelBlack
	case White:
		return labelWhite
	default:
		return ""
	}
}

// WinNotice - returns the message announcing that this side has won.
func (that Color) WinNotice() string {
	if that == Empty {
		return ""
	}

	return that.Label() + winSuffix
}

func (that Color) IsStone() bool {
	return that == Black || that == White
}

func (that Color) String() string {
	switch that {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return ""
	}
}

func (that Color) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = Empty
	case "black":
		*that = Black
	case "white":
		*that = White
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, text)
	}

	return nil
}

package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return payload, nil
}

func decodeGamePayload(msg *Message) (RequestPayload, error) {
	payload, err := decodePayload(msg)
	if err != nil {
		return payload, err
	}

	if payload.GameID == "" {
		return payload, fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	return payload, nil
}

func (that *Server) handleNewGame(ctx context.Context, _ *Message) (ResponsePayload, error) {
	game, err := that.games.CreateGame(ctx)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to create game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, msg *Message) (ResponsePayload, error) {
	payload, err := decodeGamePayload(msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.games.GetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to get game: %w", err)
	}

	return ResponsePayload{Game: game, Notice: game.Notice()}, nil
}

func (that *Server) handlePlace(ctx context.Context, msg *Message) (ResponsePayload, error) {
	payload, err := decodeGamePayload(msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	if payload.Row == nil || payload.Col == nil {
		return ResponsePayload{}, fmt.Errorf("%w: row and col are required", apperror.ErrInvalidPayload)
	}

	game, outcome, err := that.games.PlaceStone(ctx, payload.GameID, *payload.Row, *payload.Col)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to place stone: %w", err)
	}

	return newMovePayload(game, outcome), nil
}

func (that *Server) handleClick(ctx context.Context, msg *Message) (ResponsePayload, error) {
	payload, err := decodeGamePayload(msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	if payload.X == nil || payload.Y == nil {
		return ResponsePayload{}, fmt.Errorf("%w: x and y are required", apperror.ErrInvalidPayload)
	}

	game, outcome, err := that.games.Click(ctx, payload.GameID, *payload.X, *payload.Y)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to handle click: %w", err)
	}

	return newMovePayload(game, outcome), nil
}

func (that *Server) handleReset(ctx context.Context, msg *Message) (ResponsePayload, error) {
	payload, err := decodeGamePayload(msg)
	if err != nil {
		return ResponsePayload{}, err
	}

	game, err := that.games.ResetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, fmt.Errorf("failed to reset game: %w", err)
	}

	return ResponsePayload{Game: game}, nil
}

// errorText - returns the message shown to clients; internal failures are not exposed.
func errorText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidPayload):
		return apperror.ErrInvalidPayload.Error()
	case errors.Is(err, apperror.ErrGameNotFound):
		return apperror.ErrGameNotFound.Error()
	default:
		return "internal server error"
	}
}

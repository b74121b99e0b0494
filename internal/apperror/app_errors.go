package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrCorruptedGame  = errors.New("stored game does not replay")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrUnknownAction  = errors.New("unknown action")
)

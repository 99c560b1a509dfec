package apperror

import "errors"

var (
	ErrColumnFull     = errors.New("column is full")
	ErrInvalidEntry   = errors.New("invalid entry")
	ErrTokenNotChosen = errors.New("token is not chosen")
	ErrGameEnded      = errors.New("game has ended")
	ErrUnknownState   = errors.New("unknown game state")
)

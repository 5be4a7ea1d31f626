package game

import "errors"

var (
	ErrIllegalAction = errors.New("illegal action")
	ErrWrongPhase    = errors.New("wrong phase")
	ErrGameEnded     = errors.New("game already ended")
)

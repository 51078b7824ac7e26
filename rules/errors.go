package rules

import "errors"

var (
	ErrNoKing           = errors.New("no king on board")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrInvalidSquare    = errors.New("invalid square")
)

package game

import "errors"

var (
	ErrNotPromotion       = errors.New("move is not a promotion")
	ErrNoPendingPromotion = errors.New("no pending promotion")
	ErrInvalidPromotion   = errors.New("invalid promotion piece")
)

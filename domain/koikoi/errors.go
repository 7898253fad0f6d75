package koikoi

import "errors"

var (
	ErrDealMismatch  = errors.New("dealt card count mismatch")
	ErrInvalidChoice = errors.New("choice not among the valid indices")
	ErrInvalidRounds = errors.New("invalid number of rounds")
)

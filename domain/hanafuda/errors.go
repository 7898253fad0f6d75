package hanafuda

import "errors"

var (
	// ErrUnderflow is returned when drawing from an empty deck.
	ErrUnderflow = errors.New("deck underflow")
	// ErrIndexOutOfRange is returned for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrIllegalCard is returned for a (month, design) pair that is not in the deck.
	ErrIllegalCard = errors.New("illegal card")
)

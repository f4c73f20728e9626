package game

import "errors"

var (
	ErrInvalidCard     = errors.New("invalid card")
	ErrInvalidTrump    = errors.New("invalid trump")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrAlreadyPlayed   = errors.New("card already played")
	ErrIllegalAction   = errors.New("illegal action")
	ErrTrickFull       = errors.New("trick is full")
	ErrTrickIncomplete = errors.New("trick is incomplete")
	ErrDuplicatePlayer = errors.New("player already in trick")
	ErrDuplicateCard   = errors.New("card already in trick")
	ErrGameOver        = errors.New("game is over")
	ErrInvalidDeal     = errors.New("invalid deal")

	// ErrInvariant marks corrupted game data. It is never recoverable.
	ErrInvariant = errors.New("invariant violated")
)

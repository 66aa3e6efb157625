package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. Validation failures never mutate
// state: the caller keeps the prior value and may submit another action.
var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrOutOfTurn         = errors.New("action out of turn")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrHandOver          = errors.New("hand is over")
)

// InvalidActionError reports an action outside the legal set for the acting
// player and state.
type InvalidActionError struct {
	Seat   int
	Action Action
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action by seat %d (%s): %s", e.Seat, e.Action, e.Reason)
}

func (e *InvalidActionError) Unwrap() error { return ErrInvalidAction }

// OutOfTurnError reports an action submitted for a seat other than the
// expected actor.
type OutOfTurnError struct {
	Seat     int
	Expected int
}

func (e *OutOfTurnError) Error() string {
	return fmt.Sprintf("seat %d acted out of turn, expected seat %d", e.Seat, e.Expected)
}

func (e *OutOfTurnError) Unwrap() error { return ErrOutOfTurn }

// InsufficientFundsError reports a bet or raise beyond the player's stack.
// Calls never produce it: a call over stack clamps to all-in instead.
type InsufficientFundsError struct {
	Seat   int
	Amount int
	Max    int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("seat %d cannot commit %d, maximum is %d", e.Seat, e.Amount, e.Max)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

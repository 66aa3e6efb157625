package game

import (
	"fmt"

	"github.com/yeogirlyun/holdemcore/internal/deck"
)

// ActionKind identifies a player action. DealBoard entries appear only in the
// action history, marking street boundaries; they are never submitted.
type ActionKind int

const (
	PostBlind ActionKind = iota
	Fold
	Check
	Call
	Bet
	Raise
	AllIn
	DealBoard
)

func (k ActionKind) String() string {
	switch k {
	case PostBlind:
		return "post_blind"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	case DealBoard:
		return "deal_board"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is a single decision submitted for a seat.
//
// Amount carries the street commitment the player bets or raises TO, not the
// increment: raising to 30 with 10 already committed moves 20 chips. It is
// ignored for Fold, Check, Call and AllIn, whose sizes the engine derives.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) String() string {
	switch a.Kind {
	case Bet, Raise:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	default:
		return a.Kind.String()
	}
}

// ActionRecord is one entry in a hand's action history.
type ActionRecord struct {
	Street Street
	// Seat is -1 for DealBoard entries.
	Seat int
	Kind ActionKind
	// Paid is the number of chips the action moved from the stack.
	Paid int
	// ToAmount is the player's street commitment after the action.
	ToAmount int
	// Cards holds the dealt board cards for DealBoard entries.
	Cards []deck.Card
}

func (r ActionRecord) String() string {
	switch r.Kind {
	case DealBoard:
		return fmt.Sprintf("%s: deal %s", r.Street, deck.CardsString(r.Cards))
	case Bet, Raise, AllIn, PostBlind:
		return fmt.Sprintf("%s: seat %d %s to %d", r.Street, r.Seat, r.Kind, r.ToAmount)
	case Call:
		return fmt.Sprintf("%s: seat %d calls %d", r.Street, r.Seat, r.Paid)
	default:
		return fmt.Sprintf("%s: seat %d %s", r.Street, r.Seat, r.Kind)
	}
}

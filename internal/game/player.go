package game

import "github.com/yeogirlyun/holdemcore/internal/deck"

// Player is one seat's state within a hand. Owned exclusively by HandState
// and mutated only through validated actions.
type Player struct {
	Seat int
	Name string
	// Stack is the chips remaining behind.
	Stack int
	// CurrentBet is the amount committed on the current street.
	CurrentBet int
	// TotalInvested is the amount committed over the whole hand.
	TotalInvested int
	HoleCards     []deck.Card
	Folded        bool
	AllIn         bool
}

// Live reports whether the player is still contesting the hand.
func (p *Player) Live() bool {
	return !p.Folded
}

// CanAct reports whether the player can still make decisions this hand.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// commit moves up to amount chips from the stack into the street commitment,
// flagging all-in when the stack empties. Returns the chips actually moved.
func (p *Player) commit(amount int) int {
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack -= amount
	p.CurrentBet += amount
	p.TotalInvested += amount
	if p.Stack == 0 {
		p.AllIn = true
	}
	return amount
}

func (p *Player) clone() *Player {
	c := *p
	if p.HoleCards != nil {
		c.HoleCards = make([]deck.Card, len(p.HoleCards))
		copy(c.HoleCards, p.HoleCards)
	}
	return &c
}

// Package replay drives the hand engine from recorded histories. An Adapter
// serves a HandRecord's actions through the same Decider interface a live
// bot policy uses, synthesizing the trivial checks that recorded histories
// commonly omit.
package replay

import (
	"fmt"

	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Kind is the action vocabulary of recorded histories. It is deliberately
// coarser than the engine's: histories write one token for check-or-call and
// one for bet-or-raise, and the adapter resolves each against the live state.
type Kind int

const (
	Fold Kind = iota
	CheckCall
	BetRaise
)

func (k Kind) String() string {
	switch k {
	case Fold:
		return "f"
	case CheckCall:
		return "cc"
	case BetRaise:
		return "cbr"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RecordedAction is one entry of a recorded betting sequence.
type RecordedAction struct {
	Seat int
	Kind Kind
	// Amount is the street commitment a bet or raise moves to; zero
	// otherwise.
	Amount int
}

func (a RecordedAction) String() string {
	if a.Kind == BetRaise {
		return fmt.Sprintf("seat %d %s %d", a.Seat, a.Kind, a.Amount)
	}
	return fmt.Sprintf("seat %d %s", a.Seat, a.Kind)
}

// HandRecord is an externally recorded hand: seats, blinds, known cards and
// the per-street action sequences. It is immutable input; the engine never
// writes to it.
type HandRecord struct {
	ID         string
	Players    []string
	Button     int
	SmallBlind int
	BigBlind   int

	StartingStacks []int
	// FinishingStacks, when present, lets a driver verify the replayed
	// outcome against the recorded one.
	FinishingStacks []int

	// HoleCards holds each seat's known cards; a nil entry means the
	// record does not reveal them.
	HoleCards [][]deck.Card
	// Board holds the community cards the record reached, in deal order.
	Board []deck.Card

	// Actions holds the recorded betting sequence per street, indexed by
	// game.Street. Blind posts are implied by the blind sizes, not listed.
	Actions [4][]RecordedAction
}

// Validate checks the record's internal consistency.
func (r *HandRecord) Validate() error {
	n := len(r.Players)
	if n < 2 {
		return fmt.Errorf("replay: record %s has %d players, need at least 2", r.ID, n)
	}
	if r.Button < 0 || r.Button >= n {
		return fmt.Errorf("replay: record %s button %d out of range", r.ID, r.Button)
	}
	if len(r.StartingStacks) != n {
		return fmt.Errorf("replay: record %s has %d stacks for %d players", r.ID, len(r.StartingStacks), n)
	}
	if r.FinishingStacks != nil && len(r.FinishingStacks) != n {
		return fmt.Errorf("replay: record %s has %d finishing stacks for %d players", r.ID, len(r.FinishingStacks), n)
	}
	if r.HoleCards != nil && len(r.HoleCards) != n {
		return fmt.Errorf("replay: record %s reveals cards for %d of %d seats", r.ID, len(r.HoleCards), n)
	}
	for seat, hole := range r.HoleCards {
		if hole != nil && len(hole) != 2 {
			return fmt.Errorf("replay: record %s seat %d has %d hole cards", r.ID, seat, len(hole))
		}
	}
	if len(r.Board) > 5 {
		return fmt.Errorf("replay: record %s board has %d cards", r.ID, len(r.Board))
	}
	for st, actions := range r.Actions {
		for _, a := range actions {
			if a.Seat < 0 || a.Seat >= n {
				return fmt.Errorf("replay: record %s %s action for seat %d", r.ID, game.Street(st), a.Seat)
			}
		}
	}
	return nil
}

// Deck builds the rigged deal order the engine needs to reproduce the
// recorded cards: two cards per seat in seat order, then the board. Unknown
// hole cards and missing board cards are filled with unused cards; fillers
// are sound as long as the seats holding them never reach showdown, which is
// exactly when a record may omit them.
func (r *HandRecord) Deck() (*deck.Deck, error) {
	used := make(map[deck.Card]bool)
	mark := func(cards []deck.Card) error {
		for _, c := range cards {
			if !c.Valid() {
				return fmt.Errorf("replay: record %s holds invalid card %v", r.ID, c)
			}
			if used[c] {
				return fmt.Errorf("replay: record %s deals %s twice", r.ID, c)
			}
			used[c] = true
		}
		return nil
	}
	for _, hole := range r.HoleCards {
		if err := mark(hole); err != nil {
			return nil, err
		}
	}
	if err := mark(r.Board); err != nil {
		return nil, err
	}

	// Unused cards in canonical order keep the fill deterministic.
	fill := make([]deck.Card, 0, 52)
	for suit := deck.Clubs; suit <= deck.Spades; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			if c := (deck.Card{Rank: rank, Suit: suit}); !used[c] {
				fill = append(fill, c)
			}
		}
	}
	take := func(n int) []deck.Card {
		cards := fill[:n]
		fill = fill[n:]
		return cards
	}

	order := make([]deck.Card, 0, 52)
	for seat := 0; seat < len(r.Players); seat++ {
		if r.HoleCards != nil && r.HoleCards[seat] != nil {
			order = append(order, r.HoleCards[seat]...)
		} else {
			order = append(order, take(2)...)
		}
	}
	order = append(order, r.Board...)
	order = append(order, take(5-len(r.Board))...)
	return deck.NewOrdered(order), nil
}

// GameConfig assembles the engine configuration that reproduces the record's
// table: same seats, stacks, blinds, button and a rigged deck.
func (r *HandRecord) GameConfig(ev game.Evaluator) (game.Config, error) {
	if err := r.Validate(); err != nil {
		return game.Config{}, err
	}
	d, err := r.Deck()
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Players:    r.Players,
		Button:     r.Button,
		SmallBlind: r.SmallBlind,
		BigBlind:   r.BigBlind,
		Stacks:     r.StartingStacks,
		Deck:       d,
		Evaluator:  ev,
	}, nil
}

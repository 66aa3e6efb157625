package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck deals cards from a fixed 52-card pool. The zero value is not usable;
// construct with New or NewOrdered.
type Deck struct {
	cards []Card
	next  int
}

// New returns a full deck shuffled with the provided source. A nil rng leaves
// the deck in canonical order, which is only useful for tests.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	if rng != nil {
		rng.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	return d
}

// NewOrdered returns a deck that deals exactly the given cards in order.
// Used to rig deals for replays and deterministic tests.
func NewOrdered(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, fmt.Errorf("deck exhausted after %d cards", d.next)
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// DrawN removes and returns the top n cards.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("deck has %d cards, need %d", len(d.cards)-d.next, n)
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Clone returns an independent copy of the deck including its deal position.
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards, next: d.next}
}

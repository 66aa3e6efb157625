package game

import "github.com/yeogirlyun/holdemcore/internal/deck"

// Category is the rank class of a five-card hand.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}

// HandValue is the result of evaluating a seven-card hand. Score is a total
// order: a higher score beats a lower one and equal scores tie. Category and
// Desc are informational.
type HandValue struct {
	Category Category
	Score    int32
	Desc     string
}

// Evaluator scores a player's best five-card hand from two hole cards and
// five board cards. Implementations must be pure and stateless; the engine
// calls them only at showdown.
type Evaluator interface {
	Evaluate(hole, board []deck.Card) (HandValue, error)
}

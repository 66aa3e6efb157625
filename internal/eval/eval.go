// Package eval binds the engine's showdown interface to the external
// paulhankin/poker seven-card evaluator.
package eval

import (
	"fmt"
	"sort"

	"github.com/paulhankin/poker"
	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Evaluator implements game.Evaluator. It is stateless and safe for
// concurrent use.
type Evaluator struct{}

// New returns the evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the best five-card hand from two hole cards and five board
// cards. Higher scores beat lower ones and equal scores tie, matching the
// library's total order.
func (*Evaluator) Evaluate(hole, board []deck.Card) (game.HandValue, error) {
	if len(hole) != 2 {
		return game.HandValue{}, fmt.Errorf("eval: %d hole cards, want 2", len(hole))
	}
	if len(board) != 5 {
		return game.HandValue{}, fmt.Errorf("eval: %d board cards, want 5", len(board))
	}

	var hand [7]poker.Card
	for i, c := range append(append([]deck.Card(nil), hole...), board...) {
		pc, err := convertCard(c)
		if err != nil {
			return game.HandValue{}, err
		}
		hand[i] = pc
	}

	score := poker.Eval7(&hand)
	desc, err := poker.Describe(hand[:])
	if err != nil {
		return game.HandValue{}, fmt.Errorf("eval: describing hand: %w", err)
	}
	return game.HandValue{
		Category: categoryOf(score),
		Score:    int32(score),
		Desc:     desc,
	}, nil
}

// convertCard maps an engine card onto the library's representation, which
// ranks aces as 1.
func convertCard(c deck.Card) (poker.Card, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("eval: invalid card %v", c)
	}

	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	}

	rank := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return 0, fmt.Errorf("eval: converting %s: %w", c, err)
	}
	return pc, nil
}

// categoryFloors holds the library's score for the weakest five-card hand of
// each category, ascending. A hand's category is the highest floor its score
// reaches; the floors partition the library's total order without depending
// on its internal encoding.
var categoryFloors = buildCategoryFloors()

type categoryFloor struct {
	category game.Category
	score    int16
}

func buildCategoryFloors() []categoryFloor {
	weakest := []struct {
		category game.Category
		cards    string
	}{
		{game.Pair, "2c2d3h4s5c"},
		{game.TwoPair, "2c2d3h3s4c"},
		{game.ThreeOfAKind, "2c2d2h3s4c"},
		{game.Straight, "Ac2d3h4s5c"},
		{game.Flush, "2c3c4c5c7c"},
		{game.FullHouse, "2c2d2h3s3c"},
		{game.FourOfAKind, "2c2d2h2s3c"},
		{game.StraightFlush, "Ac2c3c4c5c"},
	}

	floors := make([]categoryFloor, 0, len(weakest))
	for _, w := range weakest {
		cards, err := deck.ParseCards(w.cards)
		if err != nil {
			panic(err)
		}
		var hand [5]poker.Card
		for i, c := range cards {
			pc, err := convertCard(c)
			if err != nil {
				panic(err)
			}
			hand[i] = pc
		}
		floors = append(floors, categoryFloor{category: w.category, score: poker.Eval5(&hand)})
	}
	sort.Slice(floors, func(i, j int) bool { return floors[i].score < floors[j].score })
	return floors
}

func categoryOf(score int16) game.Category {
	category := game.HighCard
	for _, f := range categoryFloors {
		if score >= f.score {
			category = f.category
		}
	}
	return category
}

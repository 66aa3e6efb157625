package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/eval"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

func evaluate(t *testing.T, hole, board string) game.HandValue {
	t.Helper()
	v, err := eval.New().Evaluate(deck.MustParse(hole), deck.MustParse(board))
	require.NoError(t, err)
	return v
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	board := "2c7d9hJsQd"
	tests := []struct {
		name string
		hole string
		want game.Category
	}{
		{"high card", "3s4h", game.HighCard},
		{"pair", "2d5h", game.Pair},
		{"two pair", "2dJd", game.TwoPair},
		{"trips", "2d2h", game.ThreeOfAKind},
		{"straight", "8sTc", game.Straight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := evaluate(t, tt.hole, board)
			assert.Equal(t, tt.want, v.Category)
			assert.NotEmpty(t, v.Desc)
		})
	}
}

func TestEvaluateBigHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		hole, board string
		want        game.Category
	}{
		{"flush", "AhKh", "2h7h9hJsQd", game.Flush},
		{"full house", "9d9s", "9h7c7dJsQd", game.FullHouse},
		{"quads", "9d9s", "9h9c7dJsQd", game.FourOfAKind},
		{"straight flush", "5h6h", "7h8h9hJsQd", game.StraightFlush},
		{"wheel straight", "Ad2s", "3h4c5dJsQd", game.Straight},
		{"steel wheel", "Ah2h", "3h4h5hJsQd", game.StraightFlush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := evaluate(t, tt.hole, tt.board)
			assert.Equal(t, tt.want, v.Category)
		})
	}
}

func TestEvaluateOrdering(t *testing.T) {
	t.Parallel()

	board := "2c7d9hJsQd"
	pair := evaluate(t, "2d5h", board)
	twoPair := evaluate(t, "2dJd", board)
	straight := evaluate(t, "8sTc", board)

	assert.Greater(t, twoPair.Score, pair.Score, "two pair must beat one pair")
	assert.Greater(t, straight.Score, twoPair.Score, "straight must beat two pair")
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()

	// Both play the board's broadway straight.
	board := "TcJdQhKsAd"
	a := evaluate(t, "2c3c", board)
	b := evaluate(t, "4h5h", board)
	assert.Equal(t, a.Score, b.Score)
}

func TestEvaluateKickerBreaksTie(t *testing.T) {
	t.Parallel()

	board := "2c7d9hJsQd"
	aceKicker := evaluate(t, "QhAc", board)
	kingKicker := evaluate(t, "QsKc", board)
	assert.Greater(t, aceKicker.Score, kingKicker.Score)
}

func TestEvaluateInputValidation(t *testing.T) {
	t.Parallel()

	e := eval.New()
	_, err := e.Evaluate(deck.MustParse("AhKh"), deck.MustParse("2h7h9h"))
	assert.Error(t, err, "partial boards are not evaluable")

	_, err = e.Evaluate(deck.MustParse("Ah"), deck.MustParse("2h7h9hJsQd"))
	assert.Error(t, err)

	_, err = e.Evaluate([]deck.Card{{}, {}}, deck.MustParse("2h7h9hJsQd"))
	assert.Error(t, err, "zero-value cards are invalid")
}

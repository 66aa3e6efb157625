package phh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/eval"
	"github.com/yeogirlyun/holdemcore/internal/game"
	"github.com/yeogirlyun/holdemcore/internal/phh"
)

// playedHand runs a scripted heads-up hand to showdown: the button raises
// to 30 preflop, both check it down, and the big blind bets 40 on the
// river and gets called.
func playedHand(t *testing.T) *game.HandState {
	t.Helper()
	s, err := game.NewHand(game.Config{
		Players:   []string{"alice", "bob"},
		Button:    0,
		Deck:      deck.NewOrdered(deck.MustParse("AsAh KsKh 2c3c4c 5h 8d")),
		Evaluator: eval.New(),
	})
	require.NoError(t, err)

	script := []struct {
		seat int
		act  game.Action
	}{
		{0, game.Action{Kind: game.Raise, Amount: 30}},
		{1, game.Action{Kind: game.Call}},
		{1, game.Action{Kind: game.Check}},
		{0, game.Action{Kind: game.Check}},
		{1, game.Action{Kind: game.Check}},
		{0, game.Action{Kind: game.Check}},
		{1, game.Action{Kind: game.Bet, Amount: 40}},
		{0, game.Action{Kind: game.Call}},
	}
	for _, step := range script {
		s, err = s.ExecuteAction(step.seat, step.act)
		require.NoError(t, err)
	}
	require.True(t, s.Terminal())
	return s
}

func TestFromState(t *testing.T) {
	t.Parallel()

	h, err := phh.FromState(playedHand(t), "hand-1")
	require.NoError(t, err)

	assert.Equal(t, phh.VariantNT, h.Variant)
	assert.Equal(t, "hand-1", h.HandID)
	assert.Equal(t, 10, h.MinBet)
	assert.Equal(t, []int{5, 10}, h.BlindsOrStraddles)
	// Heads up the button posts the small blind and is listed first.
	assert.Equal(t, []string{"alice", "bob"}, h.Players)
	assert.Equal(t, []int{1000, 1000}, h.StartingStacks)
	assert.Equal(t, []int{1070, 930}, h.FinishingStacks)

	assert.Equal(t, []string{
		"d dh p1 AsAh",
		"d dh p2 KsKh",
		"p1 cbr 30",
		"p2 cc",
		"d db 2c3c4c",
		"p2 cc",
		"p1 cc",
		"d db 5h",
		"p2 cc",
		"p1 cc",
		"d db 8d",
		"p2 cbr 40",
		"p1 cc",
		"p1 sm AsAh",
		"p2 sm KsKh",
	}, h.Actions)
}

func TestFromStateRejectsUnfinishedHand(t *testing.T) {
	t.Parallel()

	s, err := game.NewHand(game.Config{
		Players:   []string{"alice", "bob"},
		Button:    0,
		Deck:      deck.NewOrdered(deck.MustParse("AsAh KsKh 2c3c4c 5h 8d")),
		Evaluator: eval.New(),
	})
	require.NoError(t, err)

	_, err = phh.FromState(s, "hand-1")
	require.ErrorContains(t, err, "not finished")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := phh.FromState(playedHand(t), "hand-1")
	require.NoError(t, err)

	data, err := phh.EncodeBytes(h)
	require.NoError(t, err)

	got, err := phh.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestEncodeAllRoundTrip(t *testing.T) {
	t.Parallel()

	h1, err := phh.FromState(playedHand(t), "hand-1")
	require.NoError(t, err)
	h2, err := phh.FromState(playedHand(t), "hand-2")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, phh.EncodeAll(&buf, []*phh.HandHistory{h1, h2}))

	got, err := phh.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, h1, got[0])
	assert.Equal(t, h2, got[1])
}

func TestDecodeAllOrdersNumerically(t *testing.T) {
	t.Parallel()

	doc := `
[2]
variant = "NT"
blinds_or_straddles = [5, 10]
min_bet = 10
starting_stacks = [1000, 1000]
actions = []

[10]
variant = "NT"
blinds_or_straddles = [5, 10]
min_bet = 10
starting_stacks = [1000, 1000]
actions = []

[1]
variant = "NT"
blinds_or_straddles = [5, 10]
min_bet = 10
starting_stacks = [1000, 1000]
actions = []
`
	hands, err := phh.DecodeAll(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, hands, 3)
	assert.Equal(t, "1", hands[0].HandID)
	assert.Equal(t, "2", hands[1].HandID)
	assert.Equal(t, "10", hands[2].HandID)
}

func TestDecodeRejectsInvalidHands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unsupported variant",
			doc: `variant = "FT"
blinds_or_straddles = [5, 10]
starting_stacks = [1000, 1000]
actions = []`,
			want: "unsupported variant",
		},
		{
			name: "single player",
			doc: `variant = "NT"
blinds_or_straddles = [5, 10]
starting_stacks = [1000]
actions = []`,
			want: "starting stacks",
		},
		{
			name: "missing blinds",
			doc: `variant = "NT"
blinds_or_straddles = []
starting_stacks = [1000, 1000]
actions = []`,
			want: "missing blinds",
		},
		{
			name: "antes unsupported",
			doc: `variant = "NT"
antes = [1, 1]
blinds_or_straddles = [5, 10]
starting_stacks = [1000, 1000]
actions = []`,
			want: "antes",
		},
		{
			name: "straddles unsupported",
			doc: `variant = "NT"
blinds_or_straddles = [5, 10, 20]
starting_stacks = [1000, 1000, 1000]
actions = []`,
			want: "straddles",
		},
		{
			name: "player count mismatch",
			doc: `variant = "NT"
blinds_or_straddles = [5, 10]
starting_stacks = [1000, 1000]
players = ["alice"]
actions = []`,
			want: "players",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := phh.Decode(strings.NewReader(tc.doc))
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestNormalizeCard(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"10h": "Th",
		"AH":  "Ah",
		"Th":  "Th",
		"2c":  "2c",
		"??":  "??",
	}
	for in, want := range cases {
		assert.Equal(t, want, phh.NormalizeCard(in), "input %q", in)
	}
}

func TestParseCardRun(t *testing.T) {
	t.Parallel()

	cards, known, err := phh.ParseCardRun("AhKs")
	require.NoError(t, err)
	assert.True(t, known)
	assert.Equal(t, deck.MustParse("AhKs"), cards)
	assert.Equal(t, "AhKs", phh.FormatCards(cards))

	cards, known, err = phh.ParseCardRun(phh.UnknownCards)
	require.NoError(t, err)
	assert.False(t, known)
	assert.Nil(t, cards)

	_, _, err = phh.ParseCardRun("Zz")
	require.Error(t, err)
}

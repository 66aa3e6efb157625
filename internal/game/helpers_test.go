package game

import (
	"testing"

	"github.com/yeogirlyun/holdemcore/internal/deck"
)

// stubEvaluator scores a hand by its hole card ranks alone, so tests choose
// winners by dealing higher ranks. Equal hole ranks tie.
type stubEvaluator struct{}

func (stubEvaluator) Evaluate(hole, board []deck.Card) (HandValue, error) {
	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	return HandValue{
		Category: HighCard,
		Score:    int32(hi)*15 + int32(lo),
		Desc:     "stub",
	}, nil
}

// testHandConfig rigs a hand: hole cards two per seat in seat order followed
// by five board cards, all dealt in the given order.
type testHandConfig struct {
	names  []string
	stacks []int
	button int
	blinds [2]int
	cards  string
}

func newTestHand(t *testing.T, cfg testHandConfig) *HandState {
	t.Helper()
	c := Config{
		Players:   cfg.names,
		Button:    cfg.button,
		Stacks:    cfg.stacks,
		Deck:      deck.NewOrdered(deck.MustParse(cfg.cards)),
		Evaluator: stubEvaluator{},
	}
	if cfg.blinds != [2]int{} {
		c.SmallBlind, c.BigBlind = cfg.blinds[0], cfg.blinds[1]
	}
	s, err := NewHand(c)
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	return s
}

// headsUpHand deals a standard 1000/1000, 5/10 heads-up hand with seat 0 on
// the button. Seat 0 holds aces, seat 1 kings.
func headsUpHand(t *testing.T) *HandState {
	t.Helper()
	return newTestHand(t, testHandConfig{
		names:  []string{"btn", "bb"},
		stacks: []int{1000, 1000},
		cards:  "AsAh KsKh 2c3c4c 5h 8d",
	})
}

func mustAct(t *testing.T, s *HandState, seat int, act Action) *HandState {
	t.Helper()
	next, err := s.ExecuteAction(seat, act)
	if err != nil {
		t.Fatalf("seat %d %s: %v", seat, act, err)
	}
	return next
}

func wantActor(t *testing.T, s *HandState, seat int) {
	t.Helper()
	got, ok := s.NextActor()
	if !ok {
		t.Fatalf("no next actor in phase %s, want seat %d", s.Phase, seat)
	}
	if got != seat {
		t.Fatalf("next actor = seat %d, want seat %d", got, seat)
	}
}

package game

import (
	"errors"
	"testing"
)

func TestHeadsUpRaiseCallReachesFlop(t *testing.T) {
	t.Parallel()

	// Button posts 5, big blind posts 10; button raises to 30, big blind
	// calls 20 more. The flop opens with a 60 pot and the button to act.
	s := headsUpHand(t)
	wantActor(t, s, 0)

	s = mustAct(t, s, 0, Action{Kind: Raise, Amount: 30})
	wantActor(t, s, 1)
	s = mustAct(t, s, 1, Action{Kind: Call})

	if s.Phase != FlopBetting {
		t.Fatalf("phase = %s, want %s", s.Phase, FlopBetting)
	}
	if got := s.TotalPot(); got != 60 {
		t.Errorf("pot = %d, want 60", got)
	}
	if len(s.Board) != 3 {
		t.Errorf("board has %d cards, want 3", len(s.Board))
	}
	wantActor(t, s, 0)

	// Street commitments reset for the new street.
	if s.Betting.CurrentBet != 0 {
		t.Errorf("flop current bet = %d, want 0", s.Betting.CurrentBet)
	}
	for _, p := range s.Players {
		if p.CurrentBet != 0 {
			t.Errorf("seat %d street bet = %d, want 0", p.Seat, p.CurrentBet)
		}
	}
}

func TestExecuteActionDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	pot, stack := s.TotalPot(), s.Players[0].Stack

	if _, err := s.ExecuteAction(0, Action{Kind: Raise, Amount: 30}); err != nil {
		t.Fatalf("raise: %v", err)
	}
	if s.TotalPot() != pot || s.Players[0].Stack != stack {
		t.Errorf("input state mutated: pot %d->%d stack %d->%d",
			pot, s.TotalPot(), stack, s.Players[0].Stack)
	}
}

func TestBigBlindCannotFoldUnraised(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: Call}) // button limps

	// The big blind owes nothing and must keep its option open.
	_, err := s.ExecuteAction(1, Action{Kind: Fold})
	if !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("fold error = %v, want ErrInvalidAction", err)
	}
	if s.Phase != PreflopBetting {
		t.Fatalf("phase = %s after rejected fold, want %s", s.Phase, PreflopBetting)
	}

	// Facing a raise the same seat may fold.
	s = mustAct(t, s, 1, Action{Kind: Raise, Amount: 30})
	s = mustAct(t, s, 0, Action{Kind: Raise, Amount: 60})
	s = mustAct(t, s, 1, Action{Kind: Fold})
	if !s.Terminal() {
		t.Fatalf("phase = %s after fold-out, want %s", s.Phase, EndHand)
	}
}

func TestBigBlindOptionAfterLimp(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: Call})

	// A limped pot still owes the big blind a decision.
	if s.Phase != PreflopBetting {
		t.Fatalf("phase = %s, want %s", s.Phase, PreflopBetting)
	}
	wantActor(t, s, 1)
	if !s.Betting.NeedAction.Contains(1) {
		t.Fatal("big blind not in need_action_from after a limp")
	}

	s = mustAct(t, s, 1, Action{Kind: Check})
	if s.Phase != FlopBetting {
		t.Fatalf("phase = %s after option check, want %s", s.Phase, FlopBetting)
	}
}

func TestFoldOutAwardsPotWithoutShowdown(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: Raise, Amount: 30})
	s = mustAct(t, s, 1, Action{Kind: Fold})

	if !s.Terminal() {
		t.Fatalf("phase = %s, want %s", s.Phase, EndHand)
	}
	if s.Result == nil || s.Result.Reason != FoldOut {
		t.Fatalf("result = %+v, want fold-out", s.Result)
	}
	if s.Result.Values != nil {
		t.Error("fold-out result carries showdown values")
	}
	// The unmatched 20 returns to the raiser; the 20 that was called is won.
	if got := s.Players[0].Stack; got != 1010 {
		t.Errorf("winner stack = %d, want 1010", got)
	}
	if got := s.Players[1].Stack; got != 990 {
		t.Errorf("folder stack = %d, want 990", got)
	}
}

func TestShortCallClampsToAllIn(t *testing.T) {
	t.Parallel()

	s := newTestHand(t, testHandConfig{
		names:  []string{"short", "big"},
		stacks: []int{40, 200},
		cards:  "AsAh KsKh 2c3c4c 5h 8d",
	})
	s = mustAct(t, s, 0, Action{Kind: Call}) // completes to 10
	s = mustAct(t, s, 1, Action{Kind: Raise, Amount: 110})

	// Stack 30 behind against 100 owed: the call is an all-in for 30,
	// never a rejection, and the hand runs out on its own.
	s = mustAct(t, s, 0, Action{Kind: Call})

	if !s.Terminal() {
		t.Fatalf("phase = %s, want %s", s.Phase, EndHand)
	}
	short := s.Players[0]
	if !short.AllIn {
		t.Error("short caller not flagged all-in")
	}
	if short.TotalInvested != 40 {
		t.Errorf("short caller invested %d, want 40", short.TotalInvested)
	}
	// Aces hold: an 80 pot after the 70 uncalled return.
	if got := short.Stack; got != 80 {
		t.Errorf("short caller stack = %d, want 80", got)
	}
	if got := s.Players[1].Stack; got != 160 {
		t.Errorf("big stack = %d, want 160", got)
	}
}

func TestBetOverStackRejectedUnlessExact(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: Call})
	s = mustAct(t, s, 1, Action{Kind: Check})

	// Flop, seat 0 first with 990 behind.
	if _, err := s.ExecuteAction(0, Action{Kind: Bet, Amount: 5000}); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("oversized bet error = %v, want ErrInsufficientFunds", err)
	}
	if _, err := s.ExecuteAction(0, Action{Kind: Bet, Amount: 990}); err != nil {
		t.Fatalf("exact-stack bet rejected: %v", err)
	}
}

func TestThreeWayAllInSidePots(t *testing.T) {
	t.Parallel()

	// Stacks 50/150/300, everyone all-in preflop. Two contested tiers:
	// 150 at threshold 50 (all three) and 200 at threshold 150 (two),
	// plus a 150 uncalled return to the deep stack.
	s := newTestHand(t, testHandConfig{
		names:  []string{"shallow", "mid", "deep"},
		stacks: []int{50, 150, 300},
		button: 0,
		cards:  "AsAh KsKh QsQh 2c3c4c 5h 8d",
	})
	wantActor(t, s, 0) // 3-handed preflop opens left of the big blind
	s = mustAct(t, s, 0, Action{Kind: AllIn})
	s = mustAct(t, s, 1, Action{Kind: AllIn})
	s = mustAct(t, s, 2, Action{Kind: AllIn})

	if !s.Terminal() {
		t.Fatalf("phase = %s, want %s", s.Phase, EndHand)
	}
	r := s.Result
	if r == nil || r.Reason != ShowdownResolved {
		t.Fatalf("result = %+v, want showdown", r)
	}
	if len(r.Awards) != 2 {
		t.Fatalf("got %d pot tiers, want 2: %+v", len(r.Awards), r.Awards)
	}

	main := r.Awards[0]
	if main.Threshold != 50 || main.Amount != 150 || len(main.Eligible) != 3 {
		t.Errorf("main tier = %+v, want threshold 50 amount 150 with 3 eligible", main)
	}
	side := r.Awards[1]
	if side.Threshold != 150 || side.Amount != 200 || len(side.Eligible) != 2 {
		t.Errorf("side tier = %+v, want threshold 150 amount 200 with 2 eligible", side)
	}

	// Aces take the main pot, kings the side pot, and the uncalled 150
	// goes back to the deep stack.
	wantStacks := []int{150, 200, 150}
	for seat, want := range wantStacks {
		if got := s.Players[seat].Stack; got != want {
			t.Errorf("seat %d stack = %d, want %d", seat, got, want)
		}
	}
}

func TestAllInRunoutDealsRemainingStreets(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: AllIn})
	s = mustAct(t, s, 1, Action{Kind: Call})

	if !s.Terminal() {
		t.Fatalf("phase = %s, want %s", s.Phase, EndHand)
	}
	if len(s.Board) != 5 {
		t.Errorf("board has %d cards after runout, want 5", len(s.Board))
	}
	if s.Result.Reason != ShowdownResolved {
		t.Errorf("reason = %s, want showdown", s.Result.Reason)
	}
	if got := s.Players[0].Stack; got != 2000 {
		t.Errorf("winner stack = %d, want 2000", got)
	}
}

func TestOutOfTurnRejected(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	_, err := s.ExecuteAction(1, Action{Kind: Call})
	if !errors.Is(err, ErrOutOfTurn) {
		t.Fatalf("error = %v, want ErrOutOfTurn", err)
	}
	var oot *OutOfTurnError
	if !errors.As(err, &oot) || oot.Expected != 0 {
		t.Fatalf("error = %#v, want OutOfTurnError expecting seat 0", err)
	}
}

func TestActionAfterHandOver(t *testing.T) {
	t.Parallel()

	s := headsUpHand(t)
	s = mustAct(t, s, 0, Action{Kind: Raise, Amount: 30})
	s = mustAct(t, s, 1, Action{Kind: Fold})

	if _, err := s.ExecuteAction(0, Action{Kind: Check}); !errors.Is(err, ErrHandOver) {
		t.Fatalf("error = %v, want ErrHandOver", err)
	}
}

func TestShortAllInRaiseKeepsMinRaise(t *testing.T) {
	t.Parallel()

	// Seat 1 opens to 100; seat 2's all-in to 130 is short of a full
	// raise, so a re-raise must still reach 100 plus the original 90.
	s2 := newTestHand(t, testHandConfig{
		names:  []string{"opener", "short", "caller"},
		stacks: []int{1000, 130, 1000},
		button: 0,
		cards:  "AsAh KsKh QsQh 2c3c4c 5h 8d",
	})
	// 3-handed, button 0: seat 1 small blind, seat 2 big blind, seat 0 opens.
	s2 = mustAct(t, s2, 0, Action{Kind: Raise, Amount: 100})
	s2 = mustAct(t, s2, 1, Action{Kind: AllIn}) // raise to 130, short
	if got := s2.Betting.MinRaise; got != 90 {
		t.Errorf("min raise after short all-in = %d, want 90", got)
	}
	as := s2.LegalActions(2)
	if !as.CanRaise || as.RaiseMin != 220 {
		t.Errorf("raise min = %d (can=%v), want 220", as.RaiseMin, as.CanRaise)
	}
}

func TestSubBlindAllInOpenKeepsMinRaise(t *testing.T) {
	t.Parallel()

	// The button reaches the flop with 3 chips behind and opens all-in for
	// them. An opening bet below the big blind must not lower the raise
	// bar: the next raise still has to reach 3 plus the full blind.
	s := newTestHand(t, testHandConfig{
		names:  []string{"tiny", "sb", "bb"},
		stacks: []int{13, 1000, 1000},
		button: 0,
		cards:  "AsAh KsKh QsQh 2c3c4c 5h 8d",
	})
	s = mustAct(t, s, 0, Action{Kind: Call})
	s = mustAct(t, s, 1, Action{Kind: Call})
	s = mustAct(t, s, 2, Action{Kind: Check})

	wantActor(t, s, 1)
	s = mustAct(t, s, 1, Action{Kind: Check})
	s = mustAct(t, s, 2, Action{Kind: Check})
	s = mustAct(t, s, 0, Action{Kind: Bet, Amount: 3}) // all-in under the blind

	if got := s.Betting.MinRaise; got != 10 {
		t.Errorf("min raise after sub-blind all-in open = %d, want 10", got)
	}
	as := s.LegalActions(1)
	if !as.CanRaise || as.RaiseMin != 13 {
		t.Errorf("raise min = %d (can=%v), want 13", as.RaiseMin, as.CanRaise)
	}
	if _, err := s.ExecuteAction(1, Action{Kind: Raise, Amount: 6}); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("raise to 6 error = %v, want ErrInvalidAction", err)
	}
	s = mustAct(t, s, 1, Action{Kind: Raise, Amount: 13})
	if got := s.Betting.MinRaise; got != 10 {
		t.Errorf("min raise after full-size re-raise = %d, want 10", got)
	}
}

func TestBlindsLargerThanStackRunOut(t *testing.T) {
	t.Parallel()

	// The big blind swallows seat 1's whole stack and nobody is left owing
	// chips after the button completes, so the hand settles on its own.
	s := newTestHand(t, testHandConfig{
		names:  []string{"btn", "tiny"},
		stacks: []int{1000, 10},
		cards:  "AsAh KsKh 2c3c4c 5h 8d",
	})
	wantActor(t, s, 0)
	s = mustAct(t, s, 0, Action{Kind: Call})
	if !s.Terminal() {
		t.Fatalf("phase = %s, want %s", s.Phase, EndHand)
	}
	if got := s.Players[0].Stack; got != 1010 {
		t.Errorf("winner stack = %d, want 1010", got)
	}
}

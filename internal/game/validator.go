package game

import "fmt"

// ActionSet describes the legal actions for one player in one state. Bet and
// raise bounds are street commitments (the amount bet or raised TO); CallCost
// is the number of chips a call moves, already clamped to the stack.
type ActionSet struct {
	CanFold  bool
	CanCheck bool

	CanCall bool
	// CallCost is the chips a call would move; when it equals the player's
	// stack the call is an all-in for less than the full amount owed.
	CallCost int

	CanBet bool
	BetMin int
	BetMax int

	CanRaise bool
	RaiseMin int
	RaiseMax int
}

// Contains reports whether an action kind is in the set.
func (as ActionSet) Contains(kind ActionKind) bool {
	switch kind {
	case Fold:
		return as.CanFold
	case Check:
		return as.CanCheck
	case Call:
		return as.CanCall
	case Bet:
		return as.CanBet
	case Raise:
		return as.CanRaise
	case AllIn:
		return as.CanCheck || as.CanCall || as.CanBet || as.CanRaise
	default:
		return false
	}
}

// LegalActions computes the action set for a seat. Folded, all-in and
// terminal-state players get an empty set. The computation ignores turn
// order: ExecuteAction enforces that separately.
//
// Rules: folding requires owing chips (a big blind facing no raise cannot
// fold). A call costs the outstanding difference, clamped to stack; a short
// stack's call is an all-in rather than an error. Betting requires an
// unopened street, raising an opened one. Both are floored by the tracked
// minimum raise and capped by the stack, with the cap itself always a legal
// shove.
func (s *HandState) LegalActions(seat int) ActionSet {
	var as ActionSet
	if s.Terminal() || !s.Phase.Betting() || seat < 0 || seat >= len(s.Players) {
		return as
	}
	p := s.Players[seat]
	if !p.CanAct() {
		return as
	}

	owed := s.Betting.CurrentBet - p.CurrentBet
	max := p.CurrentBet + p.Stack // largest street commitment the seat can reach

	as.CanFold = owed > 0
	as.CanCheck = owed == 0
	if owed > 0 {
		as.CanCall = true
		as.CallCost = owed
		if as.CallCost > p.Stack {
			as.CallCost = p.Stack
		}
	}

	if s.Betting.CurrentBet == 0 {
		as.CanBet = true
		as.BetMax = max
		as.BetMin = s.BigBlind
		if as.BetMin > as.BetMax {
			as.BetMin = as.BetMax
		}
	} else if max > s.Betting.CurrentBet {
		as.CanRaise = true
		as.RaiseMax = max
		as.RaiseMin = s.Betting.CurrentBet + s.Betting.MinRaise
		if as.RaiseMin > as.RaiseMax {
			as.RaiseMin = as.RaiseMax
		}
	}
	return as
}

// validateAction checks a submitted action against the legal set, returning
// the typed error the caller can match with errors.Is.
func (s *HandState) validateAction(seat int, act Action) error {
	as := s.LegalActions(seat)
	switch act.Kind {
	case Fold:
		if !as.CanFold {
			return &InvalidActionError{Seat: seat, Action: act, Reason: "nothing owed, cannot fold"}
		}
	case Check:
		if !as.CanCheck {
			return &InvalidActionError{Seat: seat, Action: act,
				Reason: fmt.Sprintf("facing a bet of %d", s.Betting.CurrentBet)}
		}
	case Call:
		if !as.CanCall {
			return &InvalidActionError{Seat: seat, Action: act, Reason: "no outstanding bet to call"}
		}
	case Bet:
		if !as.CanBet {
			return &InvalidActionError{Seat: seat, Action: act, Reason: "street already has a bet, raise instead"}
		}
		if act.Amount > as.BetMax {
			return &InsufficientFundsError{Seat: seat, Amount: act.Amount, Max: as.BetMax}
		}
		if act.Amount < as.BetMin && act.Amount != as.BetMax {
			return &InvalidActionError{Seat: seat, Action: act,
				Reason: fmt.Sprintf("bet below minimum %d", as.BetMin)}
		}
	case Raise:
		if !as.CanRaise {
			reason := "no bet to raise, bet instead"
			if s.Betting.CurrentBet > 0 {
				reason = "stack covers at most a call"
			}
			return &InvalidActionError{Seat: seat, Action: act, Reason: reason}
		}
		if act.Amount > as.RaiseMax {
			return &InsufficientFundsError{Seat: seat, Amount: act.Amount, Max: as.RaiseMax}
		}
		if act.Amount < as.RaiseMin && act.Amount != as.RaiseMax {
			return &InvalidActionError{Seat: seat, Action: act,
				Reason: fmt.Sprintf("raise below minimum %d", as.RaiseMin)}
		}
	case AllIn:
		if !as.Contains(AllIn) {
			return &InvalidActionError{Seat: seat, Action: act, Reason: "no chips behind"}
		}
	default:
		return &InvalidActionError{Seat: seat, Action: act, Reason: "not a player action"}
	}
	return nil
}

package game

// BettingState tracks the open betting round: the street's high-water mark,
// the minimum raise increment, and the seats still owed a decision.
type BettingState struct {
	// CurrentBet is the street commitment every live player must match.
	CurrentBet int
	// MinRaise is the size of the last bet or raise increment; a raise must
	// reach at least CurrentBet+MinRaise. Resets to the big blind each street.
	MinRaise int
	// LastAggressor is the seat of the last bet or raise, -1 when the street
	// has seen none.
	LastAggressor int
	// NeedAction holds the seats still owed a decision. It shrinks as players
	// act and is repopulated only by a bet or raise. The street is settled
	// exactly when it is empty.
	NeedAction SeatSet
	// ToAct is the seat expected to act next, -1 when the street is settled.
	ToAct int
}

func newBettingState() *BettingState {
	return &BettingState{LastAggressor: -1, ToAct: -1}
}

func (b *BettingState) clone() *BettingState {
	c := *b
	return &c
}

// openStreet resets betting for a street and seeds need_action_from.
// Postflop streets zero every commitment; preflop keeps the posted blinds as
// live street bets, so the big blind seat retains its option.
func (s *HandState) openStreet(st Street) {
	if st != Preflop {
		for _, p := range s.Players {
			p.CurrentBet = 0
		}
		s.Betting.CurrentBet = 0
		s.Betting.MinRaise = s.BigBlind
	}
	s.Betting.LastAggressor = -1

	canAct := s.actableSeats()
	switch {
	case canAct.Count() >= 2:
		s.Betting.NeedAction = canAct
	default:
		// With one seat able to act, betting only continues if that seat
		// still owes chips to an all-in wager.
		s.Betting.NeedAction = 0
		for _, seat := range canAct.Seats() {
			if s.Players[seat].CurrentBet < s.Betting.CurrentBet {
				s.Betting.NeedAction = s.Betting.NeedAction.Add(seat)
			}
		}
	}
	s.Betting.ToAct = s.firstToAct(st, s.Betting.NeedAction)
}

// roundComplete reports whether the current street is settled.
func (s *HandState) roundComplete() bool {
	return s.Betting.NeedAction.Empty()
}

// actorDone removes the acting seat and rotates ToAct onward.
func (s *HandState) actorDone(seat int) {
	s.Betting.NeedAction = s.Betting.NeedAction.Remove(seat)
	s.Betting.ToAct = s.Betting.NeedAction.NextFrom(seat+1, len(s.Players))
}

// reopenAction repopulates need_action_from after a bet or raise: every other
// live, non-all-in seat owes a decision again. The aggressor just acted and
// is excluded.
func (s *HandState) reopenAction(aggressor int) {
	s.Betting.LastAggressor = aggressor
	s.Betting.NeedAction = s.actableSeats().Remove(aggressor)
	s.Betting.ToAct = s.Betting.NeedAction.NextFrom(aggressor+1, len(s.Players))
}

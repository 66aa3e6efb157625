package game

import "fmt"

// ExecuteAction applies one validated action for seat and returns the
// resulting state. The input state is never modified: validation failures
// return a nil state and a typed error, leaving the caller with the prior
// value. Street transitions, all-in runouts and showdown resolution happen
// inside the call, so the returned state is either terminal or has a next
// actor.
func (s *HandState) ExecuteAction(seat int, act Action) (*HandState, error) {
	if s.Terminal() {
		return nil, fmt.Errorf("game: seat %d submitted %s: %w", seat, act, ErrHandOver)
	}
	expected, ok := s.NextActor()
	if !ok {
		return nil, fmt.Errorf("game: no actor expected in phase %s", s.Phase)
	}
	if seat != expected {
		return nil, &OutOfTurnError{Seat: seat, Expected: expected}
	}

	act = s.normalize(seat, act)
	if err := s.validateAction(seat, act); err != nil {
		return nil, err
	}

	next := s.Clone()
	next.apply(seat, act)
	next.settleIfComplete()
	return next, nil
}

// normalize rewrites an AllIn submission into the bet, raise or call it
// amounts to, so the rest of the engine deals in three sizing kinds only.
func (s *HandState) normalize(seat int, act Action) Action {
	if act.Kind != AllIn || seat < 0 || seat >= len(s.Players) {
		return act
	}
	p := s.Players[seat]
	shove := p.CurrentBet + p.Stack
	switch {
	case s.Betting.CurrentBet == 0:
		return Action{Kind: Bet, Amount: shove}
	case shove > s.Betting.CurrentBet:
		return Action{Kind: Raise, Amount: shove}
	default:
		return Action{Kind: Call}
	}
}

// apply mutates the state with an already-validated action.
func (s *HandState) apply(seat int, act Action) {
	p := s.Players[seat]
	rec := ActionRecord{Street: s.Street(), Seat: seat, Kind: act.Kind}

	switch act.Kind {
	case Fold:
		p.Folded = true
		s.actorDone(seat)

	case Check:
		s.actorDone(seat)

	case Call:
		// The owed difference, clamped to stack: a short stack's call is
		// an all-in for less.
		owed := s.Betting.CurrentBet - p.CurrentBet
		rec.Paid = p.commit(owed)
		s.Pot.Contribute(seat, rec.Paid)
		s.actorDone(seat)

	case Bet, Raise:
		prior := s.Betting.CurrentBet
		rec.Paid = p.commit(act.Amount - p.CurrentBet)
		s.Pot.Contribute(seat, rec.Paid)
		// A short all-in keeps the previous raise increment, whether it
		// opens the street or comes over the top; only a full-size bet or
		// raise moves the bar. openStreet seeds MinRaise with the big
		// blind, so a full-size opening bet always clears it.
		if inc := p.CurrentBet - prior; inc >= s.Betting.MinRaise {
			s.Betting.MinRaise = inc
		}
		s.Betting.CurrentBet = p.CurrentBet
		s.reopenAction(seat)

	default:
		// validateAction admits only the kinds above; normalize folds
		// AllIn into them before validation.
		panic(fmt.Sprintf("game: applying unexpected action kind %s", act.Kind))
	}

	rec.ToAmount = p.CurrentBet
	s.History = append(s.History, rec)
}

// settleIfComplete advances the hand as far as a single action allows: it
// closes settled streets, deals board cards, runs out all-in boards and
// resolves fold-outs and showdowns. At return the state is terminal or
// awaits a decision.
func (s *HandState) settleIfComplete() {
	for {
		if s.Terminal() {
			return
		}
		if s.LiveCount() <= 1 {
			s.finishFoldOut()
			return
		}
		if !s.roundComplete() {
			s.checkInvariants()
			return
		}
		if s.Phase == RiverBetting {
			s.finishShowdown()
			return
		}
		s.dealNextStreet()
	}
}

// dealNextStreet moves one street forward: board cards are dealt, street
// commitments reset and need_action_from reseeded. When every live player is
// all-in the new street opens already settled and the caller's loop carries
// the hand onward.
func (s *HandState) dealNextStreet() {
	street := s.Street() + 1
	switch street {
	case Flop:
		s.Phase = DealFlop
	case Turn:
		s.Phase = DealTurn
	default:
		s.Phase = DealRiver
	}

	cards, err := s.deck.DrawN(boardCardsFor(street))
	if err != nil {
		// A full deck covers 22 hole cards plus the board; validate caps
		// seats well below that, so the deck cannot run dry mid-hand.
		panic(fmt.Sprintf("game: dealing %s: %v", street, err))
	}
	s.Board = append(s.Board, cards...)
	s.History = append(s.History, ActionRecord{
		Street: street, Seat: -1, Kind: DealBoard, Cards: cards,
	})

	s.Phase = bettingPhase(street)
	s.openStreet(street)
}

// EndReason states how a hand concluded.
type EndReason int

const (
	// FoldOut: every player but one folded; the pot moves without showdown.
	FoldOut EndReason = iota
	// ShowdownResolved: hands were compared at showdown.
	ShowdownResolved
)

func (r EndReason) String() string {
	if r == FoldOut {
		return "fold_out"
	}
	return "showdown"
}

// HandResult records the terminal outcome of a hand.
type HandResult struct {
	Reason EndReason
	// Winnings maps seats to chips received from the pot, uncalled
	// returns included. Sums to the pot total.
	Winnings map[int]int
	// Awards details each resolved pot tier in ascending threshold order.
	Awards []TierAward
	// Values holds the showdown value per live seat; nil on a fold-out.
	Values map[int]HandValue
}

func (r *HandResult) clone() *HandResult {
	c := &HandResult{Reason: r.Reason}
	if r.Winnings != nil {
		c.Winnings = make(map[int]int, len(r.Winnings))
		for seat, amt := range r.Winnings {
			c.Winnings[seat] = amt
		}
	}
	if r.Awards != nil {
		c.Awards = append([]TierAward(nil), r.Awards...)
	}
	if r.Values != nil {
		c.Values = make(map[int]HandValue, len(r.Values))
		for seat, v := range r.Values {
			c.Values[seat] = v
		}
	}
	return c
}

// finishFoldOut ends the hand with a single live player, awarding the pot
// without evaluation.
func (s *HandState) finishFoldOut() {
	winnings, awards, err := s.Pot.Resolve(s.Players, nil, s.Button)
	if err != nil {
		panic(fmt.Sprintf("game: resolving fold-out: %v", err))
	}
	s.conclude(&HandResult{Reason: FoldOut, Winnings: winnings, Awards: awards})
}

// finishShowdown evaluates every live hand and distributes the pot across
// its tiers.
func (s *HandState) finishShowdown() {
	s.Phase = Showdown
	values := make(map[int]HandValue)
	for _, p := range s.Players {
		if !p.Live() {
			continue
		}
		v, err := s.eval.Evaluate(p.HoleCards, s.Board)
		if err != nil {
			panic(fmt.Sprintf("game: evaluating seat %d: %v", p.Seat, err))
		}
		values[p.Seat] = v
	}

	winnings, awards, err := s.Pot.Resolve(s.Players, values, s.Button)
	if err != nil {
		panic(fmt.Sprintf("game: resolving showdown: %v", err))
	}
	s.conclude(&HandResult{
		Reason:   ShowdownResolved,
		Winnings: winnings,
		Awards:   awards,
		Values:   values,
	})
}

// conclude pays out the distribution and seals the hand. Chip conservation
// is asserted here: the distribution must account for every contributed chip.
func (s *HandState) conclude(result *HandResult) {
	paid := 0
	for seat, amt := range result.Winnings {
		s.Players[seat].Stack += amt
		paid += amt
	}
	if paid != s.Pot.Total() {
		panic(fmt.Sprintf("game: distributed %d of a %d pot", paid, s.Pot.Total()))
	}
	s.Result = result
	s.Betting.NeedAction = 0
	s.Betting.ToAct = -1
	s.Phase = EndHand
}

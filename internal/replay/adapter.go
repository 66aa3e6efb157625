package replay

import (
	"fmt"

	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Adapter serves a HandRecord's actions through the game.Decider interface,
// one engine step per call. Its only state is a read cursor per street plus
// the bookkeeping for implicit-check synthesis, so Rewind makes it reusable.
//
// Recorded histories may omit a trivial check: a street opens unbet and the
// next recorded entry belongs to a later seat's bet. When the engine asks
// for an actor who does not own the next recorded entry and the street's
// current bet is zero, the adapter synthesizes a check for that actor
// without advancing the cursor; the recorded entry is served to its owner on
// a later call. Asking the same seat again at the same cursor means the
// record cannot be reconciled and surfaces a DesyncError instead of looping.
type Adapter struct {
	rec     *HandRecord
	cursors [4]int
	// synthesized tracks the seats already given an implicit check at the
	// current cursor of each street.
	synthesized [4]game.SeatSet
	synthCount  int
}

// New returns an adapter positioned at the top of the record.
func New(rec *HandRecord) *Adapter {
	return &Adapter{rec: rec}
}

// Record returns the record being replayed.
func (a *Adapter) Record() *HandRecord {
	return a.rec
}

// Rewind repositions the adapter at the top of the record.
func (a *Adapter) Rewind() {
	a.cursors = [4]int{}
	a.synthesized = [4]game.SeatSet{}
	a.synthCount = 0
}

// SynthesizedChecks returns how many implicit checks the adapter has
// produced since the last Rewind.
func (a *Adapter) SynthesizedChecks() int {
	return a.synthCount
}

// Decide serves the next decision for the engine's expected actor.
func (a *Adapter) Decide(seat int, s *game.HandState) (game.Action, error) {
	street := s.Street()
	actions := a.rec.Actions[street]
	cursor := a.cursors[street]

	if cursor >= len(actions) {
		return game.Action{}, fmt.Errorf(
			"replay: record %s %s actions exhausted with seat %d to act: %w",
			a.rec.ID, street, seat, ErrRecordDrained)
	}

	next := actions[cursor]
	if next.Seat != seat {
		if s.Betting.CurrentBet == 0 && !a.synthesized[street].Contains(seat) {
			a.synthesized[street] = a.synthesized[street].Add(seat)
			a.synthCount++
			return game.Action{Kind: game.Check}, nil
		}
		return game.Action{}, newDesyncError(a.rec.ID, seat, street, cursor, next, s)
	}

	a.cursors[street]++
	a.synthesized[street] = 0
	return resolveAction(next, s), nil
}

// resolveAction maps the record's coarse vocabulary onto an engine action
// using the live betting state: cc is a call when chips are owed and a check
// otherwise, cbr a bet on an unopened street and a raise on an opened one.
func resolveAction(rec RecordedAction, s *game.HandState) game.Action {
	switch rec.Kind {
	case Fold:
		return game.Action{Kind: game.Fold}
	case CheckCall:
		if s.Betting.CurrentBet > s.Players[rec.Seat].CurrentBet {
			return game.Action{Kind: game.Call}
		}
		return game.Action{Kind: game.Check}
	default:
		if s.Betting.CurrentBet == 0 {
			return game.Action{Kind: game.Bet, Amount: rec.Amount}
		}
		return game.Action{Kind: game.Raise, Amount: rec.Amount}
	}
}

package bot

import (
	rand "math/rand/v2"

	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Maniac is shove-heavy: it raises or bets the maximum most of the time and
// never folds. Useful for forcing all-in and side-pot paths in simulation.
type Maniac struct {
	rng *rand.Rand
}

// NewManiac creates a Maniac policy.
func NewManiac(rng *rand.Rand) *Maniac {
	return &Maniac{rng: rng}
}

// Decide implements game.Decider.
func (b *Maniac) Decide(seat int, s *game.HandState) (game.Action, error) {
	as := s.LegalActions(seat)
	aggressive := b.rng.Float64() < 0.7

	switch {
	case aggressive && as.CanBet:
		return game.Action{Kind: game.Bet, Amount: as.BetMax}, nil
	case aggressive && as.CanRaise:
		return game.Action{Kind: game.Raise, Amount: as.RaiseMax}, nil
	case as.CanCall:
		return game.Action{Kind: game.Call}, nil
	default:
		return game.Action{Kind: game.Check}, nil
	}
}

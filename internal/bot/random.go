package bot

import (
	rand "math/rand/v2"

	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Random picks uniformly among the legal action kinds, with uniformly sized
// bets and raises. It exercises every validator path, which is its whole
// point: a soak of Random hands touches min-raises, shoves and short calls.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random policy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide implements game.Decider.
func (b *Random) Decide(seat int, s *game.HandState) (game.Action, error) {
	as := s.LegalActions(seat)

	var choices []game.Action
	if as.CanFold {
		choices = append(choices, game.Action{Kind: game.Fold})
	}
	if as.CanCheck {
		choices = append(choices, game.Action{Kind: game.Check})
	}
	if as.CanCall {
		choices = append(choices, game.Action{Kind: game.Call})
	}
	if as.CanBet {
		amt := as.BetMin + b.rng.IntN(as.BetMax-as.BetMin+1)
		choices = append(choices, game.Action{Kind: game.Bet, Amount: amt})
	}
	if as.CanRaise {
		amt := as.RaiseMin + b.rng.IntN(as.RaiseMax-as.RaiseMin+1)
		choices = append(choices, game.Action{Kind: game.Raise, Amount: amt})
	}
	return choices[b.rng.IntN(len(choices))], nil
}

// Package bot provides built-in live decision policies. Each policy
// implements game.Decider, the same interface the replay adapter serves, so
// the session layer swaps freely between live play and replay.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Policies selectable by name.
const (
	PolicyCall   = "call"
	PolicyRandom = "rand"
	PolicyManiac = "maniac"
)

// New returns the named policy. The rng is ignored by deterministic
// policies.
func New(policy string, rng *rand.Rand) (game.Decider, error) {
	switch policy {
	case PolicyCall:
		return Caller{}, nil
	case PolicyRandom:
		return &Random{rng: rng}, nil
	case PolicyManiac:
		return &Maniac{rng: rng}, nil
	default:
		return nil, fmt.Errorf("bot: unknown policy %q", policy)
	}
}

// Caller checks when it can and calls when it must. It never folds and
// never raises, which makes it the reference opponent for validator and
// runner behavior.
type Caller struct{}

// Decide implements game.Decider.
func (Caller) Decide(seat int, s *game.HandState) (game.Action, error) {
	if as := s.LegalActions(seat); as.CanCall {
		return game.Action{Kind: game.Call}, nil
	}
	return game.Action{Kind: game.Check}, nil
}

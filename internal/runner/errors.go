package runner

import (
	"errors"
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// ErrLoopGuard means a hand's drive loop exceeded its iteration cap. Always
// fatal to the hand: the loop must stop and report, never retry.
var ErrLoopGuard = errors.New("drive loop iteration cap exceeded")

// LoopGuardError captures where the loop was stuck: the phase, the pot and
// the seat being queried when the cap was hit, plus a dump of the full state.
type LoopGuardError struct {
	HandID string
	Steps  int
	Limit  int
	Phase  game.Phase
	Pot    int
	Seat   int
	// StateDump is a rendering of the engine snapshot at the trip.
	StateDump string
}

func newLoopGuardError(handID string, steps, limit, seat int, s *game.HandState) *LoopGuardError {
	return &LoopGuardError{
		HandID:    handID,
		Steps:     steps,
		Limit:     limit,
		Phase:     s.Phase,
		Pot:       s.TotalPot(),
		Seat:      seat,
		StateDump: litter.Sdump(s.Snapshot()),
	}
}

func (e *LoopGuardError) Error() string {
	return fmt.Sprintf("runner: hand %s stuck in %s after %d steps (limit %d), pot %d, querying seat %d",
		e.HandID, e.Phase, e.Steps, e.Limit, e.Pot, e.Seat)
}

func (e *LoopGuardError) Unwrap() error { return ErrLoopGuard }

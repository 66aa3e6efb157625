// Package runner drives a hand to completion from any decision source. The
// same guarded loop serves live bot play and deterministic replay; the only
// difference is the game.Decider plugged in.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// DefaultGuardFactor scales the iteration cap: a hand is allowed
// players × 4 streets × factor engine steps before the guard trips.
const DefaultGuardFactor = 8

// Config configures a Runner. The zero value is usable: silent logger, real
// clock, default guard factor.
type Config struct {
	Logger *log.Logger
	Clock  quartz.Clock
	// GuardFactor overrides DefaultGuardFactor when positive.
	GuardFactor int
}

// Runner executes hands step by step, bounding each drive loop so that a
// turn-order or reconciliation bug surfaces as an error instead of a hang.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
	factor int
}

// New creates a Runner.
func New(cfg Config) *Runner {
	r := &Runner{
		logger: cfg.Logger,
		clock:  cfg.Clock,
		factor: cfg.GuardFactor,
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.clock == nil {
		r.clock = quartz.NewReal()
	}
	if r.factor <= 0 {
		r.factor = DefaultGuardFactor
	}
	return r
}

// Outcome summarizes one completed drive.
type Outcome struct {
	HandID   string
	Steps    int
	Duration time.Duration
}

// Run drives the hand until it is terminal. Every engine step asks the state
// for its expected actor, obtains a decision and applies it; the iteration
// cap converts a runaway loop into a LoopGuardError carrying the stuck
// state. The last valid state is always returned, even on error.
func (r *Runner) Run(s *game.HandState, decider game.Decider) (*game.HandState, Outcome, error) {
	handID := uuid.NewString()
	logger := r.logger.With("hand_id", handID)

	limit := len(s.Players) * 4 * r.factor
	start := r.clock.Now()
	steps := 0

	for !s.Terminal() {
		seat, ok := s.NextActor()
		if !ok {
			return s, Outcome{HandID: handID, Steps: steps},
				fmt.Errorf("runner: hand %s at rest in phase %s with no actor", handID, s.Phase)
		}
		if steps >= limit {
			err := newLoopGuardError(handID, steps, limit, seat, s)
			logger.Error("iteration guard tripped",
				"steps", steps, "limit", limit, "phase", s.Phase.String(), "seat", seat)
			return s, Outcome{HandID: handID, Steps: steps}, err
		}
		steps++

		act, err := decider.Decide(seat, s)
		if err != nil {
			return s, Outcome{HandID: handID, Steps: steps},
				fmt.Errorf("runner: hand %s deciding for seat %d: %w", handID, seat, err)
		}
		next, err := s.ExecuteAction(seat, act)
		if err != nil {
			return s, Outcome{HandID: handID, Steps: steps},
				fmt.Errorf("runner: hand %s applying %s for seat %d: %w", handID, act, seat, err)
		}
		s = next

		logger.Debug("action applied",
			"street", s.Street().String(), "seat", seat, "action", act.String(), "pot", s.TotalPot())
	}

	out := Outcome{HandID: handID, Steps: steps, Duration: r.clock.Since(start)}
	logger.Info("hand complete",
		"reason", s.Result.Reason.String(),
		"pot", s.TotalPot(),
		"steps", out.Steps,
		"duration", out.Duration)
	return s, out, nil
}

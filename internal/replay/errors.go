package replay

import (
	"errors"
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Sentinel errors for errors.Is matching. Both end the replay of the current
// hand: continuing past either risks misattributed actions or an unbounded
// drive loop.
var (
	// ErrDesync means the recorded sequence cannot be reconciled with the
	// engine's turn order, even after implicit-check synthesis.
	ErrDesync = errors.New("replay desynchronized from engine turn order")
	// ErrRecordDrained means the engine still expects a decision on a
	// street whose recorded actions are all consumed.
	ErrRecordDrained = errors.New("recorded actions exhausted")
)

// DesyncError carries the full reconciliation context: who the engine
// expected, what the record held, where the cursor stood and a dump of the
// state for diagnosis.
type DesyncError struct {
	RecordID string
	Expected int
	Street   game.Street
	Cursor   int
	Recorded RecordedAction
	// StateDump is a rendering of the engine snapshot at the failure.
	StateDump string
}

func newDesyncError(recordID string, expected int, street game.Street, cursor int, rec RecordedAction, s *game.HandState) *DesyncError {
	return &DesyncError{
		RecordID:  recordID,
		Expected:  expected,
		Street:    street,
		Cursor:    cursor,
		Recorded:  rec,
		StateDump: litter.Sdump(s.Snapshot()),
	}
}

func (e *DesyncError) Error() string {
	return fmt.Sprintf("replay: record %s %s cursor %d holds %s but engine expects seat %d",
		e.RecordID, e.Street, e.Cursor, e.Recorded, e.Expected)
}

func (e *DesyncError) Unwrap() error { return ErrDesync }

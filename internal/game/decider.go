package game

// Decider chooses an action for the seat the engine expects to act. Both
// live bot policies and the replay adapter implement it, so the driving
// loop is identical in either mode.
//
// Decide is called only with a non-terminal state whose NextActor is seat.
// The returned action is validated by ExecuteAction; an error stops the
// drive of the current hand.
type Decider interface {
	Decide(seat int, s *HandState) (Action, error)
}

// DecideFunc adapts a plain function to the Decider interface.
type DecideFunc func(seat int, s *HandState) (Action, error)

// Decide calls f.
func (f DecideFunc) Decide(seat int, s *HandState) (Action, error) {
	return f(seat, s)
}

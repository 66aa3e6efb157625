package game

import "github.com/yeogirlyun/holdemcore/internal/deck"

// PlayerSnapshot is one seat's view-level state.
type PlayerSnapshot struct {
	Seat          int
	Name          string
	Stack         int
	CurrentBet    int
	TotalInvested int
	HoleCards     []deck.Card
	Folded        bool
	AllIn         bool
}

// Snapshot is a read-only projection of a hand for rendering and logging.
// It shares nothing with the live state; callers may hold it as long as
// they like.
type Snapshot struct {
	Phase      Phase
	Street     Street
	Button     int
	Board      []deck.Card
	Pot        int
	CurrentBet int
	MinRaise   int
	ToAct      int
	NeedAction []int
	Players    []PlayerSnapshot
	Terminal   bool
	Result     *HandResult
}

// Snapshot projects the state for read-only consumers.
func (s *HandState) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.Phase,
		Street:     s.Street(),
		Button:     s.Button,
		Board:      append([]deck.Card(nil), s.Board...),
		Pot:        s.Pot.Total(),
		CurrentBet: s.Betting.CurrentBet,
		MinRaise:   s.Betting.MinRaise,
		ToAct:      s.Betting.ToAct,
		NeedAction: s.Betting.NeedAction.Seats(),
		Players:    make([]PlayerSnapshot, len(s.Players)),
		Terminal:   s.Terminal(),
	}
	for i, p := range s.Players {
		snap.Players[i] = PlayerSnapshot{
			Seat:          p.Seat,
			Name:          p.Name,
			Stack:         p.Stack,
			CurrentBet:    p.CurrentBet,
			TotalInvested: p.TotalInvested,
			HoleCards:     append([]deck.Card(nil), p.HoleCards...),
			Folded:        p.Folded,
			AllIn:         p.AllIn,
		}
	}
	if s.Result != nil {
		snap.Result = s.Result.clone()
	}
	return snap
}

package game

// Phase is a state of the hand state machine. Deal phases and Showdown are
// traversed inside transitions; a state at rest is in a betting phase or
// EndHand.
type Phase int

const (
	Idle Phase = iota
	StartHand
	PostBlinds
	PreflopBetting
	DealFlop
	FlopBetting
	DealTurn
	TurnBetting
	DealRiver
	RiverBetting
	Showdown
	EndHand
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case StartHand:
		return "start_hand"
	case PostBlinds:
		return "post_blinds"
	case PreflopBetting:
		return "preflop_betting"
	case DealFlop:
		return "deal_flop"
	case FlopBetting:
		return "flop_betting"
	case DealTurn:
		return "deal_turn"
	case TurnBetting:
		return "turn_betting"
	case DealRiver:
		return "deal_river"
	case RiverBetting:
		return "river_betting"
	case Showdown:
		return "showdown"
	case EndHand:
		return "end_hand"
	default:
		return "unknown"
	}
}

// Terminal reports whether the hand is over.
func (p Phase) Terminal() bool {
	return p == EndHand
}

// Betting reports whether the phase awaits player decisions.
func (p Phase) Betting() bool {
	switch p {
	case PreflopBetting, FlopBetting, TurnBetting, RiverBetting:
		return true
	default:
		return false
	}
}

// Street is one betting round.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Street maps a phase to the street it belongs to. Deal phases map to the
// street they open; Showdown and EndHand map to River.
func (p Phase) Street() Street {
	switch p {
	case Idle, StartHand, PostBlinds, PreflopBetting:
		return Preflop
	case DealFlop, FlopBetting:
		return Flop
	case DealTurn, TurnBetting:
		return Turn
	default:
		return River
	}
}

// bettingPhase returns the betting phase for a street.
func bettingPhase(s Street) Phase {
	switch s {
	case Preflop:
		return PreflopBetting
	case Flop:
		return FlopBetting
	case Turn:
		return TurnBetting
	default:
		return RiverBetting
	}
}

// boardCardsFor returns how many board cards a street adds when dealt.
func boardCardsFor(s Street) int {
	if s == Flop {
		return 3
	}
	return 1
}

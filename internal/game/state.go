package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/yeogirlyun/holdemcore/internal/deck"
)

// Default table parameters, used when Config leaves them zero.
const (
	DefaultSmallBlind = 5
	DefaultBigBlind   = 10
	DefaultStartChips = 1000
)

// Config describes a hand about to start.
type Config struct {
	// Players are seat names in table order. At least two are required.
	Players []string
	// Button is the dealer seat index.
	Button int
	// SmallBlind and BigBlind default to 5/10.
	SmallBlind int
	BigBlind   int
	// Stacks holds per-seat starting chips. When nil every seat starts with
	// StartChips (default 1000).
	Stacks     []int
	StartChips int
	// Deck, when set, is dealt as-is: two consecutive cards per seat in seat
	// order, then the board. Used to rig deals for replays and tests.
	// Otherwise a full deck is shuffled with Rand.
	Deck *deck.Deck
	// Rand shuffles the deck when Deck is nil.
	Rand *rand.Rand
	// Evaluator scores hands at showdown. Required.
	Evaluator Evaluator
}

func (c *Config) validate() error {
	if len(c.Players) < 2 {
		return fmt.Errorf("game: at least 2 players required, got %d", len(c.Players))
	}
	if len(c.Players) > 64 {
		return fmt.Errorf("game: at most 64 players supported, got %d", len(c.Players))
	}
	if c.Button < 0 || c.Button >= len(c.Players) {
		return fmt.Errorf("game: button seat %d out of range", c.Button)
	}
	if c.Stacks != nil && len(c.Stacks) != len(c.Players) {
		return fmt.Errorf("game: %d stacks for %d players", len(c.Stacks), len(c.Players))
	}
	if c.SmallBlind < 0 || c.BigBlind < 0 {
		return fmt.Errorf("game: negative blinds")
	}
	if c.SmallBlind > 0 && c.BigBlind > 0 && c.BigBlind < c.SmallBlind {
		return fmt.Errorf("game: big blind %d below small blind %d", c.BigBlind, c.SmallBlind)
	}
	if c.Deck == nil && c.Rand == nil {
		return fmt.Errorf("game: either Deck or Rand is required")
	}
	if c.Evaluator == nil {
		return fmt.Errorf("game: evaluator is required")
	}
	for seat, stack := range c.Stacks {
		if stack <= 0 {
			return fmt.Errorf("game: seat %d starts with %d chips", seat, stack)
		}
	}
	return nil
}

// HandState is the complete state of one hand. It has exactly one owner at a
// time; ExecuteAction returns a fresh value and never mutates its input.
type HandState struct {
	Players []*Player
	Button  int
	Phase   Phase
	Board   []deck.Card

	SmallBlind int
	BigBlind   int

	Pot     *PotManager
	Betting *BettingState
	History []ActionRecord

	// Result is set when Phase reaches EndHand.
	Result *HandResult

	deck *deck.Deck
	eval Evaluator
}

// NewHand starts a hand: blinds are posted and hole cards dealt, leaving the
// state in PreflopBetting. When blinds put every player all-in the hand runs
// out to showdown immediately and the returned state is terminal.
func NewHand(cfg Config) (*HandState, error) {
	if cfg.SmallBlind == 0 && cfg.BigBlind == 0 {
		cfg.SmallBlind, cfg.BigBlind = DefaultSmallBlind, DefaultBigBlind
	}
	if cfg.StartChips == 0 {
		cfg.StartChips = DefaultStartChips
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	players := make([]*Player, len(cfg.Players))
	for seat, name := range cfg.Players {
		stack := cfg.StartChips
		if cfg.Stacks != nil {
			stack = cfg.Stacks[seat]
		}
		players[seat] = &Player{Seat: seat, Name: name, Stack: stack}
	}

	d := cfg.Deck
	if d == nil {
		d = deck.New(cfg.Rand)
	}

	s := &HandState{
		Players:    players,
		Button:     cfg.Button,
		Phase:      StartHand,
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		Pot:        NewPotManager(len(players)),
		Betting:    newBettingState(),
		deck:       d,
		eval:       cfg.Evaluator,
	}

	if err := s.dealHoleCards(); err != nil {
		return nil, err
	}
	s.Phase = PostBlinds
	s.postBlinds()
	s.openStreet(Preflop)

	// Blinds can leave no one free to act (every stack swallowed by a
	// blind); the hand then runs out on its own.
	s.settleIfComplete()
	return s, nil
}

func (s *HandState) dealHoleCards() error {
	for _, p := range s.Players {
		cards, err := s.deck.DrawN(2)
		if err != nil {
			return fmt.Errorf("game: dealing hole cards to seat %d: %w", p.Seat, err)
		}
		p.HoleCards = cards
	}
	return nil
}

// smallBlindSeat and bigBlindSeat follow standard position rules: heads-up
// the button posts the small blind.
func (s *HandState) smallBlindSeat() int {
	if len(s.Players) == 2 {
		return s.Button
	}
	return (s.Button + 1) % len(s.Players)
}

func (s *HandState) bigBlindSeat() int {
	if len(s.Players) == 2 {
		return (s.Button + 1) % len(s.Players)
	}
	return (s.Button + 2) % len(s.Players)
}

func (s *HandState) postBlinds() {
	s.postBlind(s.smallBlindSeat(), s.SmallBlind)
	s.postBlind(s.bigBlindSeat(), s.BigBlind)
	s.Betting.CurrentBet = s.BigBlind
	s.Betting.MinRaise = s.BigBlind
}

func (s *HandState) postBlind(seat, amount int) {
	p := s.Players[seat]
	paid := p.commit(amount)
	s.Pot.Contribute(seat, paid)
	s.History = append(s.History, ActionRecord{
		Street:   Preflop,
		Seat:     seat,
		Kind:     PostBlind,
		Paid:     paid,
		ToAmount: p.CurrentBet,
	})
}

// Street returns the betting round the state is on.
func (s *HandState) Street() Street {
	return s.Phase.Street()
}

// Terminal reports whether the hand has ended.
func (s *HandState) Terminal() bool {
	return s.Phase.Terminal()
}

// NextActor returns the seat owed a decision. ok is false when the hand is
// terminal; a non-terminal state always has an expected actor.
func (s *HandState) NextActor() (seat int, ok bool) {
	if !s.Phase.Betting() || s.Betting.ToAct < 0 {
		return -1, false
	}
	return s.Betting.ToAct, true
}

// TotalPot returns the chips committed to the hand so far.
func (s *HandState) TotalPot() int {
	return s.Pot.Total()
}

// LiveCount returns the number of players still contesting the hand.
func (s *HandState) LiveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Live() {
			n++
		}
	}
	return n
}

// actableSeats returns the set of live, non-all-in seats.
func (s *HandState) actableSeats() SeatSet {
	var set SeatSet
	for _, p := range s.Players {
		if p.CanAct() {
			set = set.Add(p.Seat)
		}
	}
	return set
}

// firstToAct returns the seat opening a street, skipping seats that cannot
// act. Preflop it is the seat after the big blind. Postflop it is the first
// live seat after the button, except heads-up where the button leads every
// street.
func (s *HandState) firstToAct(street Street, canAct SeatSet) int {
	n := len(s.Players)
	var from int
	switch {
	case n == 2:
		from = s.Button
	case street == Preflop:
		from = (s.bigBlindSeat() + 1) % n
	default:
		from = (s.Button + 1) % n
	}
	return canAct.NextFrom(from, n)
}

// checkInvariants panics when chip bookkeeping has diverged. The pot ledger
// and the per-player totals are maintained independently; they must agree at
// every observable point.
func (s *HandState) checkInvariants() {
	invested := 0
	for _, p := range s.Players {
		invested += p.TotalInvested
		if p.CurrentBet > s.Betting.CurrentBet && !p.AllIn {
			panic(fmt.Sprintf("game: seat %d street bet %d above current bet %d",
				p.Seat, p.CurrentBet, s.Betting.CurrentBet))
		}
	}
	if s.Pot.Total() != invested {
		panic(fmt.Sprintf("game: pot %d != invested %d", s.Pot.Total(), invested))
	}
}

// Clone returns a deep copy sharing only the immutable evaluator.
func (s *HandState) Clone() *HandState {
	c := &HandState{
		Players:    make([]*Player, len(s.Players)),
		Button:     s.Button,
		Phase:      s.Phase,
		SmallBlind: s.SmallBlind,
		BigBlind:   s.BigBlind,
		Pot:        s.Pot.clone(),
		Betting:    s.Betting.clone(),
		deck:       s.deck.Clone(),
		eval:       s.eval,
	}
	for i, p := range s.Players {
		c.Players[i] = p.clone()
	}
	if s.Board != nil {
		c.Board = make([]deck.Card, len(s.Board))
		copy(c.Board, s.Board)
	}
	if s.History != nil {
		c.History = make([]ActionRecord, len(s.History))
		copy(c.History, s.History)
	}
	if s.Result != nil {
		r := s.Result.clone()
		c.Result = r
	}
	return c
}

package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeogirlyun/holdemcore/internal/game"
)

// Encode writes the hand history as PHH TOML.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeBytes encodes and returns the document as bytes.
func EncodeBytes(hand *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// EncodeAll writes a multi-hand .phhs document: each hand under a numbered
// top-level table, starting at 1.
func EncodeAll(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return fmt.Errorf("phh: encoding hand %d: %w", i+1, err)
		}
	}
	return nil
}

// FromState converts a finished hand into its PHH record: seats rotated
// into position order, blinds recorded as forced bets and the action
// history rendered in the PHH vocabulary. Hole cards are written for every
// seat; showdown reveals ("sm") are added for the seats that reached it.
func FromState(s *game.HandState, handID string) (*HandHistory, error) {
	if !s.Terminal() {
		return nil, fmt.Errorf("phh: hand %s is not finished", handID)
	}
	snap := s.Snapshot()
	n := len(snap.Players)

	// Position order: small blind first, button last (heads-up the button
	// is the small blind and comes first).
	sbSeat := (snap.Button + 1) % n
	if n == 2 {
		sbSeat = snap.Button
	}
	posOf := make([]int, n) // seat -> position
	order := make([]int, n) // position -> seat
	for pos := 0; pos < n; pos++ {
		seat := (sbSeat + pos) % n
		order[pos] = seat
		posOf[seat] = pos
	}

	h := &HandHistory{
		Variant:           VariantNT,
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            s.BigBlind,
		StartingStacks:    make([]int, n),
		FinishingStacks:   make([]int, n),
		Players:           make([]string, n),
		SeatCount:         n,
		HandID:            handID,
	}
	h.BlindsOrStraddles[0] = s.SmallBlind
	h.BlindsOrStraddles[1] = s.BigBlind

	for pos, seat := range order {
		p := snap.Players[seat]
		h.Players[pos] = p.Name
		// The finishing stack already contains any winnings.
		start := p.Stack + p.TotalInvested
		if snap.Result != nil {
			start -= snap.Result.Winnings[seat]
		}
		h.StartingStacks[pos] = start
		h.FinishingStacks[pos] = p.Stack
		h.Actions = append(h.Actions,
			fmt.Sprintf("d dh p%d %s", pos+1, FormatCards(p.HoleCards)))
	}

	for _, rec := range s.History {
		switch rec.Kind {
		case game.PostBlind:
			// Captured by blinds_or_straddles.
		case game.DealBoard:
			h.Actions = append(h.Actions, "d db "+FormatCards(rec.Cards))
		case game.Fold:
			h.Actions = append(h.Actions, fmt.Sprintf("p%d f", posOf[rec.Seat]+1))
		case game.Check, game.Call:
			h.Actions = append(h.Actions, fmt.Sprintf("p%d cc", posOf[rec.Seat]+1))
		case game.Bet, game.Raise, game.AllIn:
			h.Actions = append(h.Actions,
				fmt.Sprintf("p%d cbr %d", posOf[rec.Seat]+1, rec.ToAmount))
		}
	}

	if snap.Result != nil && snap.Result.Reason == game.ShowdownResolved {
		for _, seat := range order {
			p := snap.Players[seat]
			if !p.Folded {
				h.Actions = append(h.Actions,
					fmt.Sprintf("p%d sm %s", posOf[seat]+1, FormatCards(p.HoleCards)))
			}
		}
	}
	return h, nil
}

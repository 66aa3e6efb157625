package replay

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/game"
	"github.com/yeogirlyun/holdemcore/internal/phh"
)

// RecordFromHistory converts a decoded PHH hand into a replayable record.
// PHH lists players in position order with the small blind first, so seat
// indices in the record are position indices: the button is the last seat,
// or the first heads-up.
func RecordFromHistory(h *phh.HandHistory) (*HandRecord, error) {
	n := len(h.StartingStacks)
	if n < 2 || len(h.BlindsOrStraddles) < 2 {
		return nil, fmt.Errorf("replay: hand %s: incomplete hand history", h.HandID)
	}
	rec := &HandRecord{
		ID:              h.HandID,
		Players:         h.Players,
		Button:          n - 1,
		SmallBlind:      h.BlindsOrStraddles[0],
		BigBlind:        h.BlindsOrStraddles[1],
		StartingStacks:  h.StartingStacks,
		FinishingStacks: h.FinishingStacks,
		HoleCards:       make([][]deck.Card, n),
	}
	if n == 2 {
		rec.Button = 0
	}
	if rec.Players == nil {
		rec.Players = make([]string, n)
		for i := range rec.Players {
			rec.Players[i] = fmt.Sprintf("p%d", i+1)
		}
	}

	street := game.Preflop
	for _, raw := range h.Actions {
		fields := strings.Fields(raw)
		if len(fields) < 2 {
			return nil, fmt.Errorf("replay: hand %s: malformed action %q", h.HandID, raw)
		}

		if fields[0] == "d" {
			switch fields[1] {
			case "dh":
				if len(fields) != 4 {
					return nil, fmt.Errorf("replay: hand %s: malformed deal %q", h.HandID, raw)
				}
				seat, err := parseSeat(fields[2], n)
				if err != nil {
					return nil, fmt.Errorf("replay: hand %s: %w", h.HandID, err)
				}
				cards, known, err := phh.ParseCardRun(fields[3])
				if err != nil {
					return nil, fmt.Errorf("replay: hand %s: deal %q: %w", h.HandID, raw, err)
				}
				if known {
					rec.HoleCards[seat] = cards
				}
			case "db":
				if len(fields) != 3 {
					return nil, fmt.Errorf("replay: hand %s: malformed board %q", h.HandID, raw)
				}
				cards, _, err := phh.ParseCardRun(fields[2])
				if err != nil {
					return nil, fmt.Errorf("replay: hand %s: board %q: %w", h.HandID, raw, err)
				}
				rec.Board = append(rec.Board, cards...)
				if street < game.River {
					street++
				}
			default:
				return nil, fmt.Errorf("replay: hand %s: unknown dealer action %q", h.HandID, raw)
			}
			continue
		}

		seat, err := parseSeat(fields[0], n)
		if err != nil {
			return nil, fmt.Errorf("replay: hand %s: %w", h.HandID, err)
		}
		switch fields[1] {
		case "f":
			rec.Actions[street] = append(rec.Actions[street], RecordedAction{Seat: seat, Kind: Fold})
		case "cc":
			rec.Actions[street] = append(rec.Actions[street], RecordedAction{Seat: seat, Kind: CheckCall})
		case "cbr":
			if len(fields) != 3 {
				return nil, fmt.Errorf("replay: hand %s: malformed raise %q", h.HandID, raw)
			}
			amount, err := strconv.Atoi(fields[2])
			if err != nil || amount <= 0 {
				return nil, fmt.Errorf("replay: hand %s: bad raise amount %q", h.HandID, raw)
			}
			rec.Actions[street] = append(rec.Actions[street],
				RecordedAction{Seat: seat, Kind: BetRaise, Amount: amount})
		case "sm":
			// Showdown reveal: fills cards the deal line left unknown.
			if len(fields) == 3 {
				cards, known, err := phh.ParseCardRun(fields[2])
				if err != nil {
					return nil, fmt.Errorf("replay: hand %s: reveal %q: %w", h.HandID, raw, err)
				}
				if known && rec.HoleCards[seat] == nil {
					rec.HoleCards[seat] = cards
				}
			}
		default:
			return nil, fmt.Errorf("replay: hand %s: unknown action %q", h.HandID, raw)
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func parseSeat(token string, n int) (int, error) {
	if !strings.HasPrefix(token, "p") {
		return 0, fmt.Errorf("bad player token %q", token)
	}
	idx, err := strconv.Atoi(token[1:])
	if err != nil || idx < 1 || idx > n {
		return 0, fmt.Errorf("bad player token %q", token)
	}
	return idx - 1, nil
}

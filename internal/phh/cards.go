package phh

import (
	"strings"

	"github.com/yeogirlyun/holdemcore/internal/deck"
)

// UnknownCards marks undisclosed hole cards in deal actions.
const UnknownCards = "????"

// NormalizeCard rewrites loose card notation ("10h", "AH") into the
// canonical two-letter PHH form ("Th", "Ah").
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" || card == "??" {
		return card
	}
	lowered := strings.ToLower(card)
	suit := lowered[len(lowered)-1:]
	rank := strings.ToUpper(lowered[:len(lowered)-1])
	if rank == "10" {
		rank = "T"
	}
	return rank + suit
}

// ParseCardRun parses a concatenated card run like "AhKs". known is false
// when the run is the unknown-cards marker.
func ParseCardRun(s string) (cards []deck.Card, known bool, err error) {
	if s == "" || strings.Trim(s, "?") == "" {
		return nil, false, nil
	}
	cards, err = deck.ParseCards(s)
	if err != nil {
		return nil, false, err
	}
	return cards, true, nil
}

// FormatCards renders cards as a PHH run ("AhKs").
func FormatCards(cards []deck.Card) string {
	return deck.CardsString(cards)
}

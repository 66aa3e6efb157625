// Package phh encodes and decodes poker hands in the PHH TOML format.
//
// Players are listed in position order starting at the small blind, so the
// button is the last listed seat (or the first, heads-up, where the button
// posts the small blind). Actions use the PHH vocabulary: "d dh p1 AhKs"
// deals hole cards, "d db 2c3c4c" opens a street, "p2 f", "p1 cc" and
// "p3 cbr 30" are fold, check-or-call and bet-or-raise-to. Unknown cards
// are written "????".
package phh

// HandHistory is a single hand in PHH field order. Slice fields are indexed
// by position (p1 first).
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	HandID            string   `toml:"hand,omitempty"`
}

// Variant code for No-Limit Texas Hold'em.
const VariantNT = "NT"

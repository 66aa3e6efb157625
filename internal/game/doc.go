// Package game implements the No-Limit Hold'em hand engine: hand state,
// betting streets, action validation, pot resolution and showdown.
//
// A hand is a single value. NewHand posts blinds and deals hole cards;
// ExecuteAction is the sole mutation entry point and returns a new state,
// leaving its input untouched. Callers drive the hand by asking NextActor
// who is owed a decision, obtaining an Action from a Decider (a live bot
// policy or a replay source) and applying it. Street transitions, all-in
// runouts and showdown resolution happen inside the transition, so a
// non-terminal state always has a next actor.
package game

package main

import (
	"fmt"
	"time"

	"github.com/yeogirlyun/holdemcore/internal/deck"
	"github.com/yeogirlyun/holdemcore/internal/eval"
	"github.com/yeogirlyun/holdemcore/internal/randutil"
)

// DealCmd deals one board to a number of seats and shows what each seat
// makes. Handy for eyeballing the evaluator.
type DealCmd struct {
	Players int   `default:"6" help:"Number of seats to deal"`
	Seed    int64 `help:"RNG seed (0 for random)"`
}

func (c *DealCmd) Run() error {
	if c.Players < 2 || c.Players > 10 {
		return fmt.Errorf("players must be between 2 and 10, got %d", c.Players)
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := deck.New(randutil.New(seed))

	holes := make([][]deck.Card, c.Players)
	for seat := range holes {
		cards, err := d.DrawN(2)
		if err != nil {
			return err
		}
		holes[seat] = cards
	}
	board, err := d.DrawN(5)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" seed %d ", seed)))
	fmt.Printf("  %s %s\n\n", streetStyle.Render("board"), renderCards(board))

	ev := eval.New()
	best := -1
	var bestScore int32
	for seat, hole := range holes {
		v, err := ev.Evaluate(hole, board)
		if err != nil {
			return err
		}
		fmt.Printf("  seat %d  %s  %s\n", seat, renderCards(hole), dimStyle.Render(v.Desc))
		if best == -1 || v.Score > bestScore {
			best, bestScore = seat, v.Score
		}
	}
	fmt.Println()
	fmt.Println("  " + winnerStyle.Render(fmt.Sprintf("seat %d has the best hand", best)))
	return nil
}

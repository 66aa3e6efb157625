package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yeogirlyun/holdemcore/internal/eval"
	"github.com/yeogirlyun/holdemcore/internal/game"
	"github.com/yeogirlyun/holdemcore/internal/phh"
	"github.com/yeogirlyun/holdemcore/internal/replay"
	"github.com/yeogirlyun/holdemcore/internal/runner"
)

// ReplayCmd drives recorded hands through the engine and checks that the
// replayed finishing stacks match the ones the file records.
type ReplayCmd struct {
	Files      []string `arg:"" name:"file" help:"PHH files to replay (.phh or .phhs)" type:"existingfile"`
	Parallel   int      `default:"4" help:"Files replayed concurrently"`
	Transcript bool     `help:"Print a styled transcript of each hand"`
	LogLevel   string   `default:"warn" help:"Log level (debug, info, warn, error)"`
}

type replayStats struct {
	mu          sync.Mutex
	hands       int
	synthesized int
	mismatches  []string
}

func (c *ReplayCmd) Run() error {
	logger := setupLogger(c.LogLevel)
	ev := eval.New()
	stats := &replayStats{}

	var g errgroup.Group
	g.SetLimit(c.Parallel)
	for _, path := range c.Files {
		g.Go(func() error {
			return c.replayFile(path, ev, stats)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, m := range stats.mismatches {
		fmt.Fprintln(os.Stderr, failStyle.Render("stack mismatch: ")+m)
	}
	logger.Info("replay complete",
		"files", len(c.Files), "hands", stats.hands, "synthesized_checks", stats.synthesized)
	if n := len(stats.mismatches); n > 0 {
		return fmt.Errorf("%d of %d hands finished with unexpected stacks", n, stats.hands)
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("✓ %d hands replayed", stats.hands)))
	return nil
}

func (c *ReplayCmd) replayFile(path string, ev *eval.Evaluator, stats *replayStats) error {
	hands, err := phh.DecodeFile(path)
	if err != nil {
		return err
	}

	r := runner.New(runner.Config{})
	for i, h := range hands {
		rec, err := replay.RecordFromHistory(h)
		if err != nil {
			return fmt.Errorf("%s: hand %d: %w", path, i+1, err)
		}
		cfg, err := rec.GameConfig(ev)
		if err != nil {
			return fmt.Errorf("%s: hand %d: %w", path, i+1, err)
		}
		s, err := game.NewHand(cfg)
		if err != nil {
			return fmt.Errorf("%s: hand %d: %w", path, i+1, err)
		}

		adapter := replay.New(rec)
		final, _, err := r.Run(s, adapter)
		if err != nil {
			return fmt.Errorf("%s: hand %s: %w", path, rec.ID, err)
		}

		stats.mu.Lock()
		stats.hands++
		stats.synthesized += adapter.SynthesizedChecks()
		for seat, want := range rec.FinishingStacks {
			if got := final.Players[seat].Stack; got != want {
				stats.mismatches = append(stats.mismatches,
					fmt.Sprintf("%s hand %s seat %d: replayed %d, recorded %d",
						path, rec.ID, seat, got, want))
			}
		}
		stats.mu.Unlock()

		if c.Transcript {
			printTranscript(rec, final)
		}
	}
	return nil
}

func printTranscript(rec *replay.HandRecord, s *game.HandState) {
	fmt.Println(headerStyle.Render(" hand " + rec.ID + " "))
	for seat, p := range s.Players {
		name := rec.Players[seat]
		fmt.Printf("  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("seat %d", seat)), name, renderCards(p.HoleCards))
	}
	if len(s.Board) > 0 {
		fmt.Printf("  %s %s\n", streetStyle.Render("board"), renderCards(s.Board))
	}
	street := game.Street(-1)
	for _, entry := range s.History {
		if entry.Street != street {
			street = entry.Street
			fmt.Println("  " + streetStyle.Render("*** "+street.String()+" ***"))
		}
		fmt.Println("    " + entry.String())
	}
	if s.Result != nil {
		for seat, won := range s.Result.Winnings {
			fmt.Println("  " + winnerStyle.Render(fmt.Sprintf("seat %d wins %d", seat, won)))
		}
	}
	fmt.Println()
}

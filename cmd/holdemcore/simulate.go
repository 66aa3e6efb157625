package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeogirlyun/holdemcore/internal/bot"
	"github.com/yeogirlyun/holdemcore/internal/config"
	"github.com/yeogirlyun/holdemcore/internal/eval"
	"github.com/yeogirlyun/holdemcore/internal/fileutil"
	"github.com/yeogirlyun/holdemcore/internal/game"
	"github.com/yeogirlyun/holdemcore/internal/phh"
	"github.com/yeogirlyun/holdemcore/internal/randutil"
	"github.com/yeogirlyun/holdemcore/internal/runner"
)

// SimulateCmd runs a session of bot-vs-bot hands. Stacks reset every hand;
// the button rotates.
type SimulateCmd struct {
	Config string `default:"holdemcore.hcl" help:"HCL configuration file"`
	Hands  int    `help:"Override the configured number of hands"`
	Seed   int64  `help:"Override the configured RNG seed (0 for random)"`
	Output string `help:"Override the configured .phhs output path"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Session.Hands = c.Hands
	}
	if c.Seed != 0 {
		cfg.Session.Seed = c.Seed
	}
	if c.Output != "" {
		cfg.Session.Output = c.Output
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	logger := setupLogger(cfg.Session.LogLevel)
	logger.Info("starting session",
		"table", cfg.Table.Name,
		"bots", len(cfg.Bots),
		"hands", cfg.Session.Hands,
		"blinds", fmt.Sprintf("%d/%d", cfg.Table.SmallBlind, cfg.Table.BigBlind),
		"seed", seed)

	names := make([]string, len(cfg.Bots))
	deciders := make([]game.Decider, len(cfg.Bots))
	for i, bc := range cfg.Bots {
		names[i] = bc.Name
		d, err := bot.New(bc.Policy, rng)
		if err != nil {
			return err
		}
		deciders[i] = d
	}
	table := seatRouter{deciders}

	r := runner.New(runner.Config{Logger: logger, GuardFactor: cfg.Session.GuardFactor})
	ev := eval.New()
	net := make([]int, len(cfg.Bots))
	var histories []*phh.HandHistory

	for hand := 0; hand < cfg.Session.Hands; hand++ {
		s, err := game.NewHand(game.Config{
			Players:    names,
			Button:     hand % len(names),
			SmallBlind: cfg.Table.SmallBlind,
			BigBlind:   cfg.Table.BigBlind,
			StartChips: cfg.Table.StartChips,
			Rand:       rng,
			Evaluator:  ev,
		})
		if err != nil {
			return fmt.Errorf("starting hand %d: %w", hand+1, err)
		}

		final, _, err := r.Run(s, table)
		if err != nil {
			return fmt.Errorf("hand %d: %w", hand+1, err)
		}

		for seat, p := range final.Players {
			net[seat] += p.Stack - cfg.Table.StartChips
		}
		if cfg.Session.Output != "" {
			h, err := phh.FromState(final, uuid.NewString())
			if err != nil {
				return fmt.Errorf("recording hand %d: %w", hand+1, err)
			}
			histories = append(histories, h)
		}
	}

	if cfg.Session.Output != "" {
		var buf strings.Builder
		if err := phh.EncodeAll(&buf, histories); err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(cfg.Session.Output, []byte(buf.String()), 0o644); err != nil {
			return err
		}
		logger.Info("session written", "path", cfg.Session.Output, "hands", len(histories))
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(" %s: %d hands ", cfg.Table.Name, cfg.Session.Hands)))
	bb := float64(cfg.Table.BigBlind)
	for seat, name := range names {
		rate := float64(net[seat]) / bb / float64(cfg.Session.Hands) * 100
		line := fmt.Sprintf("  %-12s %+7d chips  %+7.2f bb/100", name, net[seat], rate)
		if net[seat] >= 0 {
			fmt.Println(okStyle.Render(line))
		} else {
			fmt.Println(dimStyle.Render(line))
		}
	}
	return nil
}

// seatRouter dispatches each decision to the bot seated there.
type seatRouter struct {
	seats []game.Decider
}

func (t seatRouter) Decide(seat int, s *game.HandState) (game.Action, error) {
	if seat < 0 || seat >= len(t.seats) {
		return game.Action{}, fmt.Errorf("no decider for seat %d", seat)
	}
	return t.seats[seat].Decide(seat, s)
}

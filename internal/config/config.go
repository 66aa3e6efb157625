// Package config loads table and session configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is a complete simulation configuration.
type Config struct {
	Table   *TableConfig   `hcl:"table,block"`
	Session *SessionConfig `hcl:"session,block"`
	Bots    []BotConfig    `hcl:"bot,block"`
}

// TableConfig defines the table stakes and stacks.
type TableConfig struct {
	Name       string `hcl:"name,label"`
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
	StartChips int    `hcl:"start_chips,optional"`
}

// SessionConfig defines how many hands to run and how.
type SessionConfig struct {
	Hands       int    `hcl:"hands,optional"`
	Seed        int64  `hcl:"seed,optional"`
	GuardFactor int    `hcl:"guard_factor,optional"`
	Output      string `hcl:"output,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// BotConfig seats one bot at the table.
type BotConfig struct {
	Name   string `hcl:"name,label"`
	Policy string `hcl:"policy"`
}

// Default returns the configuration used when no file is given: a 5/10
// table with two calling bots.
func Default() *Config {
	cfg := &Config{
		Table: &TableConfig{Name: "main", SmallBlind: 5, BigBlind: 10},
		Bots: []BotConfig{
			{Name: "bot1", Policy: "call"},
			{Name: "bot2", Policy: "call"},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates an HCL configuration file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parsing %s: %s", filename, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decoding %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableConfig{Name: "main", SmallBlind: 5, BigBlind: 10}
	}
	if c.Table.StartChips == 0 {
		// 100 big blinds.
		c.Table.StartChips = c.Table.BigBlind * 100
	}
	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Hands == 0 {
		c.Session.Hands = 100
	}
	if c.Session.GuardFactor == 0 {
		c.Session.GuardFactor = 8
	}
	if c.Session.LogLevel == "" {
		c.Session.LogLevel = "info"
	}
}

// Validate checks the configuration for playability.
func (c *Config) Validate() error {
	t := c.Table
	if t.SmallBlind <= 0 {
		return fmt.Errorf("config: table %s: small blind must be positive", t.Name)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("config: table %s: big blind %d below small blind %d", t.Name, t.BigBlind, t.SmallBlind)
	}
	if t.StartChips < t.BigBlind {
		return fmt.Errorf("config: table %s: start chips %d cannot cover the big blind", t.Name, t.StartChips)
	}
	if len(c.Bots) < 2 {
		return fmt.Errorf("config: at least 2 bots required, got %d", len(c.Bots))
	}
	if len(c.Bots) > 10 {
		return fmt.Errorf("config: at most 10 seats supported, got %d bots", len(c.Bots))
	}
	seen := make(map[string]bool)
	for _, b := range c.Bots {
		if seen[b.Name] {
			return fmt.Errorf("config: duplicate bot name %q", b.Name)
		}
		seen[b.Name] = true
		if b.Policy == "" {
			return fmt.Errorf("config: bot %s: policy is required", b.Name)
		}
	}
	if c.Session.Hands < 1 {
		return fmt.Errorf("config: session must run at least one hand")
	}
	if c.Session.GuardFactor < 1 {
		return fmt.Errorf("config: guard factor must be positive")
	}
	return nil
}
